package university

import "strings"

// SearchResult is one university hit, from the Scorecard API or the built-in
// catalog.
type SearchResult struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	Country        string  `json:"country"`
	TuitionFee     float64 `json:"tuition_fee"`
	AcceptanceRate float64 `json:"acceptance_rate"`
	Website        string  `json:"website"`
}

// catalog is the static fallback used when no Scorecard API key is
// configured or the API is unreachable.
var catalog = []SearchResult{
	{ID: 1, Name: "Stanford University", City: "Stanford", State: "CA", Country: "USA", TuitionFee: 65000, AcceptanceRate: 0.04, Website: "https://www.stanford.edu"},
	{ID: 2, Name: "Massachusetts Institute of Technology (MIT)", City: "Cambridge", State: "MA", Country: "USA", TuitionFee: 62000, AcceptanceRate: 0.04, Website: "https://www.mit.edu"},
	{ID: 3, Name: "Harvard University", City: "Cambridge", State: "MA", Country: "USA", TuitionFee: 60000, AcceptanceRate: 0.03, Website: "https://www.harvard.edu"},
	{ID: 4, Name: "Princeton University", City: "Princeton", State: "NJ", Country: "USA", TuitionFee: 59000, AcceptanceRate: 0.04, Website: "https://www.princeton.edu"},
	{ID: 5, Name: "Columbia University", City: "New York", State: "NY", Country: "USA", TuitionFee: 68000, AcceptanceRate: 0.04, Website: "https://www.columbia.edu"},
	{ID: 6, Name: "University of Michigan", City: "Ann Arbor", State: "MI", Country: "USA", TuitionFee: 55000, AcceptanceRate: 0.18, Website: "https://umich.edu"},
	{ID: 7, Name: "Georgia Institute of Technology", City: "Atlanta", State: "GA", Country: "USA", TuitionFee: 33000, AcceptanceRate: 0.16, Website: "https://www.gatech.edu"},
	{ID: 8, Name: "University of California, Berkeley", City: "Berkeley", State: "CA", Country: "USA", TuitionFee: 48000, AcceptanceRate: 0.11, Website: "https://www.berkeley.edu"},
	{ID: 9, Name: "Purdue University", City: "West Lafayette", State: "IN", Country: "USA", TuitionFee: 28000, AcceptanceRate: 0.53, Website: "https://www.purdue.edu"},
	{ID: 10, Name: "University of Illinois Urbana-Champaign", City: "Urbana", State: "IL", Country: "USA", TuitionFee: 35000, AcceptanceRate: 0.45, Website: "https://illinois.edu"},
	{ID: 11, Name: "Arizona State University", City: "Tempe", State: "AZ", Country: "USA", TuitionFee: 32000, AcceptanceRate: 0.89, Website: "https://www.asu.edu"},
	{ID: 12, Name: "University of Oxford", City: "Oxford", State: "OX", Country: "UK", TuitionFee: 45000, AcceptanceRate: 0.14, Website: "https://www.ox.ac.uk"},
	{ID: 13, Name: "University of Cambridge", City: "Cambridge", State: "CB", Country: "UK", TuitionFee: 46000, AcceptanceRate: 0.16, Website: "https://www.cam.ac.uk"},
	{ID: 14, Name: "Imperial College London", City: "London", State: "LDN", Country: "UK", TuitionFee: 42000, AcceptanceRate: 0.15, Website: "https://www.imperial.ac.uk"},
	{ID: 15, Name: "University College London (UCL)", City: "London", State: "LDN", Country: "UK", TuitionFee: 38000, AcceptanceRate: 0.30, Website: "https://www.ucl.ac.uk"},
	{ID: 16, Name: "University of Toronto", City: "Toronto", State: "ON", Country: "Canada", TuitionFee: 45000, AcceptanceRate: 0.43, Website: "https://www.utoronto.ca"},
	{ID: 17, Name: "University of British Columbia", City: "Vancouver", State: "BC", Country: "Canada", TuitionFee: 38000, AcceptanceRate: 0.52, Website: "https://www.ubc.ca"},
	{ID: 18, Name: "McGill University", City: "Montreal", State: "QC", Country: "Canada", TuitionFee: 35000, AcceptanceRate: 0.46, Website: "https://www.mcgill.ca"},
	{ID: 19, Name: "University of Waterloo", City: "Waterloo", State: "ON", Country: "Canada", TuitionFee: 32000, AcceptanceRate: 0.53, Website: "https://uwaterloo.ca"},
	{ID: 20, Name: "ETH Zurich", City: "Zurich", State: "ZH", Country: "Switzerland", TuitionFee: 2000, AcceptanceRate: 0.27, Website: "https://ethz.ch"},
	{ID: 21, Name: "EPFL", City: "Lausanne", State: "VD", Country: "Switzerland", TuitionFee: 2000, AcceptanceRate: 0.20, Website: "https://www.epfl.ch"},
	{ID: 22, Name: "TU Munich", City: "Munich", State: "BY", Country: "Germany", TuitionFee: 0, AcceptanceRate: 0.08, Website: "https://www.tum.de"},
	{ID: 23, Name: "National University of Singapore (NUS)", City: "Singapore", State: "SG", Country: "Singapore", TuitionFee: 25000, AcceptanceRate: 0.05, Website: "https://nus.edu.sg"},
	{ID: 24, Name: "University of Melbourne", City: "Melbourne", State: "VIC", Country: "Australia", TuitionFee: 35000, AcceptanceRate: 0.70, Website: "https://www.unimelb.edu.au"},
	{ID: 25, Name: "Tsinghua University", City: "Beijing", State: "BJ", Country: "China", TuitionFee: 25000, AcceptanceRate: 0.05, Website: "https://www.tsinghua.edu.cn"},
}

// searchCatalog filters the static catalog by name or city. An empty query
// returns a default slice; a query with zero hits returns a small diverse
// sample rather than nothing.
func searchCatalog(query string) []SearchResult {
	if query == "" {
		return catalog[:6]
	}

	q := strings.ToLower(query)
	filtered := []SearchResult{}
	for _, u := range catalog {
		if strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.City), q) {
			filtered = append(filtered, u)
		}
	}
	if len(filtered) > 0 {
		return filtered
	}

	return []SearchResult{catalog[0], catalog[11], catalog[15], catalog[19]}
}
