package university

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ScorecardClient queries the College Scorecard schools API.
type ScorecardClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewScorecardClient(baseURL, apiKey string) *ScorecardClient {
	if baseURL == "" {
		baseURL = "https://api.data.gov/ed/collegescorecard/v1/schools.json"
	}
	return &ScorecardClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Enabled reports whether an API key is configured.
func (c *ScorecardClient) Enabled() bool {
	return c.apiKey != ""
}

type scorecardSchool struct {
	ID            int      `json:"id"`
	Name          string   `json:"school.name"`
	City          string   `json:"school.city"`
	State         string   `json:"school.state"`
	Tuition       *float64 `json:"latest.cost.tuition.out_of_state"`
	AdmissionRate *float64 `json:"latest.admissions.admission_rate.overall"`
}

type scorecardResponse struct {
	Results []scorecardSchool `json:"results"`
}

// Search queries the Scorecard API for schools matching the query.
func (c *ScorecardClient) Search(ctx context.Context, query string) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("school.search", query)
	params.Set("fields", "id,school.name,school.city,school.state,latest.cost.tuition.out_of_state,latest.admissions.admission_rate.overall")
	params.Set("per_page", "15")
	params.Set("sort", "latest.admissions.admission_rate.overall:asc")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scorecard api status: %d", resp.StatusCode)
	}

	var body scorecardResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(body.Results))
	for _, s := range body.Results {
		r := SearchResult{
			ID:      s.ID,
			Name:    s.Name,
			City:    s.City,
			State:   s.State,
			Country: "USA",
		}
		if s.Tuition != nil {
			r.TuitionFee = *s.Tuition
		}
		if s.AdmissionRate != nil {
			r.AcceptanceRate = *s.AdmissionRate
		}
		results = append(results, r)
	}
	return results, nil
}
