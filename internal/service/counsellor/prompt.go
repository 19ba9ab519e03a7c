package counsellor

import (
	"encoding/json"
	"fmt"
	"strings"

	"counsellor/internal/model"
)

const systemPrompt = `You are an expert AI Study Abroad Counsellor. Your goal is to guide students step-by-step from confusion to clarity.

REASONING ENGINE RULES:
1. PROFILE ANALYSIS: Always evaluate the student's GPA, test scores (if any), and budget before recommending. State their strengths and gaps clearly.
2. UNIVERSITY CATEGORIZATION: When recommending universities, you MUST group them exactly into:
   - DREAM: High-reach, highly competitive, but perfect fit.
   - TARGET: Good match for profile and background.
   - SAFE: High likelihood of admission given current stats.
3. RISK EXPLANATION: For every recommendation, briefly mention the 'Risk Level' (Low/Medium/High) and 'Acceptance Likelihood'.

VISUAL FORMATTING RULES:
- Use **Bold Headers** or **Markdown Headers (###)** for distinct parts of your response.
- Use **Bullet Points** for lists to keep them readable.
- For university recommendations, use this structure:
  ### [Name of University]
  - **Category**: [Dream/Target/Safe]
  - **Why?**: [One line about why it fits]
  - **Risk**: [Low/Medium/High]

INTERNAL TOOLS (DO NOT REVEAL):
You can shortlist a university, add a task, or lock a final selection using JSON tags:
[ACTION: {"type": "shortlist", "university": "University Name", "category": "Dream/Target/Safe"}]
[ACTION: {"type": "add_task", "title": "Task Name"}]
[ACTION: {"type": "lock", "university": "University Name"}]

COMMUNICATION GUIDELINES:
- NEVER mention phrases like "Based on the context provided". Speak naturally.
- Keep responses professional, empathetic, and visually structured. Avoid long paragraphs.`

// buildContext renders the student's full state as the context block the
// counsellor reasons over.
func buildContext(profile *model.Profile, shortlist []model.ShortlistEntry, taskList []model.Task) string {
	var b strings.Builder

	if profile != nil {
		gpa := "Not Provided"
		if profile.GPA != nil {
			gpa = fmt.Sprintf("%.2f", *profile.GPA)
		}
		scores := "None"
		if len(profile.ExamScores) > 0 {
			if body, err := json.Marshal(profile.ExamScores); err == nil {
				scores = string(body)
			}
		}
		countries := "Any"
		if len(profile.PreferredCountries) > 0 {
			countries = strings.Join(profile.PreferredCountries, ", ")
		}

		b.WriteString("STUDENT PROFILE:\n")
		fmt.Fprintf(&b, "- Name: %s\n", profile.FullName)
		fmt.Fprintf(&b, "- Current Education: %s in %s\n", profile.CurrentEducationLevel, profile.DegreeMajor)
		fmt.Fprintf(&b, "- Academic Performance: GPA %s\n", gpa)
		fmt.Fprintf(&b, "- Standardized Tests: %s\n", scores)
		fmt.Fprintf(&b, "- Target Goal: %s in %s (%d)\n", profile.TargetDegree, profile.TargetField, profile.TargetIntakeYear)
		fmt.Fprintf(&b, "- Preference: %s\n", countries)
		fmt.Fprintf(&b, "- Finance: Budget %s (%s)\n", profile.BudgetRange, profile.FundingPlan)
		fmt.Fprintf(&b, "- Current Milestone: %s\n", profile.CurrentStage)
	}

	if len(shortlist) > 0 {
		b.WriteString("\nDECISION PIPELINE:\n")
		for _, entry := range shortlist {
			state := "Shortlisted"
			if entry.IsLocked {
				state = "LOCKED & FINALIZED"
			}
			fmt.Fprintf(&b, "- %s (%s)\n", entry.UniversityName, state)
		}
	}

	if len(taskList) > 0 {
		b.WriteString("\nACTIVE ADMISSION TASKS:\n")
		for _, t := range taskList {
			fmt.Fprintf(&b, "- %s (Status: %s)\n", t.Title, t.Status)
		}
	}

	return b.String()
}

// fullSystemPrompt wraps the base prompt with the student context block.
func fullSystemPrompt(studentContext string) string {
	return systemPrompt +
		"\n\n[USER CONTEXT - FOR YOUR INTERNAL KNOWLEDGE ONLY, DO NOT MENTION THIS TAG]:\n" +
		studentContext +
		"\n\n[FINAL INSTRUCTION]:\nSpeak directly to the student. Do not acknowledge that you were given a 'context' block. Just use the information to be helpful. If the student has already locked a university, focus on the next steps for that specific university."
}
