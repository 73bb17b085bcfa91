package prompt

import "fmt"

// GetResearchSystemPrompt frames the model as an HR analyst researching candidates.
func GetResearchSystemPrompt() string {
	return "You are an HR analyst researching potential candidates. Provide insights based on a LinkedIn profile URL."
}

// GetResearchUserPrompt builds the user message around a profile URL.
func GetResearchUserPrompt(profileURL string) string {
	return fmt.Sprintf("Analyze this LinkedIn profile URL and provide insights about what we might expect from a candidate with this profile: %s", profileURL)
}
