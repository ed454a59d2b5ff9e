package services

import (
	"encoding/json"
	"strings"
)

// parseModelJSON unmarshals a model response into target after stripping any
// markdown wrapping. Parse failures surface the raw error; nothing is
// silently repaired or retried.
func parseModelJSON(response string, target interface{}) error {
	if err := json.Unmarshal([]byte(extractJSON(response)), target); err != nil {
		return &MalformedResponseError{Err: err}
	}

	return nil
}

// extractJSON pulls a JSON object or array out of text that may be wrapped in
// markdown code fences. Some providers fence their JSON output unpredictably,
// so this runs on every response.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return strings.TrimSpace(text)
}
