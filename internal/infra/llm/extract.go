package llm

// Providers disagree on where the generated text lives in the response body.
// Instead of hardcoding nested field paths at every call site, the decoded
// body is run through an ordered list of extractors; the first non-empty
// match wins.

type extractor func(body map[string]any) string

var extractors = []extractor{
	// Ollama-style: result.message.content
	func(body map[string]any) string {
		return digString(body, "result", "message", "content")
	},
	// OpenAI-style: choices[0].message.content
	func(body map[string]any) string {
		choices, ok := body["choices"].([]any)
		if !ok || len(choices) == 0 {
			return ""
		}
		first, ok := choices[0].(map[string]any)
		if !ok {
			return ""
		}
		return digString(first, "message", "content")
	},
	// Bare chat reply: message.content
	func(body map[string]any) string {
		return digString(body, "message", "content")
	},
	// Flat fields used by some gateways.
	func(body map[string]any) string {
		return digString(body, "response")
	},
	func(body map[string]any) string {
		return digString(body, "content")
	},
}

// extractText returns the first non-empty completion text, or "" if no known
// shape matched.
func extractText(body map[string]any) string {
	for _, ex := range extractors {
		if s := ex(body); s != "" {
			return s
		}
	}
	return ""
}

// digString walks nested maps along path and returns the terminal string.
func digString(m map[string]any, path ...string) string {
	cur := any(m)
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur, ok = obj[key]
		if !ok {
			return ""
		}
	}
	s, _ := cur.(string)
	return s
}
