package llm

import "testing"

func TestFirstTextReturnsFirstCandidate(t *testing.T) {
	resp := &CompletionResponse{
		Candidates: []Candidate{
			{Content: Content{Parts: []Part{{Text: "first"}, {Text: "second"}}}},
			{Content: Content{Parts: []Part{{Text: "other candidate"}}}},
		},
	}

	text, ok := resp.FirstText()
	if !ok {
		t.Fatalf("expected text to be found")
	}
	if text != "first" {
		t.Errorf("expected first part of first candidate, got %q", text)
	}
}

func TestFirstTextAbsent(t *testing.T) {
	cases := []struct {
		name string
		resp *CompletionResponse
	}{
		{"nil response", nil},
		{"no candidates", &CompletionResponse{}},
		{"no parts", &CompletionResponse{Candidates: []Candidate{{Content: Content{Role: "model"}}}}},
		{"empty text", &CompletionResponse{Candidates: []Candidate{{Content: Content{Parts: []Part{{Text: ""}}}}}}},
	}

	for _, tc := range cases {
		if text, ok := tc.resp.FirstText(); ok {
			t.Errorf("%s: expected no text, got %q", tc.name, text)
		}
	}
}
