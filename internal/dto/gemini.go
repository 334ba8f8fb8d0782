package dto

// GeminiAPIRequest is the REST generateContent payload.
type GeminiAPIRequest struct {
	SystemInstruction *Content  `json:"systemInstruction,omitempty"`
	Contents          []Content `json:"contents"`
}

type GeminiAPIResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is a candidate response from the Gemini API.
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

// Text concatenates the text parts of the first candidate.
func (r *GeminiAPIResponse) Text() string {
	if r == nil || len(r.Candidates) == 0 {
		return ""
	}
	text := ""
	for _, p := range r.Candidates[0].Content.Parts {
		text += p.Text
	}
	return text
}
