package model

const InsightFailureMessage = "Unable to retrieve insights. Please try again."

// InsightState is the hero search box state. Response and Error are never
// both set; Loading is true only between Begin and Resolve/Fail.
type InsightState struct {
	Query    string  `json:"query"`
	Response *string `json:"response"`
	Error    *string `json:"error"`
	Loading  bool    `json:"loading"`
}

// Begin replaces any previous outcome with a pending submission.
func (s *InsightState) Begin(query string) {
	s.Query = query
	s.Response = nil
	s.Error = nil
	s.Loading = true
}

func (s *InsightState) Resolve(text string) {
	s.Loading = false
	s.Error = nil
	s.Response = &text
}

func (s *InsightState) Fail() {
	msg := InsightFailureMessage
	s.Loading = false
	s.Response = nil
	s.Error = &msg
}
