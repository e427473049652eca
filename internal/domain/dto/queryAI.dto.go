package dto

// QueryAIRequest is the payload sent to the fallback inference service.
type QueryAIRequest struct {
	QueryText      string `json:"query_text"`
	Locale         string `json:"locale"`
	MessageContext string `json:"message_context"`
}

// QueryAIResponse is the structured inference result. Intent uses the same
// tags as the rule-based classifier; zero Amount means no amount was found.
type QueryAIResponse struct {
	Intent      string `json:"intent"`
	Amount      *int   `json:"amount,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Reply       string `json:"reply,omitempty"`
}
