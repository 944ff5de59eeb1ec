package models

// InquiryTaskPayload is queued when inquiries are dispatched by the worker.
type InquiryTaskPayload struct {
	SessionID string         `json:"sessionId"`
	Token     string         `json:"token"`
	Request   InquiryRequest `json:"request"`
}
