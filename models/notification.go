package models

import "time"

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeFailure NoticeKind = "failure"
)

const (
	InquirySentMessage   = "Quotation request sent successfully! We will contact you shortly."
	InquiryFailedMessage = "Failed to send request. Please try again."
)

// Notice is a one-shot, non-blocking message shown to the customer.
type Notice struct {
	Kind      NoticeKind `json:"kind"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"createdAt"`
}
