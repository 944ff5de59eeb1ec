package inquiry

import (
	"context"

	"decorquote/models"
)

// Sender delivers an inquiry to whoever handles booking requests.
// Any returned error means the inquiry was not accepted.
type Sender interface {
	SendInquiry(ctx context.Context, req models.InquiryRequest) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, req models.InquiryRequest) error

func (f SenderFunc) SendInquiry(ctx context.Context, req models.InquiryRequest) error {
	return f(ctx, req)
}
