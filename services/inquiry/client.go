package inquiry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"decorquote/models"
)

// Client posts inquiries as JSON to the inquiry API.
type Client struct {
	HTTPClient *http.Client
	URL        string
	APIKey     string
}

// NewClient creates an inquiry API client with the given request timeout.
func NewClient(url, apiKey string, timeout time.Duration) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		URL:        url,
		APIKey:     apiKey,
	}
}

// SendInquiry posts req. Any transport failure or non-2xx status is an error.
func (c *Client) SendInquiry(ctx context.Context, req models.InquiryRequest) error {
	if c.URL == "" {
		return fmt.Errorf("inquiry api url is not configured")
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(req); err != nil {
		return fmt.Errorf("encode inquiry: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, &buf)
	if err != nil {
		return fmt.Errorf("build inquiry request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpReq.Header.Set("X-API-Key", c.APIKey)
	}

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("send inquiry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if len(b) > 0 {
			return fmt.Errorf("inquiry api error: status=%d body=%s", resp.StatusCode, string(b))
		}
		return fmt.Errorf("inquiry api error: status=%d", resp.StatusCode)
	}
	return nil
}
