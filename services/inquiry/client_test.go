package inquiry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"decorquote/models"

	"github.com/stretchr/testify/require"
)

func TestClient_SendInquiry(t *testing.T) {
	var got models.InquiryRequest
	var apiKey, contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		apiKey = r.Header.Get("X-API-Key")
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", 5*time.Second)
	req := models.InquiryRequest{Name: "Asha", Email: "555-1234", ContactPhone: "555-1234", Type: models.InquiryTypeBooking, Message: "hi"}
	require.NoError(t, c.SendInquiry(context.Background(), req))

	require.Equal(t, "secret", apiKey)
	require.Equal(t, "application/json", contentType)
	require.Equal(t, req, got)
}

func TestClient_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "mailbox full", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "", time.Second).SendInquiry(context.Background(), models.InquiryRequest{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=503")
	require.Contains(t, err.Error(), "mailbox full")
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	err := NewClient(srv.URL, "", 50*time.Millisecond).SendInquiry(context.Background(), models.InquiryRequest{})
	require.Error(t, err)
}

func TestClient_MissingURL(t *testing.T) {
	err := NewClient("", "", time.Second).SendInquiry(context.Background(), models.InquiryRequest{})
	require.Error(t, err)
}
