package booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	sessionRepo "decorquote/database/repository/session"
	"decorquote/models"
	"decorquote/services/inquiry"
	"decorquote/services/notification"

	"github.com/stretchr/testify/require"
)

func goldSelection() models.Selection {
	return models.Selection{
		Decoration: models.Service{Title: "Birthday Decoration"},
		Plan:       models.Plan{Name: "Gold", Price: "$500", Features: []string{"Balloon Arch"}},
		Mode:       models.ModeIndoor,
	}
}

func testCatalog() []models.AddOn {
	return []models.AddOn{
		{ID: 1, Name: "Balloon Arch", Price: "$150", Type: models.AddOnCheckbox},
		{ID: 2, Name: "Fairy Lights", Price: "$25", Type: models.AddOnQuantity},
		{ID: 3, Name: "Photo Booth", Price: "$200", Type: models.AddOnCheckbox},
	}
}

// recordingSender captures every inquiry and fails while err is set.
type recordingSender struct {
	mu   sync.Mutex
	reqs []models.InquiryRequest
	err  error
}

func (r *recordingSender) SendInquiry(_ context.Context, req models.InquiryRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reqs = append(r.reqs, req)
	return r.err
}

func (r *recordingSender) last(t *testing.T) models.InquiryRequest {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.reqs, "no inquiry sent")
	return r.reqs[len(r.reqs)-1]
}

type fixture struct {
	svc    *DefaultBookingSessionService
	repo   *sessionRepo.InMemorySessionRepo
	sender *recordingSender
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := sessionRepo.NewInMemorySessionRepo(time.Hour)
	notices, err := notification.NewSessionNoticeService(repo, time.Minute)
	require.NoError(t, err)

	sender := &recordingSender{}
	svc := NewDefaultBookingSessionService(repo, sender, notices, nil)
	svc.DefaultAddons = testCatalog()

	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("session-%d", n)
	}
	return &fixture{svc: svc, repo: repo, sender: sender}
}

func (f *fixture) open(t *testing.T) string {
	t.Helper()
	bs, err := f.svc.OpenSession(context.Background(), goldSelection(), nil)
	require.NoError(t, err)
	return bs.SessionID
}

// toDetails moves an open session to the details step with complete details.
func (f *fixture) toDetails(t *testing.T, id string) {
	t.Helper()
	ctx := context.Background()
	_, err := f.svc.Proceed(ctx, id)
	require.NoError(t, err)
	_, err = f.svc.UpdateDetails(ctx, id, models.UserDetails{Name: "Asha", Phone: "555-1234", Date: "2024-12-01"})
	require.NoError(t, err)
}

var _ inquiry.Sender = (*recordingSender)(nil)
