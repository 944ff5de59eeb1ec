package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	sessionRepo "decorquote/database/repository/session"
	"decorquote/handlers"
	"decorquote/models"
	"decorquote/services/booking"
	"decorquote/services/inquiry"
	"decorquote/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type inquiryAPI struct {
	mu       sync.Mutex
	status   int
	received []models.InquiryRequest
}

func (a *inquiryAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req models.InquiryRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	a.mu.Lock()
	defer a.mu.Unlock()
	a.received = append(a.received, req)
	w.WriteHeader(a.status)
}

func (a *inquiryAPI) requests() []models.InquiryRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.InquiryRequest(nil), a.received...)
}

func (a *inquiryAPI) setStatus(code int) {
	a.mu.Lock()
	a.status = code
	a.mu.Unlock()
}

func newTestRouter(t *testing.T) (*gin.Engine, *inquiryAPI) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := &inquiryAPI{status: http.StatusOK}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	repo := sessionRepo.NewInMemorySessionRepo(time.Hour)
	notices, err := notification.NewSessionNoticeService(repo, time.Minute)
	require.NoError(t, err)

	svc := booking.NewDefaultBookingSessionService(repo, inquiry.NewClient(srv.URL, "test-key", 5*time.Second), notices, zap.NewNop())
	svc.DefaultAddons = []models.AddOn{
		{ID: 1, Name: "Balloon Arch", Price: "$150", Type: models.AddOnCheckbox},
		{ID: 2, Name: "Fairy Lights", Price: "$25", Type: models.AddOnQuantity},
	}

	r := gin.New()
	RegisterRoutes(r, handlers.NewBookingBundle(handlers.NewBookingHandler(svc, zap.NewNop())))
	return r, api
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) models.SessionView {
	t.Helper()
	var v models.SessionView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func openSession(t *testing.T, r *gin.Engine) models.SessionView {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/booking/session", gin.H{
		"selection": gin.H{
			"decoration": gin.H{"title": "Birthday Decoration"},
			"plan":       gin.H{"name": "Gold", "price": "$500", "features": []string{"Balloon Arch"}},
			"mode":       "INDOOR",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeView(t, w)
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCatalog(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/api/booking/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Addons []models.AddOn `json:"addons"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Addons, 2)
}

func TestBookingFlow_EndToEnd(t *testing.T) {
	r, api := newTestRouter(t)

	view := openSession(t, r)
	require.Equal(t, models.StepAddons, view.Step)
	require.Len(t, view.AvailableAddons, 1)
	require.Equal(t, "Fairy Lights", view.AvailableAddons[0].Name)
	base := "/api/booking/session/" + view.SessionID

	w := do(t, r, http.MethodPut, base+"/addons/2", gin.H{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, 3, decodeView(t, w).AvailableAddons[0].Quantity)

	w = do(t, r, http.MethodPost, base+"/addons/1/toggle", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, base+"/proceed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view = decodeView(t, w)
	require.Equal(t, models.StepDetails, view.Step)
	require.Equal(t, []models.SummaryLine{
		{Label: "Gold", Price: "$500"},
		{Label: "Fairy Lights x3", Price: "$25"},
	}, view.Summary)

	w = do(t, r, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPut, base+"/details", models.UserDetails{Name: "Asha", Phone: "555-1234", Date: "2024-12-01"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res models.SubmitResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.True(t, res.Closed)

	sent := api.requests()
	require.Len(t, sent, 1)
	require.Equal(t, "555-1234", sent[0].Email)
	require.Contains(t, sent[0].Message, "Add-ons: Fairy Lights (x3)")

	w = do(t, r, http.MethodGet, base+"/notice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var notice models.Notice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notice))
	require.Equal(t, models.InquirySentMessage, notice.Message)

	w = do(t, r, http.MethodGet, base+"/notice", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, base, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingFlow_RejectedSubmission(t *testing.T) {
	r, api := newTestRouter(t)
	api.setStatus(http.StatusInternalServerError)

	view := openSession(t, r)
	base := "/api/booking/session/" + view.SessionID

	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, base+"/proceed", nil).Code)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPut, base+"/details",
		models.UserDetails{Name: "Asha", Phone: "555-1234", Date: "2024-12-01"}).Code)

	w := do(t, r, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
	var res models.SubmitResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.False(t, res.Closed)
	require.Equal(t, models.InquiryFailedMessage, res.Notice.Message)

	w = do(t, r, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	view = decodeView(t, w)
	require.Equal(t, models.StepDetails, view.Step)
	require.Equal(t, "Asha", view.Details.Name)
	require.True(t, view.SubmitEnabled)
}

func TestBookingRoutes_Errors(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/booking/session", gin.H{"selection": gin.H{"plan": gin.H{"name": "Gold"}}})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/booking/session/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	view := openSession(t, r)
	base := "/api/booking/session/" + view.SessionID

	w = do(t, r, http.MethodPost, base+"/back", nil)
	require.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPost, base+"/addons/abc/increment", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, base+"/addons/99/increment", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPut, base+"/addons/2", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, r, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
}
