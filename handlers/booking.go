package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"decorquote/models"
	"decorquote/services/booking"
	"decorquote/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking modal endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingSessionService
	Logger     *zap.Logger
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Logger: logger}
}

type openSessionRequest struct {
	Selection models.Selection `json:"selection"`
	Addons    []models.AddOn   `json:"addons"`
}

// InitiateSession handles POST /api/booking/session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var req openSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	session, err := h.BookingSvc.OpenSession(c.Request.Context(), req.Selection, req.Addons)
	if err != nil {
		h.fail(c, "InitiateSession", err)
		return
	}
	c.JSON(http.StatusCreated, booking.BuildSessionView(session))
}

// GetSession handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSession(c *gin.Context) {
	view, err := h.BookingSvc.GetSessionView(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.fail(c, "GetSession", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.BookingSvc.CloseSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.fail(c, "CancelSession", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetAddonQuantity handles PUT /api/booking/session/:sessionID/addons/:addonID.
func (h *BookingHandler) SetAddonQuantity(c *gin.Context) {
	addonID, ok := h.addonID(c)
	if !ok {
		return
	}
	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	session, err := h.BookingSvc.SetAddonQuantity(c.Request.Context(), c.Param("sessionID"), addonID, *body.Quantity)
	h.respond(c, "SetAddonQuantity", session, err)
}

// ToggleAddon handles POST /api/booking/session/:sessionID/addons/:addonID/toggle.
func (h *BookingHandler) ToggleAddon(c *gin.Context) {
	h.addonOp(c, "ToggleAddon", h.BookingSvc.ToggleAddon)
}

// IncrementAddon handles POST /api/booking/session/:sessionID/addons/:addonID/increment.
func (h *BookingHandler) IncrementAddon(c *gin.Context) {
	h.addonOp(c, "IncrementAddon", h.BookingSvc.IncrementAddon)
}

// DecrementAddon handles POST /api/booking/session/:sessionID/addons/:addonID/decrement.
func (h *BookingHandler) DecrementAddon(c *gin.Context) {
	h.addonOp(c, "DecrementAddon", h.BookingSvc.DecrementAddon)
}

// UpdateDetails handles PUT /api/booking/session/:sessionID/details.
func (h *BookingHandler) UpdateDetails(c *gin.Context) {
	var details models.UserDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	session, err := h.BookingSvc.UpdateDetails(c.Request.Context(), c.Param("sessionID"), details)
	h.respond(c, "UpdateDetails", session, err)
}

// Proceed handles POST /api/booking/session/:sessionID/proceed.
func (h *BookingHandler) Proceed(c *gin.Context) {
	session, err := h.BookingSvc.Proceed(c.Request.Context(), c.Param("sessionID"))
	h.respond(c, "Proceed", session, err)
}

// Back handles POST /api/booking/session/:sessionID/back.
func (h *BookingHandler) Back(c *gin.Context) {
	session, err := h.BookingSvc.Back(c.Request.Context(), c.Param("sessionID"))
	h.respond(c, "Back", session, err)
}

// Submit handles POST /api/booking/session/:sessionID/submit.
func (h *BookingHandler) Submit(c *gin.Context) {
	res, err := h.BookingSvc.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		if errors.Is(err, booking.ErrInquiryFailed) && res != nil {
			getLogger(c, h.Logger).Warn("Submit: inquiry failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, res)
			return
		}
		h.fail(c, "Submit", err)
		return
	}
	if res.Queued {
		c.JSON(http.StatusAccepted, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetNotice handles GET /api/booking/session/:sessionID/notice.
// The notice is returned once; later calls get 204.
func (h *BookingHandler) GetNotice(c *gin.Context) {
	notice, err := h.BookingSvc.PopNotice(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.fail(c, "GetNotice", err)
		return
	}
	if notice == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, notice)
}

// GetCatalog handles GET /api/booking/catalog.
func (h *BookingHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"addons": h.BookingSvc.DefaultCatalog()})
}

func (h *BookingHandler) addonOp(c *gin.Context, name string, op func(ctx context.Context, sessionID string, addonID int) (*models.BookingSession, error)) {
	addonID, ok := h.addonID(c)
	if !ok {
		return
	}
	session, err := op(c.Request.Context(), c.Param("sessionID"), addonID)
	h.respond(c, name, session, err)
}

func (h *BookingHandler) addonID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("addonID"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid add-on id", err.Error())
		return 0, false
	}
	return id, true
}

func (h *BookingHandler) respond(c *gin.Context, op string, session *models.BookingSession, err error) {
	if err != nil {
		h.fail(c, op, err)
		return
	}
	c.JSON(http.StatusOK, booking.BuildSessionView(session))
}

func (h *BookingHandler) fail(c *gin.Context, op string, err error) {
	status := statusFor(err)
	var be *booking.BookingError
	if errors.As(err, &be) {
		getLogger(c, h.Logger).Info(op+": rejected", zap.String("code", be.Code), zap.String("reason", be.Message))
		c.JSON(status, utils.ErrorResponse{Message: be.Message, Code: be.Code})
		return
	}
	getLogger(c, h.Logger).Error(op+": failed", zap.Error(err))
	utils.JSONError(c, status, "internal error", err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrInvalidTransition), errors.Is(err, booking.ErrSubmissionInFlight):
		return http.StatusConflict
	case errors.Is(err, booking.ErrAddonNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrInquiryFailed):
		return http.StatusBadGateway
	case errors.Is(err, booking.ErrInvalidSelection),
		errors.Is(err, booking.ErrAddonNotEligible),
		errors.Is(err, booking.ErrWrongAddonType),
		errors.Is(err, booking.ErrInvalidQuantity),
		errors.Is(err, booking.ErrDetailsIncomplete):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
