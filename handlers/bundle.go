// File: decorquote/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking session endpoints
	InitiateSession  gin.HandlerFunc
	GetSession       gin.HandlerFunc
	CancelSession    gin.HandlerFunc
	SetAddonQuantity gin.HandlerFunc
	ToggleAddon      gin.HandlerFunc
	IncrementAddon   gin.HandlerFunc
	DecrementAddon   gin.HandlerFunc
	UpdateDetails    gin.HandlerFunc
	Proceed          gin.HandlerFunc
	Back             gin.HandlerFunc
	Submit           gin.HandlerFunc
	GetNotice        gin.HandlerFunc

	// Catalog endpoints
	GetCatalog gin.HandlerFunc

	// Health
	Health gin.HandlerFunc
}

// NewBookingBundle fills the booking entries of a bundle from h.
func NewBookingBundle(h *BookingHandler) *HandlerBundle {
	return &HandlerBundle{
		InitiateSession:  h.InitiateSession,
		GetSession:       h.GetSession,
		CancelSession:    h.CancelSession,
		SetAddonQuantity: h.SetAddonQuantity,
		ToggleAddon:      h.ToggleAddon,
		IncrementAddon:   h.IncrementAddon,
		DecrementAddon:   h.DecrementAddon,
		UpdateDetails:    h.UpdateDetails,
		Proceed:          h.Proceed,
		Back:             h.Back,
		Submit:           h.Submit,
		GetNotice:        h.GetNotice,
		GetCatalog:       h.GetCatalog,
	}
}
