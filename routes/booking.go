package routes

import (
	"decorquote/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints of the booking modal.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.GET("/catalog", hb.GetCatalog)

		booking.POST("/session", hb.InitiateSession)           // modal opens
		booking.GET("/session/:sessionID", hb.GetSession)      // current panel
		booking.DELETE("/session/:sessionID", hb.CancelSession) // modal closes

		// Add-ons step
		booking.PUT("/session/:sessionID/addons/:addonID", hb.SetAddonQuantity)
		booking.POST("/session/:sessionID/addons/:addonID/toggle", hb.ToggleAddon)
		booking.POST("/session/:sessionID/addons/:addonID/increment", hb.IncrementAddon)
		booking.POST("/session/:sessionID/addons/:addonID/decrement", hb.DecrementAddon)
		booking.POST("/session/:sessionID/proceed", hb.Proceed)

		// Details step
		booking.PUT("/session/:sessionID/details", hb.UpdateDetails)
		booking.POST("/session/:sessionID/back", hb.Back)
		booking.POST("/session/:sessionID/submit", hb.Submit)

		booking.GET("/session/:sessionID/notice", hb.GetNotice)
	}
}
