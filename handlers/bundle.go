// File: drmike/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Page endpoints
	LandingPageHandler       gin.HandlerFunc
	SubmitAppointmentHandler gin.HandlerFunc

	// Draft API endpoints
	GetDraftHandler    gin.HandlerFunc
	UpdateDraftHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires the landing handler's endpoints.
func NewHandlerBundle(landing *LandingHandler) *HandlerBundle {
	return &HandlerBundle{
		LandingPageHandler:       landing.LandingPage,
		SubmitAppointmentHandler: landing.SubmitAppointment,
		GetDraftHandler:          landing.GetDraft,
		UpdateDraftHandler:       landing.UpdateDraft,
		HealthHandler:            Health,
	}
}
