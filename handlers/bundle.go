package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates all route handlers used during route registration.
type HandlerBundle struct {
	// Dancer endpoints
	RegisterDancerHandler      gin.HandlerFunc
	AuthenticateDancerHandler  gin.HandlerFunc
	GetDancerProfileHandler    gin.HandlerFunc
	UpdateDancerProfileHandler gin.HandlerFunc

	// Stylist endpoints
	RegisterStylistHandler      gin.HandlerFunc
	AuthenticateStylistHandler  gin.HandlerFunc
	GetStylistProfileHandler    gin.HandlerFunc
	UpdateStylistProfileHandler gin.HandlerFunc
	StartOnboardingHandler      gin.HandlerFunc

	// Service catalog endpoints
	CreateServiceHandler gin.HandlerFunc
	ListServicesHandler  gin.HandlerFunc
	UpdateServiceHandler gin.HandlerFunc
	DeleteServiceHandler gin.HandlerFunc

	// Pricing rule endpoints
	CreateRuleHandler gin.HandlerFunc
	ListRulesHandler  gin.HandlerFunc
	UpdateRuleHandler gin.HandlerFunc
	DeleteRuleHandler gin.HandlerFunc

	// Quote endpoint
	QuoteHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	GetBookingHandler          gin.HandlerFunc
	ListMyBookingsHandler      gin.HandlerFunc
	ListStylistBookingsHandler gin.HandlerFunc
	CancelBookingHandler       gin.HandlerFunc

	// Event endpoints
	ListUpcomingEventsHandler gin.HandlerFunc
	GetEventHandler           gin.HandlerFunc
	CreateEventHandler        gin.HandlerFunc

	// Image storage endpoints
	UploadPortfolioImageHandler gin.HandlerFunc
	DeletePortfolioImageHandler gin.HandlerFunc
	UploadServiceImageHandler   gin.HandlerFunc
}
