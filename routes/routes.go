package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pirouette/handlers"
	"pirouette/middleware"
)

// RegisterDancerRoutes registers dancer account endpoints.
func RegisterDancerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dancers")
	{
		api.POST("/register", hb.RegisterDancerHandler)
		api.POST("/login", hb.AuthenticateDancerHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthDancerMiddleware())
		api.GET("/me", hb.GetDancerProfileHandler)
		api.PATCH("/me", hb.UpdateDancerProfileHandler)
	}
}

// RegisterStylistRoutes registers stylist account, catalog, pricing rule and
// portfolio endpoints.
func RegisterStylistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/stylists")
	{
		api.POST("/register", hb.RegisterStylistHandler)
		api.POST("/login", hb.AuthenticateStylistHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthStylistMiddleware())
		protected.GET("/me", hb.GetStylistProfileHandler)
		protected.PATCH("/me", hb.UpdateStylistProfileHandler)
		protected.POST("/me/onboarding", hb.StartOnboardingHandler)
		protected.GET("/me/bookings", hb.ListStylistBookingsHandler)

		// Service catalog.
		protected.POST("/services", hb.CreateServiceHandler)
		protected.GET("/services", hb.ListServicesHandler)
		protected.PATCH("/services/:id", hb.UpdateServiceHandler)
		protected.DELETE("/services/:id", hb.DeleteServiceHandler)

		// Pricing rules per service.
		protected.POST("/services/:id/rules", hb.CreateRuleHandler)
		protected.GET("/services/:id/rules", hb.ListRulesHandler)
		protected.PATCH("/services/:id/rules/:ruleId", hb.UpdateRuleHandler)
		protected.DELETE("/services/:id/rules/:ruleId", hb.DeleteRuleHandler)

		// Portfolio and catalog images.
		protected.POST("/me/portfolio/images", hb.UploadPortfolioImageHandler)
		protected.DELETE("/me/portfolio/images", hb.DeletePortfolioImageHandler)
		protected.POST("/services/:id/images", hb.UploadServiceImageHandler)
	}
}

// RegisterPricingRoutes registers the quote preview endpoint. Quotes are
// read-only so any signed-in account may request one.
func RegisterPricingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pricing")
	{
		api.Use(middleware.JWTAuthAnyMiddleware())
		api.POST("/quote", hb.QuoteHandler)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		// Visible to the booking's dancer or stylist.
		api.GET("/:id", middleware.JWTAuthAnyMiddleware(), hb.GetBookingHandler)

		dancer := api.Group("")
		dancer.Use(middleware.JWTAuthDancerMiddleware())
		dancer.POST("", hb.CreateBookingHandler)
		dancer.GET("", hb.ListMyBookingsHandler)
		dancer.DELETE("/:id", hb.CancelBookingHandler)
	}
}

// RegisterEventRoutes registers competition event endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/events")
	{
		api.GET("", hb.ListUpcomingEventsHandler)
		api.GET("/:id", hb.GetEventHandler)

		// Event registration is restricted to signed-in stylists until an
		// organizer role exists.
		api.POST("", middleware.JWTAuthStylistMiddleware(), hb.CreateEventHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Pirouette"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDancerRoutes(r, hb)
	RegisterStylistRoutes(r, hb)
	RegisterPricingRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterHealthRoute(r)
}
