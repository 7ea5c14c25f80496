// File: pirouette/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pirouette/config"
	"pirouette/cron"
	"pirouette/database"
	accountRepo "pirouette/database/repository/account"
	bookingRepoPkg "pirouette/database/repository/booking"
	eventRepoPkg "pirouette/database/repository/event"
	ruleRepoPkg "pirouette/database/repository/pricingrule"
	serviceRepoPkg "pirouette/database/repository/service"
	"pirouette/handlers"
	"pirouette/middleware"
	"pirouette/routes"
	"pirouette/services/booking"
	"pirouette/services/dancer"
	"pirouette/services/pricing"
	"pirouette/services/storage"
	"pirouette/services/stylist"
	"pirouette/services/tasks"
	"pirouette/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	storageService, err := storage.NewCloudinaryStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	dancerRepo := accountRepo.NewMongoDancerRepo()
	stylistRepo := accountRepo.NewMongoStylistRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	ruleRepo := ruleRepoPkg.NewMongoPricingRuleRepo()
	eventRepo := eventRepoPkg.NewMongoEventRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	dancerService := &dancer.DefaultDancerService{
		Repo: dancerRepo,
	}
	stylistService := &stylist.DefaultStylistService{
		Repo:     stylistRepo,
		Services: serviceRepo,
		Rules:    ruleRepo,
	}

	pricingEngine := &pricing.DefaultPricingEngine{
		Services:  serviceRepo,
		Stylists:  stylistRepo,
		Events:    eventRepo,
		Rules:     ruleRepo,
		FeeRate:   config.AppConfig.PlatformFeeRate,
		FloorRate: config.AppConfig.PriceFloorRate,
	}

	paymentHandler := booking.NewStripePaymentHandler(logger)
	reminderScheduler := tasks.NewAsynqReminderScheduler()
	bookingService := &booking.DefaultBookingService{
		PricingEngine: pricingEngine,
		Services:      serviceRepo,
		Stylists:      stylistRepo,
		Dancers:       dancerRepo,
		Bookings:      bookingRepo,
		Payments:      paymentHandler,
		Reminders:     reminderScheduler,
	}

	dancerHandler := handlers.NewDancerHandler(dancerService, logger)
	stylistHandler := handlers.NewStylistHandler(stylistService, logger)
	pricingHandler := handlers.NewPricingHandler(pricingEngine, utils.GetCacheClient(), logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	eventHandler := handlers.NewEventHandler(eventRepo, logger)
	storageHandler := handlers.NewStorageHandler(storageService, stylistService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Dancer endpoints.
		RegisterDancerHandler:      dancerHandler.RegisterHandler,
		AuthenticateDancerHandler:  dancerHandler.LoginHandler,
		GetDancerProfileHandler:    dancerHandler.GetProfileHandler,
		UpdateDancerProfileHandler: dancerHandler.UpdateProfileHandler,

		// Stylist endpoints.
		RegisterStylistHandler:      stylistHandler.RegisterHandler,
		AuthenticateStylistHandler:  stylistHandler.LoginHandler,
		GetStylistProfileHandler:    stylistHandler.GetProfileHandler,
		UpdateStylistProfileHandler: stylistHandler.UpdateProfileHandler,
		StartOnboardingHandler:      stylistHandler.StartOnboardingHandler,

		// Service catalog endpoints.
		CreateServiceHandler: stylistHandler.CreateServiceHandler,
		ListServicesHandler:  stylistHandler.ListServicesHandler,
		UpdateServiceHandler: stylistHandler.UpdateServiceHandler,
		DeleteServiceHandler: stylistHandler.DeleteServiceHandler,

		// Pricing rule endpoints.
		CreateRuleHandler: stylistHandler.CreateRuleHandler,
		ListRulesHandler:  stylistHandler.ListRulesHandler,
		UpdateRuleHandler: stylistHandler.UpdateRuleHandler,
		DeleteRuleHandler: stylistHandler.DeleteRuleHandler,

		// Quote endpoint.
		QuoteHandler: pricingHandler.QuoteHandler,

		// Booking endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		GetBookingHandler:          bookingHandler.GetBookingHandler,
		ListMyBookingsHandler:      bookingHandler.ListMyBookingsHandler,
		ListStylistBookingsHandler: bookingHandler.ListStylistBookingsHandler,
		CancelBookingHandler:       bookingHandler.CancelBookingHandler,

		// Event endpoints.
		ListUpcomingEventsHandler: eventHandler.ListUpcomingEventsHandler,
		GetEventHandler:           eventHandler.GetEventHandler,
		CreateEventHandler:        eventHandler.CreateEventHandler,

		// Image storage endpoints.
		UploadPortfolioImageHandler: storageHandler.UploadPortfolioImageHandler,
		DeletePortfolioImageHandler: storageHandler.DeletePortfolioImageHandler,
		UploadServiceImageHandler:   storageHandler.UploadServiceImageHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder worker.
	cron.InitReminderWorker()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
