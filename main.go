// File: emviapp/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emviapp/config"
	"emviapp/cron"
	"emviapp/database"
	availabilityRepo "emviapp/database/repository/availability"
	bookingRepo "emviapp/database/repository/booking"
	catalogRepo "emviapp/database/repository/catalog"
	eventsRepo "emviapp/database/repository/events"
	"emviapp/handlers"
	"emviapp/middleware"
	"emviapp/routes"
	"emviapp/services/analytics"
	"emviapp/services/booking"
	"emviapp/services/notification"
	"emviapp/services/relay"
	"emviapp/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAnalyticsCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bkRepo := bookingRepo.NewMongoBookingRepo()
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	svcRepo := catalogRepo.NewMongoServiceCatalogRepo(utils.GetCacheClient())
	evRepo := eventsRepo.NewMongoEventRepo()

	// services.
	queueOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
	notifier := notification.NewAsynqNotificationService(queueOpts, logger)
	recorder := analytics.NewRecorder(utils.GetAnalyticsClient())
	paymentProvider := booking.NewStripePaymentProvider(logger)

	engine := &booking.DefaultBookingEngine{
		Repo:             bkRepo,
		AvailabilityRepo: availRepo,
		Catalog:          svcRepo,
		Events:           evRepo,
		Payments:         paymentProvider,
		Notifier:         notifier,
		Analytics:        recorder,
		Currency:         config.AppConfig.Currency,
		Logger:           logger,
	}

	availabilityService := &booking.DefaultAvailabilityService{
		Repo:   availRepo,
		Logger: logger,
	}

	// Realtime relay over the bookings and audit-log change feeds. Explicit
	// start/stop; nothing subscribes until Start runs.
	eventRelay := relay.NewRelay(
		database.DB().Collection("bookings"),
		database.DB().Collection("booking_events"),
		logger,
	)
	relayCtx, relayCancel := context.WithCancel(context.Background())
	eventRelay.Start(relayCtx)

	// Background workers.
	cron.InitNotifyWorker()
	expirySweep := cron.InitExpirySweep(engine, bkRepo)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking:      handlers.NewBookingHandler(engine, logger),
		Availability: handlers.NewAvailabilityHandler(availabilityService, logger),
		Webhook:      handlers.NewStripeWebhookHandler(engine, logger),
		EventStream:  handlers.NewEventStreamHandler(eventRelay, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	relayCancel()
	eventRelay.Stop()
	expirySweep.Stop()
	if err := notifier.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close notification client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
