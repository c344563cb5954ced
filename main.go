package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lawnly/config"
	"lawnly/cron"
	"lawnly/database"
	appointmentRepoPkg "lawnly/database/repository/appointment"
	catalogRepoPkg "lawnly/database/repository/catalog"
	crewRepoPkg "lawnly/database/repository/crew"
	propertyRepoPkg "lawnly/database/repository/property"
	userRepoPkg "lawnly/database/repository/user"
	"lawnly/handlers"
	"lawnly/routes"
	"lawnly/services/appointment"
	"lawnly/services/booking"
	"lawnly/services/catalog"
	"lawnly/services/crew"
	"lawnly/services/pricing"
	"lawnly/services/property"
	"lawnly/services/user"
	"lawnly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	propertyRepo := propertyRepoPkg.NewMongoPropertyRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	crewRepo := crewRepoPkg.NewMongoCrewRepo()

	// services.
	pricingService := &pricing.DefaultService{Catalog: catalogRepo}
	userService := &user.DefaultService{Users: userRepo}
	catalogService := &catalog.DefaultService{Catalog: catalogRepo}
	propertyService := &property.DefaultService{Properties: propertyRepo}
	crewService := &crew.DefaultService{Crew: crewRepo}
	appointmentService := &appointment.DefaultService{
		Appointments: appointmentRepo,
		Users:        userRepo,
		Catalog:      catalogRepo,
		Crew:         crewRepo,
	}

	draftRepo := booking.NewRedisDraftRepository(utils.GetDraftCacheClient())
	sessionService := &booking.DefaultSessionService{
		Cache:      utils.GetCacheClient(),
		Drafts:     draftRepo,
		Pricing:    pricingService,
		Properties: propertyRepo,
		TTL:        time.Duration(config.AppConfig.BookingSessionTTLMinutes) * time.Minute,
	}

	reminderScheduler := cron.NewAsynqReminderScheduler()
	submitter := &booking.DefaultSubmitter{
		Properties:   propertyRepo,
		Appointments: appointmentRepo,
		Pricing:      pricingService,
		Drafts:       draftRepo,
		Reminders:    reminderScheduler,
	}

	cron.InitReminderWorker(&cron.LogNotifier{Users: userRepo})
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetDraftCacheClient()}, database.MongoClient)

	handlerBundle := &handlers.HandlerBundle{
		UserRepo:     userRepo,
		Users:        userService,
		Catalog:      catalogService,
		Pricing:      pricingService,
		Sessions:     sessionService,
		Submitter:    submitter,
		Properties:   propertyService,
		Appointments: appointmentService,
		Crew:         crewService,
	}

	routes.RegisterRoutes(router, handlerBundle)

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
