package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"lumibelle/config"
	"lumibelle/cron"
	"lumibelle/database"
	appointmentRepo "lumibelle/database/repository/appointment"
	scheduleRepo "lumibelle/database/repository/schedule"
	staffRepo "lumibelle/database/repository/staff"
	"lumibelle/handlers"
	"lumibelle/middleware"
	"lumibelle/routes"
	"lumibelle/services/booking"
	"lumibelle/services/notification"
	"lumibelle/services/schedule"
	"lumibelle/services/staff"
	"lumibelle/services/tasks"
	"lumibelle/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	schedRepo := scheduleRepo.NewMongoScheduleRepo()
	rosterRepo := staffRepo.NewMongoStaffRepo()
	ledgerRepo := appointmentRepo.NewMongoAppointmentRepo()

	// reminder queue client.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	// services.
	notificationService := &notification.LogDispatcher{}
	bookingService := &booking.DefaultBookingService{
		ScheduleRepo: schedRepo,
		StaffRepo:    rosterRepo,
		ApptRepo:     ledgerRepo,
		Reminders:    &tasks.AsynqReminderScheduler{Client: asynqClient},
		Notifier:     notificationService,
		Cache:        utils.GetCacheClient(),
	}
	scheduleService := &schedule.DefaultScheduleService{Repo: schedRepo}
	staffService := &staff.DefaultStaffService{Repo: rosterRepo}

	// background reminder worker.
	cron.InitReminderWorker(ledgerRepo, notificationService)

	// health monitoring for /health.
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Booking:     handlers.NewBookingHandler(bookingService),
		Schedule:    handlers.NewScheduleHandler(scheduleService),
		Staff:       handlers.NewStaffHandler(staffService),
		Appointment: handlers.NewAppointmentHandler(bookingService, ledgerRepo),
	}
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
