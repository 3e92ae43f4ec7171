package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medicore/config"
	"medicore/cron"
	"medicore/database"
	accountRepoPkg "medicore/database/repository/account"
	availabilityRepoPkg "medicore/database/repository/availability"
	bookingRepoPkg "medicore/database/repository/booking"
	messageRepoPkg "medicore/database/repository/message"
	reportRepoPkg "medicore/database/repository/report"
	"medicore/handlers"
	"medicore/models"
	"medicore/routes"
	"medicore/services/account"
	"medicore/services/message"
	"medicore/services/report"
	"medicore/services/scheduling"
	"medicore/services/storage"
	"medicore/services/tasks"
	"medicore/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	var storageSvc storage.StorageService
	if cld, err := storage.NewCloudinaryStorage(); err != nil {
		logger.Sugar().Warnf("main: object storage unavailable, uploads disabled: %v", err)
	} else {
		storageSvc = cld
	}

	// Repositories.
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	patientRepo := accountRepoPkg.NewMongoAccountRepo("users")
	doctorRepo := accountRepoPkg.NewMongoAccountRepo("doctors")
	adminRepo := accountRepoPkg.NewMongoAccountRepo("admins")
	messageRepo := messageRepoPkg.NewMongoMessageRepo()
	reportRepo := reportRepoPkg.NewMongoReportRepo()

	// Reminder queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()
	reminderQueueRedis := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderQueueRedis.Close()
	reminderScheduler := tasks.NewAsynqReminderScheduler(asynqClient)
	cron.InitReminderWorker(bookingRepo)

	// Services.
	schedulingService := &scheduling.DefaultSchedulingService{
		AvailabilityRepo: availabilityRepo,
		BookingRepo:      bookingRepo,
		DoctorRepo:       doctorRepo,
		PatientRepo:      patientRepo,
		Reminders:        reminderScheduler,
	}
	sessionCache := account.NewRedisSessionCache(utils.GetAuthCacheClient())
	patientService := &account.DefaultAccountService{Repo: patientRepo, Role: models.RolePatient, Storage: storageSvc, Sessions: sessionCache}
	doctorService := &account.DefaultAccountService{Repo: doctorRepo, Role: models.RoleDoctor, Storage: storageSvc, Sessions: sessionCache}
	adminService := &account.DefaultAccountService{Repo: adminRepo, Role: models.RoleAdmin, Storage: storageSvc, Sessions: sessionCache}
	messageService := &message.DefaultMessageService{Repo: messageRepo}
	reportService := &report.DefaultReportService{
		Repo:       reportRepo,
		Storage:    storageSvc,
		Summarizer: report.NewSummarizer(),
	}

	// Router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	handlerBundle := handlers.NewHandlerBundle(
		schedulingService,
		patientService, doctorService, adminService,
		messageService,
		reportService,
	)
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(database.MongoClient, utils.GetAuthCacheClient(), reminderQueueRedis)

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
