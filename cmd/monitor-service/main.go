package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"uptime-monitor/internal/monitor/api/handler"
	"uptime-monitor/internal/monitor/api/routes"
	"uptime-monitor/internal/monitor/config"
	"uptime-monitor/internal/monitor/events"
	"uptime-monitor/internal/monitor/model"
	"uptime-monitor/internal/monitor/notifier"
	"uptime-monitor/internal/monitor/prober"
	"uptime-monitor/internal/monitor/repository"
	"uptime-monitor/internal/monitor/scheduler"
	"uptime-monitor/internal/monitor/service"
	"uptime-monitor/internal/monitor/tracker"
	"uptime-monitor/pkg/infra"
	"uptime-monitor/pkg/logger"
	"uptime-monitor/pkg/mail"
	"uptime-monitor/pkg/middleware"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer("./log/monitor-service.log")
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewServiceLogger("monitor-service", appConfig.Server.LogLevel, fileSyncer)
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	// set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	zapLogger.Info("connected to postgres successfully")
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()
	if err = db.AutoMigrate(
		&model.Target{},
		&model.CheckResult{},
		&model.Incident{},
		&model.ExpiryWatch{},
		&model.NotificationRecord{},
		&repository.EngineRun{},
	); err != nil {
		zapLogger.Fatal("failed to migrate schema", zap.Error(err))
	}

	// set up redis
	redisClient, err := infra.NewRedisConnection(infra.RedisConfig{
		Host: appConfig.Redis.Host,
		Port: appConfig.Redis.Port,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	}
	zapLogger.Info("connected to redis successfully")

	// set up elasticsearch
	esClient, err := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
		Addresses: appConfig.Elasticsearch.Addresses,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(err))
	}
	zapLogger.Info("connected to elasticsearch successfully")

	// set up dependencies
	targetRepo := repository.NewCachedTargetRepository(redisClient, repository.NewTargetRepository(db), appConfig.Redis.CacheTTL)
	historyRepo := repository.NewIndexedCheckResultRepository(repository.NewCheckResultRepository(db), esClient, zapLogger)
	incidentRepo := repository.NewIncidentRepository(db)
	expiryRepo := repository.NewExpiryWatchRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	runRepo := repository.NewRunRepository(db)
	reportRepo := repository.NewReportRepository(esClient)

	mailSender := mail.NewMailSender(appConfig.Mail.Email, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)
	publisher := events.NewKafkaPublisher(infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.EventsTopic))

	monitorProber := prober.NewProber(appConfig.Monitor.UserAgent, zapLogger)
	monitorTracker := tracker.NewTracker(targetRepo, incidentRepo, zapLogger)
	monitorNotifier := notifier.NewNotifier(mailSender, notificationRepo, zapLogger,
		appConfig.Mail.AdminMailAddress, appConfig.Monitor.CertExpiryWarnDays, appConfig.Monitor.RegExpiryWarnDays)

	monitorService := service.NewMonitorService(targetRepo, historyRepo, incidentRepo, expiryRepo, runRepo, reportRepo,
		monitorProber, monitorTracker, monitorNotifier, publisher, mailSender, zapLogger, appConfig.Monitor.WorkerCount)
	monitorHandler := handler.NewMonitorHandler(zapLogger, monitorService)

	retention := time.Duration(appConfig.Monitor.RetentionDays) * 24 * time.Hour
	monitorScheduler := scheduler.NewScheduler(monitorService, historyRepo, runRepo, appConfig.Monitor.TickInterval, retention, zapLogger)
	monitorScheduler.Start()

	m := middleware.NewAuthMiddleware()

	// Create cronjob for daily fleet report
	cronJob := cron.New()
	_, err = cronJob.AddFunc("0 0 * * *", func() {
		ctx2, cancel2 := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel2()
		e := monitorService.ReportFleetStatus(ctx2, time.Now().Add(-time.Hour*24), time.Now(), appConfig.Mail.AdminMailAddress)
		if e != nil {
			zapLogger.Error("failed to generate daily report", zap.Error(e))
		}
	})
	if err != nil {
		zapLogger.Fatal("failed to create cron job for daily report", zap.Error(err))
	}
	cronJob.Start()

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.AddMonitorRoutes(r, monitorHandler, m)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	cronJob.Stop()
	monitorScheduler.Stop()
	if err = publisher.Close(); err != nil {
		zapLogger.Error("failed to close event publisher", zap.Error(err))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
