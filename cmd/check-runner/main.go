package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

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
)

// check-runner executes exactly one batch of due checks and exits. It is
// meant to be driven by an external scheduler such as cron or a Kubernetes
// CronJob, so it runs without the cache, search cluster and broker.
func main() {
	targetID := flag.String("target", "", "run checks for a single target id instead of all due targets")
	envPath := flag.String("env", "./.env", "path to the env file")
	flag.Parse()

	appConfig, err := config.LoadBatchConfig(*envPath)
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	zapLogger := logger.NewServiceLogger("check-runner", appConfig.Server.LogLevel, nil)
	defer zapLogger.Sync()

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

	targetRepo := repository.NewTargetRepository(db)
	historyRepo := repository.NewCheckResultRepository(db)
	incidentRepo := repository.NewIncidentRepository(db)
	expiryRepo := repository.NewExpiryWatchRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	runRepo := repository.NewRunRepository(db)

	mailSender := mail.NewMailSender(appConfig.Mail.Email, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)

	monitorProber := prober.NewProber(appConfig.Monitor.UserAgent, zapLogger)
	monitorTracker := tracker.NewTracker(targetRepo, incidentRepo, zapLogger)
	monitorNotifier := notifier.NewNotifier(mailSender, notificationRepo, zapLogger,
		appConfig.Mail.AdminMailAddress, appConfig.Monitor.CertExpiryWarnDays, appConfig.Monitor.RegExpiryWarnDays)

	monitorService := service.NewMonitorService(targetRepo, historyRepo, incidentRepo, expiryRepo, runRepo, nil,
		monitorProber, monitorTracker, monitorNotifier, events.NewNopPublisher(), mailSender, zapLogger, appConfig.Monitor.WorkerCount)

	retention := time.Duration(appConfig.Monitor.RetentionDays) * 24 * time.Hour
	monitorScheduler := scheduler.NewScheduler(monitorService, historyRepo, runRepo, appConfig.Monitor.TickInterval, retention, zapLogger)

	summary, err := monitorScheduler.RunBatch(context.Background(), *targetID)
	if err != nil {
		zapLogger.Error("batch run failed", zap.Error(err))
		os.Exit(1)
	}
	zapLogger.Info("batch run finished",
		zap.Int("checked", summary.Checked),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed))
}
