package main

import (
	"VCS_Status_Dashboard/internal/dashboard/aggregate"
	"VCS_Status_Dashboard/internal/dashboard/alert"
	"VCS_Status_Dashboard/internal/dashboard/api/handler"
	"VCS_Status_Dashboard/internal/dashboard/api/routes"
	"VCS_Status_Dashboard/internal/dashboard/config"
	"VCS_Status_Dashboard/internal/dashboard/consumer"
	"VCS_Status_Dashboard/internal/dashboard/datetime"
	"VCS_Status_Dashboard/internal/dashboard/feed"
	"VCS_Status_Dashboard/internal/dashboard/fetcher"
	"VCS_Status_Dashboard/internal/dashboard/poller"
	"VCS_Status_Dashboard/internal/dashboard/publisher"
	"VCS_Status_Dashboard/internal/dashboard/registry"
	"VCS_Status_Dashboard/internal/dashboard/repository"
	"VCS_Status_Dashboard/internal/dashboard/service"
	"VCS_Status_Dashboard/pkg/infra"
	"VCS_Status_Dashboard/pkg/logger"
	"VCS_Status_Dashboard/pkg/mail"
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
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	logFile := appConfig.Server.LogFile
	if logFile == "" {
		logFile = "./log/dashboard.log"
	}
	fileSyncer, err := logger.NewReopenableWriteSyncer(logFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "dashboard"))
	defer zapLogger.Sync()
	stopReload := logger.ReloadOnSignal(fileSyncer, zapLogger, syscall.SIGHUP)
	defer stopReload()

	// datasources and startup parameters
	dsRegistry := registry.NewRegistry(appConfig.Feed.Datasources)
	if len(appConfig.Startup.InitialDatasources) > 0 {
		if unknown := dsRegistry.ApplyEnabledSet(appConfig.Startup.InitialDatasources); len(unknown) > 0 {
			zapLogger.Warn("unknown datasources in INITIAL_DATASOURCES", zap.Strings("datasources", unknown))
		}
	}
	location, err := appConfig.Feed.Location()
	if err != nil {
		zapLogger.Fatal("invalid feed time zone", zap.Error(err))
	}
	store := aggregate.NewStore(dsRegistry, aggregate.Options{
		Ratings:            appConfig.Feed.Ratings(),
		IgnoreFolderPrefix: appConfig.Feed.IgnoreFolderPrefix,
	})

	// mail
	var mailSender mail.Sender
	if appConfig.Mail.Enabled() {
		mailSender = mail.NewSender(mail.Config{
			From:     appConfig.Mail.Email,
			Password: appConfig.Mail.Password,
			Host:     appConfig.Mail.Host,
			Port:     appConfig.Mail.Port,
		})
	}

	// alert sinks
	var sinks []alert.Sink
	var eventPublisher publisher.Publisher
	if appConfig.Kafka.Enabled() {
		eventPublisher = publisher.NewPublisher(infra.NewKafkaWriter(infra.KafkaConfig{
			Brokers: appConfig.Kafka.Brokers,
			Topic:   appConfig.Kafka.EventTopic,
		}))
		defer eventPublisher.Close()
		sinks = append(sinks, eventPublisher)
		zapLogger.Info("publishing dashboard events to kafka", zap.String("topic", appConfig.Kafka.EventTopic))
	}
	if mailSender != nil && len(appConfig.Mail.AlertRecipients) > 0 {
		sinks = append(sinks, alert.NewMailSink(mailSender, appConfig.Mail.AlertRecipients))
	}
	alerts := alert.NewBoard(zapLogger, appConfig.Feed.SinkTimeout, sinks...)

	// feed client
	cacheMode, err := fetcher.ParseCacheMode(appConfig.Fetch.CacheMode)
	if err != nil {
		zapLogger.Fatal("invalid fetch cache mode", zap.Error(err))
	}
	credentials, err := fetcher.ParseCredentialsMode(appConfig.Fetch.Credentials)
	if err != nil {
		zapLogger.Fatal("invalid fetch credentials mode", zap.Error(err))
	}
	feedClient, err := fetcher.NewFeedClient(fetcher.Options{
		BaseURL:        appConfig.Fetch.BaseURL,
		CacheMode:      cacheMode,
		Credentials:    credentials,
		Username:       appConfig.Fetch.Username,
		Password:       appConfig.Fetch.Password,
		RequestTimeout: appConfig.Fetch.RequestTimeout,
		MaxRetries:     appConfig.Fetch.MaxRetries,
		InitialBackoff: appConfig.Fetch.InitialBackoff,
	})
	if err != nil {
		zapLogger.Fatal("failed to create feed client", zap.Error(err))
	}
	if appConfig.Redis.Enabled() {
		redisClient, e := infra.NewRedisConnection(infra.RedisConfig{
			Host:     appConfig.Redis.Host,
			Port:     appConfig.Redis.Port,
			Password: appConfig.Redis.Password,
			DB:       appConfig.Redis.DB,
		})
		if e != nil {
			zapLogger.Fatal("failed to connect to redis", zap.Error(e))
		}
		defer redisClient.Close()
		zapLogger.Info("connected to redis successfully")
		cache := repository.NewRedisFeedCache(redisClient, appConfig.Redis.Retention)
		feedClient = fetcher.NewCachedFeedClient(feedClient, cache, cacheMode, appConfig.Fetch.CacheTTL, zapLogger)
	}

	// poller
	var updatePublisher poller.UpdatePublisher
	if eventPublisher != nil {
		updatePublisher = eventPublisher
	}
	feedPoller := poller.NewPoller(feedClient, dsRegistry, store, alerts, updatePublisher, datetime.NewParser(location), zapLogger, poller.Options{
		Interval:             appConfig.Feed.UpdateInterval,
		SourceTimeout:        appConfig.Feed.SourceTimeout,
		SinkTimeout:          appConfig.Feed.SinkTimeout,
		InSyncThreshold:      appConfig.Feed.InSyncThreshold,
		MaxConcurrentSources: appConfig.Feed.MaxConcurrentSources,
		Parse: feed.ParseOptions{
			IgnoreFolderPrefix: appConfig.Feed.IgnoreFolderPrefix,
			RefreshFields:      appConfig.Feed.RefreshFields,
		},
	})
	feedPoller.Start()
	zapLogger.Info("poller started", zap.Duration("interval", appConfig.Feed.UpdateInterval), zap.Int("datasources", len(dsRegistry.Enabled())))

	dashboardService := service.NewDashboardService(dsRegistry, store, alerts, mailSender, service.Options{
		InitialSearch:   appConfig.Startup.InitialSearch,
		InSyncThreshold: appConfig.Feed.InSyncThreshold,
	})

	// datasource control commands
	var controlConsumer consumer.ControlConsumer
	if appConfig.Kafka.Enabled() && appConfig.Kafka.ControlTopic != "" {
		controlConsumer = consumer.NewControlConsumer(infra.NewKafkaReader(infra.KafkaConfig{
			Brokers: appConfig.Kafka.Brokers,
			Topic:   appConfig.Kafka.ControlTopic,
			GroupID: appConfig.Kafka.ConsumerGroupID,
		}), dashboardService, zapLogger)
		controlConsumer.Start()
	}

	// Create cronjob for daily report
	var cronJob *cron.Cron
	if mailSender != nil && appConfig.Mail.ReportCron != "" && len(appConfig.Mail.ReportRecipients) > 0 {
		cronJob = cron.New()
		_, err = cronJob.AddFunc(appConfig.Mail.ReportCron, func() {
			ctx2, cancel2 := context.WithTimeout(context.Background(), 30*time.Second)
			zapLogger.Info("cronjob called")
			e := dashboardService.SendAvailabilityReport(ctx2, appConfig.Mail.ReportRecipients)
			cancel2()
			if e != nil {
				zapLogger.Error("failed to send availability report", zap.Error(e))
			}
		})
		if err != nil {
			zapLogger.Fatal("failed to create cron job for availability report", zap.Error(err))
		}
		cronJob.Start()
	}

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	dashboardHandler := handler.NewDashboardHandler(zapLogger, dashboardService, appConfig.Server.LongPollTimeout)
	routes.SetUpDashboardRoutes(r, dashboardHandler)

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
	ctx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	if cronJob != nil {
		<-cronJob.Stop().Done()
	}
	if controlConsumer != nil {
		controlConsumer.Stop()
	}
	feedPoller.Stop()
	zapLogger.Info("server exiting")
}
