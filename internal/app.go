package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	token_adapter "github.com/Akergez/2572371-six-cities-4/internal/adapters/jwt"
	logger_adapter "github.com/Akergez/2572371-six-cities-4/internal/adapters/logger"
	"github.com/Akergez/2572371-six-cities-4/internal/adapters/rabbitmq"
	"github.com/Akergez/2572371-six-cities-4/internal/adapters/rest"
	"github.com/Akergez/2572371-six-cities-4/internal/configs"
	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
	"github.com/Akergez/2572371-six-cities-4/internal/core/usecase"
	fluentlogger "github.com/Akergez/2572371-six-cities-4/pkg/fluent_logger"
	"github.com/Akergez/2572371-six-cities-4/pkg/rabbitmq/rabbitmq_common"
	"github.com/Akergez/2572371-six-cities-4/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	config    *configs.AppConfig
	apiServer *rest.Server
	stores    *stores

	rabbitConnManager *rabbitmq_common.ConnectionManager
	eventProducer     *rabbitmq_producer.Publisher

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp(envPath ...string) (*App, error) {
	appConfig, err := configs.LoadConfig(envPath...)
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- loggers ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			_ = fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	application := &App{
		config:       appConfig,
		fluentClient: fluentClient,
		logger:       appLogger,
	}

	// --- persistence ---
	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	application.stores, err = openStores(initCtx, appConfig, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize storage", err, port.Fields{"driver": appConfig.Storage.Driver})
		application.closeResources()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	st := application.stores

	// --- events ---
	var publisher port.EventPublisherPort = rabbitmq.NoopEventPublisher{}
	if appConfig.RabbitMQ.Enabled {
		publisher, err = application.openEventPublisher(baseLogger)
		if err != nil {
			appLogger.Error("Failed to initialize RabbitMQ publisher", err, nil)
			application.closeResources()
			return nil, err
		}
	} else {
		appLogger.Info("RabbitMQ disabled, domain events are dropped", nil)
	}

	tokenService, err := token_adapter.NewTokenService(appConfig.Auth.JWTSecret)
	if err != nil {
		application.closeResources()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	// --- use cases ---
	authenticateUC := usecase.NewAuthenticateUseCase(tokenService, st.tokens, st.users)
	listFavoritesUC := usecase.NewListFavoritesUseCase(st.offers)
	toggleFavoriteUC := usecase.NewToggleFavoriteUseCase(st.users, publisher)
	getOfferUC := usecase.NewGetOfferUseCase(st.offers)
	listOffersUC := usecase.NewListOffersUseCase(st.offers, appConfig.Limits.OffersDefault)
	createOfferUC := usecase.NewCreateOfferUseCase(st.offers)
	listCommentsUC := usecase.NewListCommentsUseCase(st.comments, st.users, appConfig.Limits.Comments)
	createCommentUC := usecase.NewCreateCommentUseCase(st.comments, st.offers, publisher)
	registerUC := usecase.NewRegisterUserUseCase(st.users)
	loginUC := usecase.NewLoginUserUseCase(st.users, st.tokens, tokenService, appConfig.Auth.TokenTTL)
	logoutUC := usecase.NewLogoutUserUseCase(tokenService, st.tokens)
	updateAvatarUC := usecase.NewUpdateAvatarUseCase(st.users)

	// --- REST ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := rest.NewMetrics(registry)
	if err != nil {
		application.closeResources()
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	router := rest.NewRouter(rest.RouterDeps{
		Logger:             baseLogger,
		Auth:               rest.NewAuthMiddleware(authenticateUC),
		OfferLoader:        rest.NewOfferMiddleware(getOfferUC),
		Favorites:          rest.NewFavoritesHandler(listFavoritesUC, toggleFavoriteUC),
		Offers:             rest.NewOffersHandler(listOffersUC, createOfferUC),
		Comments:           rest.NewCommentsHandler(listCommentsUC, createCommentUC),
		Users:              rest.NewUsersHandler(registerUC, loginUC, logoutUC, updateAvatarUC),
		Metrics:            metrics,
		Gatherer:           registry,
		CorsAllowedOrigins: appConfig.Rest.CorsAllowedOrigins,
	})
	application.apiServer = rest.NewServer(appConfig.Rest.PORT, router, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return application, nil
}

func (a *App) openEventPublisher(baseLogger port.LoggerPort) (port.EventPublisherPort, error) {
	rabbitLogger := logger_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq"}))

	connManager, err := rabbitmq_common.NewConnectionManager(a.config.RabbitMQ.URL, rabbitLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	a.rabbitConnManager = connManager

	producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		Config:                   rabbitmq_common.Config{URL: a.config.RabbitMQ.URL},
		ExchangeName:             a.config.RabbitMQ.Exchange,
		ExchangeType:             "topic",
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   rabbitLogger,
	}, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create RabbitMQ publisher: %w", err)
	}
	a.eventProducer = producer

	publisher, err := rabbitmq.NewEventPublisher(producer)
	if err != nil {
		return nil, err
	}
	a.logger.Info("RabbitMQ event publisher initialized", port.Fields{"exchange": a.config.RabbitMQ.Exchange})
	return publisher, nil
}

// Run serves HTTP until a termination signal or a server failure.
func (a *App) Run() error {
	defer a.closeResources()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- a.apiServer.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)

	var runErr error
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-serverErrors:
		if err != nil {
			a.logger.Error("Server failed, shutting down", err, nil)
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.apiServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("Error during API server shutdown", err, nil)
	}

	return runErr
}

// closeResources releases everything NewApp opened, in reverse order.
func (a *App) closeResources() {
	if a.eventProducer != nil {
		if err := a.eventProducer.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ publisher", err, nil)
		}
		a.eventProducer = nil
	}
	if a.rabbitConnManager != nil {
		if err := a.rabbitConnManager.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection", err, nil)
		}
		a.rabbitConnManager = nil
	}
	if a.stores != nil {
		a.stores.close(a.logger)
		a.stores = nil
	}

	a.logger.Info("Application shut down gracefully.", nil)

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent may already be unreachable
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
		a.fluentClient = nil
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
