package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/cognitogw/internal/gateway/http"
	"github.com/aussiebroadwan/cognitogw/internal/gateway/service"
	"github.com/aussiebroadwan/cognitogw/pkg/slogx"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the gateway with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	service *service.CognitoService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(ctx context.Context, cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "cognito-gateway",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	app.initService(cip.NewFromConfig(awsCfg, func(o *cip.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}))
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("cognito gateway starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"region", app.cfg.Region,
		"user_pool_id", app.cfg.UserPoolID,
		"endpoint", app.cfg.Endpoint,
		"confidential_client", app.service.Confidential(),
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down cognito gateway...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
		return err
	}

	app.logger.Info("cognito gateway stopped")
	return nil
}

// Handler returns the root HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// initService builds the provider-backed service
func (app *Application) initService(client service.IdentityProvider) {
	app.service = service.NewCognitoService(client, service.Settings{
		ClientID:     app.cfg.ClientID,
		ClientSecret: app.cfg.ClientSecret,
		UserPoolID:   app.cfg.UserPoolID,
		MFALabel:     app.cfg.MFALabel,
		MFAIssuer:    app.cfg.MFAIssuer,
		QRCodeSize:   app.cfg.QRCodeSize,
	})
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.logger)
	router.Prefix = app.cfg.BasePath
	router.DisabledRoutes = app.cfg.DisabledRouteSet()
	router.Service = app.service
	router.ReadinessCheck = app.providerReady
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// providerReady resolves the user pool endpoint for the configured region.
func (app *Application) providerReady(ctx context.Context) error {
	params := cip.EndpointParameters{Region: aws.String(app.cfg.Region)}
	if app.cfg.Endpoint != "" {
		params.Endpoint = aws.String(app.cfg.Endpoint)
	}
	_, err := cip.NewDefaultEndpointResolverV2().ResolveEndpoint(ctx, params)
	if err != nil {
		return fmt.Errorf("resolve endpoint: %w", err)
	}
	return nil
}
