// Package hrserver assembles and runs the HR administration server.
package hrserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kart-io/logger"

	"github.com/kart-io/hr-center/internal/hrserver/router"
	"github.com/kart-io/hr-center/internal/hrserver/store"
	"github.com/kart-io/hr-center/pkg/app"
	"github.com/kart-io/hr-center/pkg/component/mongodb"
	"github.com/kart-io/hr-center/pkg/security/auth/oidc"
)

// Name is the name of the application.
const Name = "hr-server"

// Server is the assembled HR server.
type Server struct {
	opts    *Options
	factory store.Factory
	httpSrv *http.Server
}

// NewServer wires the store, the token verifier and the router from the
// given options.
func NewServer(ctx context.Context, opts *Options) (*Server, error) {
	opts.Log.AddInitialField("service.name", Name)
	opts.Log.AddInitialField("service.version", app.GetVersion())
	if err := opts.Log.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Info("Starting hr-server...")

	mongoClient, err := mongodb.NewWithContext(ctx, opts.MongoDB)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mongodb: %w", err)
	}
	factory := store.NewMongoFactory(mongoClient)
	logger.Info("Store layer initialized")

	verifier, err := oidc.New(ctx, opts.OIDC)
	if err != nil {
		_ = factory.Close()
		return nil, fmt.Errorf("failed to initialize oidc verifier: %w", err)
	}
	logger.Infow("Token verifier initialized", "issuer", opts.OIDC.IssuerURL)

	engine, err := router.New(&router.Config{
		Store:            factory,
		Authenticator:    verifier,
		Weather:          opts.Weather,
		Mode:             opts.HTTP.Mode,
		CORSAllowOrigins: opts.HTTP.CORSAllowOrigins,
	})
	if err != nil {
		_ = factory.Close()
		return nil, fmt.Errorf("failed to build router: %w", err)
	}

	return &Server{
		opts:    opts,
		factory: factory,
		httpSrv: &http.Server{
			Addr:         opts.HTTP.Addr,
			Handler:      engine,
			ReadTimeout:  opts.HTTP.ReadTimeout,
			WriteTimeout: opts.HTTP.WriteTimeout,
			IdleTimeout:  opts.HTTP.IdleTimeout,
		},
	}, nil
}

// Run starts the HTTP server and blocks until a termination signal or a
// listener failure, then shuts down gracefully.
func (s *Server) Run() error {
	errCh := make(chan error, 1)
	go func() {
		logger.Infow("HTTP server listening", "addr", s.httpSrv.Addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		_ = s.factory.Close()
		return fmt.Errorf("http server failed: %w", err)
	case sig := <-quit:
		logger.Infow("Shutting down server...", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.HTTP.ShutdownTimeout)
	defer cancel()

	if err := s.httpSrv.Shutdown(ctx); err != nil {
		logger.Errorw("Server forced to shutdown", "error", err)
	}
	if err := s.factory.Close(); err != nil {
		logger.Errorw("Store close failed", "error", err)
	}

	logger.Info("Server exited")
	return nil
}
