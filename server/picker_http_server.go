package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food-picker/config"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type PickerHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	cfg       config.ServerConfig
	log       *zap.Logger
}

func NewPickerHttpServer(router *Router, muxRouter *mux.Router, cfg config.ServerConfig, log *zap.Logger) *PickerHttpServer {
	return &PickerHttpServer{
		router:    router,
		muxRouter: muxRouter,
		cfg:       cfg,
		log:       log,
	}
}

// Start serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// down gracefully within the configured timeout.
func (s *PickerHttpServer) Start(ctx context.Context) error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	serveErr := make(chan error, 1)
	go func() {
		s.log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
		return nil
	case sig := <-stop:
		s.log.Info("shutting down the server", zap.String("signal", sig.String()))
	case <-ctx.Done():
		s.log.Info("shutting down the server", zap.Error(ctx.Err()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	s.log.Info("server exiting")
	return nil
}
