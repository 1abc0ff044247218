package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"emailsieve/internal/api"
	"emailsieve/internal/api/handler/v1handler"
	"emailsieve/internal/config"
	"emailsieve/internal/extractor"
	"emailsieve/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupServer starts the HTTP server in the background and returns a
// function that shuts it down.
func setupServer(ctx context.Context, cfg *config.Config) func(ctx context.Context) {
	engine, err := extractor.New(extractor.OutputFormat(cfg.Extractor.OutputFormat))
	if err != nil {
		logger.Fatal(ctx, "could not create extraction engine", zap.Error(err))
	}

	server := api.NewServer(api.Deps{
		Deps: v1handler.Deps{Extractor: engine},
	}, api.NewOptions(cfg))

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the extraction API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			stopWebserver := setupServer(ctx, cfg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
