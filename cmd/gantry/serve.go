package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpAdapter "github.com/gantrykit/gantry/pkg/adapters/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the engine in HTTP server mode, exposing the protocol on
POST /ipc plus health, metrics and run audit endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		addr := a.config.HTTP.Addr
		if flagAddr, _ := cmd.Flags().GetString("addr"); flagAddr != "" {
			addr = flagAddr
		}

		// Channel to listen for interrupt or terminate signals, shared with
		// the protocol-level shutdown request.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		handler := httpAdapter.NewHandler(a.engine,
			httpAdapter.WithLogger(a.logger),
			httpAdapter.WithMetricsRegistry(a.metrics),
			httpAdapter.WithShutdown(func() {
				shutdown <- syscall.SIGTERM
			}))

		srv := &http.Server{
			Addr:    addr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			a.logger.Info("server listening", "addr", srv.Addr, "friendly_name", a.engine.FriendlyName())
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			a.logger.Info("shutting down", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				a.logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			a.engine.Reset(context.Background())
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Listen address (overrides config)")
}
