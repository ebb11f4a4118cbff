package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"isinscraper/stock"

	"github.com/gorilla/handlers"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command.
func NewServeCmd(opts *globalOptions, defaultPort string) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve company lookups as JSON over HTTP",
		Long: `Starts an HTTP server answering GET /company/{isin} with the same data the
interactive lookup prints. Each request performs one fetch from Screener.in.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			registry, err := opts.registry()
			if err != nil {
				return err
			}

			router := stock.NewRouter(registry, opts.scraper(logger), logger)
			srv := &http.Server{
				Addr:              ":" + port,
				Handler:           handlers.RecoveryHandler()(handlers.LoggingHandler(cmd.ErrOrStderr(), router)),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				srv.Shutdown(shutdownCtx)
			}()

			logger.Info("server is running", "port", port, "companies", registry.Len())
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", defaultPort, "port to listen on")
	return cmd
}
