package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio site",
	Run: func(cmd *cobra.Command, args []string) {
		site, err := content.Load(cfg.ContentFile)
		if err != nil {
			logrus.Fatalf("Failed to load content: %v", err)
		}

		store, err := openStore(context.Background(), cfg)
		if err != nil {
			logrus.Fatalf("Failed to open preference store: %v", err)
		}
		defer store.Close()

		srv := &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: web.New(site, store).Router(),
		}

		serverErrors := make(chan error, 1)
		go func() {
			logrus.Printf("Serving portfolio on %s", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			if !errors.Is(err, http.ErrServerClosed) {
				logrus.Errorf("Server error: %v", err)
			}
		case sig := <-shutdown:
			logrus.Printf("Shutting down on %v", sig)

			// Hero streams never end on their own; the deadline cuts them.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logrus.Warnf("Graceful shutdown did not complete: %v", err)
				srv.Close()
			}
			logrus.Println("Server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&cfg.Port, "port", "p", cfg.Port, "Port to listen on")
}
