package main

import (
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
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/palettekitty/internal/config"
	"github.com/thatcatcamp/palettekitty/internal/db"
	"github.com/thatcatcamp/palettekitty/internal/handlers"
	"github.com/thatcatcamp/palettekitty/internal/history"
	"github.com/thatcatcamp/palettekitty/internal/middleware"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start and manage the PaletteKitty HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		var pruner *history.Pruner
		if config.GetBool("history.enabled") {
			if err := initHistoryDB(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			pruner = history.NewPruner(db.GetDB(), config.GetDuration("history.retention"))
			if interval := config.GetDuration("history.prune_interval"); interval > 0 {
				pruner.SetInterval(interval)
			}
			pruner.Start()
			log.Println("History pruner started")
		}

		r := gin.Default()
		r.Use(middleware.SecurityHeadersMiddleware())
		r.Use(middleware.IPFilterMiddleware(config.GetStringSlice("security.blocked_ips")))

		limiter := middleware.NewRateLimiter(
			config.GetInt("ratelimit.requests"),
			config.GetDuration("ratelimit.interval"),
		)
		r.Use(middleware.RateLimitMiddleware(limiter))

		handlers.RegisterRoutes(r)

		httpAddr := fmt.Sprintf(":%s", config.GetString("server.http_port"))
		server := &http.Server{
			Addr:              httpAddr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		serverErr := make(chan error, 1)
		go func() {
			fmt.Printf("Starting HTTP server on %s\n", httpAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
			close(serverErr)
		}()

		select {
		case err := <-serverErr:
			if err != nil {
				fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
				os.Exit(1)
			}
		case <-ctx.Done():
			log.Println("Shutting down")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown failed: %v", err)
		}

		if pruner != nil {
			pruner.Stop()
		}
	},
}

// initHistoryDB opens the lookup history database from config
func initHistoryDB() error {
	dbType := config.GetString("database.type")
	dbPath := config.GetString("database.path")

	if err := db.InitDB(dbType, dbPath); err != nil {
		return fmt.Errorf("failed to initialize history database: %w", err)
	}
	return nil
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
