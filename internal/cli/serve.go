package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"wanderly.app/trip-planner/internal/api"
	"wanderly.app/trip-planner/internal/catalog"
	"wanderly.app/trip-planner/internal/core"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the JSON API used by the web front-end.

Each planning session lives in memory and expires after SESSION_TTL_MINUTES
without activity. Finalized conversations and plans go to the configured store.

Examples:
  tripplanner serve
  tripplanner serve --port 9090`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "listen port (default HTTP_PORT)")
}

func newPlanner() *core.PlannerService {
	return core.NewPlannerService(dbStore, catalog.Goa(),
		core.WithScheduler(core.NewTimerScheduler(cfg.DelayScale)),
		core.WithLogger(log),
	)
}

func runServe(cmd *cobra.Command, args []string) error {
	port := servePort
	if port == "" {
		port = cfg.HTTPPort
	}

	sessions := api.NewSessionRegistry(time.Duration(cfg.SessionTTLMinutes)*time.Minute, newPlanner)
	apiHandler := api.NewAPIHandler(dbStore, sessions, cfg.RecentConversations, log)
	router := api.NewRouter(apiHandler)

	serverAddr := fmt.Sprintf(":%s", port)
	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown handling
	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s. Press Ctrl+C to quit.", serverAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen on %s: %w", serverAddr, err)
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Infof("Server exiting gracefully (%d live sessions dropped)", sessions.Count())
	return nil
}
