/**
 * CONTEXT:   "serve" subcommand - the long-running daemon mode that starts
 *            internal/coordinator's background tasks (liveness monitor, orphan-backup
 *            GC, notification worker) under one lifecycle and exposes a minimal
 *            /healthz + /diagnostics HTTP surface (spec section 5, section 6)
 * INPUT:     worktimectl serve [--addr :8080]
 * OUTPUT:    A running process until SIGINT/SIGTERM, then a graceful coordinator shutdown
 * CHANGE:    Initial implementation, grounded on the teacher's cmd/claude-daemon main
 *            loop (signal.Notify + daemon.Shutdown) and handlers.go's health-handler shape.
 * RISK:      Medium - the only process lifecycle this repo owns end-to-end
 */

package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/worktime-tracker/system/internal/coordinator"
	"github.com/worktime-tracker/system/internal/notifyqueue"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "HTTP listen address for /healthz and /diagnostics")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the background coordinator and HTTP diagnostics surface",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		queue := notifyqueue.New(a.cfg.NotificationRateLimits)
		coord := coordinator.New(a.cfg, coordinator.Deps{
			NetMonitor: a.monitor,
			Backup:     a.backup,
			Notify:     queue,
			Dispatch:   logOnlyDispatch(a.log),
		}, a.log)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		coord.Start(ctx)
		a.log.Info("worktimectl serve starting", "addr", serveAddr)

		srv := &http.Server{Addr: serveAddr, Handler: diagnosticsRouter(coord)}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				a.log.Error("http server stopped", "error", err)
			}
		}()

		<-ctx.Done()
		a.log.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return coord.Shutdown(shutdownCtx)
	},
}

// logOnlyDispatch is the default DispatchFunc for serve mode: notification
// delivery to a desktop tray or webhook is an external-interface concern
// this repo doesn't own (spec section 1's "out of scope" list), so serve
// mode logs every dispatched item instead.
func logOnlyDispatch(log interface{ Info(string, ...any) }) notifyqueue.DispatchFunc {
	return func(item notifyqueue.Item) error {
		log.Info("notification dispatched", "id", item.ID, "kind", string(item.Kind), "user", item.UserID)
		return nil
	}
}

// taskStatusDTO is the JSON-safe projection of schedulerhealth.TaskStatus:
// time.Duration and error don't round-trip through encoding/json the way
// the wire format at /diagnostics needs.
type taskStatusDTO struct {
	ID                  string `json:"id"`
	ExpectedIntervalSec float64 `json:"expected_interval_seconds"`
	LastRun             string `json:"last_run,omitempty"`
	ConsecutiveFailures int    `json:"consecutive_failures"`
	LastError           string `json:"last_error,omitempty"`
	Unhealthy           bool   `json:"unhealthy"`
}

func diagnosticsRouter(coord *coordinator.Coordinator) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"running": coord.IsRunning(),
			"uptime":  coord.Uptime().String(),
		})
	}).Methods(http.MethodGet)

	r.HandleFunc("/diagnostics", func(w http.ResponseWriter, req *http.Request) {
		statuses := coord.Health.Report()
		out := make([]taskStatusDTO, 0, len(statuses))
		for _, s := range statuses {
			dto := taskStatusDTO{
				ID:                  s.ID,
				ExpectedIntervalSec: s.ExpectedInterval.Seconds(),
				ConsecutiveFailures: s.ConsecutiveFailures,
				Unhealthy:           s.Unhealthy(time.Now()),
			}
			if !s.LastRun.IsZero() {
				dto.LastRun = s.LastRun.Format(time.RFC3339)
			}
			if s.LastError != nil {
				dto.LastError = s.LastError.Error()
			}
			out = append(out, dto)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	}).Methods(http.MethodGet)

	return r
}
