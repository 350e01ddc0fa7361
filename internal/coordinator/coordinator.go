/**
 * CONTEXT:   Lifecycle coordinator starting and stopping every background task under one
 *            root context, adapted from the teacher's internal/daemon/orchestrator.go and
 *            internal/daemon/coordinator.go
 * INPUT:     A config.Config and the pre-built component instances each background
 *            task drives (liveness monitor, backup service, notification queue)
 * OUTPUT:    A running set of goroutines (liveness probe, orphan-backup GC, notification
 *            worker), of which the orphan-backup GC and the notification worker report
 *            into one Scheduler Health Monitor, plus a graceful Shutdown
 * CHANGE:    Initial implementation.
 * RISK:      High - this is the single place that can leak or fail to stop a goroutine
 */

package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/worktime-tracker/system/internal/backup"
	"github.com/worktime-tracker/system/internal/config"
	"github.com/worktime-tracker/system/internal/netmonitor"
	"github.com/worktime-tracker/system/internal/notifyqueue"
	"github.com/worktime-tracker/system/internal/schedulerhealth"
)

// Coordinator owns the root context for every background task the tracker
// runs: the network liveness probe, the orphan-backup GC sweep, and the
// notification queue's dispatch worker. It mirrors the teacher's
// Orchestrator in shape (one ctx/cancel pair, one sync.WaitGroup, a
// Shutdown that cancels and waits with a timeout) without the HTTP-server
// concerns that orchestrator also carried.
type Coordinator struct {
	cfg    *config.Config
	logger *slog.Logger

	NetMonitor *netmonitor.Monitor
	Backup     *backup.Service
	Notify     *notifyqueue.Queue
	Health     *schedulerhealth.Monitor

	dispatch notifyqueue.DispatchFunc

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	startTime time.Time

	mu        sync.RWMutex
	isRunning bool
}

// Deps bundles the already-constructed components a Coordinator starts and
// supervises. Dispatch delivers a single notification item (e.g. desktop
// tray, webhook); it is supplied by the caller since delivery is an
// external-interface concern the coordinator itself doesn't own.
type Deps struct {
	NetMonitor *netmonitor.Monitor
	Backup     *backup.Service
	Notify     *notifyqueue.Queue
	Dispatch   notifyqueue.DispatchFunc
}

// New builds a Coordinator wired to the given config and components. Health
// is a fresh Scheduler Health Monitor that the orphan-backup GC and the
// notification worker register with; the liveness monitor does not.
func New(cfg *config.Config, deps Deps, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		cfg:        cfg,
		logger:     logger,
		NetMonitor: deps.NetMonitor,
		Backup:     deps.Backup,
		Notify:     deps.Notify,
		dispatch:   deps.Dispatch,
		Health:     schedulerhealth.New(),
	}
}

// Start launches every background task as a goroutine under a cancellable
// root context and returns immediately.
func (c *Coordinator) Start(ctx context.Context) {
	c.mu.Lock()
	c.isRunning = true
	c.startTime = time.Now()
	c.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	c.ctx = ctx
	c.cancel = cancel

	if c.NetMonitor != nil {
		c.logger.Info("starting network liveness monitor")
		c.NetMonitor.Start(ctx)
	}

	if c.Backup != nil {
		interval := c.cfg.Backup.OrphanGCInterval
		c.logger.Info("starting orphan backup GC", "interval", interval)
		c.Health.RegisterTask("orphan-backup-gc", interval, nil)
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			c.runOrphanGC(ctx, interval)
		}()
	}

	if c.Notify != nil && c.dispatch != nil {
		c.logger.Info("starting notification queue worker")
		worker := notifyqueue.NewWorker(c.Notify, c.dispatch, c.Health)
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			worker.Run(ctx)
		}()
	}
}

// runOrphanGC calls backup.SweepOrphans on every tick and records each
// tick with scheduler health. The sweep is a fire-and-forget best-effort
// walk with no error to report, so every tick is treated as a success.
func (c *Coordinator) runOrphanGC(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			backup.SweepOrphans(c.cfg.NetworkRoot, c.logger)
			c.Health.RecordTaskExecution("orphan-backup-gc")
		}
	}
}

// IsRunning reports whether Start has been called without a matching
// completed Shutdown.
func (c *Coordinator) IsRunning() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isRunning
}

// Uptime reports the time elapsed since Start.
func (c *Coordinator) Uptime() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.startTime.IsZero() {
		return 0
	}
	return time.Since(c.startTime)
}

// Shutdown cancels every background task and waits for them to exit,
// bounded by ctx's deadline - the same cancel-then-wait-with-timeout shape
// as the teacher's gracefulShutdown.
func (c *Coordinator) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	c.isRunning = false
	c.mu.Unlock()

	c.logger.Info("starting graceful shutdown")

	if c.NetMonitor != nil {
		c.NetMonitor.Stop()
	}
	if c.cancel != nil {
		c.cancel()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.logger.Info("all background tasks stopped")
		return nil
	case <-ctx.Done():
		c.logger.Warn("shutdown timeout exceeded, background tasks may still be running")
		return fmt.Errorf("coordinator shutdown: %w", ctx.Err())
	}
}
