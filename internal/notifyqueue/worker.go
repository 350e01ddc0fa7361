/**
 * CONTEXT:   Cooperative notification worker - wakes every 5s, processes up to 3 items
 *            per tick, spec section 4.8
 * INPUT:     A running context.Context and a DispatchFunc
 * OUTPUT:    None directly - side effect is dispatched notifications and scheduler
 *            health updates
 * BUSINESS:  Registers itself with the Scheduler Health Monitor under id
 *            "notification-queue-processor", the same register/record contract every
 *            other scheduled task uses
 * CHANGE:    Initial implementation, grounded on the daemon orchestrator's own
 *            ticker-driven background loop idiom.
 * RISK:      Low - a missed tick just delays notifications by one cycle
 */

package notifyqueue

import (
	"context"
	"time"

	"github.com/worktime-tracker/system/internal/schedulerhealth"
)

const tickInterval = 5 * time.Second

// Worker drives a Queue's ProcessTick on a fixed cadence until ctx is
// cancelled.
type Worker struct {
	queue    *Queue
	dispatch DispatchFunc
	health   *schedulerhealth.Monitor
}

// NewWorker builds a Worker and registers it with health under
// "notification-queue-processor".
func NewWorker(queue *Queue, dispatch DispatchFunc, health *schedulerhealth.Monitor) *Worker {
	if health != nil {
		health.RegisterTask("notification-queue-processor", tickInterval, nil)
	}
	return &Worker{queue: queue, dispatch: dispatch, health: health}
}

// Run blocks, ticking every 5s and draining up to 3 items per tick,
// until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.queue.ProcessTick(w.dispatch, w.health)
		}
	}
}
