/**
 * AGENT:     architecture-designer
 * TRACE:     WT-ARCH-090
 * CONTEXT:   Notification queue - spec section 4.8's rate-limited, retrying priority
 *            queue for end-of-schedule/hourly/temp-stop/start-day/resolution notices
 * INPUT:     Enqueue calls from the calculation engine/session state machine; process
 *            ticks from the worker goroutine
 * OUTPUT:    Dispatched notifications via a caller-supplied DispatchFunc
 * BUSINESS:  Rate-limiting is keyed by (user, kind) with a per-kind minimum interval;
 *            retries lower priority by one (floor 1) and drop after maxRetries
 * CHANGE:    Initial implementation.
 * RISK:      Medium - lost or duplicated notifications are a visible user-facing defect
 */

package notifyqueue

import (
	"container/heap"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/worktime-tracker/system/internal/schedulerhealth"
)

// DispatchFunc delivers a single item. An error triggers the retry path
// (priority lowered by one and re-queued; there is no backoff delay).
type DispatchFunc func(Item) error

// RateLimit maps a notification kind to the minimum interval between two
// displays of that kind for the same user.
type RateLimit map[Kind]time.Duration

// Queue is the process-wide notification priority queue.
type Queue struct {
	mu   sync.Mutex
	h    itemHeap
	byID map[string]*Item

	lastDisplay map[rateLimitKey]time.Time
	limits      RateLimit

	now func() time.Time
}

type rateLimitKey struct {
	userID int
	kind   Kind
}

// New builds an empty Queue with the given per-kind rate limits.
func New(limits RateLimit) *Queue {
	return &Queue{
		byID:        make(map[string]*Item),
		lastDisplay: make(map[rateLimitKey]time.Time),
		limits:      limits,
		now:         time.Now,
	}
}

// Enqueue adds a new item unless it is suppressed by the (user, kind)
// rate limit. Returns the generated item ID, or "" if suppressed.
func (q *Queue) Enqueue(userID int, kind Kind, payload Payload, priority int) string {
	q.mu.Lock()
	defer q.mu.Unlock()

	key := rateLimitKey{userID, kind}
	if limit, ok := q.limits[kind]; ok {
		if last, seen := q.lastDisplay[key]; seen && q.now().Sub(last) < limit {
			return ""
		}
	}

	item := &Item{
		ID:        uuid.New().String(),
		Kind:      kind,
		UserID:    userID,
		Payload:   payload,
		Priority:  priority,
		CreatedAt: q.now(),
	}
	heap.Push(&q.h, item)
	q.byID[item.ID] = item
	q.lastDisplay[key] = item.CreatedAt
	return item.ID
}

// CancelNotification removes a pending (not yet processed) item. It is
// a no-op if the item has already been processed or does not exist.
func (q *Queue) CancelNotification(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	item, ok := q.byID[id]
	if !ok || item.processed {
		return
	}
	for i, candidate := range q.h {
		if candidate.ID == id {
			heap.Remove(&q.h, i)
			break
		}
	}
	delete(q.byID, id)
}

// ClearQueue discards every pending item, used during a system reset.
func (q *Queue) ClearQueue() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.h = nil
	q.byID = make(map[string]*Item)
}

// Len reports the number of pending items.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.h.Len()
}

const tasksPerTick = 3

// ProcessTick pops up to 3 items and dispatches each via dispatch. A
// failed dispatch increments retryCount, lowers priority by one (floor
// 1), and is re-queued unless retries are exhausted, in which case the
// item is dropped and logged through the scheduler health monitor's
// failure path.
func (q *Queue) ProcessTick(dispatch DispatchFunc, health *schedulerhealth.Monitor) {
	const taskID = "notification-queue-processor"

	for i := 0; i < tasksPerTick; i++ {
		q.mu.Lock()
		if q.h.Len() == 0 {
			q.mu.Unlock()
			break
		}
		item := heap.Pop(&q.h).(*Item)
		delete(q.byID, item.ID)
		q.mu.Unlock()

		err := dispatch(*item)
		if err == nil {
			item.processed = true
			if health != nil {
				health.RecordTaskExecution(taskID)
			}
			continue
		}

		if health != nil {
			health.RecordTaskFailure(taskID, err)
		}
		item.RetryCount++
		item.LastError = err
		if item.RetryCount >= maxRetries {
			continue // drop
		}
		if item.Priority > 1 {
			item.Priority--
		}

		q.mu.Lock()
		heap.Push(&q.h, item)
		q.byID[item.ID] = item
		q.mu.Unlock()
	}
}
