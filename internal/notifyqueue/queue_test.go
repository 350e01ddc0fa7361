package notifyqueue

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnqueueAndProcessInPriorityOrder(t *testing.T) {
	q := New(nil)
	q.Enqueue(1, KindHourly, Payload{Message: "low"}, 1)
	q.Enqueue(1, KindScheduleEnd, Payload{Message: "high"}, 5)

	var dispatched []string
	dispatch := func(i Item) error {
		dispatched = append(dispatched, i.Payload.Message)
		return nil
	}

	q.ProcessTick(dispatch, nil)
	require.Len(t, dispatched, 2)
	assert.Equal(t, "high", dispatched[0])
	assert.Equal(t, "low", dispatched[1])
}

func TestEnqueueSameKindFIFOWithinPriority(t *testing.T) {
	q := New(nil)
	q.Enqueue(1, KindTest, Payload{Message: "first"}, 1)
	q.Enqueue(2, KindTest, Payload{Message: "second"}, 1)

	var dispatched []string
	q.ProcessTick(func(i Item) error {
		dispatched = append(dispatched, i.Payload.Message)
		return nil
	}, nil)
	assert.Equal(t, []string{"first", "second"}, dispatched)
}

func TestRateLimitSuppressesRepeat(t *testing.T) {
	q := New(RateLimit{KindHourly: time.Hour})
	id1 := q.Enqueue(1, KindHourly, Payload{}, 1)
	id2 := q.Enqueue(1, KindHourly, Payload{}, 1)
	assert.NotEmpty(t, id1)
	assert.Empty(t, id2, "second enqueue within the rate-limit window should be suppressed")
}

func TestRetryLowersPriorityAndDropsAfterMaxRetries(t *testing.T) {
	q := New(nil)
	q.Enqueue(1, KindTest, Payload{}, 2)

	attempts := 0
	dispatch := func(Item) error {
		attempts++
		return errors.New("dispatch failed")
	}

	// 3 retries = 3 failed attempts before the item is dropped on the 3rd.
	q.ProcessTick(dispatch, nil)
	assert.Equal(t, 1, q.Len(), "failed item should be re-queued")
	q.ProcessTick(dispatch, nil)
	assert.Equal(t, 1, q.Len())
	q.ProcessTick(dispatch, nil)
	assert.Equal(t, 0, q.Len(), "item should be dropped once retryCount reaches maxRetries")
	assert.Equal(t, 3, attempts)
}

func TestCancelNotificationRemovesPendingItem(t *testing.T) {
	q := New(nil)
	id := q.Enqueue(1, KindTest, Payload{}, 1)
	q.CancelNotification(id)
	assert.Equal(t, 0, q.Len())
}

func TestClearQueueResetsWholesale(t *testing.T) {
	q := New(nil)
	q.Enqueue(1, KindTest, Payload{}, 1)
	q.Enqueue(2, KindTest, Payload{}, 1)
	q.ClearQueue()
	assert.Equal(t, 0, q.Len())
}
