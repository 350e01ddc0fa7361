package netmonitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMonitor() *Monitor {
	return New(Config{
		NetworkRoot:      `\\fileserver\wt-share`,
		JitterThreshold:  3,
		DebounceInterval: 10 * time.Second,
	}, nil)
}

// TestNetworkFlapRejected is spec section 8's concrete scenario 7: feeding
// [up, up] after a steady "down" state, with jitterThreshold=3, must not
// flip isAvailable().
func TestNetworkFlapRejected(t *testing.T) {
	m := newTestMonitor()
	require.False(t, m.IsAvailable())

	m.observe(true)
	m.observe(true)

	assert.False(t, m.IsAvailable(), "two observations short of jitterThreshold=3 must not flip state")
}

func TestJitterThresholdAcceptsAfterEnoughIdenticalObservations(t *testing.T) {
	m := newTestMonitor()
	m.lastChangeAt = time.Now().Add(-time.Minute) // clear the debounce window

	m.observe(true)
	m.observe(true)
	assert.False(t, m.IsAvailable())
	m.observe(true)
	assert.True(t, m.IsAvailable(), "three identical observations should flip an empty debounce window")
}

func TestDebounceRejectsChangeWithinInterval(t *testing.T) {
	m := newTestMonitor()
	m.lastChangeAt = time.Now() // a change "just happened"

	m.observe(true)
	m.observe(true)
	m.observe(true)

	assert.False(t, m.IsAvailable(), "a jitter-satisfying change within the debounce window must still be rejected")
}

func TestObserveResetsCounterOnNonRepeatingObservation(t *testing.T) {
	m := newTestMonitor()
	m.lastChangeAt = time.Now().Add(-time.Minute)

	m.observe(true)
	m.observe(false) // back to current state resets the counter entirely
	m.observe(true)
	m.observe(true)
	assert.False(t, m.IsAvailable(), "only 2 consecutive identical observations after the reset, short of threshold 3")
}

func TestForceUpdateBypassesDebounceAndJitter(t *testing.T) {
	m := newTestMonitor()
	m.lastChangeAt = time.Now() // would normally block any accepted change

	m.forceUpdate(true)
	assert.True(t, m.IsAvailable(), "initial-detection's first success must bypass the filter entirely")
}

func TestOnChangeHookFiresOnAcceptedChange(t *testing.T) {
	m := newTestMonitor()
	m.lastChangeAt = time.Now().Add(-time.Minute)

	var got bool
	var fired int
	m.OnChange(func(available bool, at time.Time) {
		got = available
		fired++
	})

	m.observe(true)
	m.observe(true)
	m.observe(true)

	assert.Equal(t, 1, fired)
	assert.True(t, got)
}

func TestConsecutiveFailuresTracksRawProbeOutcomes(t *testing.T) {
	m := newTestMonitor()
	m.recordProbeOutcome(false)
	m.recordProbeOutcome(false)
	assert.Equal(t, 2, m.ConsecutiveFailures())
	m.recordProbeOutcome(true)
	assert.Equal(t, 0, m.ConsecutiveFailures(), "a successful probe resets the failure streak")
}

func TestIsAvailableDefaultsFalse(t *testing.T) {
	m := newTestMonitor()
	assert.False(t, m.IsAvailable())
}
