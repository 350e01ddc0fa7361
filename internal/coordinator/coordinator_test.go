package coordinator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worktime-tracker/system/internal/backup"
	"github.com/worktime-tracker/system/internal/config"
	"github.com/worktime-tracker/system/internal/notifyqueue"
	"github.com/worktime-tracker/system/internal/pathresolver"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.NewDefaultConfig()
	cfg.LocalRoot = dir
	cfg.NetworkRoot = dir + "/net"
	cfg.Backup.OrphanGCInterval = 20 * time.Millisecond
	return cfg
}

func TestCoordinatorStartAndShutdown(t *testing.T) {
	cfg := testConfig(t)
	resolver := pathresolver.New(pathresolver.Config{LocalRoot: cfg.LocalRoot, NetworkRoot: cfg.NetworkRoot})
	bsvc := backup.New(resolver, cfg.Backup)
	queue := notifyqueue.New(notifyqueue.RateLimit{})

	dispatched := make(chan notifyqueue.Item, 1)
	co := New(cfg, Deps{
		Backup: bsvc,
		Notify: queue,
		Dispatch: func(item notifyqueue.Item) error {
			dispatched <- item
			return nil
		},
	}, nil)

	co.Start(context.Background())
	assert.True(t, co.IsRunning())

	queue.Enqueue(1, notifyqueue.KindTest, notifyqueue.Payload{Title: "hi"}, 5)

	select {
	case item := <-dispatched:
		assert.Equal(t, notifyqueue.KindTest, item.Kind)
	case <-time.After(2 * time.Second):
		t.Fatal("expected notification to be dispatched")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, co.Shutdown(ctx))
	assert.False(t, co.IsRunning())
}

func TestCoordinatorUptimeZeroBeforeStart(t *testing.T) {
	cfg := testConfig(t)
	co := New(cfg, Deps{}, nil)
	assert.Equal(t, time.Duration(0), co.Uptime())
}
