//go:build unit

package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"queue-engine/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_StartStop(t *testing.T) {
	t.Run("ticks until stopped", func(t *testing.T) {
		var ticks atomic.Int32
		loop := worker.NewLoop("test", 5*time.Millisecond, func(context.Context) error {
			ticks.Add(1)
			return errors.New("keeps going")
		}, discardLogger())

		loop.Start()
		assert.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, loop.Stop(ctx))

		stopped := ticks.Load()
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, stopped, ticks.Load())
	})

	t.Run("stop cancels a running tick", func(t *testing.T) {
		started := make(chan struct{})
		loop := worker.NewLoop("blocking", time.Millisecond, func(ctx context.Context) error {
			select {
			case started <- struct{}{}:
			default:
			}
			<-ctx.Done()
			return ctx.Err()
		}, discardLogger())

		loop.Start()
		<-started

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, loop.Stop(ctx))
	})

	t.Run("stop without start is a no-op", func(t *testing.T) {
		loop := worker.NewLoop("idle", time.Second, func(context.Context) error { return nil }, discardLogger())
		assert.NoError(t, loop.Stop(context.Background()))
	})
}
