package token

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignalThenWait(t *testing.T) {
	t.Parallel()
	tok := New()
	tok.Signal()
	err := tok.Wait(context.Background())
	require.NoError(t, err)
}

func TestCoalescedSignals(t *testing.T) {
	t.Parallel()
	tok := New()
	tok.Signal()
	tok.Signal()
	tok.Signal()

	require.NoError(t, tok.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := tok.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitBlocksUntilSignal(t *testing.T) {
	t.Parallel()
	tok := New()
	done := make(chan struct{})
	go func() {
		require.NoError(t, tok.Wait(context.Background()))
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("wait returned before signal")
	case <-time.After(20 * time.Millisecond):
	}

	tok.Signal()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("wait did not return after signal")
	}
}

func TestWaitContextCancelled(t *testing.T) {
	t.Parallel()
	tok := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := tok.Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
