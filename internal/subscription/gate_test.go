package subscription

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeReportsQuorumOnce(t *testing.T) {
	g := NewGate(3)

	for i, want := range []bool{false, false, true, false} {
		reached, count := g.Subscribe()
		assert.Equal(t, want, reached, "subscriber %d", i+1)
		assert.Equal(t, i+1, count)
	}
	assert.Equal(t, 4, g.Count())
	assert.True(t, g.Ready())
}

func TestUnsubscribeFloorsAtZero(t *testing.T) {
	g := NewGate(2)

	ok, count := g.Unsubscribe()
	assert.True(t, ok)
	assert.Equal(t, 0, count)

	g.Subscribe()
	for range 2 {
		ok, count = g.Unsubscribe()
		assert.True(t, ok)
		assert.Equal(t, 0, count)
	}
	assert.Equal(t, 0, g.Count())
}

func TestAwaitQuorumBlocksUntilThreshold(t *testing.T) {
	g := NewGate(3)

	done := make(chan error, 1)
	go func() { done <- g.AwaitQuorum(context.Background()) }()

	g.Subscribe()
	g.Subscribe()
	select {
	case <-done:
		t.Fatal("AwaitQuorum returned before quorum")
	case <-time.After(50 * time.Millisecond):
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		g.Subscribe()
	}()
	wg.Wait()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("AwaitQuorum still blocked after quorum")
	}
}

func TestAwaitQuorumReturnsImmediatelyWhenReady(t *testing.T) {
	g := NewGate(1)
	g.Subscribe()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, g.AwaitQuorum(ctx))
}

func TestAwaitQuorumHonoursContext(t *testing.T) {
	g := NewGate(3)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, g.AwaitQuorum(ctx), context.DeadlineExceeded)
}

func TestQuorumLostRearmsGate(t *testing.T) {
	g := NewGate(2)
	g.Subscribe()
	g.Subscribe()
	require.True(t, g.Ready())

	g.Unsubscribe()
	assert.False(t, g.Ready())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, g.AwaitQuorum(ctx), context.DeadlineExceeded)

	reached, _ := g.Subscribe()
	assert.True(t, reached)
	assert.NoError(t, g.AwaitQuorum(context.Background()))
}

func TestZeroThresholdIsAlwaysReady(t *testing.T) {
	g := NewGate(0)

	assert.True(t, g.Ready())
	assert.NoError(t, g.AwaitQuorum(context.Background()))
	reached, _ := g.Subscribe()
	assert.False(t, reached)
	g.Unsubscribe()
	assert.True(t, g.Ready())
}

func TestOnChangeListeners(t *testing.T) {
	g := NewGate(2)

	var changes []bool
	g.OnChange(func(ready bool) { changes = append(changes, ready) })

	g.Subscribe()
	g.Subscribe()
	g.Subscribe()
	g.Unsubscribe()
	g.Unsubscribe()
	g.Unsubscribe()

	assert.Equal(t, []bool{true, false}, changes)
}

func TestConcurrentSubscribers(t *testing.T) {
	g := NewGate(50)

	var wg sync.WaitGroup
	reached := make(chan int, 100)
	counts := make(chan int, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, count := g.Subscribe()
			if ok {
				reached <- count
			}
			counts <- count
		}()
	}
	wg.Wait()
	close(counts)

	assert.Equal(t, 100, g.Count())
	require.Len(t, reached, 1)
	assert.Equal(t, 50, <-reached, "the quorum-completing subscriber sees exactly the threshold")

	seen := make(map[int]bool, 100)
	for count := range counts {
		assert.False(t, seen[count], "count %d returned twice", count)
		seen[count] = true
	}
	assert.Len(t, seen, 100)
}
