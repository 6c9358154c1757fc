package hub_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eventkit/pkg/hub"
)

func TestHub_SubscribePublish(t *testing.T) {
	t.Parallel()

	h := hub.New[string]()
	defer h.Close()

	var first, second []string
	sub1, err := h.Subscribe("greetings", func(v string) {
		first = append(first, v)
	})
	require.NoError(t, err)
	defer sub1.Unsubscribe()

	sub2, err := h.Subscribe("greetings", func(v string) {
		second = append(second, v)
	})
	require.NoError(t, err)
	defer sub2.Unsubscribe()

	require.NoError(t, h.Publish("greetings", "hello"))
	require.NoError(t, h.Publish("greetings", "world"))

	assert.Equal(t, []string{"hello", "world"}, first)
	assert.Equal(t, []string{"hello", "world"}, second)
	assert.Equal(t, 2, h.Count("greetings"))
}

func TestHub_SubscribeValidation(t *testing.T) {
	t.Parallel()

	h := hub.New[int]()
	defer h.Close()

	t.Run("empty topic", func(t *testing.T) {
		sub, err := h.Subscribe("", func(int) {})
		require.ErrorIs(t, err, hub.ErrEmptyTopic)
		assert.Nil(t, sub)
	})

	t.Run("nil handler", func(t *testing.T) {
		sub, err := h.Subscribe("numbers", nil)
		require.ErrorIs(t, err, hub.ErrNilHandler)
		assert.Nil(t, sub)
	})
}

func TestHub_PublishValidation(t *testing.T) {
	t.Parallel()

	h := hub.New[int]()
	defer h.Close()

	require.ErrorIs(t, h.Publish("", 1), hub.ErrEmptyTopic)

	// Unknown topics deliver to nobody without failing.
	require.NoError(t, h.Publish("nobody-listens", 1))
}

func TestHub_Unsubscribe(t *testing.T) {
	t.Parallel()

	h := hub.New[int]()
	defer h.Close()

	var got int
	sub, err := h.Subscribe("numbers", func(v int) {
		got = v
	})
	require.NoError(t, err)

	require.NoError(t, h.Publish("numbers", 42))
	assert.Equal(t, 42, got)

	assert.True(t, sub.Unsubscribe())
	assert.False(t, sub.Unsubscribe(), "second Unsubscribe should report inactive")

	// The topic was pruned with its last subscriber.
	assert.Zero(t, h.Count("numbers"))
	assert.Empty(t, h.Topics())

	require.NoError(t, h.Publish("numbers", 7))
	assert.Equal(t, 42, got, "unsubscribed callback should not fire")
}

func TestHub_TopicIsolation(t *testing.T) {
	t.Parallel()

	h := hub.New[string]()
	defer h.Close()

	var orders, payments []string
	subOrders, err := h.Subscribe("orders", func(v string) {
		orders = append(orders, v)
	})
	require.NoError(t, err)
	defer subOrders.Unsubscribe()

	subPayments, err := h.Subscribe("payments", func(v string) {
		payments = append(payments, v)
	})
	require.NoError(t, err)
	defer subPayments.Unsubscribe()

	require.NoError(t, h.Publish("orders", "ord_1"))

	assert.Equal(t, []string{"ord_1"}, orders)
	assert.Empty(t, payments)
}

func TestHub_TopicsSorted(t *testing.T) {
	t.Parallel()

	h := hub.New[int]()
	defer h.Close()

	for _, topic := range []string{"charlie", "alpha", "bravo"} {
		_, err := h.Subscribe(topic, func(int) {})
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, h.Topics())
}

func TestHub_Close(t *testing.T) {
	t.Parallel()

	h := hub.New[int]()

	sub, err := h.Subscribe("numbers", func(int) {})
	require.NoError(t, err)

	require.NoError(t, h.Close())
	assert.ErrorIs(t, h.Close(), hub.ErrClosed, "second close should fail")

	_, err = h.Subscribe("numbers", func(int) {})
	assert.ErrorIs(t, err, hub.ErrClosed)
	assert.ErrorIs(t, h.Publish("numbers", 1), hub.ErrClosed)

	assert.False(t, sub.Unsubscribe(), "subscriptions become inert after close")
	assert.Empty(t, h.Topics())
	assert.Zero(t, h.Count("numbers"))
}

func TestHub_PublishAsync(t *testing.T) {
	t.Parallel()

	t.Run("delivers and resolves", func(t *testing.T) {
		t.Parallel()

		h := hub.New[int]()
		defer h.Close()

		var got atomic.Int64
		sub, err := h.Subscribe("numbers", func(v int) {
			got.Store(int64(v))
		})
		require.NoError(t, err)
		defer sub.Unsubscribe()

		future := h.PublishAsync(context.Background(), "numbers", 99)
		require.NoError(t, future.Await())
		assert.Equal(t, int64(99), got.Load())
	})

	t.Run("resolves with publish error", func(t *testing.T) {
		t.Parallel()

		h := hub.New[int]()
		require.NoError(t, h.Close())

		future := h.PublishAsync(context.Background(), "numbers", 1)
		assert.ErrorIs(t, future.Await(), hub.ErrClosed)
	})

	t.Run("pre-cancelled context short-circuits", func(t *testing.T) {
		t.Parallel()

		h := hub.New[int]()
		defer h.Close()

		delivered := false
		sub, err := h.Subscribe("numbers", func(int) {
			delivered = true
		})
		require.NoError(t, err)
		defer sub.Unsubscribe()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		future := h.PublishAsync(ctx, "numbers", 1)
		assert.ErrorIs(t, future.Await(), context.Canceled)
		assert.False(t, delivered)
	})
}

func TestHub_Metrics(t *testing.T) {
	t.Parallel()

	type change struct {
		topic string
		count int
	}

	var changes []change
	h := hub.New[int](hub.WithMetrics(func(topic string, subscribers int) {
		changes = append(changes, change{topic, subscribers})
	}))

	sub1, err := h.Subscribe("metrics", func(int) {})
	require.NoError(t, err)
	sub2, err := h.Subscribe("metrics", func(int) {})
	require.NoError(t, err)

	assert.True(t, sub1.Unsubscribe())
	assert.True(t, sub2.Unsubscribe())

	require.NoError(t, h.Close())

	assert.Equal(t, []change{
		{"metrics", 1},
		{"metrics", 2},
		{"metrics", 1},
		{"metrics", 0},
	}, changes, "every subscriber-count change should be reported")
}

func TestHub_CloseReportsDroppedTopics(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	got := map[string]int{}
	h := hub.New[int](hub.WithMetrics(func(topic string, subscribers int) {
		mu.Lock()
		got[topic] = subscribers
		mu.Unlock()
	}))

	_, err := h.Subscribe("a", func(int) {})
	require.NoError(t, err)
	_, err = h.Subscribe("b", func(int) {})
	require.NoError(t, err)

	require.NoError(t, h.Close())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, map[string]int{"a": 0, "b": 0}, got,
		"close should report zero subscribers for every dropped topic")
}

func TestHub_ConcurrentPublishSubscribe(t *testing.T) {
	t.Parallel()

	h := hub.New[int]()
	defer h.Close()

	var delivered atomic.Int64
	resident, err := h.Subscribe("stress", func(int) {
		delivered.Add(1)
	})
	require.NoError(t, err)
	defer resident.Unsubscribe()

	var wg sync.WaitGroup

	// Publishers hammer the topic while churners add and remove subscribers.
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				if err := h.Publish("stress", i); err != nil {
					t.Error("publish failed:", err)
					return
				}
			}
		}()
	}

	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				sub, err := h.Subscribe("stress", func(int) {})
				if err != nil {
					t.Error("subscribe failed:", err)
					return
				}
				if !sub.Unsubscribe() {
					t.Error("unsubscribe reported inactive for a live subscription")
					return
				}
			}
		}()
	}

	waitDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(10 * time.Second):
		t.Fatal("concurrent hub operations did not finish in time")
	}

	// Only the resident subscriber remains.
	assert.Equal(t, 1, h.Count("stress"))
	assert.GreaterOrEqual(t, delivered.Load(), int64(800),
		"resident subscriber should have seen every publish")
}

func TestSubscription_Metadata(t *testing.T) {
	t.Parallel()

	h := hub.New[int]()
	defer h.Close()

	sub1, err := h.Subscribe("meta", func(int) {})
	require.NoError(t, err)
	sub2, err := h.Subscribe("meta", func(int) {})
	require.NoError(t, err)

	assert.Equal(t, "meta", sub1.Topic())
	assert.NotEmpty(t, sub1.ID())
	assert.NotEqual(t, sub1.ID(), sub2.ID(), "subscription IDs should be unique")
}
