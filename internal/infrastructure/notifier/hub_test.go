package notifier

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truvamate/internal/domain/entity"
)

func TestPushQueuesToast(t *testing.T) {
	hub := NewHub(time.Minute)

	hub.Push("u1", "Added to cart", entity.ToastSuccess)
	hub.Push("u1", "Item removed from cart", entity.ToastInfo)

	queue := hub.List("u1")
	require.Len(t, queue, 2)
	assert.Equal(t, "Added to cart", queue[0].Message)
	assert.Equal(t, entity.ToastSuccess, queue[0].Severity)
	assert.NotEqual(t, queue[0].ID, queue[1].ID)

	assert.Empty(t, hub.List("u2"))
}

func TestToastAutoDismisses(t *testing.T) {
	hub := NewHub(20 * time.Millisecond)

	hub.Push("u1", "Order placed successfully", entity.ToastSuccess)
	require.Len(t, hub.List("u1"), 1)

	assert.Eventually(t, func() bool {
		return len(hub.List("u1")) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestEachToastExpiresIndependently(t *testing.T) {
	hub := NewHub(40 * time.Millisecond)

	hub.Push("u1", "first", entity.ToastInfo)
	time.Sleep(25 * time.Millisecond)
	hub.Push("u1", "second", entity.ToastInfo)

	assert.Eventually(t, func() bool {
		queue := hub.List("u1")
		return len(queue) == 1 && queue[0].Message == "second"
	}, time.Second, 5*time.Millisecond)

	assert.Eventually(t, func() bool {
		return len(hub.List("u1")) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestManualDismissCancelsTimer(t *testing.T) {
	hub := NewHub(30 * time.Millisecond)

	hub.Push("u1", "dismiss me", entity.ToastInfo)
	queue := hub.List("u1")
	require.Len(t, queue, 1)

	hub.Dismiss("u1", queue[0].ID)
	assert.Empty(t, hub.List("u1"))

	// The expired timer must not fire against a new queue entry.
	hub.Push("u1", "survivor", entity.ToastInfo)
	time.Sleep(10 * time.Millisecond)
	assert.Len(t, hub.List("u1"), 1)
}

func TestConcurrentPushesReachConnectedClient(t *testing.T) {
	hub := NewHub(time.Minute)
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	registered := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register("u1", conn)
		close(registered)
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()
	<-registered

	const pushes = 50
	var wg sync.WaitGroup
	for i := 0; i < pushes; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			hub.Push("u1", fmt.Sprintf("Added to cart #%d", n), entity.ToastInfo)
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for i := 0; i < pushes; i++ {
		var toast entity.Toast
		require.NoError(t, conn.ReadJSON(&toast))
		seen[toast.Message] = true
	}
	assert.Len(t, seen, pushes)
}

func TestDismissUnknownIDIsNoop(t *testing.T) {
	hub := NewHub(time.Minute)

	hub.Push("u1", "keep me", entity.ToastInfo)
	hub.Dismiss("u1", "ghost-id")
	hub.Dismiss("u2", "ghost-id")

	assert.Len(t, hub.List("u1"), 1)
}
