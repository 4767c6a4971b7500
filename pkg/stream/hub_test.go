package stream

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/protobuf/proto"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func sampleSnapshot(frame uint64) *pb.WorldSnapshot {
	return &pb.WorldSnapshot{
		Frame:      frame,
		Population: 1,
		Flocks: []*pb.FlockSnapshot{{
			Species: "fish",
			Frame:   frame,
			Boids: []*pb.BoidState{{
				Index:       0,
				Species:     "fish",
				Position:    &pb.Vec3{X: 1, Y: -2, Z: 3.5},
				Velocity:    &pb.Vec3{Z: 0.4},
				Orientation: &pb.Quat{W: 1},
			}},
		}},
	}
}

func TestHub_BroadcastsSnapshots(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	hub := NewHub(zap.New(core))
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()
	defer hub.Close()

	first, second := dial(t, srv), dial(t, srv)
	require.Eventually(t, func() bool { return hub.Clients() == 2 }, time.Second, 10*time.Millisecond)

	want := sampleSnapshot(42)
	require.NoError(t, hub.Publish(want))

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		kind, data, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, websocket.BinaryMessage, kind)

		got := &pb.WorldSnapshot{}
		require.NoError(t, proto.Unmarshal(data, got))
		assert.True(t, proto.Equal(want, got), "got %v", got)
	}
	assert.Equal(t, 2, logs.FilterMessage("subscriber joined").Len())
}

func TestHub_ForgetsDepartedSubscribers(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, 10*time.Millisecond)
	assert.NoError(t, hub.Publish(sampleSnapshot(1)))
}

func TestHub_SlowSubscriberNeverBlocks(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()
	defer hub.Close()

	dial(t, srv) // never reads
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10*sendBuffer; i++ {
			_ = hub.Publish(sampleSnapshot(uint64(i)))
		}
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}
}

func TestHub_Close(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	hub.Close()
	hub.Close()
	assert.Zero(t, hub.Clients())
	assert.ErrorIs(t, hub.Publish(sampleSnapshot(1)), ErrClosed)

	// the subscriber is told the feed is over
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)

	// and new subscribers are turned away
	late := dial(t, srv)
	require.NoError(t, late.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = late.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
}

func TestHub_ListenAndServeStopsWithContext(t *testing.T) {
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- hub.ListenAndServe(ctx, "127.0.0.1:0") }()

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe did not return after cancel")
	}
	assert.ErrorIs(t, hub.Publish(sampleSnapshot(1)), ErrClosed)
}
