package spectate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/automoto/tkuet-fighter/clock"
	"github.com/automoto/tkuet-fighter/components"
	"github.com/automoto/tkuet-fighter/core"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wsURL(httpURL string) string {
	return "ws" + strings.TrimPrefix(httpURL, "http")
}

func TestHubThrottlesByMatchTime(t *testing.T) {
	hub := NewHub(100*time.Millisecond, zerolog.Nop())
	defer hub.Close()

	for _, now := range []time.Duration{0, 50, 99, 100, 150, 230} {
		require.NoError(t, hub.Publish(core.Snapshot{Now: now * time.Millisecond}))
	}
	assert.Equal(t, uint64(3), hub.Stats().Frames)

	// A reset rewinds match time and publishes straight away
	require.NoError(t, hub.Publish(core.Snapshot{Now: 10 * time.Millisecond}))
	assert.Equal(t, uint64(4), hub.Stats().Frames)
}

func TestWatcherReceivesMatchSnapshots(t *testing.T) {
	hub := NewHub(0, zerolog.Nop())
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	defer srv.Close()
	defer hub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	w := NewWatcher(zerolog.Nop())
	require.NoError(t, w.Connect(ctx, wsURL(srv.URL)))
	defer w.Disconnect()
	assert.Equal(t, StateConnected, w.State())

	require.Eventually(t, func() bool { return hub.Stats().Watchers == 1 }, 2*time.Second, 10*time.Millisecond)

	clk := clock.NewManual()
	m := core.New(core.Options{Rules: cfg.CurrentRules(), Clock: clk, Logger: zerolog.Nop(), Seed: 7})
	clk.Advance(16 * time.Millisecond)
	m.Tick(components.InputSnapshot{})
	require.NoError(t, hub.Publish(m.Snapshot()))

	select {
	case s := <-w.Snapshots():
		assert.Equal(t, uint64(1), s.Tick)
		assert.Equal(t, "running", s.State)
		require.Len(t, s.Fighters, 2)
		assert.Equal(t, "玩家一", s.Fighters[0].Name)
		assert.Len(t, s.Platforms, 3)
	case <-ctx.Done():
		t.Fatal("no snapshot received")
	}
}

func TestWatcherConnectFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	w := NewWatcher(zerolog.Nop())
	err := w.Connect(ctx, "ws://127.0.0.1:1/ws")
	require.Error(t, err)
	assert.Equal(t, StateError, w.State())
	assert.ErrorContains(t, w.LastError(), "dial")
}

func TestServerHealth(t *testing.T) {
	hub := NewHub(0, zerolog.Nop())
	s := NewServer("127.0.0.1:0", hub, zerolog.Nop())
	addr, err := s.Start()
	require.NoError(t, err)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	}()

	hub.Broadcast([]byte(`{}`))

	resp, err := http.Get("http://" + addr + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var stats Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, uint64(1), stats.Frames)
	assert.Zero(t, stats.Watchers)
}
