package spectate

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/automoto/tkuet-fighter/core"
	"github.com/coder/websocket"
	"github.com/rs/zerolog"
)

type WatcherState int

const (
	StateDisconnected WatcherState = iota
	StateConnecting
	StateConnected
	StateError
)

// Watcher follows a spectate feed. The read loop runs on its own goroutine,
// so all shared fields are protected by mu.
type Watcher struct {
	mu sync.RWMutex

	state     WatcherState
	lastError error
	conn      *websocket.Conn
	received  uint64
	log       zerolog.Logger

	snapshotCh chan core.Snapshot // size-1 buffered; latest wins
}

func NewWatcher(log zerolog.Logger) *Watcher {
	return &Watcher{
		state:      StateDisconnected,
		log:        log,
		snapshotCh: make(chan core.Snapshot, 1),
	}
}

// Connect dials url and starts reading snapshots until ctx ends or the
// feed closes.
func (w *Watcher) Connect(ctx context.Context, url string) error {
	w.mu.Lock()
	w.state = StateConnecting
	w.lastError = nil
	w.mu.Unlock()

	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		err = fmt.Errorf("dial %s: %w", url, err)
		w.setError(err)
		return err
	}
	conn.SetReadLimit(1 << 20)

	w.mu.Lock()
	w.conn = conn
	w.state = StateConnected
	w.mu.Unlock()
	w.log.Info().Str("url", url).Msg("watching")

	go w.readLoop(ctx, conn)
	return nil
}

func (w *Watcher) readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			w.log.Debug().Err(err).Msg("feed closed")
			w.mu.Lock()
			if w.state != StateError {
				w.state = StateDisconnected
			}
			w.conn = nil
			w.mu.Unlock()
			return
		}

		var s core.Snapshot
		if err := json.Unmarshal(data, &s); err != nil {
			w.log.Warn().Err(err).Msg("bad snapshot")
			continue
		}

		w.mu.Lock()
		w.received++
		w.mu.Unlock()

		select { // drain stale, push latest
		case <-w.snapshotCh:
		default:
		}
		w.snapshotCh <- s
	}
}

// Disconnect closes the feed
func (w *Watcher) Disconnect() {
	w.mu.Lock()
	conn := w.conn
	w.state = StateDisconnected
	w.conn = nil
	w.mu.Unlock()

	if conn != nil {
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}
}

func (w *Watcher) State() WatcherState {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state
}

func (w *Watcher) LastError() error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.lastError
}

// Received counts decoded snapshots, including ones superseded before
// they were read.
func (w *Watcher) Received() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.received
}

// LatestSnapshot returns the most recent snapshot, or nil. Non-blocking.
func (w *Watcher) LatestSnapshot() *core.Snapshot {
	select {
	case s := <-w.snapshotCh:
		return &s
	default:
		return nil
	}
}

// Snapshots exposes the latest-wins channel for callers that want to block
func (w *Watcher) Snapshots() <-chan core.Snapshot {
	return w.snapshotCh
}

func (w *Watcher) setError(err error) {
	w.mu.Lock()
	w.state = StateError
	w.lastError = err
	w.mu.Unlock()
}
