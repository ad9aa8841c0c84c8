// Package spectate streams match snapshots to read-only websocket watchers.
package spectate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/automoto/tkuet-fighter/core"
	"github.com/coder/websocket"
	"github.com/rs/zerolog"
)

// Stats is a point-in-time view of the hub
type Stats struct {
	Watchers    int    `json:"watchers"`
	Connections uint64 `json:"connections"`
	Frames      uint64 `json:"frames"`
	Dropped     uint64 `json:"dropped"`
}

// Hub fans snapshots out to every connected watcher
type Hub struct {
	mu       sync.Mutex
	conns    map[uint64]*conn
	interval time.Duration
	lastSent time.Duration
	sentAny  bool
	log      zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	nextID      atomic.Uint64
	connections atomic.Uint64
	frames      atomic.Uint64
	dropped     atomic.Uint64
}

// NewHub creates a hub that publishes at most one snapshot per interval of
// match time. A zero interval publishes every snapshot.
func NewHub(interval time.Duration, log zerolog.Logger) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		conns:    make(map[uint64]*conn),
		interval: interval,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// HandleWS upgrades the request and keeps the watcher attached until it
// disconnects or the hub closes.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket accept failed")
		return
	}
	// Watchers never need to send anything larger than a close frame
	ws.SetReadLimit(512)

	c := newConn(ws, h.nextID.Add(1), h.log)
	h.connections.Add(1)

	h.mu.Lock()
	h.conns[c.id] = c
	h.mu.Unlock()
	c.log.Info().Str("remote", r.RemoteAddr).Msg("watcher connected")

	go c.writeLoop(h.ctx)
	go c.readLoop(h.ctx)

	<-c.done

	h.mu.Lock()
	delete(h.conns, c.id)
	h.mu.Unlock()
	c.log.Info().Msg("watcher disconnected")
}

// Publish encodes s and queues it for every watcher, unless less than the
// hub interval of match time has passed since the last frame. A new round
// (match time going backwards) always publishes.
func (h *Hub) Publish(s core.Snapshot) error {
	h.mu.Lock()
	if h.sentAny && s.Now >= h.lastSent && s.Now-h.lastSent < h.interval {
		h.mu.Unlock()
		return nil
	}
	h.lastSent = s.Now
	h.sentAny = true
	h.mu.Unlock()

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	h.Broadcast(data)
	return nil
}

// Broadcast queues raw data for every watcher
func (h *Hub) Broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.frames.Add(1)
	for _, c := range h.conns {
		if !c.send(data) {
			h.dropped.Add(1)
		}
	}
}

// Stats returns the current counters
func (h *Hub) Stats() Stats {
	h.mu.Lock()
	n := len(h.conns)
	h.mu.Unlock()
	return Stats{
		Watchers:    n,
		Connections: h.connections.Load(),
		Frames:      h.frames.Load(),
		Dropped:     h.dropped.Load(),
	}
}

// Close disconnects every watcher
func (h *Hub) Close() {
	h.cancel()

	h.mu.Lock()
	conns := make([]*conn, 0, len(h.conns))
	for _, c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		c.close()
	}
}
