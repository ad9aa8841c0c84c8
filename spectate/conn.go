package spectate

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/rs/zerolog"
)

const (
	sendBuffer   = 16
	writeTimeout = 5 * time.Second
)

// conn is one watcher. Writes go through a buffered channel drained by
// writeLoop; a slow watcher loses frames instead of stalling the match.
type conn struct {
	ws     *websocket.Conn
	id     uint64
	sendCh chan []byte
	done   chan struct{}
	once   sync.Once
	log    zerolog.Logger
}

func newConn(ws *websocket.Conn, id uint64, log zerolog.Logger) *conn {
	return &conn{
		ws:     ws,
		id:     id,
		sendCh: make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
		log:    log.With().Uint64("watcher", id).Logger(),
	}
}

// send queues data, dropping it when the buffer is full
func (c *conn) send(data []byte) bool {
	select {
	case c.sendCh <- data:
		return true
	default:
		return false
	}
}

func (c *conn) writeLoop(ctx context.Context) {
	for {
		select {
		case data := <-c.sendCh:
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := c.ws.Write(wctx, websocket.MessageText, data)
			cancel()
			if err != nil {
				c.log.Debug().Err(err).Msg("write failed")
				c.close()
				return
			}
		case <-c.done:
			return
		case <-ctx.Done():
			c.close()
			return
		}
	}
}

// readLoop discards anything the watcher sends and notices disconnects
func (c *conn) readLoop(ctx context.Context) {
	for {
		if _, _, err := c.ws.Read(ctx); err != nil {
			c.close()
			return
		}
	}
}

func (c *conn) close() {
	c.once.Do(func() {
		close(c.done)
		_ = c.ws.Close(websocket.StatusNormalClosure, "")
	})
}
