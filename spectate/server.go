package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Server serves the hub over HTTP. /ws is the snapshot feed and /health
// reports hub counters.
type Server struct {
	hub  *Hub
	http *http.Server
	log  zerolog.Logger
}

// NewServer wires hub to a mux listening on addr
func NewServer(addr string, hub *Hub, log zerolog.Logger) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", hub.HandleWS)
	mux.HandleFunc("GET /health", health(hub))

	return &Server{
		hub: hub,
		log: log,
		http: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start listens on the configured address and serves in the background.
// It returns the bound address, useful when the port was 0.
func (s *Server) Start() (string, error) {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return "", err
	}

	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("spectate server stopped")
		}
	}()

	addr := ln.Addr().String()
	s.log.Info().Str("addr", addr).Msg("spectate server listening")
	return addr, nil
}

// Shutdown closes every watcher and stops the listener
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	return s.http.Shutdown(ctx)
}

func health(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(hub.Stats())
	}
}
