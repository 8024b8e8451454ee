// Package server exposes tutoring sessions over a websocket endpoint.
// Each connection gets its own session and orchestrator; the protocol
// package defines the frames exchanged on the wire.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/stepwiselabs/stepwise/internal/llm"
	"github.com/stepwiselabs/stepwise/internal/protocol"
	"github.com/stepwiselabs/stepwise/internal/speech"
	"github.com/stepwiselabs/stepwise/internal/store"
	"github.com/stepwiselabs/stepwise/internal/tutor"
)

// Config holds the server's tunables and shared collaborators.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	Streamer llm.Streamer
	Synth    speech.Synthesizer
	Events   store.EventRepo
	Docs     store.DocRepo

	// MaxMessageBytes caps inbound frames. Zero means 64 KiB.
	MaxMessageBytes int64
	// PingInterval defaults to 20s, WriteTimeout to 5s.
	PingInterval time.Duration
	WriteTimeout time.Duration
	// CheckOrigin overrides the upgrader's origin policy. Nil allows all,
	// which suits same-host deployments behind a gateway.
	CheckOrigin func(r *http.Request) bool
}

// Server routes websocket connections to per-session orchestrators.
type Server struct {
	cfg      Config
	registry *Registry
}

// New creates a Server.
func New(cfg Config) *Server {
	if cfg.MaxMessageBytes <= 0 {
		cfg.MaxMessageBytes = 64 * 1024
	}
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = 20 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}
	return &Server{cfg: cfg, registry: NewRegistry()}
}

// Registry exposes the live session registry.
func (s *Server) Registry() *Registry {
	return s.registry
}

// Handler returns the HTTP mux: /ws for sessions, /healthz for probes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	return mux
}

// ListenAndServe runs the server until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Addr, Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// handleWS upgrades the connection and runs the session until the client
// disconnects or sends a close message.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	checkOrigin := s.cfg.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}
	upgrader := websocket.Upgrader{CheckOrigin: checkOrigin}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.cfg.MaxMessageBytes)

	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	studentID := r.URL.Query().Get("student_id")

	sess := newSession(sessionID, studentID, conn)
	if err := s.registry.Add(sess); err != nil {
		_ = conn.WriteMessage(websocket.TextMessage, mustEncode(protocol.ErrorNotice{
			Code: "duplicate_session", Message: err.Error(),
		}))
		return
	}
	defer s.registry.Remove(sessionID)

	orch := tutor.New(tutor.Config{
		SessionID: sessionID,
		StudentID: studentID,
		Streamer:  s.cfg.Streamer,
		Synth:     s.cfg.Synth,
		Events:    s.cfg.Events,
		Docs:      s.cfg.Docs,
	}, sess)
	sess.orch = orch

	if err := orch.Start(r.Context()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: session %s start: %v\n", sessionID, err)
	}
	defer orch.Shutdown(context.Background())
	defer sess.close()

	go sess.writePump(s.cfg.PingInterval, s.cfg.WriteTimeout)

	s.readLoop(sess)
}

// readLoop parses and dispatches inbound frames until the connection dies.
// A malformed frame is answered with an error notice, never a disconnect.
func (s *Server) readLoop(sess *Session) {
	for {
		msgType, data, err := sess.conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			sess.Emit(protocol.ErrorNotice{Code: "bad_frame", Message: "frames must be text"})
			continue
		}

		msg, err := protocol.ParseClientMessage(data)
		if err != nil {
			var unknown *protocol.ErrUnknownType
			code := "bad_frame"
			if errors.As(err, &unknown) {
				code = "unknown_type"
			}
			sess.Emit(protocol.ErrorNotice{Code: code, Message: err.Error()})
			continue
		}

		if _, ok := msg.(protocol.Close); ok {
			return
		}
		sess.orch.Dispatch(context.Background(), msg)
	}
}

func mustEncode(msg protocol.ServerMessage) []byte {
	data, err := protocol.Encode(msg)
	if err != nil {
		panic(err)
	}
	return data
}
