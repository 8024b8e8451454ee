package server

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/stepwiselabs/stepwise/internal/protocol"
	"github.com/stepwiselabs/stepwise/internal/tutor"
)

// Session binds one websocket connection to one orchestrator. Outbound
// messages flow through a buffered queue drained by a single writer
// goroutine, so the orchestrator never blocks on a slow client.
type Session struct {
	ID        string
	StudentID string

	conn *websocket.Conn
	orch *tutor.Orchestrator

	outbound  chan []byte
	closeOnce sync.Once
	done      chan struct{}
}

const outboundQueueSize = 256

func newSession(id, studentID string, conn *websocket.Conn) *Session {
	return &Session{
		ID:        id,
		StudentID: studentID,
		conn:      conn,
		outbound:  make(chan []byte, outboundQueueSize),
		done:      make(chan struct{}),
	}
}

// Emit implements tutor.Emitter: encode and queue. A full queue drops the
// frame rather than stalling generation; the client is already far behind.
func (s *Session) Emit(msg protocol.ServerMessage) {
	data, err := protocol.Encode(msg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: encode %s: %v\n", protocol.MessageType(msg), err)
		return
	}
	select {
	case <-s.done:
	case s.outbound <- data:
	default:
		fmt.Fprintf(os.Stderr, "warning: session %s outbound queue full, dropping %s\n",
			s.ID, protocol.MessageType(msg))
	}
}

// writePump drains the outbound queue onto the socket and keeps the
// connection alive with pings. Exits when the session closes.
func (s *Session) writePump(pingInterval, writeTimeout time.Duration) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			deadline := time.Now().Add(writeTimeout)
			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
			return
		case data := <-s.outbound:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				s.close()
				return
			}
		case <-ticker.C:
			deadline := time.Now().Add(writeTimeout)
			if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				s.close()
				return
			}
		}
	}
}

// close signals shutdown to both pumps. Idempotent.
func (s *Session) close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}
