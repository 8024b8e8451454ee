package server

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/stepwiselabs/stepwise/internal/llm"
	"github.com/stepwiselabs/stepwise/internal/speech"
)

func newTestServer(t *testing.T, scripts ...llm.MockScript) (*Server, *httptest.Server) {
	t.Helper()
	srv := New(Config{
		Streamer: llm.NewMockStreamer(scripts...),
		Synth:    &speech.NullSynthesizer{MsPerChar: 1},
	})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func dialWS(t *testing.T, ts *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	if query != "" {
		url += "?" + query
	}
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readFrame decodes the next text frame into its discriminator and body.
func readFrame(t *testing.T, conn *websocket.Conn) (string, map[string]any) {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("decode frame %s: %v", data, err)
	}
	msgType, _ := body["type"].(string)
	return msgType, body
}

// collectUntil reads frames until msgType arrives, returning every frame
// type seen on the way (inclusive).
func collectUntil(t *testing.T, conn *websocket.Conn, msgType string) []string {
	t.Helper()
	var seen []string
	for i := 0; i < 100; i++ {
		ft, _ := readFrame(t, conn)
		seen = append(seen, ft)
		if ft == msgType {
			return seen
		}
	}
	t.Fatalf("never saw %q, got %v", msgType, seen)
	return nil
}

func TestExplanationOverWire(t *testing.T) {
	_, ts := newTestServer(t, llm.MockScript{
		Tokens: []string{"Subtract 3 from both sides: ", "2x = 4."},
	})
	conn := dialWS(t, ts, "")

	err := conn.WriteJSON(map[string]string{
		"type": "user_message",
		"text": "Solve 2x + 3 = 7",
	})
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	seen := collectUntil(t, conn, "teacher_waiting")

	var hasStep, hasMessage bool
	for _, ft := range seen {
		switch ft {
		case "equation_step":
			hasStep = true
		case "ai_message":
			hasMessage = true
		}
	}
	if !hasStep {
		t.Errorf("no equation_step frame in %v", seen)
	}
	if !hasMessage {
		t.Errorf("no ai_message frame in %v", seen)
	}
	if seen[0] != "teacher_thinking" {
		t.Errorf("first frame = %q, want teacher_thinking", seen[0])
	}
}

func TestUnknownTypeKeepsConnectionAlive(t *testing.T) {
	_, ts := newTestServer(t, llm.MockScript{
		Tokens: []string{"Add 1: x = 3."},
	})
	conn := dialWS(t, ts, "")

	if err := conn.WriteJSON(map[string]string{"type": "no_such_type"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	ft, body := readFrame(t, conn)
	if ft != "error" {
		t.Fatalf("frame type = %q, want error", ft)
	}
	if code, _ := body["code"].(string); code != "unknown_type" {
		t.Errorf("error code = %q, want unknown_type", code)
	}

	// The channel survives; a valid message still works.
	if err := conn.WriteJSON(map[string]string{
		"type": "user_message",
		"text": "Solve x + 1 = 4",
	}); err != nil {
		t.Fatalf("write after error: %v", err)
	}
	collectUntil(t, conn, "teacher_waiting")
}

func TestSessionRegistryLifecycle(t *testing.T) {
	srv, ts := newTestServer(t)
	conn := dialWS(t, ts, "session_id=sess-42&student_id=alex")

	// Registration happens during the handshake; poll briefly.
	deadline := time.Now().Add(2 * time.Second)
	for srv.Registry().Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	sess, err := srv.Registry().Get("sess-42")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if sess.StudentID != "alex" {
		t.Errorf("studentID = %q, want alex", sess.StudentID)
	}

	conn.Close()
	deadline = time.Now().Add(2 * time.Second)
	for srv.Registry().Len() != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if srv.Registry().Len() != 0 {
		t.Error("session not removed after disconnect")
	}

	_, err = srv.Registry().Get("sess-42")
	var notFound *ErrSessionNotFound
	if !errors.As(err, &notFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestCloseMessageEndsSession(t *testing.T) {
	srv, ts := newTestServer(t)
	conn := dialWS(t, ts, "session_id=sess-close")

	deadline := time.Now().Add(2 * time.Second)
	for srv.Registry().Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if err := conn.WriteJSON(map[string]string{"type": "close"}); err != nil {
		t.Fatalf("write close: %v", err)
	}

	deadline = time.Now().Add(2 * time.Second)
	for srv.Registry().Len() != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if srv.Registry().Len() != 0 {
		t.Error("close message did not tear down the session")
	}
}
