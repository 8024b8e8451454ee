package llm

import (
	"context"
	"io"
	"sync"
)

// MockScript is a canned token sequence for the MockStreamer.
type MockScript struct {
	Tokens []string
	// OpenErr fails the Stream call itself.
	OpenErr error
	// StreamErr terminates the stream after Tokens are exhausted,
	// in place of io.EOF.
	StreamErr error
}

// MockStreamer is a deterministic Streamer for testing.
// It plays canned scripts in FIFO order and records all requests.
type MockStreamer struct {
	mu      sync.Mutex
	scripts []MockScript
	Calls   []Request
}

// NewMockStreamer creates a MockStreamer with the given canned scripts.
func NewMockStreamer(scripts ...MockScript) *MockStreamer {
	return &MockStreamer{scripts: scripts}
}

// Stream plays the next canned script or returns ErrProviderUnavailable
// if the queue is empty.
func (m *MockStreamer) Stream(ctx context.Context, req Request) (TokenStream, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.scripts) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	script := m.scripts[0]
	m.scripts = m.scripts[1:]

	if script.OpenErr != nil {
		return nil, script.OpenErr
	}

	return &mockStream{ctx: ctx, script: script}, nil
}

// ModelID returns "mock".
func (m *MockStreamer) ModelID() string {
	return "mock"
}

// AddScript appends a canned script to the queue.
func (m *MockStreamer) AddScript(script MockScript) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scripts = append(m.scripts, script)
}

// CallCount returns the number of Stream calls made.
func (m *MockStreamer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastCall returns the most recent request, or a zero Request.
func (m *MockStreamer) LastCall() Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return Request{}
	}
	return m.Calls[len(m.Calls)-1]
}

type mockStream struct {
	ctx    context.Context
	script MockScript
	pos    int
	closed bool
}

// Next checks for cancellation between yields, like a real backend stream.
func (s *mockStream) Next() (string, error) {
	if s.ctx.Err() != nil || s.closed {
		return "", context.Canceled
	}
	if s.pos < len(s.script.Tokens) {
		token := s.script.Tokens[s.pos]
		s.pos++
		return token, nil
	}
	if s.script.StreamErr != nil {
		return "", s.script.StreamErr
	}
	return "", io.EOF
}

func (s *mockStream) Close() error {
	s.closed = true
	return nil
}
