// ABOUTME: Session state machine driving a single analysis at a time
// ABOUTME: Tracks idle/analyzing/result/error phases with one in-flight request

package sniffclient

import (
	"context"
	"sync"
)

// Phase is the observable state of a session
type Phase string

const (
	// PhaseIdle means no analysis is running and none has completed yet,
	// or the session is ready for resubmission
	PhaseIdle Phase = "idle"

	// PhaseAnalyzing means a request is in flight
	PhaseAnalyzing Phase = "analyzing"

	// PhaseResult means the last submission completed successfully
	PhaseResult Phase = "result"

	// PhaseError means the last submission failed
	PhaseError Phase = "error"
)

// Session owns the state of consecutive analysis submissions. At most one
// request is in flight at a time; submissions made while one is outstanding
// are rejected.
type Session struct {
	client *Client

	mu       sync.Mutex
	phase    Phase
	inFlight bool
	result   *Result
	err      error
}

// NewSession creates a session over the given client
func NewSession(client *Client) *Session {
	return &Session{
		client: client,
		phase:  PhaseIdle,
	}
}

// Submit runs one analysis. It rejects concurrent submissions, clears any
// prior result, and always releases the in-flight flag on completion.
func (s *Session) Submit(ctx context.Context, urlOrText string) (*Result, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrAnalysisInFlight
	}
	s.inFlight = true
	s.phase = PhaseAnalyzing
	s.result = nil
	s.err = nil
	s.mu.Unlock()

	result, err := s.client.Analyze(ctx, urlOrText)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if err != nil {
		s.phase = PhaseError
		s.err = err
		return nil, err
	}
	s.phase = PhaseResult
	s.result = result
	return result, nil
}

// Phase returns the current session phase
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// InFlight reports whether a request is outstanding
func (s *Session) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Result returns the last successful result, if any
func (s *Session) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Err returns the last submission error, if any
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Reset returns the session to the idle phase, discarding any prior
// result or error. It does nothing while a request is in flight.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return
	}
	s.phase = PhaseIdle
	s.result = nil
	s.err = nil
}
