package sniffclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func sessionOver(t *testing.T, handler http.HandlerFunc) *Session {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(WithBaseURL(server.URL + "/api"))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return NewSession(client)
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(Result{SuspicionScore: 25})
}

func TestSession_StartsIdle(t *testing.T) {
	session := sessionOver(t, okHandler)

	if session.Phase() != PhaseIdle {
		t.Errorf("phase = %s, want idle", session.Phase())
	}
	if session.InFlight() {
		t.Error("new session should not be in flight")
	}
}

func TestSession_SuccessfulSubmit(t *testing.T) {
	session := sessionOver(t, okHandler)

	result, err := session.Submit(context.Background(), "https://example.com/story")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if session.Phase() != PhaseResult {
		t.Errorf("phase = %s, want result", session.Phase())
	}
	if session.InFlight() {
		t.Error("in-flight flag should clear after completion")
	}
	if session.Result() != result {
		t.Error("Result() should return the submitted outcome")
	}
}

func TestSession_ErrorClearsInFlight(t *testing.T) {
	session := sessionOver(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"analysis exploded"}`))
	})

	_, err := session.Submit(context.Background(), "https://example.com/story")
	if err == nil {
		t.Fatal("Submit should fail")
	}

	if session.Phase() != PhaseError {
		t.Errorf("phase = %s, want error", session.Phase())
	}
	if session.InFlight() {
		t.Error("in-flight flag should clear after an error")
	}
	if session.Err() == nil {
		t.Error("Err() should return the failure")
	}
}

func TestSession_ValidationErrorClearsInFlight(t *testing.T) {
	session := sessionOver(t, okHandler)

	_, err := session.Submit(context.Background(), "   ")
	if !IsValidationError(err) {
		t.Fatalf("error = %v, want validation error", err)
	}
	if session.InFlight() {
		t.Error("in-flight flag should clear after a validation failure")
	}
	if session.Phase() != PhaseError {
		t.Errorf("phase = %s, want error", session.Phase())
	}
}

func TestSession_RejectsConcurrentSubmit(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	session := sessionOver(t, func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		okHandler(w, r)
	})

	done := make(chan error, 1)
	go func() {
		_, err := session.Submit(context.Background(), "first")
		done <- err
	}()

	<-entered

	if !session.InFlight() {
		t.Error("session should report in flight")
	}
	if session.Phase() != PhaseAnalyzing {
		t.Errorf("phase = %s, want analyzing", session.Phase())
	}

	_, err := session.Submit(context.Background(), "second")
	if err != ErrAnalysisInFlight {
		t.Errorf("concurrent submit error = %v, want ErrAnalysisInFlight", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
}

func TestSession_NewSubmitClearsPriorState(t *testing.T) {
	fail := true
	session := sessionOver(t, func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		okHandler(w, r)
	})

	session.Submit(context.Background(), "first")
	if session.Err() == nil {
		t.Fatal("first submit should record an error")
	}

	fail = false
	if _, err := session.Submit(context.Background(), "second"); err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if session.Err() != nil {
		t.Error("prior error should be cleared by a new submission")
	}
	if session.Result() == nil {
		t.Error("result should be recorded")
	}
}

func TestSession_Reset(t *testing.T) {
	session := sessionOver(t, okHandler)

	session.Submit(context.Background(), "input")
	session.Reset()

	if session.Phase() != PhaseIdle {
		t.Errorf("phase = %s, want idle", session.Phase())
	}
	if session.Result() != nil {
		t.Error("result should be discarded on reset")
	}
}
