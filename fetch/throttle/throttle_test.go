package throttle_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adamwoolhether/fetchr/fetch/throttle"
)

func noLogger() *slog.Logger { return nil }

func TestNewRoundTripper_InvalidConfig(t *testing.T) {
	tests := []struct {
		name  string
		rps   int
		burst int
	}{
		{name: "zero rps", rps: 0, burst: 1},
		{name: "zero burst", rps: 1, burst: 0},
		{name: "negative rps", rps: -1, burst: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := throttle.NewRoundTripper(tt.rps, tt.burst, noLogger, http.DefaultTransport)
			if !errors.Is(err, throttle.ErrMustNotBeZero) {
				t.Errorf("expected ErrMustNotBeZero, got: %v", err)
			}
		})
	}
}

func TestRoundTrip_LimitsRate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	// Burst of 1 at 10 rps: the second and third requests each wait
	// roughly 100ms for a token.
	rt, err := throttle.NewRoundTripper(10, 1, noLogger, http.DefaultTransport)
	if err != nil {
		t.Fatalf("creating round tripper: %v", err)
	}

	client := &http.Client{Transport: rt}

	start := time.Now()
	for range 3 {
		resp, err := client.Get(ts.URL)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
	}

	if elapsed := time.Since(start); elapsed < 150*time.Millisecond {
		t.Errorf("expected throttling to spread requests out, finished in %v", elapsed)
	}
}

func TestRoundTrip_ContextCancelled(t *testing.T) {
	rt, err := throttle.NewRoundTripper(1, 1, noLogger, http.DefaultTransport)
	if err != nil {
		t.Fatalf("creating round tripper: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://127.0.0.1:1", nil)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}

	if _, err := rt.RoundTrip(req); !errors.Is(err, throttle.ErrContextEnded) {
		t.Errorf("expected ErrContextEnded, got: %v", err)
	}
}
