package fetchr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adamwoolhether/fetchr"
	"github.com/adamwoolhether/fetchr/fetch"
)

func TestNew(t *testing.T) {
	const body = "re-exported fetch"

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(body)); err != nil {
			t.Errorf("writing response: %v", err)
		}
	}))
	defer ts.Close()

	f, err := fetchr.New(fetch.WithUserAgent("fetchr-test/1.0"))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	text, err := f.Fetch(t.Context(), ts.URL, "")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if text != body {
		t.Errorf("expected %q, got %q", body, text)
	}
}

func TestSentinelAliases(t *testing.T) {
	// The root package's sentinels must be the same values the fetch
	// package returns, so errors.Is works across either import path.
	err := &fetchr.Error{Detail: "boom", Err: fetch.ErrConnection}
	if !errors.Is(err, fetchr.ErrConnection) {
		t.Error("expected root sentinel to match fetch sentinel")
	}
}
