// Package fetchr exposes the fetcher builder.
package fetchr

import (
	"github.com/adamwoolhether/fetchr/fetch"
)

// New instantiates a new *Fetcher with the provided options.
// If not specified, the default http.Client and http.Transport are used.
func New(opts ...fetch.Option) (*fetch.Fetcher, error) {
	return fetch.Build(opts...)
}

// ————————————————————————————————————————————————————————————————————
// Type aliases – re-export user-facing types from [fetch].
// ————————————————————————————————————————————————————————————————————

type (
	// Fetcher retrieves the content of a single URL over HTTP(S).
	Fetcher = fetch.Fetcher

	// Error pairs a sentinel error with detail about a specific failure.
	Error = fetch.Error
)

// ————————————————————————————————————————————————————————————————————
// Sentinel errors
// ————————————————————————————————————————————————————————————————————

var (
	// ErrHTTPStatus indicates the server responded with a 4xx or 5xx status.
	ErrHTTPStatus = fetch.ErrHTTPStatus

	// ErrConnection indicates a transport-level failure before a response was obtained.
	ErrConnection = fetch.ErrConnection

	// ErrTimeout indicates no response arrived within the client's timeout.
	ErrTimeout = fetch.ErrTimeout

	// ErrRequest indicates any other failure raised by the HTTP client.
	ErrRequest = fetch.ErrRequest

	// ErrFileIO indicates a failure writing the fetched bytes to the destination file.
	ErrFileIO = fetch.ErrFileIO
)

// ————————————————————————————————————————————————————————————————————
// Fetch option forwarding functions
// ————————————————————————————————————————————————————————————————————

// WithProgress enables periodic transfer progress logging.
func WithProgress() fetch.FetchOption { return fetch.WithProgress() }

// WithSkipExisting causes a fetch to return success immediately when
// the destination file already exists.
func WithSkipExisting() fetch.FetchOption { return fetch.WithSkipExisting() }
