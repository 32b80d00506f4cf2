package fetch

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
)

// Sentinel errors forming the closed set of failure kinds returned by
// [Fetcher.Fetch]. Every failure unwraps to exactly one of them.
var (
	// ErrHTTPStatus indicates the server responded with a 4xx or 5xx status.
	ErrHTTPStatus = errors.New("HTTP error")
	// ErrConnection indicates a transport-level failure before a response
	// was obtained: DNS resolution, connection refusal, or a URL the
	// client could not dial.
	ErrConnection = errors.New("connection error")
	// ErrTimeout indicates no response arrived within the client's timeout.
	ErrTimeout = errors.New("timeout error")
	// ErrRequest indicates any other failure raised by the HTTP client.
	ErrRequest = errors.New("request error")
	// ErrFileIO indicates a failure writing the fetched bytes to the
	// destination file.
	ErrFileIO = errors.New("file I/O error")
)

// Error pairs a sentinel error with detail about the specific failure.
type Error struct {
	StatusCode int // set only when Err is ErrHTTPStatus
	Detail     string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// classify maps a failure from the underlying http.Client onto a
// sentinel. Timeouts are checked first because *url.Error reports
// Timeout() for deadline expiry regardless of the wrapped cause.
// Anything unrecognized falls through to ErrRequest rather than
// escaping unclassified.
func classify(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return &Error{Err: ErrTimeout, Detail: err.Error()}
	}

	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return &Error{Err: ErrTimeout, Detail: err.Error()}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &Error{Err: ErrConnection, Detail: err.Error()}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return &Error{Err: ErrConnection, Detail: err.Error()}
	}

	return &Error{Err: ErrRequest, Detail: err.Error()}
}
