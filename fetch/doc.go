// Package fetch retrieves the content of a single URL over HTTP(S),
// either persisting the raw bytes to a file or returning the decoded
// text, built on [net/http].
//
// # Building a Fetcher
//
// Use [Build] to create a [Fetcher] with functional options:
//
//	f, err := fetch.Build(
//		fetch.WithTimeout(10 * time.Second),
//		fetch.WithUserAgent("myapp/1.0"),
//	)
//
// # Fetching
//
// A single call performs one GET. With a destination path the response
// bytes are written to disk and the returned text is empty:
//
//	_, err = f.Fetch(ctx, "https://example.com/data.bin", "/tmp/data.bin")
//
// With an empty destination the body is decoded using the charset the
// response declares and returned as text:
//
//	text, err := f.Fetch(ctx, "https://example.com/page.html", "")
//
// # Failure Classification
//
// Every failure is an [Error] wrapping one of the package's sentinel
// errors, so callers can branch on the kind while the Error string
// stays human-readable:
//
//	_, err := f.Fetch(ctx, url, dest)
//	if errors.Is(err, fetch.ErrHTTPStatus) { ... }
//
// The sentinel set is closed: ErrHTTPStatus, ErrConnection, ErrTimeout,
// ErrRequest, and ErrFileIO. Nothing escapes Fetch unclassified.
package fetch
