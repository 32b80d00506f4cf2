package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/adamwoolhether/fetchr/fetch/throttle"
)

// Fetcher wraps the std-lib *http.Client.
// It sets a default *http.Client and *http.Transport, which
// can be customized via optional funcs.
type Fetcher struct {
	c      *http.Client
	logger *slog.Logger
	tracer trace.Tracer
}

func Build(optFns ...Option) (*Fetcher, error) {
	fetcher := &Fetcher{
		c:      http.DefaultClient,
		logger: slog.Default(),
		tracer: noop.NewTracerProvider().Tracer(""),
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying fetcher option: %w", err)
		}
	}

	if opts.client != nil {
		fetcher.c = opts.client
	}

	if opts.logger != nil {
		fetcher.logger = opts.logger
	}

	if opts.tracer != nil {
		fetcher.tracer = opts.tracer
	}

	if opts.timeout != nil {
		fetcher.c.Timeout = *opts.timeout
	}

	if opts.noFollowRedirects {
		fetcher.c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var transport http.RoundTripper
	switch {
	case opts.rt != nil:
		transport = opts.rt
	case opts.client != nil && opts.client.Transport != nil:
		transport = opts.client.Transport
	default:
		transport = http.DefaultTransport
	}
	if opts.userAgent != "" {
		transport = userAgent{value: opts.userAgent, base: transport}
	}
	if opts.throttle != nil {
		rt, err := throttle.NewRoundTripper(opts.throttle.RPS, opts.throttle.Burst, func() *slog.Logger { return fetcher.logger }, transport)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		transport = rt
	}
	fetcher.c.Transport = transport

	return fetcher, nil
}

// Fetch performs a single GET against rawURL. With a non-empty destPath
// the raw response bytes are written to that file and the returned text
// is empty. With an empty destPath the body is decoded to text using the
// charset declared by the response. Every failure is returned as a
// [Error] wrapping one of the package's sentinel errors; Fetch never
// panics and never returns an unclassified error.
func (f *Fetcher) Fetch(ctx context.Context, rawURL, destPath string, optFns ...FetchOption) (string, error) {
	var opts fetchOpts
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return "", &Error{Err: ErrRequest, Detail: fmt.Sprintf("applying fetch option: %v", err)}
		}
	}

	ctx, span := f.tracer.Start(ctx, "fetch")
	span.SetAttributes(attribute.String("url", rawURL))
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	if !span.SpanContext().TraceID().IsValid() {
		traceID = uuid.New().String()
	}
	logger := f.logger.With("trace_id", traceID, "url", rawURL)

	if opts.skipExisting && destPath != "" {
		if _, err := os.Stat(destPath); err == nil {
			logger.Info("skipping existing file", "path", destPath)
			return "", nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &Error{Err: ErrConnection, Detail: fmt.Sprintf("invalid URL %q: %v", rawURL, err)}
	}

	resp, err := f.c.Do(req)
	if err != nil {
		return "", classify(err)
	}

	defer func() {
		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			logger.Error("failed to discard unused body", "error", err)
		}
		if err := resp.Body.Close(); err != nil {
			logger.Error("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", &Error{
			StatusCode: resp.StatusCode,
			Detail:     fmt.Sprintf("%s for %s", resp.Status, rawURL),
			Err:        ErrHTTPStatus,
		}
	}

	body, err := readBody(resp, opts.progress, logger)
	if err != nil {
		return "", err
	}

	if destPath != "" {
		if err := save(body, destPath, logger); err != nil {
			return "", err
		}

		logger.Info("fetch complete", "bytes", len(body), "path", destPath)

		return "", nil
	}

	text, err := decodeText(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	logger.Info("fetch complete", "bytes", len(body))

	return text, nil
}

// readBody buffers the full response body, optionally logging transfer
// progress through the writer chain.
func readBody(resp *http.Response, progress bool, logger *slog.Logger) ([]byte, error) {
	var buf bytes.Buffer

	var writer io.Writer = &buf
	if progress {
		writer = &progressWriter{
			w:         writer,
			logger:    logger,
			total:     resp.ContentLength,
			startTime: time.Now(),
		}
	}

	if _, err := io.Copy(writer, resp.Body); err != nil {
		return nil, classify(err)
	}

	return buf.Bytes(), nil
}
