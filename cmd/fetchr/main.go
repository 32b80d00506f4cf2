// Command fetchr fetches the content of a single URL, saving it to a
// file or printing it to stdout.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/adamwoolhether/fetchr"
	"github.com/adamwoolhether/fetchr/fetch"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	cfg, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(errOut, "invalid configuration: %v\n", err)
		return 2
	}

	level := slog.LevelInfo
	if cfg.Quiet {
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	f, err := fetchr.New(
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(errOut, "building fetcher: %v\n", err)
		return 1
	}

	dest, err := cfg.destination()
	if err != nil {
		fmt.Fprintf(errOut, "resolving destination: %v\n", err)
		return 1
	}

	var opts []fetch.FetchOption
	if cfg.Progress {
		opts = append(opts, fetchr.WithProgress())
	}
	if cfg.SkipExisting {
		opts = append(opts, fetchr.WithSkipExisting())
	}

	if dest != "" && !cfg.Quiet {
		fmt.Fprintf(out, "Fetching %s\n", cfg.URL)
		fmt.Fprintf(out, "Saving to %s\n", dest)
	}

	text, err := f.Fetch(context.Background(), cfg.URL, dest, opts...)
	if err != nil {
		fmt.Fprintf(out, "Fetch failed: %v\n", err)
		return 1
	}

	if dest == "" {
		fmt.Fprint(out, text)
	} else if !cfg.Quiet {
		fmt.Fprintf(out, "Content saved to %s\n", dest)
	}

	return 0
}
