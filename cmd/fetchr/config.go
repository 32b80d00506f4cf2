package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"
)

// defaultURL mirrors the tool's original hardwired target, a DIMACS
// graph-coloring instance.
const defaultURL = "https://cedric.cnam.fr/~porumbed/graphs/C4000.5.col"

// config carries every process-wide setting explicitly; nothing else in
// the program reads flags or the environment.
type config struct {
	URL          string        `json:"url" validate:"required,http_url"`
	Output       string        `json:"output"`
	Print        bool          `json:"print"`
	Timeout      time.Duration `json:"timeout" validate:"min=0"`
	UserAgent    string        `json:"agent"`
	Progress     bool          `json:"progress"`
	SkipExisting bool          `json:"skip_existing"`
	Quiet        bool          `json:"quiet"`
}

func defaultConfig() config {
	return config{
		URL:       defaultURL,
		Timeout:   30 * time.Second,
		UserAgent: "fetchr/1.0",
	}
}

// parseFlags layers command-line flags over the defaults and validates
// the result.
func parseFlags(args []string) (config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("fetchr", flag.ContinueOnError)
	fs.StringVar(&cfg.URL, "url", cfg.URL, "URL to fetch")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "destination path (default: URL base name in the working directory)")
	fs.BoolVar(&cfg.Print, "print", cfg.Print, "write the fetched text to stdout instead of a file")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "request timeout")
	fs.StringVar(&cfg.UserAgent, "agent", cfg.UserAgent, "User-Agent header")
	fs.BoolVar(&cfg.Progress, "progress", cfg.Progress, "log transfer progress")
	fs.BoolVar(&cfg.SkipExisting, "skip-existing", cfg.SkipExisting, "do nothing when the destination file already exists")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress status output")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if err := validateConfig(cfg); err != nil {
		return config{}, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// destination resolves the output path. With -print there is none; with
// -o it is taken verbatim; otherwise the file name is derived from the
// final segment of the URL path and placed in the working directory.
func (c config) destination() (string, error) {
	if c.Print {
		return "", nil
	}
	if c.Output != "" {
		return c.Output, nil
	}

	u, err := url.Parse(c.URL)
	if err != nil {
		return "", fmt.Errorf("parsing URL: %w", err)
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" {
		name = "index.html"
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}

	return filepath.Join(wd, name), nil
}
