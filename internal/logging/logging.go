// Package logging configures the apex/log default logger for the binaries.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/json"
)

// Options selects the log level, output format and destination.
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// Setup installs a handler on the default logger. Format is "cli" (default),
// "json" or "discard". A nil Output writes to stderr.
func Setup(opts Options) error {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		level = parsed
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	handler, err := newHandler(opts.Format, out)
	if err != nil {
		return err
	}
	log.SetHandler(handler)
	log.SetLevel(level)
	return nil
}

func newHandler(format string, out io.Writer) (log.Handler, error) {
	switch strings.ToLower(format) {
	case "", "cli", "text":
		return cli.New(out), nil
	case "json":
		return json.New(out), nil
	case "discard", "none":
		return discard.New(), nil
	}
	return nil, fmt.Errorf("unknown log format %q", format)
}

// OpenFile opens path for appending log output. The caller closes it.
func OpenFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
