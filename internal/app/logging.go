package app

import (
	"io"

	"game-of-life/internal/logging"
)

// SetupLogging installs the default logger from the -log-* flags. When
// -log-file is set the returned closer closes it; otherwise it is a no-op.
// fallbackFormat replaces the cli format when logs would go to stderr, for
// frontends that own the terminal.
func (c *Config) SetupLogging(fallbackFormat string) (io.Closer, error) {
	opts := logging.Options{Level: c.LogLevel, Format: c.LogFormat}
	closer := io.Closer(nopCloser{})
	if c.LogFile != "" {
		f, err := logging.OpenFile(c.LogFile)
		if err != nil {
			return nil, err
		}
		opts.Output = f
		closer = f
	} else if fallbackFormat != "" {
		opts.Format = fallbackFormat
	}
	if err := logging.Setup(opts); err != nil {
		closer.Close()
		return nil, err
	}
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
