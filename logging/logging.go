// Package logging hands out prefixed charmbracelet loggers that share one
// output and level.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.Mutex
	out     io.Writer = os.Stderr
	level             = log.InfoLevel
	loggers []*log.Logger
)

// New returns a logger tagged with prefix.
func New(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	l := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	loggers = append(loggers, l)
	return l
}

// SetLevel parses name ("debug", "info", "warn", "error") and applies it to
// every logger handed out so far.
func SetLevel(name string) error {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	level = lvl
	for _, l := range loggers {
		l.SetLevel(lvl)
	}
	return nil
}

// SetOutput redirects every logger to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	for _, l := range loggers {
		l.SetOutput(w)
	}
}
