// Package log provides the engine's per-subsystem loggers. It follows the
// teacher's shape (a fixed set of named subsystem loggers sharing one
// backend, initialized lazily and configurable by level) but is backed by
// logrus instead of a bespoke logging backend, with file rotation handled
// by jrick/logrotate.
//
// The core façade logs each successful submission, and the execution,
// state and mempool packages write debug lines about the transactions they
// handle. Logging is write-only: nothing logged is ever read back, so it
// can never become a side channel into ExecutionResult (§4.5's determinism
// contract).
package log

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jrick/logrotate/rotator"
	"github.com/sirupsen/logrus"
)

// Subsystem tags, one per core component that logs at the façade boundary.
const (
	CORE = "CORE" // Core façade
	EXEC = "EXEC" // execution logic
	MMPL = "MMPL" // mempool
	STAT = "STAT" // state store
	FEES = "FEES" // fee schedule
	CLIS = "CLIS" // CLI
)

var (
	backend = logrus.New()

	logRotator *rotator.Rotator
	initiated  bool

	subsystems = map[string]*logrus.Entry{
		CORE: backend.WithField("subsystem", CORE),
		EXEC: backend.WithField("subsystem", EXEC),
		MMPL: backend.WithField("subsystem", MMPL),
		STAT: backend.WithField("subsystem", STAT),
		FEES: backend.WithField("subsystem", FEES),
		CLIS: backend.WithField("subsystem", CLIS),
	}
)

func init() {
	backend.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	backend.SetOutput(os.Stdout)
}

// Get returns the logger for the given subsystem tag. Unknown tags fall
// back to a logger with no subsystem field rather than panicking, since log
// statements must never be able to crash the engine.
func Get(subsystemTag string) *logrus.Entry {
	if entry, ok := subsystems[subsystemTag]; ok {
		return entry
	}
	return backend.WithField("subsystem", subsystemTag)
}

// InitRotator wires a rotating log file as an additional output. It must be
// called before any subsystem logger is used if file output is desired; the
// default output is stdout only.
func InitRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}
	logRotator = r
	initiated = true
	backend.SetOutput(&rotatorWriter{})
	return nil
}

// rotatorWriter fans log bytes out to stdout and the rotator, mirroring the
// teacher's logWriter/errLogWriter pattern.
type rotatorWriter struct{}

func (rotatorWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	if initiated && logRotator != nil {
		return logRotator.Write(p)
	}
	return len(p), nil
}

// SetLevel sets the logging level for every subsystem logger.
func SetLevel(level logrus.Level) {
	backend.SetLevel(level)
}
