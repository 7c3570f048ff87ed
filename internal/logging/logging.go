// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Verbosity levels accepted by Setup
const (
	LevelInfo  = 0
	LevelDebug = 1
	LevelTrace = 2
)

// WriterHook is a hook that writes logs of specified LogLevels to specified Writer
type WriterHook struct {
	Writer    io.Writer
	LogLevels []log.Level
}

// Fire formats the entry and writes it to the hook writer
func (hook *WriterHook) Fire(entry *log.Entry) error {
	line, err := entry.Bytes()
	if err != nil {
		return err
	}
	_, err = hook.Writer.Write(line)
	return err
}

// Levels define on which log levels this hook would trigger
func (hook *WriterHook) Levels() []log.Level {
	return hook.LogLevels
}

// Setup routes logs depending on verbosity. Level 0 writes JSON to logFile
// (stderr when the file cannot be opened or is empty), higher levels write
// colored text to stderr.
func Setup(verbosity int, logFile string) {
	log.SetOutput(io.Discard)

	switch {
	case verbosity <= LevelInfo:
		log.SetLevel(log.InfoLevel)
		log.SetFormatter(&log.JSONFormatter{})
		log.AddHook(&WriterHook{
			Writer:    openLogFile(logFile),
			LogLevels: log.AllLevels[:log.InfoLevel+1],
		})
	case verbosity == LevelDebug:
		log.SetLevel(log.DebugLevel)
		log.SetFormatter(textFormatter())
		log.AddHook(&WriterHook{
			Writer:    os.Stderr,
			LogLevels: log.AllLevels[:log.DebugLevel+1],
		})
	default:
		log.SetLevel(log.TraceLevel)
		log.SetFormatter(textFormatter())
		log.AddHook(&WriterHook{
			Writer:    os.Stderr,
			LogLevels: log.AllLevels,
		})
	}
}

// For returns a logger entry tagged with a component prefix
func For(component string) *log.Entry {
	return log.WithField("prefix", component)
}

func textFormatter() log.Formatter {
	return &prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	}
}

func openLogFile(path string) io.Writer {
	if path == "" {
		return os.Stderr
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Warnf("Error opening log file %q, using stderr: %v", path, err)
		return os.Stderr
	}
	return file
}
