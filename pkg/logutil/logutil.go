// Package logutil keeps a registry of package loggers whose output can be
// redirected together.
//
// Loggers returned by GetLogger discard their output until SetOutput or
// SetOutputFile points them somewhere, so library code can log
// unconditionally without spamming callers.
package logutil

import (
	"io"
	"log"
	"os"
)

var (
	out     io.Writer = io.Discard
	logFile *os.File
	loggers []*log.Logger
)

// GetLogger returns a logger with the given prefix, registered so that
// SetOutput and SetOutputFile redirect it along with all other registered
// loggers.
func GetLogger(prefix string) *log.Logger {
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects all registered loggers, current and future, to w.
func SetOutput(w io.Writer) {
	out = w
	for _, logger := range loggers {
		logger.SetOutput(w)
	}
}

// SetOutputFile redirects all registered loggers to append to the named file,
// closing the file set by any previous call. An empty name reverts to
// discarding.
func SetOutputFile(fname string) error {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	logFile = file
	SetOutput(file)
	return nil
}
