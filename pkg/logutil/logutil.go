// Package logutil provides the process-wide debug logger. Logging is
// discarded unless the host points it at a file with SetOutputFile.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var out = struct {
	sync.Mutex
	w io.Writer
}{w: io.Discard}

type outWriter struct{}

func (outWriter) Write(p []byte) (int, error) {
	out.Lock()
	defer out.Unlock()
	return out.w.Write(p)
}

// GetLogger returns a logger that prefixes messages with the given string
// and writes to the shared output set by SetOutput.
func GetLogger(prefix string) *log.Logger {
	return log.New(outWriter{}, prefix, log.LstdFlags)
}

// SetOutput redirects the output of all loggers obtained with GetLogger.
func SetOutput(w io.Writer) {
	out.Lock()
	defer out.Unlock()
	out.w = w
}

// SetOutputFile redirects log output to the named file, or back to discard
// when the name is empty.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(fname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	SetOutput(f)
	return nil
}
