package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diillson/dell-inventory-report-go/internal/domain/entity"
)

// FailureLogWriter grava uma linha "<tag> - <url>" por chamada que falhou.
type FailureLogWriter struct {
	path string
	file *os.File
	buf  *bufio.Writer
}

// NewFailureLogWriter creates or truncates the failure log at path.
func NewFailureLogWriter(path string) (*FailureLogWriter, error) {
	if err := ensureParentDir(path); err != nil {
		return nil, err
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("error creating failure log: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	return &FailureLogWriter{
		path: abs,
		file: file,
		buf:  bufio.NewWriter(file),
	}, nil
}

// Record appends one failure line.
func (w *FailureLogWriter) Record(failure entity.FailureRecord) error {
	if _, err := fmt.Fprintln(w.buf, failure.Line()); err != nil {
		return fmt.Errorf("error writing failure log: %w", err)
	}
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("error writing failure log: %w", err)
	}
	return nil
}

// Path returns the absolute path of the log.
func (w *FailureLogWriter) Path() string {
	return w.path
}

// Close flushes and closes the log file.
func (w *FailureLogWriter) Close() error {
	flushErr := w.buf.Flush()
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("error closing failure log: %w", err)
	}
	if flushErr != nil {
		return fmt.Errorf("error flushing failure log: %w", flushErr)
	}
	return nil
}
