package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diillson/dell-inventory-report-go/internal/domain/entity"
	"github.com/jszwec/csvutil"
)

// CSVReportWriter grava as linhas do relatório à medida que cada tag é processada.
// O arquivo fica aberto durante toda a execução.
type CSVReportWriter struct {
	path    string
	file    *os.File
	writer  *csv.Writer
	encoder *csvutil.Encoder
}

// NewCSVReportWriter creates the report file and writes the header row.
func NewCSVReportWriter(path string) (*CSVReportWriter, error) {
	if err := ensureParentDir(path); err != nil {
		return nil, err
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("error creating CSV file: %w", err)
	}

	writer := csv.NewWriter(file)
	encoder := csvutil.NewEncoder(writer)

	if err := encoder.EncodeHeader(entity.SummaryRow{}); err != nil {
		file.Close()
		return nil, fmt.Errorf("error writing CSV header: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return nil, fmt.Errorf("error writing CSV header: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	return &CSVReportWriter{
		path:    abs,
		file:    file,
		writer:  writer,
		encoder: encoder,
	}, nil
}

// WriteRow grava uma linha e faz flush para não perder dados se a execução for interrompida.
func (w *CSVReportWriter) WriteRow(row entity.SummaryRow) error {
	if err := w.encoder.Encode(row); err != nil {
		return fmt.Errorf("error writing CSV record for %s: %w", row.ServiceTag, err)
	}
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return fmt.Errorf("error writing CSV record for %s: %w", row.ServiceTag, err)
	}
	return nil
}

// Path returns the absolute path of the report.
func (w *CSVReportWriter) Path() string {
	return w.path
}

// Close flushes and closes the report file.
func (w *CSVReportWriter) Close() error {
	w.writer.Flush()
	flushErr := w.writer.Error()
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("error closing CSV file: %w", err)
	}
	if flushErr != nil {
		return fmt.Errorf("error flushing CSV file: %w", flushErr)
	}
	return nil
}
