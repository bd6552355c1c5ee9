package repository

import (
	"github.com/diillson/dell-inventory-report-go/internal/domain/entity"
)

// ReportSink recebe as linhas do relatório enquanto a execução acontece.
type ReportSink interface {
	WriteRow(row entity.SummaryRow) error
	Path() string
	Close() error
}

// FailureLog recebe um registro por chamada que falhou.
type FailureLog interface {
	Record(failure entity.FailureRecord) error
	Path() string
	Close() error
}

type ExportRepository interface {
	OpenCSVReport(path string) (ReportSink, error)
	OpenFailureLog(path string) (FailureLog, error)

	ExportToJSON(rows []entity.SummaryRow, filename, outputDir string) (string, error)
	ExportToPDF(rows []entity.SummaryRow, filename, outputDir string) (string, error)
}
