package service

import (
	"io"

	"equiptrack/internal/domain/entity"
)

// SpreadsheetCodec converts between workbook files and ledger rows.
type SpreadsheetCodec interface {
	// ReadImportRows parses the first sheet of a workbook into import rows.
	ReadImportRows(r io.Reader) ([]entity.ImportRow, error)

	// WriteHistory renders history rows as a workbook.
	WriteHistory(w io.Writer, rows []entity.HistoryRow) error
}
