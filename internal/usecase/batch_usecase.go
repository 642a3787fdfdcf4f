package usecase

import (
	"context"
	"io"

	"equiptrack/internal/domain/entity"
)

// HistoryExport is the flat report of the checkpoint log. Empty reports a no-op export.
type HistoryExport struct {
	Rows  []entity.HistoryRow `json:"rows"`
	Empty bool                `json:"empty"`
}

// BatchUsecase bulk-registers equipment and reports the checkpoint log.
type BatchUsecase interface {
	// ImportBatch registers rows in order. Invalid and duplicate rows are skipped,
	// only infrastructure failures abort the remainder.
	ImportBatch(ctx context.Context, rows []entity.ImportRow, actorID uint) (*entity.ImportResult, error)

	// ImportWorkbook decodes an .xlsx upload and imports its rows.
	ImportWorkbook(ctx context.Context, r io.Reader, actorID uint) (*entity.ImportResult, error)

	// ExportHistory projects the full checkpoint log newest-first.
	ExportHistory(ctx context.Context) (*HistoryExport, error)

	// ExportWorkbook renders the export as an .xlsx workbook. It writes nothing and
	// returns false when the log is empty.
	ExportWorkbook(ctx context.Context, w io.Writer) (bool, error)
}
