// Package spreadsheet reads batch imports from and writes history reports to .xlsx workbooks.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"equiptrack/config"
	domainerrors "equiptrack/internal/domain/errors"
	"equiptrack/internal/domain/entity"
	"equiptrack/internal/domain/service"

	"github.com/xuri/excelize/v2"
)

const (
	// DefaultSheetName is used when no export sheet is configured.
	DefaultSheetName = "Historico_Geral"

	timestampLayout = "2006-01-02 15:04:05"
)

// Accepted import header names, compared upper-cased.
var (
	serialHeaders = []string{"NUMERO_SERIE", "SERIAL_NUMBER"}
	nameHeaders   = []string{"NOME_EQUIPAMENTO", "DISPLAY_NAME"}
)

// HistoryHeader is the header row of the exported workbook.
var HistoryHeader = []string{
	"ID_CHECKPOINT",
	"DATA_ALTERACAO",
	"NUMERO_SERIE",
	"STATUS_ANTERIOR",
	"STATUS_NOVO",
	"LOCAL_DESTINO",
	"RESPONSAVEL",
}

var historyColumnWidths = []float64{15, 22, 22, 20, 28, 40, 20}

type excelCodec struct {
	sheetName string
}

// NewExcelCodec creates the workbook codec.
func NewExcelCodec(cfg *config.Config) service.SpreadsheetCodec {
	sheetName := DefaultSheetName
	if cfg != nil && cfg.Export != nil && cfg.Export.SheetName != "" {
		sheetName = cfg.Export.SheetName
	}

	return &excelCodec{sheetName: sheetName}
}

// ReadImportRows reads the first sheet. The first row is the header; every following
// row becomes an import row in order, blank cells included, so the caller can report
// them by position.
func (c *excelCodec) ReadImportRows(r io.Reader) ([]entity.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WrapMessage(fmt.Sprintf("failed to parse Excel file: %v", err))
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("Excel file has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("Excel file has no header row")
	}

	serialCol, nameCol := headerIndex(rows[0], serialHeaders), headerIndex(rows[0], nameHeaders)
	if serialCol < 0 || nameCol < 0 {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("Excel file must contain the columns NUMERO_SERIE and NOME_EQUIPAMENTO")
	}

	dataRows := trimTrailingBlankRows(rows[1:])
	result := make([]entity.ImportRow, 0, len(dataRows))
	for _, row := range dataRows {
		result = append(result, entity.ImportRow{
			SerialNumber: cellAt(row, serialCol),
			DisplayName:  cellAt(row, nameCol),
		})
	}

	return result, nil
}

// WriteHistory renders rows under a bold, frozen header.
func (c *excelCodec) WriteHistory(w io.Writer, rows []entity.HistoryRow) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(c.sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if c.sheetName != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("failed to delete default sheet: %w", err)
		}
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range HistoryHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(c.sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(c.sheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}

		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(c.sheetName, name, name, historyColumnWidths[col]); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}

		values := []any{
			row.CheckpointID,
			row.Timestamp.Format(timestampLayout),
			row.SerialNumber,
			row.StatusBefore,
			row.StatusAfter,
			row.Location,
			row.Responsible,
		}
		if err := f.SetSheetRow(c.sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(c.sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze panes: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

func headerIndex(header []string, names []string) int {
	for i, cell := range header {
		normalized := strings.ToUpper(strings.TrimSpace(cell))
		for _, name := range names {
			if normalized == name {
				return i
			}
		}
	}

	return -1
}

func cellAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}

	return row[col]
}

func trimTrailingBlankRows(rows [][]string) [][]string {
	end := len(rows)
	for end > 0 && isBlankRow(rows[end-1]) {
		end--
	}

	return rows[:end]
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
