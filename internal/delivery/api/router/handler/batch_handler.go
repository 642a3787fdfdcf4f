package handler

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"equiptrack/internal/delivery/api/response"
	deliverycontext "equiptrack/internal/delivery/context"
	"equiptrack/internal/domain/entity"
	"equiptrack/internal/usecase"
	"equiptrack/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	// ImportFormField is the multipart field carrying the .xlsx upload.
	ImportFormField = "file"

	xlsxContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFilePattern = "Relatorio_TI_%s.xlsx"
	exportStampLayout = "20060102_150405"
)

// BatchHandlerParams holds dependencies for BatchHandler, injected by Fx.
type BatchHandlerParams struct {
	fx.In

	BatchUC usecase.BatchUsecase
	Logger  *slog.Logger
}

// BatchHandler serves bulk import and the history export
type BatchHandler struct {
	batchUC usecase.BatchUsecase
	logger  *slog.Logger
	now     func() time.Time
}

// NewBatchHandler is the constructor for BatchHandler
func NewBatchHandler(params BatchHandlerParams) *BatchHandler {
	return &BatchHandler{
		batchUC: params.BatchUC,
		logger:  params.Logger,
		now:     time.Now,
	}
}

// ImportRequest is the JSON form of a batch import
type ImportRequest struct {
	Rows []entity.ImportRow `json:"rows" validate:"required"`
}

// ImportEquipment handles a batch import from an .xlsx upload or a JSON row list
func (h *BatchHandler) ImportEquipment(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		fileHeader, err := c.FormFile(ImportFormField)
		if err != nil {
			return response.BadRequest(c, "MISSING_FILE", "An .xlsx file is required in the 'file' field")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return response.BadRequest(c, "INVALID_FILE", "Uploaded file could not be read")
		}
		defer file.Close()

		var upload bytes.Buffer
		checksum, size, err := util.ChecksumSHA256(io.TeeReader(file, &upload))
		if err != nil {
			return response.BadRequest(c, "INVALID_FILE", "Uploaded file could not be read")
		}
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Workbook upload received",
			slog.String("filename", fileHeader.Filename),
			slog.String("size", util.FormatBytes(size)),
			slog.String("sha256", checksum),
		)

		result, err := h.batchUC.ImportWorkbook(ctx, &upload, userID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, result)
	}

	var req ImportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid import input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.batchUC.ImportBatch(ctx, req.Rows, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ListHistory returns the whole checkpoint log, newest-first, as JSON.
func (h *BatchHandler) ListHistory(c echo.Context) error {
	report, err := h.batchUC.ExportHistory(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report.Rows)
}

// ExportHistory handles downloading the checkpoint log as a workbook. An empty log
// answers 204.
func (h *BatchHandler) ExportHistory(c echo.Context) error {
	var buf bytes.Buffer

	written, err := h.batchUC.ExportWorkbook(c.Request().Context(), &buf)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !written {
		return response.NoContent(c)
	}

	filename := fmt.Sprintf(exportFilePattern, h.now().Format(exportStampLayout))
	if checksum, size, err := util.ChecksumSHA256(bytes.NewReader(buf.Bytes())); err == nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("History workbook exported",
			slog.String("filename", filename),
			slog.String("size", util.FormatBytes(size)),
			slog.String("sha256", checksum),
		)
	}

	return response.Attachment(c, xlsxContentType, filename, buf.Bytes())
}
