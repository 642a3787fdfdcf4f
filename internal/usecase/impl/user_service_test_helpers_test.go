package impl

import (
	"io"
	"log/slog"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func uintPtr(v uint) *uint {
	return &v
}
