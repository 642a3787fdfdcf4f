package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for constraint error checking. GORM translates driver errors when
// TranslateError is enabled; the message checks cover connections opened without it.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "sqlstate 23505") ||
		strings.Contains(errMsg, "duplicate key value") ||
		strings.Contains(errMsg, "unique constraint failed")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "sqlstate 23503") ||
		strings.Contains(errMsg, "violates foreign key constraint") ||
		strings.Contains(errMsg, "foreign key constraint failed")
}
