package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same error code, so errors decorated
// with WithDetails still match their predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Input errors
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Missing or malformed required field",
		"",
	)

	// Location errors
	ErrBuildingNotFound = NewBaseError(
		http.StatusNotFound,
		"BUILDING_NOT_FOUND",
		"Building not found",
		"",
	)

	ErrRoomNotFound = NewBaseError(
		http.StatusNotFound,
		"ROOM_NOT_FOUND",
		"Room not found",
		"",
	)

	ErrDuplicateBuilding = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_BUILDING",
		"A building with this name already exists",
		"",
	)

	ErrDuplicateRoom = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_ROOM",
		"A room with this name already exists in the building",
		"",
	)

	ErrBuildingHasRooms = NewBaseError(
		http.StatusConflict,
		"BUILDING_HAS_ROOMS",
		"Building still has rooms",
		"",
	)

	ErrRoomHasEquipment = NewBaseError(
		http.StatusConflict,
		"ROOM_HAS_EQUIPMENT",
		"Room still has equipment located in it",
		"",
	)

	// Ledger errors
	ErrEquipmentNotFound = NewBaseError(
		http.StatusNotFound,
		"EQUIPMENT_NOT_FOUND",
		"Equipment not found",
		"",
	)

	ErrDuplicateSerial = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_SERIAL",
		"An equipment with this serial number already exists",
		"",
	)

	ErrInvalidState = NewBaseError(
		http.StatusConflict,
		"INVALID_STATE",
		"Operation not allowed from the current equipment status",
		"",
	)

	ErrInvalidDestination = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_DESTINATION",
		"Destination room does not exist",
		"",
	)

	ErrDestinationMissing = NewBaseError(
		http.StatusConflict,
		"DESTINATION_MISSING",
		"No checkout destination recorded for this equipment",
		"",
	)

	ErrStockRoomMissing = NewBaseError(
		http.StatusInternalServerError,
		"STOCK_ROOM_MISSING",
		"Default stock room is not configured",
		"",
	)

	// User errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrDuplicateUsername = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_USERNAME",
		"Username already taken",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Notification errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You are not allowed to perform this action",
		"",
	)

	// Export errors
	ErrExportFailed = NewBaseError(
		http.StatusInternalServerError,
		"EXPORT_FAILED",
		"Failed to render export",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the underlying storage error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed, please retry"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
