package errors

import (
	"net/http"

	"fence/internal/errors"
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
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"사용자를 찾을 수 없습니다",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"이미 등록된 전화번호입니다",
		"",
	)

	// Authorization errors: the caller is neither the resource owner nor a
	// linked supporter.
	ErrUnauthorizedAccess = NewBaseError(
		http.StatusForbidden,
		"UNAUTHORIZED_ACCESS",
		"권한이 없습니다",
		"",
	)

	// Location-related errors
	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"저장된 위치가 없습니다",
		"",
	)

	// Geofence-related errors
	ErrGeofenceNotFound = NewBaseError(
		http.StatusNotFound,
		"GEOFENCE_NOT_FOUND",
		"지오펜스를 찾을 수 없습니다",
		"",
	)

	ErrGeofenceEndTimeRequired = NewBaseError(
		http.StatusBadRequest,
		"GEOFENCE_END_TIME_REQUIRED",
		"일시 지오펜스는 종료 시각이 필요합니다",
		"",
	)

	// Link-related errors
	ErrLinkNotFound = NewBaseError(
		http.StatusNotFound,
		"LINK_NOT_FOUND",
		"링크를 찾을 수 없습니다",
		"",
	)

	ErrLinkCodeNotFound = NewBaseError(
		http.StatusNotFound,
		"LINK_CODE_NOT_FOUND",
		"링크 코드에 해당하는 사용자가 없습니다",
		"",
	)

	ErrCannotLinkSelf = NewBaseError(
		http.StatusBadRequest,
		"CANNOT_LINK_SELF",
		"자기 자신은 링크로 추가할 수 없습니다",
		"",
	)

	ErrLinkAlreadyExists = NewBaseError(
		http.StatusConflict,
		"LINK_ALREADY_EXISTS",
		"이미 등록된 링크입니다",
		"",
	)

	ErrPrimarySupporterNotFound = NewBaseError(
		http.StatusNotFound,
		"PRIMARY_SUPPORTER_NOT_FOUND",
		"대표 보호자가 설정되어 있지 않습니다",
		"",
	)

	// Medication-related errors
	ErrMedicationNotFound = NewBaseError(
		http.StatusNotFound,
		"MEDICATION_NOT_FOUND",
		"약 정보를 찾을 수 없습니다",
		"",
	)

	ErrMedicationAlreadyChecked = NewBaseError(
		http.StatusConflict,
		"MEDICATION_ALREADY_CHECKED",
		"해당 날짜에 이미 복용 체크되었습니다",
		"",
	)

	ErrMedicationCheckOwnerOnly = NewBaseError(
		http.StatusForbidden,
		"MEDICATION_CHECK_OWNER_ONLY",
		"본인만 약 복용 체크/해제가 가능합니다",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"입력 데이터 검증에 실패했습니다",
		"",
	)

	// Persistence-layer failures that abort the enclosing transaction.
	ErrStoreFailure = NewBaseError(
		http.StatusInternalServerError,
		"STORE_FAILURE",
		"저장소 처리 중 오류가 발생했습니다",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level persistence error as a store failure.
func NewDatabaseExecuteError(err error, details string) *BaseError {
	if err != nil && details == "" {
		details = err.Error()
	}

	return ErrStoreFailure.WithDetails(details)
}
