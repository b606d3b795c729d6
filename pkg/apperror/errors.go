package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string            `json:"error_code"`
	Message    string            `json:"message"`
	Fields     map[string]string `json:"errors,omitempty"` // Field-scoped validation messages
	HTTPStatus int               `json:"-"`
	Err        error             `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Authentication (AUTH) ----

func ErrUnauthorized() *AppError {
	return New("AUTH_001", "Authentication required", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Validation (VAL) ----

// Validation returns a plain 400 without field details.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ValidationFields returns a 400 carrying per-field messages.
func ValidationFields(fields map[string]string) *AppError {
	e := New("VAL_001", "Validation failed", http.StatusBadRequest)
	e.Fields = fields
	return e
}

// ---- Seller Onboarding (SEL) ----

func ErrProfileExists() *AppError {
	return New("SEL_001", "Seller profile already exists for this account", http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("SEL_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrDraftStepLocked() *AppError {
	return New("SEL_003", "Previous registration steps must be completed first", http.StatusBadRequest)
}

// ---- Verification Documents (DOC) ----

func ErrUnsupportedFileType(contentType string) *AppError {
	return New("DOC_001", fmt.Sprintf("Unsupported file type %q: only JPEG, PNG and PDF are accepted", contentType), http.StatusBadRequest)
}

func ErrFileTooLarge(maxBytes int64) *AppError {
	return New("DOC_002", fmt.Sprintf("File exceeds the maximum size of %d bytes", maxBytes), http.StatusBadRequest)
}

func ErrMissingDocuments(labels []string) *AppError {
	e := New("DOC_003", "Required verification documents are missing", http.StatusBadRequest)
	e.Fields = make(map[string]string, len(labels))
	for _, l := range labels {
		e.Fields[l] = "is required"
	}
	return e
}

func ErrUnknownDocumentType(docType string) *AppError {
	return New("DOC_004", fmt.Sprintf("Unknown document type %q", docType), http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
// The wrapped detail is logged server-side and never sent to the caller.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrStorageFailure(err error) *AppError {
	return Wrap("SYS_002", "Document storage failure", http.StatusInternalServerError, err)
}
