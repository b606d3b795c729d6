package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("SEL_001", "Profile exists", http.StatusConflict),
			expected: "[SEL_001] Profile exists",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("VAL_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestAuthErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Unauthorized", ErrUnauthorized(), "AUTH_001", 401},
		{"InvalidToken", ErrInvalidToken(), "AUTH_002", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestOnboardingErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"ProfileExists", ErrProfileExists(), "SEL_001", 409},
		{"NotFound", ErrNotFound("seller profile"), "SEL_002", 404},
		{"DraftStepLocked", ErrDraftStepLocked(), "SEL_003", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestDocumentErrors(t *testing.T) {
	typeErr := ErrUnsupportedFileType("application/msword")
	assert.Equal(t, "DOC_001", typeErr.Code)
	assert.Equal(t, 400, typeErr.HTTPStatus)
	assert.Contains(t, typeErr.Message, "application/msword")

	sizeErr := ErrFileTooLarge(5 << 20)
	assert.Equal(t, "DOC_002", sizeErr.Code)
	assert.Contains(t, sizeErr.Message, "5242880")

	missingErr := ErrMissingDocuments([]string{"ID Front", "ID Back"})
	assert.Equal(t, "DOC_003", missingErr.Code)
	assert.Equal(t, "is required", missingErr.Fields["ID Front"])
	assert.Equal(t, "is required", missingErr.Fields["ID Back"])

	unknownErr := ErrUnknownDocumentType("PASSPORT_SELFIE")
	assert.Equal(t, "DOC_004", unknownErr.Code)
}

func TestValidationFields(t *testing.T) {
	err := ValidationFields(map[string]string{
		"businessName": "is required",
		"taxId":        "is required",
	})
	assert.Equal(t, "VAL_001", err.Code)
	assert.Equal(t, 400, err.HTTPStatus)
	assert.Len(t, err.Fields, 2)
	assert.Equal(t, "is required", err.Fields["businessName"])
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	sysErr := InternalError(inner)
	assert.Equal(t, "SYS_001", sysErr.Code)
	assert.Equal(t, 500, sysErr.HTTPStatus)
	assert.True(t, errors.Is(sysErr, inner))

	storErr := ErrStorageFailure(inner)
	assert.Equal(t, "SYS_002", storErr.Code)
	assert.Equal(t, 500, storErr.HTTPStatus)
}

func TestRateLimitError(t *testing.T) {
	err := ErrRateLimitExceeded()
	assert.Equal(t, "RATE_001", err.Code)
	assert.Equal(t, 429, err.HTTPStatus)
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("seller profile")
	assert.Contains(t, err.Message, "seller profile")
	assert.Equal(t, "SEL_002", err.Code)
}
