package application

import (
	"net/http"

	"github.com/Abraxas-365/campus/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICATION")

// Error codes
var (
	CodeForbidden               = ErrRegistry.Register("FORBIDDEN", errx.TypeAuthorization, http.StatusForbidden, "You do not have permission to perform this action")
	CodeApplicationNotFound     = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Application not found")
	CodePostingNotFound         = ErrRegistry.Register("POSTING_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job posting not found or closed")
	CodeAlreadyApplied          = ErrRegistry.Register("ALREADY_APPLIED", errx.TypeConflict, http.StatusConflict, "You have already applied to this job posting")
	CodeProfileMissing          = ErrRegistry.Register("PROFILE_MISSING", errx.TypeNotFound, http.StatusNotFound, "Jobseeker profile not found")
	CodeStoreFailure            = ErrRegistry.Register("STORE_FAILURE", errx.TypeInternal, http.StatusInternalServerError, "Application store failure")
	CodeInvalidStatus           = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Invalid application status")
	CodeInvalidStatusTransition = ErrRegistry.Register("INVALID_STATUS_TRANSITION", errx.TypeValidation, http.StatusBadRequest, "Invalid status transition")
	CodeInvalidRequest          = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeValidationFailed        = ErrRegistry.Register("VALIDATION_FAILED", errx.TypeValidation, http.StatusBadRequest, "Request validation failed")
)

// Helper functions
func ErrForbidden() *errx.Error {
	return ErrRegistry.New(CodeForbidden)
}

func ErrApplicationNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicationNotFound)
}

func ErrPostingNotFound() *errx.Error {
	return ErrRegistry.New(CodePostingNotFound)
}

func ErrAlreadyApplied() *errx.Error {
	return ErrRegistry.New(CodeAlreadyApplied)
}

func ErrProfileMissing() *errx.Error {
	return ErrRegistry.New(CodeProfileMissing)
}

func ErrStoreFailure(err error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeStoreFailure, err)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}

func ErrInvalidStatusTransition() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatusTransition)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrValidationFailed() *errx.Error {
	return ErrRegistry.New(CodeValidationFailed)
}
