package auth

import (
	"net/http"

	"github.com/Abraxas-365/campus/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("AUTH")

var (
	CodeInvalidToken   = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired token")
	CodeMissingSecret  = ErrRegistry.Register("MISSING_SECRET", errx.TypeInternal, http.StatusInternalServerError, "Token signing secret is not configured")
	CodeUserNotFound   = ErrRegistry.Register("USER_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "User not found")
	CodeUserNotActive  = ErrRegistry.Register("USER_NOT_APPROVED", errx.TypeAuthorization, http.StatusForbidden, "User account is not approved")
	CodeDuplicateEmail = ErrRegistry.Register("DUPLICATE_EMAIL", errx.TypeConflict, http.StatusConflict, "A user with this email already exists")
	CodeInvalidUser    = ErrRegistry.Register("INVALID_USER", errx.TypeValidation, http.StatusBadRequest, "Invalid user data")
)

func ErrInvalidToken() *errx.Error {
	return ErrRegistry.New(CodeInvalidToken)
}

func ErrUserNotFound() *errx.Error {
	return ErrRegistry.New(CodeUserNotFound)
}

func ErrUserNotApproved() *errx.Error {
	return ErrRegistry.New(CodeUserNotActive)
}

func ErrDuplicateEmail() *errx.Error {
	return ErrRegistry.New(CodeDuplicateEmail)
}

func ErrInvalidUser() *errx.Error {
	return ErrRegistry.New(CodeInvalidUser)
}
