package posting

import (
	"net/http"

	"github.com/Abraxas-365/campus/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("POSTING")

var (
	CodePostingNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job posting not found")
	CodePostingAlreadyExists = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Job posting already exists")
	CodeInvalidCompany       = ErrRegistry.Register("INVALID_COMPANY", errx.TypeValidation, http.StatusBadRequest, "Job posting references an unknown company")
)

func ErrPostingNotFound() *errx.Error {
	return ErrRegistry.New(CodePostingNotFound)
}

func ErrPostingAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodePostingAlreadyExists)
}

func ErrInvalidCompany() *errx.Error {
	return ErrRegistry.New(CodeInvalidCompany)
}
