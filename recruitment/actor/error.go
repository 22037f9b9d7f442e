package actor

import (
	"net/http"

	"github.com/Abraxas-365/campus/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("ACTOR")

var (
	CodeStoreFailure = ErrRegistry.Register("STORE_FAILURE", errx.TypeInternal, http.StatusInternalServerError, "Failed to resolve caller")
)

func ErrStoreFailure(err error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeStoreFailure, err)
}
