package errx

import (
	"fmt"
	"sync"
)

type definition struct {
	code       string
	errType    Type
	httpStatus int
	message    string
}

// Registry holds the error codes of one bounded context.
// Codes are namespaced with the registry prefix, e.g. APPLICATION_NOT_FOUND.
type Registry struct {
	prefix string
	mu     sync.RWMutex
	codes  map[string]definition
}

// NewRegistry creates a registry for the given prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[string]definition),
	}
}

// Register defines a code and returns its fully qualified name.
// Registering the same code twice panics: codes are package-level vars.
func (r *Registry) Register(code string, t Type, httpStatus int, message string) string {
	full := r.prefix + "_" + code

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.codes[full]; exists {
		panic(fmt.Sprintf("errx: code %s already registered", full))
	}
	if httpStatus == 0 {
		httpStatus = t.defaultStatus()
	}
	r.codes[full] = definition{
		code:       full,
		errType:    t,
		httpStatus: httpStatus,
		message:    message,
	}
	return full
}

// New creates an error for a registered code
func (r *Registry) New(code string) *Error {
	r.mu.RLock()
	def, ok := r.codes[code]
	r.mu.RUnlock()

	if !ok {
		return &Error{
			Code:       code,
			Type:       TypeInternal,
			Message:    "unregistered error code",
			HTTPStatus: TypeInternal.defaultStatus(),
		}
	}

	return &Error{
		Code:       def.code,
		Type:       def.errType,
		Message:    def.message,
		HTTPStatus: def.httpStatus,
	}
}

// NewWithCause creates an error for a registered code wrapping err
func (r *Registry) NewWithCause(code string, err error) *Error {
	return r.New(code).WithCause(err)
}

// Prefix returns the registry namespace
func (r *Registry) Prefix() string {
	return r.prefix
}
