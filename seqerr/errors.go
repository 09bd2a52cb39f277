// Package seqerr defines the closed error taxonomy surfaced at every
// boundary of the distance engine: kernels, the substitution-matrix loader,
// the pairwise driver, and the TCRdist composite all report taxonomy
// failures through the same small set of sentinel errors. File-reading,
// JSON-decoding and schema-validation failures in substmat are returned as
// wrapped standard errors instead.
//
// Adapted from the Fulmen error-envelope pattern (see the upstream
// errors.ErrorEnvelope type): that envelope carries severity, correlation
// IDs, and exit codes meant for CLI-facing tools. A CPU-bound batch library
// has no CLI surface to report to, so the envelope here is trimmed to what a
// caller actually inspects — a stable Code, a human Message, and the Go
// error-wrapping chain (errors.Is / errors.As) over a closed set of sentinels.
package seqerr

import (
	"errors"
	"fmt"
)

// Code identifies one member of the closed error taxonomy. New kernels must
// fail through one of these; no kernel is permitted to return an error
// outside this set.
type Code string

const (
	// ShapeMismatch: unequal-length sequences for a kernel that requires
	// equal length, or an empty batch where not permitted.
	ShapeMismatch Code = "ShapeMismatch"
	// UnknownToken: a character in an input sequence is absent from the
	// substitution matrix's index.
	UnknownToken Code = "UnknownToken"
	// MissingField: a TCRdist record lacks one of the configured field names.
	MissingField Code = "MissingField"
	// InvalidConfig: Jaro weights invalid, Jaro-Winkler parameters out of
	// range, or a TCRdist component definition missing required keys.
	InvalidConfig Code = "InvalidConfig"
	// MissingKey: a substitution-matrix file lacks "index" or
	// "substitution_matrix".
	MissingKey Code = "MissingKey"
	// TokenExists: add_token called with an already-present token.
	TokenExists Code = "TokenExists"
	// DimensionMismatch: add_token row length incompatible with matrix size.
	DimensionMismatch Code = "DimensionMismatch"
)

// sentinels, one per Code, so callers can test with errors.Is without
// inspecting the envelope fields.
var (
	ErrShapeMismatch     = errors.New(string(ShapeMismatch))
	ErrUnknownToken      = errors.New(string(UnknownToken))
	ErrMissingField      = errors.New(string(MissingField))
	ErrInvalidConfig     = errors.New(string(InvalidConfig))
	ErrMissingKey        = errors.New(string(MissingKey))
	ErrTokenExists       = errors.New(string(TokenExists))
	ErrDimensionMismatch = errors.New(string(DimensionMismatch))
)

func sentinelFor(code Code) error {
	switch code {
	case ShapeMismatch:
		return ErrShapeMismatch
	case UnknownToken:
		return ErrUnknownToken
	case MissingField:
		return ErrMissingField
	case InvalidConfig:
		return ErrInvalidConfig
	case MissingKey:
		return ErrMissingKey
	case TokenExists:
		return ErrTokenExists
	case DimensionMismatch:
		return ErrDimensionMismatch
	default:
		return errors.New(string(code))
	}
}

// Error is the concrete error type for every taxonomy failure in this
// module. It wraps one of the sentinels above so callers can branch with
// errors.Is(err, seqerr.ErrShapeMismatch) without parsing strings, while
// still carrying a detail message for logs.
type Error struct {
	Code    Code
	Message string
	Context map[string]any
}

// New builds an Error for the given code with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithContext attaches a key/value pair of diagnostic context and returns
// the receiver for chaining.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any, 1)
	}
	e.Context[key] = value
	return e
}

func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s %v", e.Code, e.Message, e.Context)
}

// Unwrap exposes the sentinel for the error's code so errors.Is resolves
// against the package-level Err* values.
func (e *Error) Unwrap() error {
	return sentinelFor(e.Code)
}

// Is reports whether target is the sentinel for e's code, so errors.Is
// works even when target is compared directly against an *Error built
// elsewhere with the same code.
func (e *Error) Is(target error) bool {
	return target == sentinelFor(e.Code)
}
