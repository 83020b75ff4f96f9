package bicodec

import "errors"

// Failure codes (exported consts for IDE completion and type safety by
// convention).
const (
	CodeInvalidType    = "invalid_type"
	CodeInvalidLiteral = "invalid_literal"
	CodeInvalidEnum    = "invalid_enum"
	CodeInvalidLength  = "invalid_length"
	CodeInvalidJSON    = "invalid_json"
	CodeInvalidFormat  = "invalid_format"
	CodeNoAlternative  = "no_alternative"
	CodeUninitialized  = "uninitialized_recursion"
)

// Failure is a structured decode failure: the reason plus the path at
// which decoding stopped. Decoders return it through the error channel;
// malformed input never panics.
type Failure struct {
	Path    Path
	Code    string // One of the codes listed above.
	Message string
}

// NewFailure builds a Failure at the top level (empty path).
func NewFailure(code, message string) *Failure {
	return &Failure{Code: code, Message: message}
}

// Error renders the failure in the canonical form
// "<message>. When parsing: <dot.joined.path>".
func (f *Failure) Error() string {
	return f.Message + ". When parsing: " + f.Path.String()
}

// At returns a copy of the failure with seg prepended to its path, used
// by container decoders to bubble up the enclosing field name. The
// receiver is left untouched.
func (f *Failure) At(seg string) *Failure {
	return &Failure{Path: f.Path.Prepend(seg), Code: f.Code, Message: f.Message}
}

// AsFailure extracts a *Failure from an error using errors.As.
func AsFailure(err error) (*Failure, bool) {
	if err == nil {
		return nil, false
	}
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// EncodeError is the panic payload raised when an encoder receives a
// value that violates its schema's invariants: a non-finite number, a
// string outside an enum, a union value matching no variant pattern.
// Encoders are total under the type system's guarantees, so such a
// value indicates a programmer bug at the call site and there is no
// recovery path.
type EncodeError struct {
	Message string
}

func (e *EncodeError) Error() string { return e.Message }
