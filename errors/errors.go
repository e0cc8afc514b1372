package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse    Phase = "parse"    // PNG chunk stream walking
	PhaseDecode   Phase = "decode"   // PNG to RGBA
	PhaseEncode   Phase = "encode"   // RGBA or entries to bytes
	PhaseValidate Phase = "validate" // caller input checks
)

// Kind categorizes the error
type Kind string

const (
	KindFormat       Kind = "format"
	KindUnknownType  Kind = "unknown_type"
	KindDecode       Kind = "decode"
	KindEncode       Kind = "encode"
	KindInvalidInput Kind = "invalid_input"
)

// Sentinels for errors.Is. They match any error of the same Kind.
var (
	ErrFormat       = &Error{Kind: KindFormat}
	ErrUnknownType  = &Error{Kind: KindUnknownType}
	ErrDecode       = &Error{Kind: KindDecode}
	ErrEncode       = &Error{Kind: KindEncode}
	ErrInvalidInput = &Error{Kind: KindInvalidInput}
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// An empty Phase on the target matches any phase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && e.Phase != t.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the context path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Format creates a malformed-input error
func Format(phase Phase, detail string, args ...any) *Error {
	return New(phase, KindFormat).Detail(detail, args...).Build()
}

// UnknownType creates an error for an unrecognized resource type tag
func UnknownType(tag string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUnknownType,
		Detail: fmt.Sprintf("unknown type %q", tag),
		Value:  tag,
	}
}

// Decode wraps a pixel decoder failure
func Decode(cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindDecode,
		Detail: "decode png",
		Cause:  cause,
	}
}

// Encode wraps a pixel encoder failure
func Encode(cause error) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindEncode,
		Detail: "encode png",
		Cause:  cause,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
