package core

import "fmt"

// ErrorKind categorizes the typed failures the kernel can report.
// Names follow the error taxonomy of the specification: Parse,
// Construction, Algebra, Domain, Solver and Resource categories.
type ErrorKind int

const (
	ErrLexError ErrorKind = iota
	ErrUnexpectedToken
	ErrUnbalancedBracket
	ErrUnknownFunction
	ErrInvalidArity

	ErrInvalidArgument
	ErrArityMismatch

	ErrDivisionByZero
	ErrNotAPolynomial
	ErrUnsupportedField
	ErrUnsupportedShape

	ErrDomain

	ErrNoSolution
	ErrInfinite

	ErrIterationLimit
)

func (k ErrorKind) String() string {
	switch k {
	case ErrLexError:
		return "LexError"
	case ErrUnexpectedToken:
		return "UnexpectedToken"
	case ErrUnbalancedBracket:
		return "UnbalancedBracket"
	case ErrUnknownFunction:
		return "UnknownFunction"
	case ErrInvalidArity:
		return "InvalidArity"
	case ErrInvalidArgument:
		return "InvalidArgument"
	case ErrArityMismatch:
		return "ArityMismatch"
	case ErrDivisionByZero:
		return "DivisionByZero"
	case ErrNotAPolynomial:
		return "NotAPolynomial"
	case ErrUnsupportedField:
		return "UnsupportedField"
	case ErrUnsupportedShape:
		return "UnsupportedShape"
	case ErrDomain:
		return "DomainError"
	case ErrNoSolution:
		return "NoSolution"
	case ErrInfinite:
		return "Infinite"
	case ErrIterationLimit:
		return "IterationLimit"
	default:
		return "Unknown"
	}
}

// KernelError is the single typed-failure value returned by every
// kernel operation that can fail. It carries a diagnostic message and,
// for parser errors, a byte offset into the source text.
type KernelError struct {
	Kind    ErrorKind
	Message string
	Offset  int // byte offset, valid for parser errors; -1 otherwise
	Expr    fmt.Stringer
}

func (e *KernelError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError builds a KernelError with no position information.
func NewError(kind ErrorKind, format string, args ...interface{}) *KernelError {
	return &KernelError{Kind: kind, Message: fmt.Sprintf(format, args...), Offset: -1}
}

// NewErrorAt builds a KernelError carrying a byte offset, for parser diagnostics.
func NewErrorAt(kind ErrorKind, offset int, format string, args ...interface{}) *KernelError {
	return &KernelError{Kind: kind, Message: fmt.Sprintf(format, args...), Offset: offset}
}

// IsKind reports whether err is a *KernelError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	ke, ok := err.(*KernelError)
	return ok && ke.Kind == kind
}
