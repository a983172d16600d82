package algoerr

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

// Error kinds.
const (
	InvalidInput   Kind = "INVALID_INPUT"
	NegativeEdge   Kind = "NEGATIVE_EDGE"
	NegativeCycle  Kind = "NEGATIVE_CYCLE"
	Disconnected   Kind = "DISCONNECTED"
	Cyclic         Kind = "CYCLIC"
	Unsolvable     Kind = "UNSOLVABLE"
	BudgetExceeded Kind = "BUDGET_EXCEEDED"
)

// Error is a categorized error with an optional cause.
type Error struct {
	Kind    Kind   // category
	Message string // human-readable message, usually "pkg: text"
	Cause   error  // underlying error (optional)
}

// Error implements the error interface. The kind is not part of the text; sentinel
// messages already carry their package prefix.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given kind and formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new Error of the given kind wrapping an existing error.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any *Error in err's chain has the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// KindOf extracts the kind of the outermost *Error in err's chain.
// Returns the empty Kind if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return ""
}
