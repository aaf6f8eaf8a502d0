// Package coreerrors defines the closed taxonomy of error kinds surfaced
// by the compute core: input-shape problems, registry parse/validation
// failures, options-input problems, and internal numeric-domain bugs.
package coreerrors

import "fmt"

// Kind is a closed enumeration of error categories.
type Kind string

const (
	InputShape           Kind = "InputShape"
	IndicatorUnknown     Kind = "IndicatorUnknown"
	IndicatorParseError  Kind = "IndicatorParseError"
	IndicatorParamError  Kind = "IndicatorParamError"
	IndicatorTooShort    Kind = "IndicatorTooShortSeries"
	OptionsInput         Kind = "OptionsInput"
	NumericDomain        Kind = "NumericDomain"
)

// Error is the single error type the core returns; Kind selects the
// taxonomy bucket a host uses to decide how to respond.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newErr(k Kind, msg string, err error) *Error {
	return &Error{Kind: k, Message: msg, Err: err}
}

func NewInputShape(msg string) *Error          { return newErr(InputShape, msg, nil) }
func NewIndicatorUnknown(msg string) *Error    { return newErr(IndicatorUnknown, msg, nil) }
func NewIndicatorParseError(msg string) *Error { return newErr(IndicatorParseError, msg, nil) }
func NewIndicatorParamError(msg string) *Error { return newErr(IndicatorParamError, msg, nil) }
func NewIndicatorTooShort(msg string) *Error   { return newErr(IndicatorTooShort, msg, nil) }
func NewOptionsInput(msg string) *Error        { return newErr(OptionsInput, msg, nil) }
func NewNumericDomain(msg string) *Error       { return newErr(NumericDomain, msg, nil) }
func Wrap(k Kind, msg string, err error) *Error { return newErr(k, msg, err) }

// Is reports whether err is a *Error of the given kind.
func Is(err error, k Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == k
}
