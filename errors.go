package bem

import (
	"errors"
	"fmt"
)

// ErrValidation matches every *ValidationError under errors.Is.
var ErrValidation = errors.New("bem: validation failed")

// Validation failure kinds. Compare with errors.Is against a returned error.
var (
	ErrEmptyBlock        = errors.New("the block must not be empty")
	ErrEmptyModifier     = errors.New("modifiers must not be empty")
	ErrModifierSeparator = errors.New("modifiers must not contain modifier separators")
	ErrEmptyExtension    = errors.New("the extension must not be empty")
	ErrNoElements        = errors.New("at least one element is required")
	ErrEmptyElement      = errors.New("the element must not be empty")
	ErrElementSeparator  = errors.New("elements must not contain element separators")
)

// ValidationError rejects a block, modifier, extension or element value.
type ValidationError struct {
	Kind  error  // One of the Err* kinds above
	Value string // The offending value ("" for emptiness failures)
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrModifierSeparator:
		return fmt.Sprintf("%v (%s) - the block can be excluded from modifier %q", e.Kind, ModifierSeparator, e.Value)
	case ErrElementSeparator:
		return fmt.Sprintf("%v (%s) - the block can be excluded from element %q", e.Kind, ElementSeparator, e.Value)
	}
	return e.Kind.Error()
}

// Is reports whether target is ErrValidation or this error's kind.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation || target == e.Kind
}

func validationError(kind error, value string) *ValidationError {
	return &ValidationError{Kind: kind, Value: value}
}
