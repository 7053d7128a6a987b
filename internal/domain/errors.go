package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/uniconv/internal/model"
)

var (
	// ErrOutOfRange is returned when a rule converts a rune outside its range.
	ErrOutOfRange = m.ErrOutOfRange
	// ErrInvalidCodepoint is returned when a rule produces an invalid scalar value.
	ErrInvalidCodepoint = m.ErrInvalidCodepoint
	// ErrCannotConvert is returned in strict mode for runes no rule covers.
	ErrCannotConvert = errors.New("cannot convert")
	// ErrUnknownConverterType is returned by the registry for undeclared types.
	ErrUnknownConverterType = errors.New("unknown converter type")
)

// CannotConvertError locates the first rune a strict conversion could not handle.
type CannotConvertError struct {
	Input string
	Index int
	Char  rune
}

func (e *CannotConvertError) Error() string {
	return fmt.Sprintf("couldn't convert %q at index %d (%U)", e.Input, e.Index, e.Char)
}

// Unwrap lets errors.Is match ErrCannotConvert.
func (e *CannotConvertError) Unwrap() error {
	return ErrCannotConvert
}
