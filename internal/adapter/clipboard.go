// Package adapter provides the side-effecting ports used by the converter session.
package adapter

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnsupported is returned when no clipboard utility is available.
var ErrClipboardUnsupported = errors.New("clipboard not supported on this system")

// Clipboard receives converted text.
type Clipboard interface {
	WriteText(text string) error
}

type systemClipboard struct{}

// NewSystemClipboard creates a Clipboard backed by the OS clipboard.
func NewSystemClipboard() Clipboard {
	return &systemClipboard{}
}

func (c *systemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}

	return nil
}

type disabledClipboard struct{}

// NewDisabledClipboard creates a Clipboard that discards everything.
func NewDisabledClipboard() Clipboard {
	return disabledClipboard{}
}

func (disabledClipboard) WriteText(string) error {
	return nil
}

// NewClipboard returns the system clipboard when enabled and a disabled one otherwise.
func NewClipboard(enabled bool) Clipboard {
	if enabled {
		return NewSystemClipboard()
	}

	return NewDisabledClipboard()
}
