package domain

import (
	"errors"
	"strings"
)

// Mode controls what happens to runes no rule covers.
type Mode int

// Available Mode values.
const (
	Permissive Mode = iota
	Strict
)

func (md Mode) String() string {
	if md == Strict {
		return "strict"
	}

	return "permissive"
}

// Transformer applies a Converter to whole strings.
type Transformer struct {
	Mode Mode
}

// NewTransformer creates a Transformer for one run.
func NewTransformer(strict bool) Transformer {
	if strict {
		return Transformer{Mode: Strict}
	}

	return Transformer{Mode: Permissive}
}

// ConvertChar converts one rune with the transformer's mode.
func (t Transformer) ConvertChar(c Converter, ch rune) (string, error) {
	return c.ConvertChar(ch, t.Mode)
}

// Transform converts text rune by rune and stops at the first failure.
func (t Transformer) Transform(c Converter, text string) (string, error) {
	var sb strings.Builder

	sb.Grow(len(text))

	index := 0

	for _, ch := range text {
		out, err := c.ConvertChar(ch, t.Mode)
		if err != nil {
			var cce *CannotConvertError
			if errors.As(err, &cce) {
				return "", &CannotConvertError{Input: text, Index: index, Char: ch}
			}

			return "", err
		}

		sb.WriteString(out)

		index++
	}

	return sb.String(), nil
}
