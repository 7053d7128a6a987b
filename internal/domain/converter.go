// Package domain contains the conversion engine and the command session built on it.
package domain

import (
	"fmt"

	"github.com/mouse-blink/uniconv/internal/domain/typefaces"
	m "github.com/mouse-blink/uniconv/internal/model"
)

// Converter binds a typeface identity to its rule sequence.
// A Converter is read-only after construction and safe for concurrent use.
type Converter struct {
	kind  m.ConverterType
	rules []m.ConversionRule
}

func newConverter(t m.ConverterType) (Converter, error) {
	if !t.Valid() {
		return Converter{}, fmt.Errorf("%w: %d", ErrUnknownConverterType, int(t))
	}

	rules, ok := typefaces.Rules(t)
	if !ok {
		return Converter{}, fmt.Errorf("%w: %d", ErrUnknownConverterType, int(t))
	}

	return Converter{kind: t, rules: rules}, nil
}

// Type returns the typeface identity.
func (c Converter) Type() m.ConverterType {
	return c.kind
}

// Name returns the typeface display name.
func (c Converter) Name() string {
	return c.kind.Name()
}

// Rules returns a copy of the rule sequence in insertion order.
func (c Converter) Rules() []m.ConversionRule {
	rules := make([]m.ConversionRule, len(c.rules))
	copy(rules, c.rules)

	return rules
}

// Find returns the rule that converts ch, if any.
func (c Converter) Find(ch rune) (m.ConversionRule, bool) {
	return Find(c.rules, ch)
}

// CanConvertChar reports whether a rule covers ch.
// The dummy converter accepts everything.
func (c Converter) CanConvertChar(ch rune) bool {
	if c.passthrough() {
		return true
	}

	_, ok := c.Find(ch)

	return ok
}

// ConvertChar converts a single rune.
// Runes without a rule are returned unchanged in permissive mode and
// rejected with ErrCannotConvert in strict mode.
func (c Converter) ConvertChar(ch rune, mode Mode) (string, error) {
	rule, ok := c.Find(ch)
	if !ok {
		if c.passthrough() || mode == Permissive {
			return string(ch), nil
		}

		return "", &CannotConvertError{Input: string(ch), Char: ch}
	}

	out, err := rule.Convert(ch)
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.Name(), err)
	}

	return string(out), nil
}

func (c Converter) passthrough() bool {
	return c.kind == m.ConverterDummy
}

// Find scans rules and returns the last one covering ch.
// Later rules override earlier ones where ranges overlap.
func Find(rules []m.ConversionRule, ch rune) (m.ConversionRule, bool) {
	for i := len(rules) - 1; i >= 0; i-- {
		if rules[i].CanConvert(ch) {
			return rules[i], true
		}
	}

	return m.ConversionRule{}, false
}
