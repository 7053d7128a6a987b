package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrOutOfRange is returned when a rule is asked to convert a rune it does not cover.
	ErrOutOfRange = errors.New("rune not in rule range")
	// ErrInvalidCodepoint is returned when a rule's offset lands outside the valid scalar values.
	ErrInvalidCodepoint = errors.New("converted code point is not a valid scalar value")
)

// ConversionRule maps a contiguous range of code points by a constant offset.
// Absolute rules cover a single code point and keep the pair they were built from.
type ConversionRule struct {
	relative bool
	min      rune
	max      rune
	offset   rune
	from     rune
	to       rune
}

// NewRangeRule maps every code point in [from, to] to codepoint+offset.
// The bounds are swapped when given in reverse.
func NewRangeRule(from, to, offset rune) ConversionRule {
	if from > to {
		from, to = to, from
	}

	return ConversionRule{
		relative: true,
		min:      from,
		max:      to,
		offset:   offset,
	}
}

// NewAbsoluteRule maps the single code point from to to.
func NewAbsoluteRule(from, to rune) ConversionRule {
	return ConversionRule{
		min:    from,
		max:    from,
		offset: to - from,
		from:   from,
		to:     to,
	}
}

// FromAlphabet builds the uppercase and lowercase rules for a Unicode alphabet
// whose lowercase letters directly follow the uppercase ones.
// When isOffsetFromA is false, basePoint is the absolute target of 'A'.
func FromAlphabet(basePoint rune, isOffsetFromA bool) []ConversionRule {
	offset := basePoint
	if !isOffsetFromA {
		offset -= 'A'
	}

	// ASCII has six code points between 'Z' and 'a'.
	return []ConversionRule{
		NewRangeRule('A', 'Z', offset),
		NewRangeRule('a', 'z', offset-6),
	}
}

// Relative reports whether the rule was built from a range and offset.
func (r ConversionRule) Relative() bool { return r.relative }

// Min returns the first covered code point.
func (r ConversionRule) Min() rune { return r.min }

// Max returns the last covered code point.
func (r ConversionRule) Max() rune { return r.max }

// Offset returns the amount added to each covered code point.
func (r ConversionRule) Offset() rune { return r.offset }

// Pair returns the defining pair of an absolute rule.
// ok is false for range rules.
func (r ConversionRule) Pair() (from, to rune, ok bool) {
	return r.from, r.to, !r.relative
}

// CanConvert reports whether ch lies inside the rule range.
func (r ConversionRule) CanConvert(ch rune) bool {
	return r.min <= ch && ch <= r.max
}

// Convert shifts ch by the rule offset.
func (r ConversionRule) Convert(ch rune) (rune, error) {
	if !r.CanConvert(ch) {
		return 0, fmt.Errorf("%w: %U not in [%U, %U]", ErrOutOfRange, ch, r.min, r.max)
	}

	out := ch + r.offset
	if !utf8.ValidRune(out) {
		return 0, fmt.Errorf("%w: %U%+d", ErrInvalidCodepoint, ch, r.offset)
	}

	return out, nil
}

// Covered returns every code point the rule covers, in order.
func (r ConversionRule) Covered() []rune {
	covered := make([]rune, 0, int64(r.max)-int64(r.min)+1)
	for ch := int64(r.min); ch <= int64(r.max); ch++ {
		covered = append(covered, rune(ch))
	}

	return covered
}

// String renders the rule as "[A B C] -> [X Y Z]".
func (r ConversionRule) String() string {
	covered := r.Covered()
	from := make([]string, 0, len(covered))
	to := make([]string, 0, len(covered))

	for _, ch := range covered {
		from = append(from, string(ch))

		out, err := r.Convert(ch)
		if err != nil {
			to = append(to, string(utf8.RuneError))
			continue
		}

		to = append(to, string(out))
	}

	return fmt.Sprintf("[%s] -> [%s]", strings.Join(from, " "), strings.Join(to, " "))
}
