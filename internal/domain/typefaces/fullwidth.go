package typefaces

import (
	m "github.com/mouse-blink/uniconv/internal/model"
)

const (
	fullwidthOffset  = 0xFEE0
	ideographicSpace = 0x3000
)

// FullwidthRules maps printable ASCII to the Halfwidth and Fullwidth Forms block
// and the space to the ideographic space.
func FullwidthRules() []m.ConversionRule {
	return []m.ConversionRule{
		m.NewRangeRule(0x21, 0x7E, fullwidthOffset),
		m.NewAbsoluteRule(' ', ideographicSpace),
	}
}
