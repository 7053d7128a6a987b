// Package typefaces provides the conversion rule tables for each supported typeface.
package typefaces

import (
	m "github.com/mouse-blink/uniconv/internal/model"
)

// Rules returns a fresh rule sequence for t and whether t is known.
// The dummy typeface has no rules.
func Rules(t m.ConverterType) ([]m.ConversionRule, bool) {
	switch t {
	case m.ConverterDummy:
		return nil, true
	case m.ConverterFullwidth:
		return FullwidthRules(), true
	case m.ConverterScriptBold:
		return ScriptBoldRules(), true
	case m.ConverterFrakturBold:
		return FrakturBoldRules(), true
	case m.ConverterMonospace:
		return MonospaceRules(), true
	default:
		return nil, false
	}
}
