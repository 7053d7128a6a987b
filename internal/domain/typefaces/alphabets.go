package typefaces

import (
	m "github.com/mouse-blink/uniconv/internal/model"
)

// Starting code points of the Mathematical Alphanumeric Symbols alphabets.
const (
	scriptBoldCapitalA  = 0x1D4D0
	frakturBoldCapitalA = 0x1D56C
	monospaceCapitalA   = 0x1D670
)

// ScriptBoldRules maps Latin letters to Mathematical Bold Script.
func ScriptBoldRules() []m.ConversionRule {
	return m.FromAlphabet(scriptBoldCapitalA, false)
}

// FrakturBoldRules maps Latin letters to Mathematical Bold Fraktur.
func FrakturBoldRules() []m.ConversionRule {
	return m.FromAlphabet(frakturBoldCapitalA, false)
}

// MonospaceRules maps Latin letters to Mathematical Monospace.
func MonospaceRules() []m.ConversionRule {
	return m.FromAlphabet(monospaceCapitalA, false)
}
