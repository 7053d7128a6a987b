package domain

import (
	"testing"

	m "github.com/mouse-blink/uniconv/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustConverter(t *testing.T, ct m.ConverterType) Converter {
	t.Helper()

	conv, err := NewRegistry().GetConverter(ct)
	require.NoError(t, err)

	return conv
}

func TestFind_LastMatchWins(t *testing.T) {
	generic := m.NewRangeRule('A', 'Z', 100)
	override := m.NewRangeRule('M', 'M', 999)
	rules := []m.ConversionRule{generic, override}

	got, ok := Find(rules, 'M')
	require.True(t, ok)
	assert.Equal(t, override, got)

	got, ok = Find(rules, 'L')
	require.True(t, ok)
	assert.Equal(t, generic, got)

	_, ok = Find(rules, 'a')
	assert.False(t, ok)
}

func TestFind_DisjointRules(t *testing.T) {
	ascii := m.NewRangeRule(0x21, 0x7E, 0xFEE0)
	space := m.NewAbsoluteRule(0x20, 0x3000)

	got, ok := Find([]m.ConversionRule{ascii, space}, 0x20)
	require.True(t, ok)
	assert.Equal(t, space, got)
}

func TestFind_Empty(t *testing.T) {
	_, ok := Find(nil, 'a')
	assert.False(t, ok)
}

func TestConverter_Dummy_Passthrough(t *testing.T) {
	conv := mustConverter(t, m.ConverterDummy)

	for _, ch := range []rune{'a', 'Z', '0', ' ', 'é', '中', '😀', 0x1D4D0, 0x10FFFF} {
		for _, mode := range []Mode{Permissive, Strict} {
			got, err := conv.ConvertChar(ch, mode)
			require.NoError(t, err)
			assert.Equal(t, string(ch), got)
		}

		assert.True(t, conv.CanConvertChar(ch))
	}

	assert.Empty(t, conv.Rules())
}

func TestConverter_ScriptBold_Alphabet(t *testing.T) {
	conv := mustConverter(t, m.ConverterScriptBold)

	tests := []struct {
		in   rune
		want rune
	}{
		{'A', 0x1D4D0},
		{'Z', 0x1D4D0 + 25},
		{'a', 0x1D4D0 + 26},
		{'z', 0x1D4D0 + 51},
	}

	for _, tt := range tests {
		got, err := conv.ConvertChar(tt.in, Strict)
		require.NoError(t, err)
		assert.Equal(t, string(tt.want), got, "ConvertChar(%q)", tt.in)
	}
}

func TestConverter_AlphabetsHaveNoGapOrCollision(t *testing.T) {
	for _, ct := range []m.ConverterType{m.ConverterScriptBold, m.ConverterFrakturBold, m.ConverterMonospace} {
		conv := mustConverter(t, ct)
		seen := make(map[string]rune)

		var previous rune

		for i, ch := range "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz" {
			got, err := conv.ConvertChar(ch, Strict)
			require.NoError(t, err)

			out := []rune(got)
			require.Len(t, out, 1)

			if i > 0 {
				assert.Equal(t, previous+1, out[0], "%s: %q does not follow its predecessor", conv.Name(), ch)
			}

			_, dup := seen[got]
			assert.False(t, dup, "%s: %q collides", conv.Name(), ch)

			seen[got] = ch
			previous = out[0]
		}
	}
}

func TestConverter_Fullwidth(t *testing.T) {
	conv := mustConverter(t, m.ConverterFullwidth)

	got, err := conv.ConvertChar('A', Strict)
	require.NoError(t, err)
	assert.Equal(t, "Ａ", got)

	got, err = conv.ConvertChar(' ', Strict)
	require.NoError(t, err)
	assert.Equal(t, "　", got)

	assert.False(t, conv.CanConvertChar('é'))
}

func TestConverter_StrictMode_Digit(t *testing.T) {
	conv := mustConverter(t, m.ConverterFrakturBold)

	assert.False(t, conv.CanConvertChar('7'))

	_, err := conv.ConvertChar('7', Strict)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCannotConvert)

	got, err := conv.ConvertChar('7', Permissive)
	require.NoError(t, err)
	assert.Equal(t, "7", got)
}

func TestConverter_RulesReturnsCopy(t *testing.T) {
	conv := mustConverter(t, m.ConverterFullwidth)

	rules := conv.Rules()
	rules[0] = m.NewAbsoluteRule('x', 'y')

	assert.NotEqual(t, rules[0], conv.Rules()[0])
}
