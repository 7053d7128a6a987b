package model

// ConverterType identifies a target typeface.
type ConverterType int

// Available ConverterType values, in declaration order.
// Alias lookup walks them in this order and the first match wins.
const (
	ConverterDummy ConverterType = iota
	ConverterFullwidth
	ConverterScriptBold
	ConverterFrakturBold
	ConverterMonospace
)

// ConverterTypes lists every known type in declaration order.
var ConverterTypes = []ConverterType{
	ConverterDummy,
	ConverterFullwidth,
	ConverterScriptBold,
	ConverterFrakturBold,
	ConverterMonospace,
}

var converterNames = map[ConverterType]string{
	ConverterDummy:       "Default",
	ConverterFullwidth:   "Full Width Encoding",
	ConverterScriptBold:  "Mathematical Script Bold",
	ConverterFrakturBold: "Fraktur Bold",
	ConverterMonospace:   "Monospace",
}

var converterAliases = map[ConverterType][]string{
	ConverterDummy:       {"dummy", "d"},
	ConverterFullwidth:   {"fullwidth", "full width", "weaboo", "fw", "f"},
	ConverterScriptBold:  {"scriptbold", "sb"},
	ConverterFrakturBold: {"frakturbold", "fraktur", "fb", "fr"},
	ConverterMonospace:   {"monospace", "ms", "mono"},
}

// Name returns the display name of the type.
func (t ConverterType) Name() string {
	if name, ok := converterNames[t]; ok {
		return name
	}

	return "Null"
}

// Aliases returns the lowercase lookup names of the type.
// The first alias is the canonical one.
func (t ConverterType) Aliases() []string {
	aliases := converterAliases[t]

	out := make([]string, len(aliases))
	copy(out, aliases)

	return out
}

// Valid reports whether t is one of the declared types.
func (t ConverterType) Valid() bool {
	_, ok := converterNames[t]
	return ok
}

func (t ConverterType) String() string {
	return t.Name()
}

// ConverterInfo describes a converter for listings.
type ConverterInfo struct {
	Type    ConverterType
	Name    string
	Aliases []string
}
