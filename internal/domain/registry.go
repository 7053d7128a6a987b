package domain

import (
	"strings"

	m "github.com/mouse-blink/uniconv/internal/model"
	"github.com/samber/lo"
)

// Registry resolves converter names and builds converters.
type Registry interface {
	GetConverter(t m.ConverterType) (Converter, error)
	ResolveTypeFromAlias(name string) (m.ConverterType, bool)
	Converters() []m.ConverterInfo
}

type registry struct {
	types []m.ConverterType
}

// NewRegistry creates a Registry over every declared converter type.
func NewRegistry() Registry {
	return &registry{types: m.ConverterTypes}
}

// GetConverter returns a fresh converter for t.
func (r *registry) GetConverter(t m.ConverterType) (Converter, error) {
	return newConverter(t)
}

// ResolveTypeFromAlias matches name case-insensitively against each type's
// aliases in declaration order. When nothing matches it returns the dummy
// type and false.
func (r *registry) ResolveTypeFromAlias(name string) (m.ConverterType, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return m.ConverterDummy, false
	}

	for _, t := range r.types {
		if lo.Contains(t.Aliases(), key) {
			return t, true
		}
	}

	return m.ConverterDummy, false
}

// Converters lists every converter with its aliases.
func (r *registry) Converters() []m.ConverterInfo {
	return lo.Map(r.types, func(t m.ConverterType, _ int) m.ConverterInfo {
		return m.ConverterInfo{
			Type:    t,
			Name:    t.Name(),
			Aliases: t.Aliases(),
		}
	})
}
