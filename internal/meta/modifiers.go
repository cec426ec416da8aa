package meta

import "math"

// ModifierType defines how a track level changes its effect value
type ModifierType string

const (
	// ModifierTypeLinear: base + level * perLevel
	// Example: 15 base + (2 * 2) = 19 at level 2
	ModifierTypeLinear ModifierType = "linear"

	// ModifierTypeMultiplicative: base * (1 + level * perLevel)
	// Example: 1.0 * (1 + 2 * 0.2) = 1.4 at level 2
	ModifierTypeMultiplicative ModifierType = "multiplicative"
)

// ValueModifier is one effect curve of a meta track
type ValueModifier struct {
	ModifierType  ModifierType
	BaseValue     float64
	PerLevelValue float64
	MaxValue      *float64 // Optional cap
	MinValue      *float64 // Optional floor
}

// ApplyModifier evaluates the curve at the given level and applies bounds.
func ApplyModifier(m ValueModifier, level int) float64 {
	var result float64

	switch m.ModifierType {
	case ModifierTypeMultiplicative:
		result = m.BaseValue * (1 + float64(level)*m.PerLevelValue)
	case ModifierTypeLinear:
		result = m.BaseValue + float64(level)*m.PerLevelValue
	default:
		return m.BaseValue
	}

	if m.MaxValue != nil {
		result = math.Min(result, *m.MaxValue)
	}
	if m.MinValue != nil {
		result = math.Max(result, *m.MinValue)
	}
	return result
}

func bound(v float64) *float64 { return &v }

func linear(base, perLevel float64) ValueModifier {
	return ValueModifier{ModifierType: ModifierTypeLinear, BaseValue: base, PerLevelValue: perLevel}
}

func (m ValueModifier) floor(v float64) ValueModifier {
	m.MinValue = bound(v)
	return m
}

func (m ValueModifier) ceil(v float64) ValueModifier {
	m.MaxValue = bound(v)
	return m
}
