package buff

import (
	"fmt"
	"math"
)

// Type identifies which quantity a buff scales.
type Type uint8

const (
	HungerDrain Type = iota
	HappinessDrain
	EnergyDrain
	CoinBonus
)

var typeNames = map[Type]string{
	HungerDrain:    TypeNameHungerDrain,
	HappinessDrain: TypeNameHappinessDrain,
	EnergyDrain:    TypeNameEnergyDrain,
	CoinBonus:      TypeNameCoinBonus,
}

// String returns the stable key used in saves and events
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("buff(%d)", uint8(t))
}

// ParseType resolves a stable key back to a Type
func ParseType(name string) (Type, bool) {
	for t, n := range typeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// Buff is a timed multiplier on one quantity.
type Buff struct {
	Type            Type
	Multiplier      float64
	RemainingFrames int
	Description     string
}

// New builds a buff whose duration is scaled once by durationMultiplier.
// The scaled duration is never below one frame.
func New(t Type, multiplier float64, baseFrames int, durationMultiplier float64, description string) Buff {
	frames := int(math.Ceil(float64(baseFrames) * durationMultiplier))
	if frames < 1 {
		frames = 1
	}
	return Buff{
		Type:            t,
		Multiplier:      multiplier,
		RemainingFrames: frames,
		Description:     description,
	}
}

// List holds the active buffs of one hamster.
type List []Buff

// Add appends a buff. Buffs of the same type stack multiplicatively.
func (l *List) Add(b Buff) {
	*l = append(*l, b)
}

// Tick advances every buff by one frame and drops the expired ones.
func (l *List) Tick() {
	kept := (*l)[:0]
	for _, b := range *l {
		b.RemainingFrames--
		if b.RemainingFrames > 0 {
			kept = append(kept, b)
		}
	}
	*l = kept
}

// Multiplier returns the product of all active multipliers of type t, or 1.0.
func (l List) Multiplier(t Type) float64 {
	m := 1.0
	for _, b := range l {
		if b.Type == t {
			m *= b.Multiplier
		}
	}
	return m
}

// Clone returns an independent copy.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}
