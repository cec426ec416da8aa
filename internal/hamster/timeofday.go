package hamster

// Vital names one of the three needs.
type Vital int

const (
	VitalHunger Vital = iota
	VitalHappiness
	VitalEnergy
)

// TimeOfDay is derived from the wall-clock hour.
type TimeOfDay int

const (
	Morning TimeOfDay = iota
	Afternoon
	Evening
	Night
)

type periodEffects struct {
	name         string
	drain        [3]float64
	coinBonus    float64
	baseRecovery float64
	sleepChance  float64
}

var periods = [...]periodEffects{
	Morning:   {"morning", [3]float64{1.2, 1.0, 0.8}, 1.0, 3, 0.1},
	Afternoon: {"afternoon", [3]float64{1.0, 1.0, 1.0}, 0, 3, 0.1},
	Evening:   {"evening", [3]float64{1.0, 0.9, 1.1}, 0.5, 3, 0.3},
	Night:     {"night", [3]float64{0.8, 1.0, 1.3}, 0, 4, 0.7},
}

// TimeOfDayAt maps an hour (0-23) to its period.
// Morning 6-12, Afternoon 12-18, Evening 18-22, Night 22-6.
func TimeOfDayAt(hour int) TimeOfDay {
	switch {
	case hour >= 6 && hour < 12:
		return Morning
	case hour >= 12 && hour < 18:
		return Afternoon
	case hour >= 18 && hour < 22:
		return Evening
	default:
		return Night
	}
}

func (t TimeOfDay) effects() periodEffects {
	if t < Morning || t > Night {
		return periods[Afternoon]
	}
	return periods[t]
}

// String returns the period name
func (t TimeOfDay) String() string { return t.effects().name }

// DrainMultiplier scales passive drain of a vital
func (t TimeOfDay) DrainMultiplier(v Vital) float64 {
	if v < VitalHunger || v > VitalEnergy {
		return 1.0
	}
	return t.effects().drain[v]
}

// CoinBonus is added to the base coins of a commanded action
func (t TimeOfDay) CoinBonus() float64 { return t.effects().coinBonus }

// IsNight reports whether the period is night
func (t TimeOfDay) IsNight() bool { return t == Night }

// SleepChance is the probability that a tired hamster picks a nap on a re-roll
func (t TimeOfDay) SleepChance() float64 { return t.effects().sleepChance }

// BaseRecovery is the energy regained per recovery pulse while napping
func (t TimeOfDay) BaseRecovery() float64 { return t.effects().baseRecovery }
