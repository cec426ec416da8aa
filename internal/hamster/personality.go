package hamster

import "math/rand/v2"

// Personality is a fixed behavioural archetype rolled at birth.
type Personality string

const (
	Balanced Personality = "balanced"
	Lazy     Personality = "lazy"
	Hyper    Personality = "hyper"
	Glutton  Personality = "glutton"
	Playful  Personality = "playful"
	Sleepy   Personality = "sleepy"
	Grumpy   Personality = "grumpy"
	Lucky    Personality = "lucky"
)

// DefaultPersonality is used when a saved personality is missing or unknown
const DefaultPersonality = Balanced

// Traits are the seven multipliers a personality applies.
type Traits struct {
	HungerDrain    float64 `json:"hunger_drain"`
	HappinessDrain float64 `json:"happiness_drain"`
	EnergyDrain    float64 `json:"energy_drain"`
	FeedGain       float64 `json:"feed_gain"`
	PlayGain       float64 `json:"play_gain"`
	SleepGain      float64 `json:"sleep_gain"`
	Coin           float64 `json:"coin"`
}

var personalityOrder = []Personality{Balanced, Lazy, Hyper, Glutton, Playful, Sleepy, Grumpy, Lucky}

var personalityTraits = map[Personality]Traits{
	Balanced: {1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0},
	Lazy:     {1.0, 0.9, 0.7, 1.0, 0.8, 1.3, 0.9},
	Hyper:    {1.2, 1.0, 1.4, 1.0, 1.3, 0.8, 1.1},
	Glutton:  {1.4, 1.0, 1.0, 1.5, 0.9, 1.0, 1.0},
	Playful:  {1.0, 1.3, 1.1, 1.0, 1.5, 1.0, 1.0},
	Sleepy:   {0.9, 1.0, 1.2, 1.0, 0.9, 1.5, 0.9},
	Grumpy:   {1.0, 1.4, 1.0, 0.9, 0.7, 1.0, 1.2},
	Lucky:    {1.1, 1.1, 1.0, 1.0, 1.0, 1.0, 1.5},
}

// Personalities returns every personality in a stable order
func Personalities() []Personality {
	out := make([]Personality, len(personalityOrder))
	copy(out, personalityOrder)
	return out
}

// ParsePersonality resolves a stored key, falling back to the default.
func ParsePersonality(s string) Personality {
	p := Personality(s)
	if _, ok := personalityTraits[p]; ok {
		return p
	}
	return DefaultPersonality
}

// Traits returns the multipliers of the personality
func (p Personality) Traits() Traits {
	if t, ok := personalityTraits[p]; ok {
		return t
	}
	return personalityTraits[DefaultPersonality]
}

// RandomPersonality picks a personality uniformly
func RandomPersonality(rng *rand.Rand) Personality {
	return personalityOrder[rng.IntN(len(personalityOrder))]
}

func (t Traits) drain(v Vital) float64 {
	switch v {
	case VitalHunger:
		return t.HungerDrain
	case VitalHappiness:
		return t.HappinessDrain
	case VitalEnergy:
		return t.EnergyDrain
	}
	return 1.0
}
