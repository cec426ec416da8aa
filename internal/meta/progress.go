package meta

import "math"

// Params are the derived simulation parameters for the current meta levels.
// Hamsters receive a copy and never read Progress directly.
type Params struct {
	LifespanMinFrames int64
	LifespanMaxFrames int64
	AgingSpeed        float64
	ActionGain        int
	DrainMultiplier   float64
	DrainInterval     int
	HamsterSlots      int
	BreedAgeFrames    int64
	CoinBonus         float64
	PoopFrequency     float64
	PoopPenalty       float64
	EventInterval     int
	BuffDuration      float64
	StartingStat      int
}

// DefaultParams returns the parameters of a fresh profile
func DefaultParams() Params {
	var p Progress
	return p.Params()
}

// Progress is the permanent, cross-run upgrade state.
type Progress struct {
	Seeds  int
	Levels [TrackCount]int
}

// Level returns the current level of a track
func (p *Progress) Level(t Track) int {
	if t < 0 || t >= TrackCount {
		return 0
	}
	return p.Levels[t]
}

// Cost returns the seed cost of the next level. ok is false when the track
// is unknown or already at max level.
func (p *Progress) Cost(t Track) (cost int, ok bool) {
	info, known := t.Info()
	if !known {
		return 0, false
	}
	level := p.Levels[t]
	if level >= info.MaxLevel {
		return 0, false
	}
	return info.BaseCost * (level + 1), true
}

// Upgrade buys one level of a track. On failure nothing changes.
func (p *Progress) Upgrade(t Track) bool {
	cost, ok := p.Cost(t)
	if !ok || p.Seeds < cost {
		return false
	}
	p.Seeds -= cost
	p.Levels[t]++
	return true
}

// AddSeeds credits seeds. Negative amounts are ignored.
func (p *Progress) AddSeeds(n int) {
	if n > 0 {
		p.Seeds += n
	}
}

// LevelsByKey returns the levels keyed by track key
func (p *Progress) LevelsByKey() map[string]int {
	out := make(map[string]int, TrackCount)
	for t := Track(0); t < TrackCount; t++ {
		out[t.String()] = p.Levels[t]
	}
	return out
}

// FromLevels rebuilds progress from persisted values. Unknown keys are
// dropped and levels are clamped to each track's range.
func FromLevels(seeds int, levels map[string]int) Progress {
	p := Progress{Seeds: max(0, seeds)}
	for key, level := range levels {
		t, ok := ParseTrack(key)
		if !ok {
			continue
		}
		info, _ := t.Info()
		p.Levels[t] = min(max(0, level), info.MaxLevel)
	}
	return p
}

// Params derives the simulation parameters from the current levels.
func (p *Progress) Params() Params {
	at := func(m ValueModifier, t Track) float64 { return ApplyModifier(m, p.Levels[t]) }

	return Params{
		LifespanMinFrames: daysToFrames(at(lifespanMinDays, LifespanRange)),
		LifespanMaxFrames: daysToFrames(at(lifespanMaxDays, LifespanRange)),
		AgingSpeed:        at(agingSpeedCurve, AgingSpeed),
		ActionGain:        int(at(actionGainCurve, ActionGain)),
		DrainMultiplier:   at(drainAmountCurve, DrainAmount),
		DrainInterval:     int(at(drainEveryCurve, DrainInterval)),
		HamsterSlots:      int(at(slotsCurve, HamsterSlots)),
		BreedAgeFrames:    daysToFrames(at(breedAgeDays, BreedAge)),
		CoinBonus:         at(coinBonusCurve, CoinBonus),
		PoopFrequency:     at(poopFreqCurve, PoopFrequency),
		PoopPenalty:       at(poopPenaltyCurve, PoopPenalty),
		EventInterval:     int(at(eventEveryCurve, EventInterval)),
		BuffDuration:      at(buffDurationMult, BuffDuration),
		StartingStat:      int(at(startingStatsVal, StartingStats)),
	}
}

// SeedsForRun converts the outcome of a finished run into seeds.
func SeedsForRun(hamstersRaised int, remainingCoins float64) int {
	if remainingCoins < 0 {
		remainingCoins = 0
	}
	return hamstersRaised*SeedsPerHamsterRaised + int(math.Floor(remainingCoins/CoinsPerSeed))
}

func daysToFrames(days float64) int64 {
	return int64(math.Round(days * FramesPerDay))
}
