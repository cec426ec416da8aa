package meta

// Track is one permanent upgrade line bought with seeds.
type Track int

const (
	LifespanRange Track = iota
	AgingSpeed
	ActionGain
	DrainAmount
	DrainInterval
	HamsterSlots
	BreedAge
	CoinBonus
	PoopFrequency
	PoopPenalty
	EventInterval
	BuffDuration
	StartingStats

	// TrackCount is the number of tracks
	TrackCount
)

// TrackInfo describes a track for display and pricing
type TrackInfo struct {
	Track       Track  `json:"-"`
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	MaxLevel    int    `json:"max_level"`
	BaseCost    int    `json:"base_cost"`
}

var trackTable = [TrackCount]TrackInfo{
	{LifespanRange, TrackKeyLifespan, "Long Life", "Hamsters live half a day longer", 10, 30},
	{AgingSpeed, TrackKeyAgingSpeed, "Slow Aging", "Hamsters age 10% slower", 5, 40},
	{ActionGain, TrackKeyActionGain, "Tender Care", "Feeding, play and naps restore more", 10, 20},
	{DrainAmount, TrackKeyDrainAmount, "Hardy Genes", "Needs drain 10% slower", 8, 25},
	{DrainInterval, TrackKeyDrainInterval, "Patience", "Needs drain less often", 10, 25},
	{HamsterSlots, TrackKeyHamsterSlots, "Bigger Cage", "Room for one more hamster", 4, 100},
	{BreedAge, TrackKeyBreedAge, "Early Bloomers", "Hamsters can breed sooner", 5, 30},
	{CoinBonus, TrackKeyCoinBonus, "Allowance", "Actions earn extra coins", 10, 20},
	{PoopFrequency, TrackKeyPoopFrequency, "Better Diet", "Fewer droppings", 5, 15},
	{PoopPenalty, TrackKeyPoopPenalty, "Thick Skin", "Droppings bother hamsters less", 5, 15},
	{EventInterval, TrackKeyEventInterval, "Eventful Days", "Random events happen more often", 5, 20},
	{BuffDuration, TrackKeyBuffDuration, "Lingering Luck", "Buffs last 20% longer", 5, 25},
	{StartingStats, TrackKeyStartingStats, "Head Start", "New hamsters start with fuller needs", 5, 20},
}

// Effect curves. Lifespan has two, one per end of the range.
var (
	lifespanMinDays  = linear(5, 0.5)
	lifespanMaxDays  = linear(8, 0.5)
	agingSpeedCurve  = linear(1.0, -0.1).floor(0.5)
	actionGainCurve  = linear(15, 2)
	drainAmountCurve = linear(1.0, -0.1).floor(0.2)
	drainEveryCurve  = linear(300, 30)
	slotsCurve       = linear(2, 1)
	breedAgeDays     = linear(2.0, -0.3).floor(0.5)
	coinBonusCurve   = linear(0, 0.5)
	poopFreqCurve    = linear(1.0, -0.1).floor(0.5)
	poopPenaltyCurve = linear(1.0, -0.15).floor(0.25)
	eventEveryCurve  = linear(9000, -900).floor(4500)
	buffDurationMult = ValueModifier{ModifierType: ModifierTypeMultiplicative, BaseValue: 1.0, PerLevelValue: 0.2}
	startingStatsVal = linear(50, 10).ceil(100)
)

// Tracks returns every track in display order
func Tracks() []TrackInfo {
	out := make([]TrackInfo, len(trackTable))
	copy(out, trackTable[:])
	return out
}

// Info returns the description of a track
func (t Track) Info() (TrackInfo, bool) {
	if t < 0 || t >= TrackCount {
		return TrackInfo{}, false
	}
	return trackTable[t], true
}

// String returns the stable key of the track
func (t Track) String() string {
	if info, ok := t.Info(); ok {
		return info.Key
	}
	return "unknown"
}

// ParseTrack resolves a track key
func ParseTrack(key string) (Track, bool) {
	for _, info := range trackTable {
		if info.Key == key {
			return info.Track, true
		}
	}
	return 0, false
}
