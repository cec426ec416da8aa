package hamster

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/osse101/HamsterHaven_Go/internal/buff"
	"github.com/osse101/HamsterHaven_Go/internal/meta"
)

// State is the current behaviour of a hamster.
type State int

const (
	Idle State = iota
	Walking
	Eating
	Sleeping
	Happy
	RunningWheel
)

var stateNames = [...]string{"idle", "walking", "eating", "sleeping", "happy", "running_wheel"}

// String returns the stable key of the state
func (s State) String() string {
	if s < Idle || s > RunningWheel {
		return stateNames[Idle]
	}
	return stateNames[s]
}

// ParseState resolves a stored key, falling back to Idle.
func ParseState(name string) State {
	for i, n := range stateNames {
		if n == name {
			return State(i)
		}
	}
	return Idle
}

// DeathCause records why a hamster died.
type DeathCause string

const (
	CauseNone    DeathCause = ""
	CauseOldAge  DeathCause = "old_age"
	CauseNeglect DeathCause = "neglect"
	CauseKilled  DeathCause = "killed"
)

// Legacy is the inherited bonus carried across generations.
type Legacy struct {
	Hunger         int   `json:"hunger" toml:"hunger"`
	Happiness      int   `json:"happiness" toml:"happiness"`
	Energy         int   `json:"energy" toml:"energy"`
	LifespanFrames int64 `json:"lifespan_frames" toml:"lifespan_frames"`
	MaxStat        int   `json:"max_stat" toml:"max_stat"`
}

// Hamster is one simulated pet. It is not safe for concurrent use; the
// habitat mutates it from a single goroutine.
type Hamster struct {
	ID          uuid.UUID
	Name        string
	Color       Color
	Personality Personality

	hunger    int
	happiness int
	energy    int
	maxStat   int

	ageFrames      int64
	ageAccumulator float64
	lifespanFrames int64
	dead           bool
	deathCause     DeathCause
	frozen         bool

	state        State
	stateTimer   int
	userAction   bool
	pendingFood  *Food
	pendingCoins float64
	pendingPoops int
	direction    int
	speed        float64

	generation          int
	legacy              Legacy
	legacyApplied       bool
	breedCooldown       int
	interactionCooldown int

	equipped []AccessoryID
	buffs    buff.List

	frame       int64
	poopCounter int

	params meta.Params
	rng    *rand.Rand
}

// Options configure a newborn hamster
type Options struct {
	Name        string
	Color       Color
	Personality Personality
	Generation  int
	Params      meta.Params
	Rng         *rand.Rand
}

// New creates a hamster with rolled lifespan and starting vitals from params.
func New(opts Options) *Hamster {
	rng := opts.Rng
	if rng == nil {
		rng = NewRand()
	}
	h := &Hamster{
		ID:          uuid.New(),
		Color:       opts.Color,
		Personality: opts.Personality,
		maxStat:     BaseMaxStat,
		generation:  max(1, opts.Generation),
		params:      opts.Params,
		rng:         rng,
		direction:   1,
	}
	if _, ok := h.Color.Price(); !ok {
		h.Color = DefaultColor
	}
	if _, ok := personalityTraits[h.Personality]; !ok {
		h.Personality = RandomPersonality(rng)
	}
	h.Name = NormalizeName(opts.Name)
	if h.Name == "" {
		h.Name = RandomName(rng)
	}

	start := h.clamp(opts.Params.StartingStat)
	h.hunger, h.happiness, h.energy = start, start, start
	h.lifespanFrames = h.rollLifespan()
	h.enter(Idle, h.between(IdleFramesMin, IdleFramesMax))
	return h
}

// NewRand returns a randomly seeded generator
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func (h *Hamster) rollLifespan() int64 {
	lo, hi := h.params.LifespanMinFrames, h.params.LifespanMaxFrames
	if hi <= lo {
		return max(lo, 1)
	}
	return lo + h.rng.Int64N(hi-lo+1)
}

func (h *Hamster) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + h.rng.IntN(hi-lo)
}

func (h *Hamster) clamp(v int) int {
	return min(max(v, 0), h.maxStat)
}

// Accessors

func (h *Hamster) Hunger() int              { return h.hunger }
func (h *Hamster) Happiness() int           { return h.happiness }
func (h *Hamster) Energy() int              { return h.energy }
func (h *Hamster) MaxStat() int             { return h.maxStat }
func (h *Hamster) AgeFrames() int64         { return h.ageFrames }
func (h *Hamster) LifespanFrames() int64    { return h.lifespanFrames }
func (h *Hamster) IsDead() bool             { return h.dead }
func (h *Hamster) DeathCause() DeathCause   { return h.deathCause }
func (h *Hamster) IsFrozen() bool           { return h.frozen }
func (h *Hamster) State() State             { return h.state }
func (h *Hamster) StateTimer() int          { return h.stateTimer }
func (h *Hamster) IsUserAction() bool       { return h.userAction }
func (h *Hamster) Generation() int          { return h.generation }
func (h *Hamster) Legacy() Legacy           { return h.legacy }
func (h *Hamster) BreedCooldown() int       { return h.breedCooldown }
func (h *Hamster) InteractionCooldown() int { return h.interactionCooldown }
func (h *Hamster) Direction() int           { return h.direction }
func (h *Hamster) Speed() float64           { return h.speed }
func (h *Hamster) Params() meta.Params      { return h.params }

// AgeDays returns the age in in-game days
func (h *Hamster) AgeDays() float64 {
	return float64(h.ageFrames) / meta.FramesPerDay
}

// Buffs returns a copy of the active buffs
func (h *Hamster) Buffs() buff.List { return h.buffs.Clone() }

// Equipped returns a copy of the worn accessories
func (h *Hamster) Equipped() []AccessoryID {
	out := make([]AccessoryID, len(h.equipped))
	copy(out, h.equipped)
	return out
}

// AverageVitals returns the mean of hunger, happiness and energy
func (h *Hamster) AverageVitals() float64 {
	return float64(h.hunger+h.happiness+h.energy) / 3
}

// SetParams pushes new derived parameters. Already-rolled values such as
// lifespan are left alone.
func (h *Hamster) SetParams(p meta.Params) {
	h.params = p
}

// SetRand replaces the random source
func (h *Hamster) SetRand(rng *rand.Rand) {
	if rng != nil {
		h.rng = rng
	}
}

// SetVitals sets all three needs, clamped to [0, MaxStat].
func (h *Hamster) SetVitals(hunger, happiness, energy int) {
	h.hunger = h.clamp(hunger)
	h.happiness = h.clamp(happiness)
	h.energy = h.clamp(energy)
}

// AdjustVitals adds deltas to the three needs, clamped to [0, MaxStat].
func (h *Hamster) AdjustVitals(hunger, happiness, energy int) {
	h.SetVitals(h.hunger+hunger, h.happiness+happiness, h.energy+energy)
}

// SetFrozen pauses or resumes simulation of the hamster
func (h *Hamster) SetFrozen(frozen bool) {
	h.frozen = frozen
}

// SetGeneration sets the generation number (minimum 1)
func (h *Hamster) SetGeneration(g int) {
	h.generation = max(1, g)
}

// StartBreedCooldown blocks breeding for the given number of frames
func (h *Hamster) StartBreedCooldown(frames int) {
	h.breedCooldown = frames
}

// ApplyLegacy raises the stat cap, adds the vital bonuses and extends the
// lifespan. It takes effect once per hamster; later calls return false.
func (h *Hamster) ApplyLegacy(l Legacy) bool {
	if h.legacyApplied {
		return false
	}
	h.legacyApplied = true
	h.legacy = l
	h.maxStat = min(HardMaxStat, BaseMaxStat+max(0, l.MaxStat))
	h.lifespanFrames += max(0, l.LifespanFrames)
	h.AdjustVitals(l.Hunger, l.Happiness, l.Energy)
	return true
}

// AddBuff attaches a buff whose duration is scaled by the buff-duration
// parameter once, now.
func (h *Hamster) AddBuff(t buff.Type, multiplier float64, baseFrames int, description string) {
	h.buffs.Add(buff.New(t, multiplier, baseFrames, h.params.BuffDuration, description))
}

// CoinMultiplier is the product of coin buffs plus the sum of accessory
// bonuses. The mix of product and sum is intentional.
func (h *Hamster) CoinMultiplier() float64 {
	m := h.buffs.Multiplier(buff.CoinBonus)
	for _, id := range h.equipped {
		if a, ok := LookupAccessory(id); ok {
			m += a.CoinBonus
		}
	}
	return m
}

// CanBreed reports whether the hamster may be picked as a parent.
func (h *Hamster) CanBreed() bool {
	return !h.dead &&
		h.ageFrames >= h.params.BreedAgeFrames &&
		h.breedCooldown <= 0 &&
		h.hunger >= BreedVitalMinimum &&
		h.happiness >= BreedVitalMinimum &&
		h.energy >= BreedVitalMinimum
}

// TakeCoins returns and clears the coins earned since the last call
func (h *Hamster) TakeCoins() float64 {
	c := h.pendingCoins
	h.pendingCoins = 0
	return c
}

// TakePoops returns and clears the poops produced since the last call
func (h *Hamster) TakePoops() int {
	n := h.pendingPoops
	h.pendingPoops = 0
	return n
}

// Bounce reverses the walking direction
func (h *Hamster) Bounce() {
	h.direction = -h.direction
}
