package hamster

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/osse101/HamsterHaven_Go/internal/buff"
	"github.com/osse101/HamsterHaven_Go/internal/meta"
)

// BuffRecord is the persisted form of an active buff
type BuffRecord struct {
	Type            string  `json:"type" toml:"type"`
	Multiplier      float64 `json:"multiplier" toml:"multiplier"`
	RemainingFrames int     `json:"remaining_frames" toml:"remaining_frames"`
	Description     string  `json:"description,omitempty" toml:"description,omitempty"`
}

// Record is the persisted form of a hamster
type Record struct {
	ID          string `json:"id" toml:"id"`
	Name        string `json:"name" toml:"name"`
	Color       string `json:"color" toml:"color"`
	Personality string `json:"personality" toml:"personality"`

	Hunger    int `json:"hunger" toml:"hunger"`
	Happiness int `json:"happiness" toml:"happiness"`
	Energy    int `json:"energy" toml:"energy"`
	MaxStat   int `json:"max_stat" toml:"max_stat"`

	AgeFrames      int64   `json:"age_frames" toml:"age_frames"`
	AgeAccumulator float64 `json:"age_accumulator" toml:"age_accumulator"`
	LifespanFrames int64   `json:"lifespan_frames" toml:"lifespan_frames"`
	Dead           bool    `json:"dead" toml:"dead"`
	DeathCause     string  `json:"death_cause,omitempty" toml:"death_cause,omitempty"`
	Frozen         bool    `json:"frozen" toml:"frozen"`

	State        string  `json:"state" toml:"state"`
	StateTimer   int     `json:"state_timer" toml:"state_timer"`
	UserAction   bool    `json:"user_action" toml:"user_action"`
	PendingFood  string  `json:"pending_food,omitempty" toml:"pending_food,omitempty"`
	PendingCoins float64 `json:"pending_coins" toml:"pending_coins"`
	PendingPoops int     `json:"pending_poops" toml:"pending_poops"`
	Direction    int     `json:"direction" toml:"direction"`
	Speed        float64 `json:"speed" toml:"speed"`

	Generation          int    `json:"generation" toml:"generation"`
	Legacy              Legacy `json:"legacy" toml:"legacy"`
	LegacyApplied       bool   `json:"legacy_applied" toml:"legacy_applied"`
	BreedCooldown       int    `json:"breed_cooldown" toml:"breed_cooldown"`
	InteractionCooldown int    `json:"interaction_cooldown" toml:"interaction_cooldown"`

	Equipped []string     `json:"equipped" toml:"equipped"`
	Buffs    []BuffRecord `json:"buffs" toml:"buffs"`

	Frame       int64 `json:"frame" toml:"frame"`
	PoopCounter int   `json:"poop_counter" toml:"poop_counter"`
}

// Record captures the full state of the hamster
func (h *Hamster) Record() Record {
	r := Record{
		ID:                  h.ID.String(),
		Name:                h.Name,
		Color:               string(h.Color),
		Personality:         string(h.Personality),
		Hunger:              h.hunger,
		Happiness:           h.happiness,
		Energy:              h.energy,
		MaxStat:             h.maxStat,
		AgeFrames:           h.ageFrames,
		AgeAccumulator:      h.ageAccumulator,
		LifespanFrames:      h.lifespanFrames,
		Dead:                h.dead,
		DeathCause:          string(h.deathCause),
		Frozen:              h.frozen,
		State:               h.state.String(),
		StateTimer:          h.stateTimer,
		UserAction:          h.userAction,
		PendingCoins:        h.pendingCoins,
		PendingPoops:        h.pendingPoops,
		Direction:           h.direction,
		Speed:               h.speed,
		Generation:          h.generation,
		Legacy:              h.legacy,
		LegacyApplied:       h.legacyApplied,
		BreedCooldown:       h.breedCooldown,
		InteractionCooldown: h.interactionCooldown,
		Frame:               h.frame,
		PoopCounter:         h.poopCounter,
	}
	if h.pendingFood != nil {
		r.PendingFood = string(h.pendingFood.ID)
	}
	for _, id := range h.equipped {
		r.Equipped = append(r.Equipped, string(id))
	}
	for _, b := range h.buffs {
		r.Buffs = append(r.Buffs, BuffRecord{
			Type:            b.Type.String(),
			Multiplier:      b.Multiplier,
			RemainingFrames: b.RemainingFrames,
			Description:     b.Description,
		})
	}
	return r
}

// FromRecord restores a hamster. Missing or unknown values fall back to
// defaults instead of failing.
func FromRecord(r Record, params meta.Params, rng *rand.Rand) *Hamster {
	if rng == nil {
		rng = NewRand()
	}
	h := &Hamster{
		Name:                NormalizeName(r.Name),
		Color:               ParseColor(r.Color),
		Personality:         ParsePersonality(r.Personality),
		maxStat:             r.MaxStat,
		ageFrames:           max(0, r.AgeFrames),
		ageAccumulator:      r.AgeAccumulator,
		lifespanFrames:      r.LifespanFrames,
		dead:                r.Dead,
		deathCause:          DeathCause(r.DeathCause),
		frozen:              r.Frozen,
		state:               ParseState(r.State),
		stateTimer:          r.StateTimer,
		userAction:          r.UserAction,
		pendingCoins:        r.PendingCoins,
		pendingPoops:        max(0, r.PendingPoops),
		direction:           r.Direction,
		speed:               r.Speed,
		generation:          max(1, r.Generation),
		legacy:              r.Legacy,
		legacyApplied:       r.LegacyApplied,
		breedCooldown:       r.BreedCooldown,
		interactionCooldown: r.InteractionCooldown,
		frame:               max(0, r.Frame),
		poopCounter:         max(0, r.PoopCounter),
		params:              params,
		rng:                 rng,
	}

	id, err := uuid.Parse(r.ID)
	if err != nil {
		id = uuid.New()
	}
	h.ID = id

	if h.maxStat <= 0 {
		h.maxStat = BaseMaxStat
	}
	h.maxStat = min(h.maxStat, HardMaxStat)
	h.SetVitals(r.Hunger, r.Happiness, r.Energy)

	if h.Name == "" {
		h.Name = RandomName(rng)
	}
	if h.direction != -1 {
		h.direction = 1
	}
	if h.lifespanFrames <= 0 {
		h.lifespanFrames = h.rollLifespan()
	}
	if h.ageAccumulator < 0 || h.ageAccumulator >= 1 {
		h.ageAccumulator = 0
	}
	if f, ok := LookupFood(FoodID(r.PendingFood)); ok && h.userAction && h.state == Eating {
		h.pendingFood = &f
	}

	for _, s := range r.Equipped {
		if acc, ok := LookupAccessory(AccessoryID(s)); ok {
			h.wear(acc)
		}
	}
	for _, b := range r.Buffs {
		t, ok := buff.ParseType(b.Type)
		if !ok || b.RemainingFrames <= 0 {
			continue
		}
		h.buffs.Add(buff.Buff{
			Type:            t,
			Multiplier:      b.Multiplier,
			RemainingFrames: b.RemainingFrames,
			Description:     b.Description,
		})
	}
	return h
}
