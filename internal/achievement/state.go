package achievement

import (
	"sort"

	"github.com/osse101/HamsterHaven_Go/internal/hamster"
)

// Set is a write-once collection of keys.
type Set map[string]struct{}

// Add inserts a key and reports whether it was new
func (s Set) Add(key string) bool {
	if _, ok := s[key]; ok {
		return false
	}
	s[key] = struct{}{}
	return true
}

// Has reports membership
func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the members in sorted order
func (s Set) Keys() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func setOf(keys []string) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

// Counters are monotonic lifetime totals
type Counters struct {
	PoopsCleaned   int  `json:"poops_cleaned" toml:"poops_cleaned"`
	EventsSeen     int  `json:"events_seen" toml:"events_seen"`
	Breeds         int  `json:"breeds" toml:"breeds"`
	Plays          int  `json:"plays" toml:"plays"`
	Interactions   int  `json:"interactions" toml:"interactions"`
	CoinsEarned    int  `json:"coins_earned" toml:"coins_earned"`
	MaxStatReached bool `json:"max_stat_reached" toml:"max_stat_reached"`
}

// State is the persistent achievement progress of a profile. It also holds
// the account-wide owned accessory set.
type State struct {
	Unlocked          Set
	Counters          Counters
	ColorsSeen        Set
	FoodsTried        Set
	PersonalitiesSeen Set
	OwnedAccessories  Set
}

// NewState returns an empty state
func NewState() *State {
	return &State{
		Unlocked:          Set{},
		ColorsSeen:        Set{},
		FoodsTried:        Set{},
		PersonalitiesSeen: Set{},
		OwnedAccessories:  Set{},
	}
}

// Owns implements hamster.Wardrobe
func (s *State) Owns(id hamster.AccessoryID) bool {
	return s.OwnedAccessories.Has(string(id))
}

// Observe records the color and personality of a hamster as seen
func (s *State) Observe(h *hamster.Hamster) {
	s.ColorsSeen.Add(string(h.Color))
	s.PersonalitiesSeen.Add(string(h.Personality))
	if h.MaxStat() >= hamster.HardMaxStat {
		s.Counters.MaxStatReached = true
	}
}

// Record is the persisted form of State
type Record struct {
	Unlocked          []string `json:"unlocked" toml:"unlocked"`
	Counters          Counters `json:"counters" toml:"counters"`
	ColorsSeen        []string `json:"colors_seen" toml:"colors_seen"`
	FoodsTried        []string `json:"foods_tried" toml:"foods_tried"`
	PersonalitiesSeen []string `json:"personalities_seen" toml:"personalities_seen"`
	OwnedAccessories  []string `json:"owned_accessories" toml:"owned_accessories"`
}

// Record captures the state for persistence
func (s *State) Record() Record {
	return Record{
		Unlocked:          s.Unlocked.Keys(),
		Counters:          s.Counters,
		ColorsSeen:        s.ColorsSeen.Keys(),
		FoodsTried:        s.FoodsTried.Keys(),
		PersonalitiesSeen: s.PersonalitiesSeen.Keys(),
		OwnedAccessories:  s.OwnedAccessories.Keys(),
	}
}

// FromRecord restores a state
func FromRecord(r Record) *State {
	return &State{
		Unlocked:          setOf(r.Unlocked),
		Counters:          r.Counters,
		ColorsSeen:        setOf(r.ColorsSeen),
		FoodsTried:        setOf(r.FoodsTried),
		PersonalitiesSeen: setOf(r.PersonalitiesSeen),
		OwnedAccessories:  setOf(r.OwnedAccessories),
	}
}
