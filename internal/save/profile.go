// Package save defines the persisted form of a player profile.
package save

import (
	"time"

	"github.com/osse101/HamsterHaven_Go/internal/achievement"
	"github.com/osse101/HamsterHaven_Go/internal/hamster"
)

// SchemaVersion is bumped whenever the profile layout changes
const SchemaVersion = 1

// DefaultProfileID is used when no profile is configured
const DefaultProfileID = "default"

// Meta is the persisted meta-progression
type Meta struct {
	Seeds  int            `json:"seeds" toml:"seeds"`
	Levels map[string]int `json:"levels" toml:"levels"`
}

// Poop is a dropping waiting to be cleaned
type Poop struct {
	ID        string `json:"id" toml:"id"`
	HamsterID string `json:"hamster_id" toml:"hamster_id"`
	Frame     int64  `json:"frame" toml:"frame"`
}

// Run is the session state of the current game
type Run struct {
	Active         bool             `json:"active" toml:"active"`
	Coins          float64          `json:"coins" toml:"coins"`
	CoinRemainder  float64          `json:"coin_remainder" toml:"coin_remainder"`
	HamstersRaised int              `json:"hamsters_raised" toml:"hamsters_raised"`
	Frame          int64            `json:"frame" toml:"frame"`
	Poops          []Poop           `json:"poops" toml:"poops"`
	Hamsters       []hamster.Record `json:"hamsters" toml:"hamsters"`
}

// Profile is everything persisted for one player
type Profile struct {
	ID            string             `json:"id" toml:"id"`
	Version       int                `json:"version" toml:"version"`
	SavedAt       time.Time          `json:"saved_at" toml:"saved_at"`
	Meta          Meta               `json:"meta" toml:"meta"`
	Achievements  achievement.Record `json:"achievements" toml:"achievements"`
	PendingLegacy *hamster.Legacy    `json:"pending_legacy,omitempty" toml:"pending_legacy,omitempty"`
	Run           Run                `json:"run" toml:"run"`
}

// New returns an empty profile
func New(id string) *Profile {
	p := &Profile{ID: id}
	p.Normalize()
	return p
}

// Normalize fills in defaults for fields missing from older or partial saves
func (p *Profile) Normalize() {
	if p.ID == "" {
		p.ID = DefaultProfileID
	}
	if p.Version <= 0 {
		p.Version = SchemaVersion
	}
	if p.Meta.Levels == nil {
		p.Meta.Levels = map[string]int{}
	}
	if p.Meta.Seeds < 0 {
		p.Meta.Seeds = 0
	}
	if p.Run.Coins < 0 {
		p.Run.Coins = 0
	}
	if !p.Run.Active {
		p.Run.Hamsters = nil
		p.Run.Poops = nil
	}
}

// Summary is a short human readable view of a profile
type Summary struct {
	ID           string
	SavedAt      time.Time
	Seeds        int
	Active       bool
	Coins        float64
	Alive        int
	Raised       int
	Achievements int
	HasLegacy    bool
}

// Summarize reports the headline numbers of a profile
func (p *Profile) Summarize() Summary {
	alive := 0
	for _, h := range p.Run.Hamsters {
		if !h.Dead {
			alive++
		}
	}
	return Summary{
		ID:           p.ID,
		SavedAt:      p.SavedAt,
		Seeds:        p.Meta.Seeds,
		Active:       p.Run.Active,
		Coins:        p.Run.Coins,
		Alive:        alive,
		Raised:       p.Run.HamstersRaised,
		Achievements: len(p.Achievements.Unlocked),
		HasLegacy:    p.PendingLegacy != nil,
	}
}
