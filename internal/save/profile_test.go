package save

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/HamsterHaven_Go/internal/hamster"
)

func TestNormalize_Defaults(t *testing.T) {
	p := &Profile{Meta: Meta{Seeds: -4}, Run: Run{Coins: -1, Hamsters: []hamster.Record{{Name: "ghost"}}}}

	p.Normalize()

	assert.Equal(t, DefaultProfileID, p.ID)
	assert.Equal(t, SchemaVersion, p.Version)
	assert.NotNil(t, p.Meta.Levels)
	assert.Zero(t, p.Meta.Seeds)
	assert.Zero(t, p.Run.Coins)
	assert.Nil(t, p.Run.Hamsters, "inactive runs carry no hamsters")
}

func TestSummarize(t *testing.T) {
	p := New("alice")
	p.Meta.Seeds = 42
	p.Run = Run{
		Active:         true,
		Coins:          12.5,
		HamstersRaised: 3,
		Hamsters:       []hamster.Record{{Name: "A"}, {Name: "B", Dead: true}},
	}
	p.Achievements.Unlocked = []string{"first_scoop"}
	p.PendingLegacy = &hamster.Legacy{Hunger: 5}

	s := p.Summarize()

	assert.Equal(t, "alice", s.ID)
	assert.Equal(t, 42, s.Seeds)
	assert.Equal(t, 1, s.Alive)
	assert.Equal(t, 3, s.Raised)
	assert.Equal(t, 1, s.Achievements)
	assert.True(t, s.HasLegacy)
}
