package achievement

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HamsterHaven_Go/internal/hamster"
	"github.com/osse101/HamsterHaven_Go/internal/meta"
)

var afternoon = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func ids(defs []Definition) []string {
	out := make([]string, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.ID)
	}
	return out
}

func TestEvaluate_UnlocksOnce(t *testing.T) {
	e := NewEngine()
	state := NewState()
	state.Counters.PoopsCleaned = 1

	first := e.Evaluate(state, nil, afternoon)
	assert.Equal(t, []string{IDFirstScoop}, ids(first))
	assert.True(t, state.Unlocked.Has(IDFirstScoop))

	second := e.Evaluate(state, nil, afternoon)
	assert.Empty(t, second)
}

func TestEvaluate_Counters(t *testing.T) {
	e := NewEngine()
	state := NewState()
	state.Counters = Counters{
		PoopsCleaned: 50,
		Breeds:       1,
		Plays:        25,
		Interactions: 100,
		EventsSeen:   10,
		CoinsEarned:  1000,
	}

	got := ids(e.Evaluate(state, nil, afternoon))

	assert.ElementsMatch(t, []string{
		IDFirstScoop, IDPoopPatrol, IDFirstLitter, IDPlaytime,
		IDBestFriend, IDEventWitness, IDPocketMoney,
	}, got)
}

func TestEvaluate_ExactHours(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		hour int
		want []string
	}{
		{0, []string{IDNightOwl}},
		{6, []string{IDEarlyBird}},
		{7, nil},
	}
	for _, tt := range tests {
		state := NewState()
		now := time.Date(2026, 3, 14, tt.hour, 30, 0, 0, time.UTC)
		assert.Equal(t, tt.want, nilIfEmpty(ids(e.Evaluate(state, nil, now))), "hour %d", tt.hour)
	}
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func TestEvaluate_Roster(t *testing.T) {
	e := NewEngine()
	state := NewState()
	rng := rand.New(rand.NewPCG(9, 9))

	var roster []*hamster.Hamster
	for i := 0; i < 4; i++ {
		roster = append(roster, hamster.New(hamster.Options{Params: meta.DefaultParams(), Rng: rng, Generation: 1 + i*2}))
	}

	got := ids(e.Evaluate(state, roster, afternoon))
	assert.ElementsMatch(t, []string{IDFullHouse, IDDynasty}, got)

	roster[0].Kill()
	assert.Empty(t, e.Evaluate(state, roster, afternoon))
}

func TestEvaluate_Collections(t *testing.T) {
	e := NewEngine()
	state := NewState()
	for _, c := range hamster.Colors() {
		state.ColorsSeen.Add(string(c))
	}
	for _, a := range hamster.Accessories()[1:] {
		state.OwnedAccessories.Add(string(a.ID))
	}

	got := ids(e.Evaluate(state, nil, afternoon))
	assert.Equal(t, []string{IDColorCollector}, got)

	state.OwnedAccessories.Add(string(hamster.Accessories()[0].ID))
	assert.Equal(t, []string{IDFashionista}, ids(e.Evaluate(state, nil, afternoon)))
}

func TestState_RecordRestoresSets(t *testing.T) {
	state := NewState()
	state.Unlocked.Add(IDGourmet)
	state.OwnedAccessories.Add("cape")
	state.Counters.Breeds = 3

	restored := FromRecord(state.Record())

	assert.True(t, restored.Unlocked.Has(IDGourmet))
	assert.True(t, restored.Owns("cape"))
	assert.False(t, restored.Owns("scarf"))
	assert.Equal(t, 3, restored.Counters.Breeds)
}

func TestObserve(t *testing.T) {
	state := NewState()
	h := hamster.New(hamster.Options{Color: hamster.Calico, Personality: hamster.Lucky, Params: meta.DefaultParams()})
	require.True(t, h.ApplyLegacy(hamster.Legacy{MaxStat: 100}))

	state.Observe(h)

	assert.True(t, state.ColorsSeen.Has("calico"))
	assert.True(t, state.PersonalitiesSeen.Has("lucky"))
	assert.True(t, state.Counters.MaxStatReached)
}

func TestSet_AddIsWriteOnce(t *testing.T) {
	s := Set{}
	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("a"))
	assert.Equal(t, []string{"a"}, s.Keys())
}
