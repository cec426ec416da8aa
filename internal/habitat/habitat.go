// Package habitat runs a player's hamsters: it advances every hamster once
// per tick and owns everything that spans more than one hamster (coins,
// droppings, deaths, game over, random events and achievements).
package habitat

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/HamsterHaven_Go/internal/achievement"
	"github.com/osse101/HamsterHaven_Go/internal/breeding"
	"github.com/osse101/HamsterHaven_Go/internal/event"
	"github.com/osse101/HamsterHaven_Go/internal/hamster"
	"github.com/osse101/HamsterHaven_Go/internal/logger"
	"github.com/osse101/HamsterHaven_Go/internal/meta"
	"github.com/osse101/HamsterHaven_Go/internal/save"
)

// Options configure a habitat
type Options struct {
	ProfileID     string
	Bus           event.Bus
	Rng           *rand.Rand
	Engine        *achievement.Engine
	AutosaveEvery int // frames between autosaves, 0 disables
}

// TickResult reports what happened during one tick
type TickResult struct {
	Frame    int64
	Deaths   int
	SaveDue  bool
	GameOver bool
}

// Habitat is the state of one profile. It is not safe for concurrent use;
// the Runner serialises every access onto its tick goroutine.
type Habitat struct {
	profileID string
	bus       event.Bus
	rng       *rand.Rand
	engine    *achievement.Engine
	autosave  int

	progress      meta.Progress
	params        meta.Params
	achievements  *achievement.State
	pendingLegacy *hamster.Legacy

	active        bool
	coins         float64
	coinRemainder float64
	raised        int
	frame         int64
	roster        []*hamster.Hamster
	poops         []save.Poop
}

// New creates an empty habitat with no active run
func New(opts Options) *Habitat {
	if opts.ProfileID == "" {
		opts.ProfileID = save.DefaultProfileID
	}
	if opts.Bus == nil {
		opts.Bus = event.NewMemoryBus()
	}
	if opts.Rng == nil {
		opts.Rng = hamster.NewRand()
	}
	if opts.Engine == nil {
		opts.Engine = achievement.NewEngine()
	}
	if opts.AutosaveEvery < 0 {
		opts.AutosaveEvery = 0
	}
	h := &Habitat{
		profileID:    opts.ProfileID,
		bus:          opts.Bus,
		rng:          opts.Rng,
		engine:       opts.Engine,
		autosave:     opts.AutosaveEvery,
		achievements: achievement.NewState(),
	}
	h.params = h.progress.Params()
	return h
}

// Restore replaces the habitat state with a loaded profile. A hamster saved
// dead (killed after the last tick) stays on the roster so the next Tick
// buries it and merges its legacy.
func (h *Habitat) Restore(p *save.Profile) {
	p.Normalize()

	h.profileID = p.ID
	h.progress = meta.FromLevels(p.Meta.Seeds, p.Meta.Levels)
	h.params = h.progress.Params()
	h.achievements = achievement.FromRecord(p.Achievements)
	h.pendingLegacy = nil
	if p.PendingLegacy != nil {
		l := *p.PendingLegacy
		h.pendingLegacy = &l
	}

	h.active = p.Run.Active
	h.coins = p.Run.Coins
	h.coinRemainder = p.Run.CoinRemainder
	h.raised = p.Run.HamstersRaised
	h.frame = max(0, p.Run.Frame)
	h.poops = append([]save.Poop(nil), p.Run.Poops...)
	h.roster = h.roster[:0]
	for _, r := range p.Run.Hamsters {
		h.roster = append(h.roster, hamster.FromRecord(r, h.params, h.rng))
	}
}

// Snapshot captures the habitat as an independent profile value
func (h *Habitat) Snapshot(now time.Time) *save.Profile {
	p := &save.Profile{
		ID:      h.profileID,
		Version: save.SchemaVersion,
		SavedAt: now.UTC(),
		Meta: save.Meta{
			Seeds:  h.progress.Seeds,
			Levels: h.progress.LevelsByKey(),
		},
		Achievements: h.achievements.Record(),
		Run: save.Run{
			Active:         h.active,
			Coins:          h.coins,
			CoinRemainder:  h.coinRemainder,
			HamstersRaised: h.raised,
			Frame:          h.frame,
			Poops:          append([]save.Poop(nil), h.poops...),
		},
	}
	if h.pendingLegacy != nil {
		l := *h.pendingLegacy
		p.PendingLegacy = &l
	}
	for _, hm := range h.roster {
		p.Run.Hamsters = append(p.Run.Hamsters, hm.Record())
	}
	return p
}

// ProfileID returns the profile this habitat belongs to
func (h *Habitat) ProfileID() string { return h.profileID }

// Active reports whether a run is in progress
func (h *Habitat) Active() bool { return h.active }

// Coins returns the session coin balance
func (h *Habitat) Coins() float64 { return h.coins }

// Seeds returns the permanent seed balance
func (h *Habitat) Seeds() int { return h.progress.Seeds }

// Frame returns the number of ticks simulated in the current run
func (h *Habitat) Frame() int64 { return h.frame }

// Params returns the derived parameters of the current meta levels
func (h *Habitat) Params() meta.Params { return h.params }

// Poops returns the droppings waiting to be cleaned
func (h *Habitat) Poops() []save.Poop { return append([]save.Poop(nil), h.poops...) }

// Alive counts living hamsters
func (h *Habitat) Alive() int {
	n := 0
	for _, hm := range h.roster {
		if !hm.IsDead() {
			n++
		}
	}
	return n
}

// Tick advances the habitat by one frame
func (h *Habitat) Tick(ctx context.Context, now time.Time) TickResult {
	if !h.active {
		return TickResult{Frame: h.frame}
	}

	h.frame++
	res := TickResult{Frame: h.frame}
	tod := hamster.TimeOfDayAt(now.Hour())

	for _, hm := range h.roster {
		hm.Update(tod)
	}

	for _, hm := range h.roster {
		h.creditCoins(hm.TakeCoins() * hm.CoinMultiplier())
		for n := hm.TakePoops(); n > 0; n-- {
			h.poops = append(h.poops, save.Poop{ID: uuid.NewString(), HamsterID: hm.ID.String(), Frame: h.frame})
		}
	}

	if h.frame%PoopPenaltyInterval == 0 {
		h.applyPoopPenalty()
	}

	res.Deaths = h.buryDead(ctx)
	if len(h.roster) == 0 {
		h.gameOver(ctx)
		res.GameOver = true
		res.SaveDue = true
		return res
	}

	if interval := h.params.EventInterval; interval > 0 && h.frame%int64(interval) == 0 {
		h.triggerRandomEvent(ctx)
	}
	if h.frame%AchievementInterval == 0 {
		h.CheckAchievements(ctx, now)
	}

	res.SaveDue = h.autosave > 0 && h.frame%int64(h.autosave) == 0
	return res
}

func (h *Habitat) creditCoins(amount float64) {
	if amount <= 0 {
		return
	}
	h.coins += amount
	h.coinRemainder += amount
	whole := math.Floor(h.coinRemainder)
	h.coinRemainder -= whole
	h.achievements.Counters.CoinsEarned += int(whole)
}

func (h *Habitat) applyPoopPenalty() {
	if len(h.poops) == 0 {
		return
	}
	penalty := max(1, int(math.Floor(float64(len(h.poops))*h.params.PoopPenalty)))
	for _, hm := range h.roster {
		if hm.IsDead() || hm.IsFrozen() {
			continue
		}
		hm.AdjustVitals(0, -penalty, 0)
	}
}

// buryDead merges the legacy of every hamster that died this tick into the
// pending legacy and removes it from the roster.
func (h *Habitat) buryDead(ctx context.Context) int {
	living := h.roster[:0]
	deaths := 0
	for _, hm := range h.roster {
		if !hm.IsDead() {
			living = append(living, hm)
			continue
		}
		deaths++
		h.pendingLegacy = breeding.MergePending(h.pendingLegacy, breeding.DeathLegacy(hm))
		logger.FromContext(ctx).Info(LogMsgHamsterDied,
			"hamster_id", hm.ID.String(), "name", hm.Name, "cause", string(hm.DeathCause()), "age_days", hm.AgeDays())
		h.publish(ctx, event.HamsterDied, event.HamsterDiedPayloadV1{
			HamsterID: hm.ID.String(),
			Name:      hm.Name,
			Cause:     string(hm.DeathCause()),
			AgeDays:   hm.AgeDays(),
		})
	}
	for i := len(living); i < len(h.roster); i++ {
		h.roster[i] = nil
	}
	h.roster = living
	return deaths
}

func (h *Habitat) publish(ctx context.Context, t event.Type, payload interface{}) {
	if err := h.bus.Publish(ctx, event.New(t, payload)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", string(t), "error", err)
	}
}

func (h *Habitat) find(id uuid.UUID) *hamster.Hamster {
	for _, hm := range h.roster {
		if hm.ID == id {
			return hm
		}
	}
	return nil
}
