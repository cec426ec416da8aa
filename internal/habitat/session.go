package habitat

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/HamsterHaven_Go/internal/breeding"
	"github.com/osse101/HamsterHaven_Go/internal/domain"
	"github.com/osse101/HamsterHaven_Go/internal/event"
	"github.com/osse101/HamsterHaven_Go/internal/hamster"
	"github.com/osse101/HamsterHaven_Go/internal/logger"
	"github.com/osse101/HamsterHaven_Go/internal/meta"
)

// NewGame starts a run with one first-generation hamster. The pending
// legacy, if any, is applied to it and then cleared.
func (h *Habitat) NewGame(ctx context.Context, name string) (*hamster.Hamster, error) {
	if h.active {
		return nil, domain.ErrRunInProgress
	}

	first := hamster.New(hamster.Options{
		Name:       name,
		Color:      hamster.DefaultColor,
		Generation: 1,
		Params:     h.params,
		Rng:        h.rng,
	})
	legacyApplied := false
	if h.pendingLegacy != nil {
		legacyApplied = first.ApplyLegacy(*h.pendingLegacy)
		h.pendingLegacy = nil
	}

	h.active = true
	h.coins = StartingCoins
	h.coinRemainder = 0
	h.raised = 1
	h.frame = 0
	h.poops = nil
	h.roster = []*hamster.Hamster{first}
	h.achievements.Observe(first)

	logger.FromContext(ctx).Info(LogMsgGameStarted,
		"profile_id", h.profileID, "hamster_id", first.ID.String(), "legacy_applied", legacyApplied)
	h.publish(ctx, event.GameStarted, event.GameStartedPayloadV1{LegacyApplied: legacyApplied})
	h.announceBirth(ctx, first, OriginNewGame)
	return first, nil
}

func (h *Habitat) announceBirth(ctx context.Context, hm *hamster.Hamster, origin string) {
	logger.FromContext(ctx).Info(LogMsgHamsterBorn,
		"hamster_id", hm.ID.String(), "name", hm.Name, "generation", hm.Generation(), "origin", origin)
	h.publish(ctx, event.HamsterBorn, event.HamsterBornPayloadV1{
		HamsterID:   hm.ID.String(),
		Name:        hm.Name,
		Generation:  hm.Generation(),
		Personality: string(hm.Personality),
		Origin:      origin,
	})
}

// Breed pairs two hamsters. When the pair is eligible but every slot is
// taken, both parents still go on cooldown and ErrHabitatFull is returned.
func (h *Habitat) Breed(ctx context.Context, aID, bID uuid.UUID, name string) (*hamster.Hamster, error) {
	if !h.active {
		return nil, domain.ErrNoActiveRun
	}
	a, b := h.find(aID), h.find(bID)
	if a == nil || b == nil {
		return nil, domain.ErrHamsterNotFound
	}
	if err := breeding.CheckPair(a, b); err != nil {
		return nil, err
	}
	if h.Alive() >= h.params.HamsterSlots {
		breeding.StartCooldowns(a, b)
		return nil, fmt.Errorf("%w: %d/%d", domain.ErrHabitatFull, h.Alive(), h.params.HamsterSlots)
	}

	child, err := breeding.Breed(a, b, breeding.Options{Name: name, Params: h.params, Rng: h.rng})
	if err != nil {
		return nil, err
	}
	h.roster = append(h.roster, child)
	h.raised++
	h.achievements.Counters.Breeds++
	h.achievements.Observe(child)
	h.announceBirth(ctx, child, OriginBreeding)
	return child, nil
}

// CollectPoop removes a dropping from the habitat
func (h *Habitat) CollectPoop(ctx context.Context, id string) error {
	for i, p := range h.poops {
		if p.ID != id {
			continue
		}
		h.poops = append(h.poops[:i], h.poops[i+1:]...)
		h.achievements.Counters.PoopsCleaned++
		h.publish(ctx, event.PoopCleaned, event.PoopCleanedPayloadV1{PoopID: id})
		return nil
	}
	return domain.ErrPoopNotFound
}

// CollectAllPoops removes every dropping and returns how many were cleaned
func (h *Habitat) CollectAllPoops(ctx context.Context) int {
	n := 0
	for len(h.poops) > 0 {
		if h.CollectPoop(ctx, h.poops[0].ID) == nil {
			n++
		}
	}
	return n
}

// gameOver ends the run and converts it into seeds exactly once.
func (h *Habitat) gameOver(ctx context.Context) {
	seeds := meta.SeedsForRun(h.raised, h.coins)
	h.progress.AddSeeds(seeds)

	payload := event.GameOverPayloadV1{
		HamstersRaised: h.raised,
		CoinsLeft:      int(h.coins),
		SeedsEarned:    seeds,
	}
	h.active = false
	h.coins = 0
	h.coinRemainder = 0
	h.poops = nil
	h.roster = nil

	logger.FromContext(ctx).Info(LogMsgGameOver,
		"profile_id", h.profileID, "hamsters_raised", payload.HamstersRaised, "seeds_earned", seeds)
	h.publish(ctx, event.GameOver, payload)
}
