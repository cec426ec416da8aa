package habitat

import (
	"context"

	"github.com/osse101/HamsterHaven_Go/internal/buff"
	"github.com/osse101/HamsterHaven_Go/internal/event"
	"github.com/osse101/HamsterHaven_Go/internal/hamster"
	"github.com/osse101/HamsterHaven_Go/internal/logger"
)

// randomEvent is a habitat-wide happening applied to every awake hamster
type randomEvent struct {
	Key   string
	apply func(hm *hamster.Hamster)
}

var randomEvents = []randomEvent{
	{EventFeast, func(hm *hamster.Hamster) { hm.AdjustVitals(FeastHunger, 0, 0) }},
	{EventCozyNap, func(hm *hamster.Hamster) {
		hm.AddBuff(buff.EnergyDrain, CozyNapMultiplier, EventBuffFrames, "Cozy nap")
	}},
	{EventLuckyDay, func(hm *hamster.Hamster) {
		hm.AddBuff(buff.CoinBonus, LuckyDayMultiplier, EventBuffFrames, "Lucky day")
	}},
	{EventBadDream, func(hm *hamster.Hamster) { hm.AdjustVitals(0, BadDreamHappiness, 0) }},
	{EventZoomies, func(hm *hamster.Hamster) {
		hm.AddBuff(buff.HappinessDrain, ZoomiesMultiplier, EventBuffFrames, "Zoomies")
	}},
}

// RandomEventKeys lists the events that may fire
func RandomEventKeys() []string {
	keys := make([]string, len(randomEvents))
	for i, e := range randomEvents {
		keys[i] = e.Key
	}
	return keys
}

func (h *Habitat) triggerRandomEvent(ctx context.Context) {
	h.applyEvent(ctx, randomEvents[h.rng.IntN(len(randomEvents))])
}

// TriggerEvent fires a named random event immediately
func (h *Habitat) TriggerEvent(ctx context.Context, key string) bool {
	if !h.active {
		return false
	}
	for _, e := range randomEvents {
		if e.Key == key {
			h.applyEvent(ctx, e)
			return true
		}
	}
	return false
}

func (h *Habitat) applyEvent(ctx context.Context, e randomEvent) {
	affected := 0
	for _, hm := range h.roster {
		if hm.IsDead() || hm.IsFrozen() {
			continue
		}
		e.apply(hm)
		affected++
	}
	h.achievements.Counters.EventsSeen++

	logger.FromContext(ctx).Info(LogMsgRandomEvent, "event", e.Key, "affected", affected)
	h.publish(ctx, event.RandomEventTriggered, event.RandomEventPayloadV1{EventKey: e.Key, Affected: affected})
}
