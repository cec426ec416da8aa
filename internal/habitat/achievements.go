package habitat

import (
	"context"
	"time"

	"github.com/osse101/HamsterHaven_Go/internal/achievement"
	"github.com/osse101/HamsterHaven_Go/internal/event"
	"github.com/osse101/HamsterHaven_Go/internal/logger"
)

// CheckAchievements evaluates every locked achievement and credits the
// rewards of those that unlock. Coin rewards only pay out during a run.
func (h *Habitat) CheckAchievements(ctx context.Context, now time.Time) []achievement.Definition {
	unlocked := h.engine.Evaluate(h.achievements, h.roster, now)
	for _, d := range unlocked {
		switch d.Reward.Kind {
		case achievement.RewardCoins:
			if h.active {
				h.coins += float64(d.Reward.Amount)
			}
		case achievement.RewardSeeds:
			h.progress.AddSeeds(d.Reward.Amount)
		}

		logger.FromContext(ctx).Info(LogMsgAchievement, "achievement", d.ID, "reward", d.Reward.Amount, "kind", string(d.Reward.Kind))
		h.publish(ctx, event.AchievementUnlocked, event.AchievementUnlockedPayloadV1{
			AchievementID: d.ID,
			RewardKind:    string(d.Reward.Kind),
			RewardAmount:  d.Reward.Amount,
		})
	}
	return unlocked
}
