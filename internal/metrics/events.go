package metrics

import (
	"context"

	"github.com/osse101/HamsterHaven_Go/internal/event"
	"github.com/osse101/HamsterHaven_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.HamsterBorn:
		var p event.HamsterBornPayloadV1
		if p, err = event.DecodePayload[event.HamsterBornPayloadV1](evt.Payload); err == nil {
			HamstersBorn.WithLabelValues(p.Origin).Inc()
		}

	case event.HamsterDied:
		var p event.HamsterDiedPayloadV1
		if p, err = event.DecodePayload[event.HamsterDiedPayloadV1](evt.Payload); err == nil {
			HamsterDeaths.WithLabelValues(p.Cause).Inc()
		}

	case event.AchievementUnlocked:
		var p event.AchievementUnlockedPayloadV1
		if p, err = event.DecodePayload[event.AchievementUnlockedPayloadV1](evt.Payload); err == nil {
			AchievementsUnlocked.WithLabelValues(p.AchievementID).Inc()
		}

	case event.UpgradePurchased:
		var p event.UpgradePurchasedPayloadV1
		if p, err = event.DecodePayload[event.UpgradePurchasedPayloadV1](evt.Payload); err == nil {
			UpgradesPurchased.WithLabelValues(p.Track).Inc()
		}

	case event.RandomEventTriggered:
		var p event.RandomEventPayloadV1
		if p, err = event.DecodePayload[event.RandomEventPayloadV1](evt.Payload); err == nil {
			RandomEvents.WithLabelValues(p.EventKey).Inc()
		}

	case event.PoopCleaned:
		PoopsCleaned.Inc()

	case event.ItemPurchased:
		var p event.ItemPurchasedPayloadV1
		if p, err = event.DecodePayload[event.ItemPurchasedPayloadV1](evt.Payload); err == nil {
			ItemsPurchased.WithLabelValues(p.Kind, p.Item).Inc()
			CoinsSpent.Add(float64(p.Price))
		}

	case event.GameOver:
		var p event.GameOverPayloadV1
		if p, err = event.DecodePayload[event.GameOverPayloadV1](evt.Payload); err == nil {
			GamesOver.Inc()
			SeedsEarned.Add(float64(p.SeedsEarned))
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
