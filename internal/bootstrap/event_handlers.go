package bootstrap

import (
	"log/slog"

	"github.com/osse101/HamsterHaven_Go/internal/database/postgres"
	"github.com/osse101/HamsterHaven_Go/internal/event"
	"github.com/osse101/HamsterHaven_Go/internal/metrics"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus  event.Bus
	History   *postgres.RunHistoryRepository
	Jobs      postgres.JobQueue
	ProfileID string
}

// RegisterEventHandlers sets up all event subscribers:
// the metrics collector always, and the run history recorder when a
// database is configured.
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.History != nil && deps.Jobs != nil {
		deps.History.Subscribe(deps.EventBus, deps.ProfileID, deps.Jobs)
		slog.Info(LogMsgRunHistoryRegistered, "profile_id", deps.ProfileID)
	}
}
