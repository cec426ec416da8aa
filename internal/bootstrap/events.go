package bootstrap

import (
	"log/slog"

	"github.com/osse101/HamsterHaven_Go/internal/event"
)

// InitializeEventSystem creates the in-process event bus
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized, "types", len(event.AllTypes))
	return bus
}
