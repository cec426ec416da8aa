package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version   string      `json:"version"` // Event schema version (e.g., "1.0")
	Type      Type        `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp int64       `json:"timestamp"`
}

// Event types published by the habitat
const (
	GameStarted          Type = "habitat.game_started"
	GameOver             Type = "habitat.game_over"
	HamsterBorn          Type = "hamster.born"
	HamsterDied          Type = "hamster.died"
	AchievementUnlocked  Type = "achievement.unlocked"
	UpgradePurchased     Type = "meta.upgrade_purchased"
	RandomEventTriggered Type = "habitat.random_event"
	PoopCleaned          Type = "habitat.poop_cleaned"
	ItemPurchased        Type = "shop.item_purchased"
)

// AllTypes lists every event type, for subscribers that want everything
var AllTypes = []Type{
	GameStarted, GameOver, HamsterBorn, HamsterDied, AchievementUnlocked,
	UpgradePurchased, RandomEventTriggered, PoopCleaned, ItemPurchased,
}

// Typed event payloads for type safety

// HamsterBornPayloadV1 is published when a hamster joins the habitat
type HamsterBornPayloadV1 struct {
	HamsterID   string `json:"hamster_id"`
	Name        string `json:"name"`
	Generation  int    `json:"generation"`
	Personality string `json:"personality"`
	Origin      string `json:"origin"` // "new_game" or "breeding"
}

// HamsterDiedPayloadV1 is published when a hamster dies
type HamsterDiedPayloadV1 struct {
	HamsterID string  `json:"hamster_id"`
	Name      string  `json:"name"`
	Cause     string  `json:"cause"`
	AgeDays   float64 `json:"age_days"`
}

// AchievementUnlockedPayloadV1 is published once per unlocked achievement
type AchievementUnlockedPayloadV1 struct {
	AchievementID string `json:"achievement_id"`
	RewardKind    string `json:"reward_kind"`
	RewardAmount  int    `json:"reward_amount"`
}

// UpgradePurchasedPayloadV1 is published after a meta upgrade
type UpgradePurchasedPayloadV1 struct {
	Track    string `json:"track"`
	NewLevel int    `json:"new_level"`
	Cost     int    `json:"cost"`
}

// RandomEventPayloadV1 is published when a random habitat event fires
type RandomEventPayloadV1 struct {
	EventKey string `json:"event_key"`
	Affected int    `json:"affected"`
}

// GameOverPayloadV1 is published when the last hamster dies
type GameOverPayloadV1 struct {
	HamstersRaised int `json:"hamsters_raised"`
	CoinsLeft      int `json:"coins_left"`
	SeedsEarned    int `json:"seeds_earned"`
}

// GameStartedPayloadV1 is published when a new run begins
type GameStartedPayloadV1 struct {
	LegacyApplied bool `json:"legacy_applied"`
}

// PoopCleanedPayloadV1 is published when a dropping is removed
type PoopCleanedPayloadV1 struct {
	PoopID string `json:"poop_id"`
}

// ItemPurchasedPayloadV1 is published for every shop purchase
type ItemPurchasedPayloadV1 struct {
	Kind  string `json:"kind"` // "accessory", "food", "color"
	Item  string `json:"item"`
	Price int    `json:"price"`
}

// New builds an event with the current schema version
func New(t Type, payload interface{}) Event {
	return Event{
		Version:   EventSchemaVersion,
		Type:      t,
		Payload:   payload,
		Timestamp: time.Now().Unix(),
	}
}

// DecodePayload decodes an event payload into T via type assertion then JSON fallback.
// In-process payloads are already the correct struct; serialized ones round-trip through JSON.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish delivers an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(ErrMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
