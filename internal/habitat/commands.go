package habitat

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/HamsterHaven_Go/internal/domain"
	"github.com/osse101/HamsterHaven_Go/internal/event"
	"github.com/osse101/HamsterHaven_Go/internal/hamster"
	"github.com/osse101/HamsterHaven_Go/internal/logger"
	"github.com/osse101/HamsterHaven_Go/internal/meta"
)

// Action is a player command aimed at one hamster
type Action string

const (
	ActionFeed  Action = "feed"
	ActionPlay  Action = "play"
	ActionSleep Action = "sleep"
	ActionWheel Action = "wheel"
	ActionPet   Action = "pet"
	ActionKill  Action = "kill"
)

// Actions lists every supported action
func Actions() []Action {
	return []Action{ActionFeed, ActionPlay, ActionSleep, ActionWheel, ActionPet, ActionKill}
}

// target finds a living hamster of the active run that can take commands
func (h *Habitat) target(id uuid.UUID) (*hamster.Hamster, error) {
	if !h.active {
		return nil, domain.ErrNoActiveRun
	}
	hm := h.find(id)
	if hm == nil {
		return nil, domain.ErrHamsterNotFound
	}
	if hm.IsDead() {
		return nil, domain.ErrHamsterDead
	}
	return hm, nil
}

// Act sends a command to a hamster. A command is refused while the hamster
// is frozen or still resolving an earlier one.
func (h *Habitat) Act(ctx context.Context, id uuid.UUID, action Action) error {
	hm, err := h.target(id)
	if err != nil {
		return err
	}
	if hm.IsFrozen() && action != ActionKill {
		return fmt.Errorf("%w: %s", domain.ErrHamsterBusy, ErrMsgHamsterFrozen)
	}

	var ok bool
	switch action {
	case ActionFeed:
		ok = hm.Feed()
	case ActionPlay:
		if ok = hm.Play(); ok {
			h.achievements.Counters.Plays++
		}
	case ActionSleep:
		ok = hm.Sleep()
	case ActionWheel:
		ok = hm.RunWheel()
	case ActionPet:
		ok = hm.Pet()
	case ActionKill:
		// Death is handled by the next tick
		return boolErr(hm.Kill(), domain.ErrHamsterDead)
	default:
		return fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgUnknownAction, action)
	}
	if !ok {
		return domain.ErrHamsterBusy
	}
	h.achievements.Counters.Interactions++
	return nil
}

func boolErr(ok bool, err error) error {
	if ok {
		return nil
	}
	return err
}

// FeedFood buys a food from the catalog and starts feeding it to a hamster
func (h *Habitat) FeedFood(ctx context.Context, id uuid.UUID, foodID string) error {
	food, ok := hamster.LookupFood(hamster.FoodID(foodID))
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownFood, foodID)
	}
	hm, err := h.target(id)
	if err != nil {
		return err
	}
	if hm.IsFrozen() {
		return fmt.Errorf("%w: %s", domain.ErrHamsterBusy, ErrMsgHamsterFrozen)
	}
	if err := h.canAfford(food.Price); err != nil {
		return err
	}
	if !hm.FeedFood(food) {
		return domain.ErrHamsterBusy
	}

	h.spend(ctx, PurchaseFood, string(food.ID), food.Price)
	h.achievements.FoodsTried.Add(string(food.ID))
	h.achievements.Counters.Interactions++
	return nil
}

// Recolor changes a hamster's coat for the color's price
func (h *Habitat) Recolor(ctx context.Context, id uuid.UUID, color string) error {
	c := hamster.Color(color)
	price, ok := c.Price()
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownColor, color)
	}
	hm, err := h.target(id)
	if err != nil {
		return err
	}
	if hm.Color == c {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgAlreadyColor)
	}
	if err := h.canAfford(price); err != nil {
		return err
	}

	h.spend(ctx, PurchaseColor, string(c), price)
	hm.Color = c
	h.achievements.Observe(hm)
	return nil
}

// BuyAccessory adds an accessory to the account-wide wardrobe. Owned
// accessories are never removed.
func (h *Habitat) BuyAccessory(ctx context.Context, accessoryID string) error {
	acc, ok := hamster.LookupAccessory(hamster.AccessoryID(accessoryID))
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownAccessory, accessoryID)
	}
	if h.achievements.Owns(acc.ID) {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyOwned, acc.ID)
	}
	if !h.active {
		return domain.ErrNoActiveRun
	}
	if err := h.canAfford(acc.Price); err != nil {
		return err
	}

	h.spend(ctx, PurchaseAccessory, string(acc.ID), acc.Price)
	h.achievements.OwnedAccessories.Add(string(acc.ID))
	return nil
}

func (h *Habitat) canAfford(price int) error {
	if h.coins < float64(price) {
		return fmt.Errorf("%w: need %d, have %.0f", domain.ErrInsufficientFunds, price, h.coins)
	}
	return nil
}

func (h *Habitat) spend(ctx context.Context, kind, item string, price int) {
	h.coins -= float64(price)
	h.publish(ctx, event.ItemPurchased, event.ItemPurchasedPayloadV1{Kind: kind, Item: item, Price: price})
}

// Equip puts an owned accessory on a hamster
func (h *Habitat) Equip(id uuid.UUID, accessoryID string) error {
	accID := hamster.AccessoryID(accessoryID)
	if _, ok := hamster.LookupAccessory(accID); !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownAccessory, accessoryID)
	}
	if !h.achievements.Owns(accID) {
		return fmt.Errorf("%w: %s", domain.ErrNotOwned, accessoryID)
	}
	hm, err := h.target(id)
	if err != nil {
		return err
	}
	return boolErr(hm.Equip(accID, h.achievements), domain.ErrHamsterDead)
}

// Unequip removes whatever a hamster wears in a slot
func (h *Habitat) Unequip(id uuid.UUID, slot string) error {
	hm, err := h.target(id)
	if err != nil {
		return err
	}
	if !hm.Unequip(hamster.Slot(slot)) {
		return fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgNothingEquipped, slot)
	}
	return nil
}

// Rename gives a hamster a new name
func (h *Habitat) Rename(id uuid.UUID, name string) error {
	hm, err := h.target(id)
	if err != nil {
		return err
	}
	if !hm.Rename(name) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidName)
	}
	return nil
}

// Freeze pauses or resumes a hamster
func (h *Habitat) Freeze(id uuid.UUID, frozen bool) error {
	hm, err := h.target(id)
	if err != nil {
		return err
	}
	hm.SetFrozen(frozen)
	return nil
}

// Upgrade buys the next level of a meta track with seeds. The new
// parameters reach every living hamster immediately.
func (h *Habitat) Upgrade(ctx context.Context, trackKey string) (int, error) {
	track, ok := meta.ParseTrack(trackKey)
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownTrack, trackKey)
	}
	cost, ok := h.progress.Cost(track)
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUpgradeFailed, ErrMsgMaxLevel)
	}
	if h.progress.Seeds < cost {
		return 0, fmt.Errorf("%w: need %d seeds, have %d", domain.ErrInsufficientFunds, cost, h.progress.Seeds)
	}
	if !h.progress.Upgrade(track) {
		return 0, domain.ErrUpgradeFailed
	}

	h.params = h.progress.Params()
	for _, hm := range h.roster {
		hm.SetParams(h.params)
	}

	level := h.progress.Level(track)
	logger.FromContext(ctx).Info(LogMsgUpgradePurchased, "track", trackKey, "level", level, "cost", cost)
	h.publish(ctx, event.UpgradePurchased, event.UpgradePurchasedPayloadV1{Track: trackKey, NewLevel: level, Cost: cost})
	return level, nil
}
