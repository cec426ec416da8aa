package achievement

import (
	"github.com/osse101/HamsterHaven_Go/internal/hamster"
)

// RewardKind is the currency an achievement pays out in
type RewardKind string

const (
	RewardCoins RewardKind = "coins"
	RewardSeeds RewardKind = "seeds"
)

// Reward is credited by the caller when an achievement unlocks
type Reward struct {
	Kind   RewardKind `json:"kind"`
	Amount int        `json:"amount"`
}

// Definition is one achievement and its unlock condition
type Definition struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Reward      Reward              `json:"reward"`
	Condition   func(Snapshot) bool `json:"-"`
}

// Achievement IDs
const (
	IDFirstScoop        = "first_scoop"
	IDPoopPatrol        = "poop_patrol"
	IDPoopMaster        = "poop_master"
	IDFirstLitter       = "first_litter"
	IDBreeder           = "breeder"
	IDDynasty           = "dynasty"
	IDPlaytime          = "playtime"
	IDBestFriend        = "best_friend"
	IDEventWitness      = "event_witness"
	IDPocketMoney       = "pocket_money"
	IDTycoon            = "tycoon"
	IDGoldenYears       = "golden_years"
	IDMethuselah        = "methuselah"
	IDFullHouse         = "full_house"
	IDPeakCondition     = "peak_condition"
	IDColorCollector    = "color_collector"
	IDGourmet           = "gourmet"
	IDPersonalityExpert = "personality_expert"
	IDFashionista       = "fashionista"
	IDNightOwl          = "night_owl"
	IDEarlyBird         = "early_bird"
)

func coins(n int) Reward { return Reward{Kind: RewardCoins, Amount: n} }
func seeds(n int) Reward { return Reward{Kind: RewardSeeds, Amount: n} }

func counter(get func(Counters) int, target int) func(Snapshot) bool {
	return func(s Snapshot) bool { return get(s.State.Counters) >= target }
}

func anyHamster(pred func(*hamster.Hamster) bool) func(Snapshot) bool {
	return func(s Snapshot) bool {
		for _, h := range s.Roster {
			if pred(h) {
				return true
			}
		}
		return false
	}
}

func survivedDays(days float64) func(Snapshot) bool {
	return anyHamster(func(h *hamster.Hamster) bool { return !h.IsDead() && h.AgeDays() >= days })
}

func collected(get func(*State) Set, total int) func(Snapshot) bool {
	return func(s Snapshot) bool { return len(get(s.State)) >= total }
}

func atHour(hour int) func(Snapshot) bool {
	return func(s Snapshot) bool { return s.Now.Hour() == hour }
}

// DefaultDefinitions returns the built-in achievement list
func DefaultDefinitions() []Definition {
	poops := func(c Counters) int { return c.PoopsCleaned }
	breeds := func(c Counters) int { return c.Breeds }

	return []Definition{
		{IDFirstScoop, "First Scoop", "Clean up your first dropping", coins(10), counter(poops, 1)},
		{IDPoopPatrol, "Poop Patrol", "Clean up 50 droppings", coins(50), counter(poops, 50)},
		{IDPoopMaster, "Poop Master", "Clean up 500 droppings", seeds(5), counter(poops, 500)},
		{IDFirstLitter, "First Litter", "Breed two hamsters", seeds(2), counter(breeds, 1)},
		{IDBreeder, "Breeder", "Breed 10 times", seeds(5), counter(breeds, 10)},
		{IDDynasty, "Dynasty", "Raise a fifth-generation hamster", seeds(10),
			anyHamster(func(h *hamster.Hamster) bool { return h.Generation() >= 5 })},
		{IDPlaytime, "Playtime", "Play 25 times", coins(25), counter(func(c Counters) int { return c.Plays }, 25)},
		{IDBestFriend, "Best Friend", "Pet your hamsters 100 times", coins(50),
			counter(func(c Counters) int { return c.Interactions }, 100)},
		{IDEventWitness, "Event Witness", "See 10 random events", coins(20),
			counter(func(c Counters) int { return c.EventsSeen }, 10)},
		{IDPocketMoney, "Pocket Money", "Earn 1,000 coins in total", seeds(3),
			counter(func(c Counters) int { return c.CoinsEarned }, 1000)},
		{IDTycoon, "Tycoon", "Earn 10,000 coins in total", seeds(10),
			counter(func(c Counters) int { return c.CoinsEarned }, 10000)},
		{IDGoldenYears, "Golden Years", "Keep a hamster alive for 3 days", coins(30), survivedDays(3)},
		{IDMethuselah, "Methuselah", "Keep a hamster alive for 7 days", seeds(5), survivedDays(7)},
		{IDFullHouse, "Full House", "Have 4 hamsters alive at once", coins(40),
			func(s Snapshot) bool { return s.Alive() >= 4 }},
		{IDPeakCondition, "Peak Condition", "Raise a hamster to the maximum stat cap", seeds(5),
			func(s Snapshot) bool { return s.State.Counters.MaxStatReached }},
		{IDColorCollector, "Color Collector", "See every coat color", seeds(10),
			collected(func(s *State) Set { return s.ColorsSeen }, len(hamster.Colors()))},
		{IDGourmet, "Gourmet", "Try every food", seeds(5),
			collected(func(s *State) Set { return s.FoodsTried }, len(hamster.Foods()))},
		{IDPersonalityExpert, "Personality Expert", "Meet every personality", seeds(10),
			collected(func(s *State) Set { return s.PersonalitiesSeen }, len(hamster.Personalities()))},
		{IDFashionista, "Fashionista", "Own every accessory", seeds(10),
			collected(func(s *State) Set { return s.OwnedAccessories }, len(hamster.Accessories()))},
		{IDNightOwl, "Night Owl", "Check in at midnight", coins(25), atHour(0)},
		{IDEarlyBird, "Early Bird", "Check in at 6 in the morning", coins(25), atHour(6)},
	}
}
