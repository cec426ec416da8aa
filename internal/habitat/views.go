package habitat

import (
	"time"

	"github.com/osse101/HamsterHaven_Go/internal/achievement"
	"github.com/osse101/HamsterHaven_Go/internal/hamster"
	"github.com/osse101/HamsterHaven_Go/internal/meta"
	"github.com/osse101/HamsterHaven_Go/internal/save"
)

// BuffView is an active buff as shown to players
type BuffView struct {
	Type            string  `json:"type"`
	Multiplier      float64 `json:"multiplier"`
	RemainingFrames int     `json:"remaining_frames"`
	Description     string  `json:"description,omitempty"`
}

// HamsterView is a read-only copy of one hamster
type HamsterView struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Color          string         `json:"color"`
	Personality    string         `json:"personality"`
	Hunger         int            `json:"hunger"`
	Happiness      int            `json:"happiness"`
	Energy         int            `json:"energy"`
	MaxStat        int            `json:"max_stat"`
	AgeDays        float64        `json:"age_days"`
	LifespanDays   float64        `json:"lifespan_days"`
	State          string         `json:"state"`
	Busy           bool           `json:"busy"`
	Dead           bool           `json:"dead"`
	Frozen         bool           `json:"frozen"`
	Generation     int            `json:"generation"`
	CanBreed       bool           `json:"can_breed"`
	CoinMultiplier float64        `json:"coin_multiplier"`
	Legacy         hamster.Legacy `json:"legacy"`
	Equipped       []string       `json:"equipped"`
	Buffs          []BuffView     `json:"buffs"`
}

// NewHamsterView copies a hamster into a view
func NewHamsterView(hm *hamster.Hamster) HamsterView {
	v := HamsterView{
		ID:             hm.ID.String(),
		Name:           hm.Name,
		Color:          string(hm.Color),
		Personality:    string(hm.Personality),
		Hunger:         hm.Hunger(),
		Happiness:      hm.Happiness(),
		Energy:         hm.Energy(),
		MaxStat:        hm.MaxStat(),
		AgeDays:        hm.AgeDays(),
		LifespanDays:   float64(hm.LifespanFrames()) / meta.FramesPerDay,
		State:          hm.State().String(),
		Busy:           hm.IsUserAction(),
		Dead:           hm.IsDead(),
		Frozen:         hm.IsFrozen(),
		Generation:     hm.Generation(),
		CanBreed:       hm.CanBreed(),
		CoinMultiplier: hm.CoinMultiplier(),
		Legacy:         hm.Legacy(),
		Equipped:       []string{},
		Buffs:          []BuffView{},
	}
	for _, id := range hm.Equipped() {
		v.Equipped = append(v.Equipped, string(id))
	}
	for _, b := range hm.Buffs() {
		v.Buffs = append(v.Buffs, BuffView{
			Type:            b.Type.String(),
			Multiplier:      b.Multiplier,
			RemainingFrames: b.RemainingFrames,
			Description:     b.Description,
		})
	}
	return v
}

// View is the whole habitat as shown to players
type View struct {
	ProfileID      string          `json:"profile_id"`
	Active         bool            `json:"active"`
	Frame          int64           `json:"frame"`
	TimeOfDay      string          `json:"time_of_day"`
	Coins          float64         `json:"coins"`
	Seeds          int             `json:"seeds"`
	HamstersRaised int             `json:"hamsters_raised"`
	Slots          int             `json:"slots"`
	Hamsters       []HamsterView   `json:"hamsters"`
	Poops          []save.Poop     `json:"poops"`
	PendingLegacy  *hamster.Legacy `json:"pending_legacy,omitempty"`
}

// View captures the habitat for display
func (h *Habitat) View(now time.Time) View {
	v := View{
		ProfileID:      h.profileID,
		Active:         h.active,
		Frame:          h.frame,
		TimeOfDay:      hamster.TimeOfDayAt(now.Hour()).String(),
		Coins:          h.coins,
		Seeds:          h.progress.Seeds,
		HamstersRaised: h.raised,
		Slots:          h.params.HamsterSlots,
		Hamsters:       make([]HamsterView, 0, len(h.roster)),
		Poops:          h.Poops(),
	}
	if v.Poops == nil {
		v.Poops = []save.Poop{}
	}
	for _, hm := range h.roster {
		v.Hamsters = append(v.Hamsters, NewHamsterView(hm))
	}
	if h.pendingLegacy != nil {
		l := *h.pendingLegacy
		v.PendingLegacy = &l
	}
	return v
}

// HamsterView returns one hamster of the current run
func (h *Habitat) HamsterView(id string) (HamsterView, bool) {
	for _, hm := range h.roster {
		if hm.ID.String() == id {
			return NewHamsterView(hm), true
		}
	}
	return HamsterView{}, false
}

// TrackView is one meta track with the player's level
type TrackView struct {
	meta.TrackInfo
	Level    int  `json:"level"`
	NextCost int  `json:"next_cost,omitempty"`
	Maxed    bool `json:"maxed"`
}

// MetaView is the permanent progression of the profile
type MetaView struct {
	Seeds  int         `json:"seeds"`
	Tracks []TrackView `json:"tracks"`
	Params meta.Params `json:"params"`
}

// MetaView captures the meta progression for display
func (h *Habitat) MetaView() MetaView {
	v := MetaView{Seeds: h.progress.Seeds, Params: h.params}
	for _, info := range meta.Tracks() {
		cost, ok := h.progress.Cost(info.Track)
		v.Tracks = append(v.Tracks, TrackView{
			TrackInfo: info,
			Level:     h.progress.Level(info.Track),
			NextCost:  cost,
			Maxed:     !ok,
		})
	}
	return v
}

// AchievementView is one achievement and whether it is unlocked
type AchievementView struct {
	achievement.Definition
	Unlocked bool `json:"unlocked"`
}

// AchievementsView lists every achievement and the lifetime counters
type AchievementsView struct {
	Unlocked     int                  `json:"unlocked"`
	Total        int                  `json:"total"`
	Counters     achievement.Counters `json:"counters"`
	Achievements []AchievementView    `json:"achievements"`
}

// AchievementsView captures achievement progress for display
func (h *Habitat) AchievementsView() AchievementsView {
	defs := h.engine.Definitions()
	v := AchievementsView{Total: len(defs), Counters: h.achievements.Counters}
	for _, d := range defs {
		unlocked := h.achievements.Unlocked.Has(d.ID)
		if unlocked {
			v.Unlocked++
		}
		v.Achievements = append(v.Achievements, AchievementView{Definition: d, Unlocked: unlocked})
	}
	return v
}

// ColorOffer is a coat color and its price
type ColorOffer struct {
	Color string `json:"color"`
	Price int    `json:"price"`
}

// AccessoryOffer is a catalog accessory and whether the player owns it
type AccessoryOffer struct {
	hamster.Accessory
	Owned bool `json:"owned"`
}

// ShopView is the catalog with prices in session coins
type ShopView struct {
	Coins       float64          `json:"coins"`
	Foods       []hamster.Food   `json:"foods"`
	Accessories []AccessoryOffer `json:"accessories"`
	Colors      []ColorOffer     `json:"colors"`
}

// ShopView captures the catalog for display
func (h *Habitat) ShopView() ShopView {
	v := ShopView{Coins: h.coins, Foods: hamster.Foods()}
	for _, a := range hamster.Accessories() {
		v.Accessories = append(v.Accessories, AccessoryOffer{Accessory: a, Owned: h.achievements.Owns(a.ID)})
	}
	for _, c := range hamster.Colors() {
		price, _ := c.Price()
		v.Colors = append(v.Colors, ColorOffer{Color: string(c), Price: price})
	}
	return v
}
