package hamster

import "math/rand/v2"

// Color is a cosmetic coat variant.
type Color string

const (
	Golden   Color = "golden"
	White    Color = "white"
	Black    Color = "black"
	Grey     Color = "grey"
	Cinnamon Color = "cinnamon"
	Calico   Color = "calico"
	Panda    Color = "panda"
	Albino   Color = "albino"
)

// DefaultColor is the coat of a first-generation hamster
const DefaultColor = Golden

var colorPrices = map[Color]int{
	Golden:   0,
	White:    50,
	Grey:     60,
	Black:    75,
	Cinnamon: 80,
	Calico:   100,
	Panda:    150,
	Albino:   200,
}

var colorOrder = []Color{Golden, White, Grey, Black, Cinnamon, Calico, Panda, Albino}

// Colors returns every color in shop order
func Colors() []Color {
	out := make([]Color, len(colorOrder))
	copy(out, colorOrder)
	return out
}

// Price returns the shop price of the color and whether it exists
func (c Color) Price() (int, bool) {
	p, ok := colorPrices[c]
	return p, ok
}

// ParseColor resolves a stored key, falling back to the default.
func ParseColor(s string) Color {
	c := Color(s)
	if _, ok := colorPrices[c]; ok {
		return c
	}
	return DefaultColor
}

// FoodID identifies a food in the catalog
type FoodID string

// Food is a feedable item. Deltas are applied when the eating action resolves.
type Food struct {
	ID        FoodID `json:"id"`
	Name      string `json:"name"`
	Hunger    int    `json:"hunger"`
	Happiness int    `json:"happiness"`
	Energy    int    `json:"energy"`
	Price     int    `json:"price"`
}

var foods = []Food{
	{"sunflower_seed", "Sunflower Seed", 10, 2, 0, 1},
	{"carrot", "Carrot", 20, 3, 2, 3},
	{"broccoli", "Broccoli", 25, 0, 3, 4},
	{"apple", "Apple", 15, 5, 0, 3},
	{"cheese", "Cheese", 20, 8, -2, 5},
	{"strawberry", "Strawberry", 10, 10, 1, 4},
	{"nut_mix", "Nut Mix", 30, 4, 5, 8},
	{"candy", "Candy", 5, 15, -5, 6},
}

// Foods returns the food catalog
func Foods() []Food {
	out := make([]Food, len(foods))
	copy(out, foods)
	return out
}

// LookupFood finds a food by ID
func LookupFood(id FoodID) (Food, bool) {
	for _, f := range foods {
		if f.ID == id {
			return f, true
		}
	}
	return Food{}, false
}

// Slot is where an accessory is worn. At most one accessory per slot.
type Slot string

const (
	SlotHead Slot = "head"
	SlotFace Slot = "face"
	SlotNeck Slot = "neck"
	SlotBody Slot = "body"
	SlotBack Slot = "back"
)

// AccessoryID identifies an accessory in the catalog
type AccessoryID string

// Accessory is a wearable that adds to a hamster's coin multiplier.
type Accessory struct {
	ID        AccessoryID `json:"id"`
	Name      string      `json:"name"`
	Slot      Slot        `json:"slot"`
	CoinBonus float64     `json:"coin_bonus"`
	Price     int         `json:"price"`
}

var accessories = []Accessory{
	{"party_hat", "Party Hat", SlotHead, 0.05, 40},
	{"top_hat", "Top Hat", SlotHead, 0.10, 90},
	{"sunglasses", "Sunglasses", SlotFace, 0.05, 45},
	{"monocle", "Monocle", SlotFace, 0.08, 70},
	{"bow_tie", "Bow Tie", SlotNeck, 0.05, 35},
	{"scarf", "Scarf", SlotNeck, 0.03, 25},
	{"cape", "Cape", SlotBody, 0.10, 120},
	{"sweater", "Sweater", SlotBody, 0.05, 50},
	{"backpack", "Backpack", SlotBack, 0.07, 80},
}

// Accessories returns the accessory catalog
func Accessories() []Accessory {
	out := make([]Accessory, len(accessories))
	copy(out, accessories)
	return out
}

// LookupAccessory finds an accessory by ID
func LookupAccessory(id AccessoryID) (Accessory, bool) {
	for _, a := range accessories {
		if a.ID == id {
			return a, true
		}
	}
	return Accessory{}, false
}

// Wardrobe reports which accessories the player owns.
type Wardrobe interface {
	Owns(id AccessoryID) bool
}

// RandomColorOf picks one of the given colors uniformly
func RandomColorOf(rng *rand.Rand, a, b Color) Color {
	if rng.IntN(2) == 0 {
		return a
	}
	return b
}
