package hamster

import (
	"math/rand/v2"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var namePool = []string{
	"Peanut", "Nibbles", "Biscuit", "Mochi", "Hazel", "Pip",
	"Clover", "Waffles", "Pumpkin", "Sesame", "Bean", "Toffee",
}

// NormalizeName trims, collapses whitespace, title-cases and truncates a name.
func NormalizeName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}
	if r := []rune(name); len(r) > MaxNameLength {
		name = strings.TrimSpace(string(r[:MaxNameLength]))
	}
	return cases.Title(language.English).String(name)
}

// RandomName picks a default name
func RandomName(rng *rand.Rand) string {
	return namePool[rng.IntN(len(namePool))]
}

// Rename sets a new name. Blank names are rejected.
func (h *Hamster) Rename(name string) bool {
	n := NormalizeName(name)
	if n == "" {
		return false
	}
	h.Name = n
	return true
}
