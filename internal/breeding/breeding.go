package breeding

import (
	"fmt"
	"math/rand/v2"

	"github.com/osse101/HamsterHaven_Go/internal/domain"
	"github.com/osse101/HamsterHaven_Go/internal/hamster"
	"github.com/osse101/HamsterHaven_Go/internal/meta"
)

// Options configure the offspring of a pairing
type Options struct {
	Name   string
	Params meta.Params
	Rng    *rand.Rand
}

// CheckPair verifies two hamsters may breed with each other.
func CheckPair(a, b *hamster.Hamster) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: missing parent", domain.ErrInvalidInput)
	}
	if a == b || a.ID == b.ID {
		return domain.ErrSameParent
	}
	if !a.CanBreed() {
		return fmt.Errorf("%w: %s", domain.ErrNotEligible, a.Name)
	}
	if !b.CanBreed() {
		return fmt.Errorf("%w: %s", domain.ErrNotEligible, b.Name)
	}
	return nil
}

// StartCooldowns puts both parents on breeding cooldown
func StartCooldowns(a, b *hamster.Hamster) {
	a.StartBreedCooldown(hamster.BreedCooldownFrames)
	b.StartBreedCooldown(hamster.BreedCooldownFrames)
}

// Breed pairs two eligible hamsters and returns their offspring. Both parents
// enter breeding cooldown. The offspring inherits one parent's coat, the next
// generation number and the field-wise maximum of the parents' legacies.
func Breed(a, b *hamster.Hamster, opts Options) (*hamster.Hamster, error) {
	if err := CheckPair(a, b); err != nil {
		return nil, err
	}
	StartCooldowns(a, b)

	rng := opts.Rng
	if rng == nil {
		rng = hamster.NewRand()
	}
	child := hamster.New(hamster.Options{
		Name:        opts.Name,
		Color:       hamster.RandomColorOf(rng, a.Color, b.Color),
		Personality: hamster.RandomPersonality(rng),
		Generation:  max(a.Generation(), b.Generation()) + 1,
		Params:      opts.Params,
		Rng:         rng,
	})
	child.ApplyLegacy(Inherit(a.Legacy(), b.Legacy()))
	return child, nil
}

// Inherit returns the field-wise maximum of two legacies
func Inherit(a, b hamster.Legacy) hamster.Legacy {
	return hamster.Legacy{
		Hunger:         max(a.Hunger, b.Hunger),
		Happiness:      max(a.Happiness, b.Happiness),
		Energy:         max(a.Energy, b.Energy),
		LifespanFrames: max(a.LifespanFrames, b.LifespanFrames),
		MaxStat:        max(a.MaxStat, b.MaxStat),
	}
}
