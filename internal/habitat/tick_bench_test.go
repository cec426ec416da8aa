package habitat

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/osse101/HamsterHaven_Go/internal/hamster"
	"github.com/osse101/HamsterHaven_Go/internal/meta"
)

// BenchmarkTick_FullHabitat measures one tick with every slot filled
func BenchmarkTick_FullHabitat(b *testing.B) {
	ctx := context.Background()
	h := New(Options{Rng: rand.New(rand.NewPCG(42, 42))})
	h.progress = meta.FromLevels(0, map[string]int{meta.TrackKeyHamsterSlots: 4})
	h.params = h.progress.Params()
	if _, err := h.NewGame(ctx, "Bench"); err != nil {
		b.Fatal(err)
	}
	rec := h.roster[0].Record()
	for len(h.roster) < h.params.HamsterSlots {
		clone := rec
		clone.ID = ""
		h.roster = append(h.roster, hamster.FromRecord(clone, h.params, h.rng))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Tick(ctx, afternoon)
		if !h.Active() {
			b.StopTimer()
			if _, err := h.NewGame(ctx, "Bench"); err != nil {
				b.Fatal(err)
			}
			b.StartTimer()
		}
	}
}
