package buff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ScalesDurationOnce(t *testing.T) {
	tests := []struct {
		name       string
		baseFrames int
		mult       float64
		want       int
	}{
		{"unscaled", 300, 1.0, 300},
		{"extended", 300, 1.5, 450},
		{"rounds up", 10, 1.05, 11},
		{"never below one frame", 0, 1.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(CoinBonus, 2.0, tt.baseFrames, tt.mult, "test")
			assert.Equal(t, tt.want, b.RemainingFrames)
		})
	}
}

func TestList_CoinBuffsStackAndExpire(t *testing.T) {
	var l List
	l.Add(New(CoinBonus, 1.5, 2, 1.0, "lucky"))
	l.Add(New(CoinBonus, 2.0, 3, 1.0, "very lucky"))

	assert.InDelta(t, 3.0, l.Multiplier(CoinBonus), 1e-9)
	assert.InDelta(t, 1.0, l.Multiplier(HungerDrain), 1e-9)

	l.Tick()
	l.Tick()
	require.Len(t, l, 1)
	assert.InDelta(t, 2.0, l.Multiplier(CoinBonus), 1e-9)

	l.Tick()
	assert.Empty(t, l)
	assert.InDelta(t, 1.0, l.Multiplier(CoinBonus), 1e-9)
}

func TestList_TickDecrementsByOne(t *testing.T) {
	l := List{
		{Type: EnergyDrain, Multiplier: 0.5, RemainingFrames: 5},
		{Type: HungerDrain, Multiplier: 2, RemainingFrames: 1},
	}

	l.Tick()

	require.Len(t, l, 1)
	assert.Equal(t, EnergyDrain, l[0].Type)
	assert.Equal(t, 4, l[0].RemainingFrames)
}

func TestParseType(t *testing.T) {
	for _, typ := range []Type{HungerDrain, HappinessDrain, EnergyDrain, CoinBonus} {
		got, ok := ParseType(typ.String())
		assert.True(t, ok)
		assert.Equal(t, typ, got)
	}

	_, ok := ParseType("speed")
	assert.False(t, ok)
}

func TestClone_IsIndependent(t *testing.T) {
	l := List{{Type: CoinBonus, Multiplier: 2, RemainingFrames: 3}}
	c := l.Clone()
	c[0].RemainingFrames = 1

	assert.Equal(t, 3, l[0].RemainingFrames)
}
