package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got HamsterDiedPayloadV1

	bus.Subscribe(HamsterDied, func(ctx context.Context, evt Event) error {
		p, err := DecodePayload[HamsterDiedPayloadV1](evt.Payload)
		got = p
		return err
	})

	err := bus.Publish(context.Background(), New(HamsterDied, HamsterDiedPayloadV1{Name: "Pip", Cause: "old_age"}))

	require.NoError(t, err)
	assert.Equal(t, "Pip", got.Name)
	assert.Equal(t, "old_age", got.Cause)
}

func TestMemoryBus_MultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0
	handler := func(ctx context.Context, evt Event) error {
		count++
		return nil
	}

	bus.Subscribe(GameOver, handler)
	bus.Subscribe(GameOver, handler)

	require.NoError(t, bus.Publish(context.Background(), New(GameOver, GameOverPayloadV1{})))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), New(PoopCleaned, nil)))
}

func TestMemoryBus_HandlerErrors(t *testing.T) {
	bus := NewMemoryBus()
	called := 0
	bus.Subscribe(HamsterBorn, func(ctx context.Context, evt Event) error {
		called++
		return errors.New("boom")
	})
	bus.Subscribe(HamsterBorn, func(ctx context.Context, evt Event) error {
		called++
		return nil
	})

	err := bus.Publish(context.Background(), New(HamsterBorn, HamsterBornPayloadV1{}))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "1 errors")
	assert.Equal(t, 2, called, "later handlers still run")
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{"track": "aging_speed", "new_level": 2, "cost": 80}

	p, err := DecodePayload[UpgradePurchasedPayloadV1](raw)

	require.NoError(t, err)
	assert.Equal(t, UpgradePurchasedPayloadV1{Track: "aging_speed", NewLevel: 2, Cost: 80}, p)
}
