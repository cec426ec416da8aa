package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HamsterHaven_Go/internal/domain"
	"github.com/osse101/HamsterHaven_Go/internal/hamster"
	"github.com/osse101/HamsterHaven_Go/internal/save"
)

func sampleProfile() *save.Profile {
	p := save.New("alice")
	p.SavedAt = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	p.Meta = save.Meta{Seeds: 17, Levels: map[string]int{"aging_speed": 2}}
	p.PendingLegacy = &hamster.Legacy{Hunger: 5, LifespanFrames: 9000}
	p.Achievements.Unlocked = []string{"first_scoop"}
	p.Run = save.Run{
		Active:         true,
		Coins:          33.5,
		HamstersRaised: 2,
		Frame:          1200,
		Poops:          []save.Poop{{ID: "p1", HamsterID: "h1", Frame: 40}},
		Hamsters: []hamster.Record{{
			ID:          "0b7c3f58-8f59-4a4c-9a4b-1f3b1a2c9d10",
			Name:        "Mochi",
			Personality: "lazy",
			Hunger:      80,
			Equipped:    []string{"bow"},
			Buffs:       []hamster.BuffRecord{{Type: "coin_bonus", Multiplier: 1.5, RemainingFrames: 90}},
		}},
	}
	return p
}

func TestStore_SaveLoad(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()
	want := sampleProfile()

	require.NoError(t, store.Save(ctx, want))
	got, err := store.Load(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, want.Meta, got.Meta)
	assert.Equal(t, want.PendingLegacy, got.PendingLegacy)
	assert.Equal(t, want.Run.Poops, got.Run.Poops)
	require.Len(t, got.Run.Hamsters, 1)
	assert.Equal(t, "Mochi", got.Run.Hamsters[0].Name)
	assert.Equal(t, want.Run.Hamsters[0].Buffs, got.Run.Hamsters[0].Buffs)
	assert.True(t, want.SavedAt.Equal(got.SavedAt))
}

func TestStore_NilLegacyStaysNil(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()
	p := save.New("bob")

	require.NoError(t, store.Save(ctx, p))
	got, err := store.Load(ctx, "bob")

	require.NoError(t, err)
	assert.Nil(t, got.PendingLegacy)
}

func TestStore_NotFound(t *testing.T) {
	_, err := New(t.TempDir()).Load(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestStore_RejectsPathTraversal(t *testing.T) {
	_, err := New(t.TempDir()).Load(context.Background(), "../etc")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.toml"), []byte("not = [valid"), 0644))

	_, err := New(dir).Load(context.Background(), "broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestStore_MissingFieldsDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.toml"), []byte("[meta]\nseeds = 3\n"), 0644))

	got, err := New(dir).Load(context.Background(), "old")

	require.NoError(t, err)
	assert.Equal(t, "old", got.ID)
	assert.Equal(t, save.SchemaVersion, got.Version)
	assert.Equal(t, 3, got.Meta.Seeds)
	assert.NotNil(t, got.Meta.Levels)
}

func TestStore_List(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, save.New("zed")))
	require.NoError(t, store.Save(ctx, save.New("amy")))

	ids, err := store.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"amy", "zed"}, ids)
}

func TestStore_Ping(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s := New(dir)

	require.NoError(t, s.Ping(context.Background()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
