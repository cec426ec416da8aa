package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HamsterHaven_Go/internal/config"
	"github.com/osse101/HamsterHaven_Go/internal/filestore"
	"github.com/osse101/HamsterHaven_Go/internal/save"
)

func TestPrintSummaries(t *testing.T) {
	store := filestore.New(t.TempDir())
	p := save.New("alice")
	p.Meta.Seeds = 42
	require.NoError(t, store.Save(context.Background(), p))

	var out bytes.Buffer
	require.NoError(t, printSummaries(context.Background(), &out, store, []string{"alice"}))

	assert.Contains(t, out.String(), "PROFILE")
	assert.Contains(t, out.String(), "alice")
	assert.Contains(t, out.String(), "42")
}

func TestPrintSummaries_MissingProfile(t *testing.T) {
	var out bytes.Buffer
	err := printSummaries(context.Background(), &out, filestore.New(t.TempDir()), []string{"ghost"})

	assert.Error(t, err)
}

func TestMigrateCmd_RequiresPostgres(t *testing.T) {
	t.Setenv(config.EnvStoreDriver, config.StoreDriverFile)
	t.Setenv(config.EnvSavePath, t.TempDir())
	t.Setenv(config.EnvConfigPath, t.TempDir()+"/none.yaml")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"migrate"})
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires store_driver")
}
