package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernicar/PQ-TINS-Edition/internal/alea"
	"github.com/fernicar/PQ-TINS-Edition/internal/character"
	"github.com/fernicar/PQ-TINS-Edition/internal/game"
	"github.com/fernicar/PQ-TINS-Edition/internal/save"
)

// savedHero writes a fresh hero into a saves dir and returns a config file
// pointing at it.
func savedHero(t *testing.T) (configPath string, snap save.Snapshot) {
	t.Helper()
	dir := t.TempDir()
	savesDir := filepath.Join(dir, "savegame")

	e := game.New(game.Options{Clock: game.NewFakeClock(time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC))})
	roll := character.RollStats(alea.NewSeeded("pqops"))
	require.NoError(t, e.CreateCharacter("Garbonzo", "Half Orc", "Ur-Paladin", roll))
	snap, err := e.Snapshot()
	require.NoError(t, err)

	repo, err := save.NewFileRepo(savesDir)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), snap))

	configPath = filepath.Join(dir, "pq.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("saves_dir: "+savesDir+"\nstore: file\n"), 0o644))
	return configPath, snap
}

func TestDecode(t *testing.T) {
	cfgPath, _ := savedHero(t)
	file := filepath.Join(filepath.Dir(cfgPath), "savegame", "Garbonzo.pqw")

	var out bytes.Buffer
	require.NoError(t, cmdDecode([]string{file}, &out))
	assert.Contains(t, out.String(), `"version": 2`)
	assert.Contains(t, out.String(), `"Name": "Garbonzo"`)

	assert.Error(t, cmdDecode(nil, &out), "file argument is required")

	junk := filepath.Join(t.TempDir(), "junk.pqw")
	require.NoError(t, os.WriteFile(junk, []byte("!!!"), 0o644))
	assert.ErrorIs(t, cmdDecode([]string{junk}, &out), save.ErrDecode)
}

func TestShow(t *testing.T) {
	cfgPath, _ := savedHero(t)

	t.Run("latest from the store", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, cmdShow([]string{"-config", cfgPath}, &out))
		assert.Contains(t, out.String(), "Garbonzo, the level 1 Half Orc Ur-Paladin")
		assert.Contains(t, out.String(), "Prologue: Loading....")
		assert.Contains(t, out.String(), "gold: 0, carrying 0 items")
	})

	t.Run("by file", func(t *testing.T) {
		var out bytes.Buffer
		file := filepath.Join(filepath.Dir(cfgPath), "savegame", "Garbonzo.pqw")
		require.NoError(t, cmdShow([]string{file}, &out))
		assert.Contains(t, out.String(), "Garbonzo")
	})

	t.Run("unknown hero", func(t *testing.T) {
		var out bytes.Buffer
		err := cmdShow([]string{"-config", cfgPath, "-name", "Nobody"}, &out)
		assert.ErrorIs(t, err, save.ErrNotFound)
	})
}

func TestList(t *testing.T) {
	cfgPath, _ := savedHero(t)
	var out bytes.Buffer
	require.NoError(t, cmdList([]string{"-config", cfgPath}, &out))
	assert.Contains(t, out.String(), "NAME")
	assert.Contains(t, out.String(), "Garbonzo")
}

func TestBackupAndRestore(t *testing.T) {
	cfgPath, _ := savedHero(t)
	archive := filepath.Join(t.TempDir(), "saves.tar.gz")

	var out bytes.Buffer
	require.NoError(t, cmdBackup([]string{"-config", cfgPath, "-out", archive}, &out))
	assert.Contains(t, out.String(), "1 file")

	target := filepath.Join(t.TempDir(), "restored")
	out.Reset()
	require.NoError(t, cmdRestore([]string{"-archive", archive, "-target-dir", target}, &out))
	assert.FileExists(t, filepath.Join(target, "Garbonzo.pqw"))

	assert.Error(t, cmdRestore(nil, &out), "archive is required")
}

func TestDrill(t *testing.T) {
	cfgPath, _ := savedHero(t)
	var out bytes.Buffer
	require.NoError(t, cmdDrill([]string{"-config", cfgPath, "-work-dir", t.TempDir()}, &out))
	assert.Contains(t, out.String(), "digest:")
	assert.Contains(t, out.String(), "files: 1")
}

func TestStats(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, cmdStats([]string{"-seed", "stats test", "-hours", "2", "-pace", "brisk"}, &out))
	assert.Contains(t, out.String(), "in 2 hours:")
	assert.Contains(t, out.String(), "tasks by kind:")
	assert.Contains(t, out.String(), "combat")

	assert.Error(t, cmdStats([]string{"-hours", "0"}, &out))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 file", plural(1, "file"))
	assert.Equal(t, "0 items", plural(0, "item"))
	assert.Equal(t, "1,200 items", plural(1200, "item"))
}
