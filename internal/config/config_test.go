package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heterolattice/internal/config"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Defaults(), cfg)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	require.Equal(t, config.Defaults(), cfg)
}

func TestLoad_TOMLOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	body := "nmax = 20\ntolerance = 0.02\nweight = 0.25\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, int64(20), cfg.Nmax)
	require.InDelta(t, 0.02, cfg.Tolerance, 1e-12)
	require.InDelta(t, 0.25, cfg.Weight, 1e-12)
	require.Equal(t, int64(0), cfg.Nmin) // untouched default
}

func TestLoadPreset_KnownNames(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"graphene-graphene", "hbn-graphene", "tmd-tmd"} {
		p, err := config.LoadPreset(name)
		require.NoError(t, err)
		require.Greater(t, p.Nmax, int64(0))
	}
}

func TestLoadPreset_UnknownNameFails(t *testing.T) {
	t.Parallel()

	_, err := config.LoadPreset("does-not-exist")
	require.ErrorIs(t, err, config.ErrPresetNotFound)
}

func TestApplyPreset_OnlyOverridesPresetFields(t *testing.T) {
	t.Parallel()

	base := config.Defaults()
	base.Weight = 0.42

	p, err := config.LoadPreset("graphene-graphene")
	require.NoError(t, err)

	got := config.ApplyPreset(base, p)
	require.Equal(t, p.Nmax, got.Nmax)
	require.InDelta(t, 0.42, got.Weight, 1e-12)
}
