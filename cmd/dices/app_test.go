package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dices/internal/config"
	"dices/internal/output"
	"dices/internal/testutils"
)

func loadConfig(t *testing.T, values map[string]interface{}) *config.Config {
	t.Helper()
	v := viper.New()
	config.SetDefaults(v)
	for key, value := range values {
		v.Set(key, value)
	}
	cfg, err := config.Load(v, t.TempDir())
	require.NoError(t, err)
	return cfg
}

func TestNewApp_LoadsAliasFile(t *testing.T) {
	path := testutils.WriteFile(t, "aliases", "crit = \"dice 2D20 +5\"\nd = dice\n")
	cfg := loadConfig(t, map[string]interface{}{
		config.KeyAliasFile: path,
		config.KeySeed:      42,
		config.KeyTestMode:  true,
	})

	buf := output.NewCaptureBuffer()
	a, err := newApp(cfg, output.NewPrinter(output.WithWriter(buf), output.TestMode()))
	require.NoError(t, err)
	assert.Equal(t, int64(42), a.seed)
	assert.True(t, a.registry.Contains("crit"))
	assert.True(t, a.registry.Contains("doom"))

	out := a.session.Handle("crit")
	require.NoError(t, out.Err)
	assert.Len(t, out.Result.Rolls, 2)
	assert.Equal(t, 5, out.Result.Bonus)
	assert.Contains(t, buf.String(), "incl. bonus: 5")

	out = a.session.Handle("d D8")
	require.NoError(t, out.Err)
	assert.Len(t, out.Result.Rolls, 1)
}

func TestNewApp_SameSeedSameRolls(t *testing.T) {
	cfg := loadConfig(t, map[string]interface{}{config.KeySeed: 7, config.KeyTestMode: true})

	roll := func() []int {
		a, err := newApp(cfg, output.NewPrinter(output.Silent()))
		require.NoError(t, err)
		out := a.session.Handle("dice 10D20")
		require.NoError(t, out.Err)
		return out.Result.Rolls
	}
	assert.Equal(t, roll(), roll())
}

func TestNewApp_MissingOptionalAliasFile(t *testing.T) {
	cfg := loadConfig(t, nil)
	assert.False(t, cfg.AliasFileRequired)

	a, err := newApp(cfg, output.NewPrinter(output.Silent()))
	require.NoError(t, err)
	assert.NotZero(t, a.seed)
	assert.True(t, a.registry.Contains("roll"))
}

func TestNewApp_MissingRequiredAliasFile(t *testing.T) {
	cfg := loadConfig(t, map[string]interface{}{config.KeyAliasFile: "/nonexistent/dices/aliases"})
	_, err := newApp(cfg, output.NewPrinter(output.Silent()))
	assert.Error(t, err)
}
