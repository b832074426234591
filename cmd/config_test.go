package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/liuxd6825/locatorgen/cmd/tests"
	"github.com/liuxd6825/locatorgen/lib/fsext"
)

func TestConfigApply(t *testing.T) {
	t.Parallel()

	base := newDefaultConfig()
	assert.Equal(t, base, base.Apply(Config{}))
	assert.Equal(t, base, base.Apply(Config{Kind: null.StringFrom("")}))

	applied := base.Apply(Config{Kind: null.StringFrom("text"), HasParams: null.BoolFrom(false)})
	assert.Equal(t, Config{Kind: null.StringFrom("text"), HasParams: null.BoolFrom(false)}, applied)
}

func TestReadEnvConfig(t *testing.T) {
	t.Parallel()

	conf, err := readEnvConfig(map[string]string{})
	require.NoError(t, err)
	assert.False(t, conf.Kind.Valid)
	assert.False(t, conf.HasParams.Valid)

	conf, err = readEnvConfig(map[string]string{"LOCATORGEN_KIND": "title", "LOCATORGEN_HAS_PARAMS": "true"})
	require.NoError(t, err)
	assert.Equal(t, null.StringFrom("title"), conf.Kind)
	assert.Equal(t, null.BoolFrom(true), conf.HasParams)
}

func TestReadDiskConfig(t *testing.T) {
	t.Parallel()

	ts := tests.NewGlobalTestState(t)
	conf, err := readDiskConfig(ts.GlobalState)
	require.NoError(t, err)
	assert.Equal(t, Config{}, conf)

	ts.Flags.ConfigFilePath = "/test/c.json"
	require.NoError(t, fsext.WriteFile(ts.FS, ts.Flags.ConfigFilePath, []byte(`{"kind":"AltText","hasParams":true}`), 0o644))
	conf, err = readDiskConfig(ts.GlobalState)
	require.NoError(t, err)
	assert.Equal(t, Config{Kind: null.StringFrom("AltText"), HasParams: null.BoolFrom(true)}, conf)

	consolidated, err := getConsolidatedConfig(ts.GlobalState, Config{})
	require.NoError(t, err)
	assert.Equal(t, "alt_text", consolidated.Kind.String)
	assert.True(t, consolidated.HasParams.Bool)
}
