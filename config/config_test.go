// WARNING: Do not use `t.Parallel()` for tests in this package
// since the tests rely on setting and unsetting of environment variables

package config_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quinnturner/tslog/config"
)

const settingsTOML = `
level = "debug"
service_name = "payments"
mask_keys = ["password", "token"]
mask_placeholder = "###"
filter_internal_frames = false

[code_frames]
enabled = true
context_lines = 3
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"tslog.toml": &fstest.MapFile{Data: []byte(settingsTOML)},
	}
}

func TestLoadFromFile(t *testing.T) {
	settings, err := config.Load(testFS())
	require.NoError(t, err)

	assert.Equal(t, "debug", settings.Level)
	assert.Equal(t, "payments", settings.ServiceName)
	assert.Equal(t, []string{"password", "token"}, settings.MaskKeys)
	assert.Equal(t, "###", settings.MaskPlaceholder)
	assert.False(t, settings.FilterInternalFrames)
	assert.True(t, settings.CodeFrames.Enabled)
	assert.Equal(t, 3, settings.CodeFrames.ContextLines)
}

func TestLoadDefaults(t *testing.T) {
	settings, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultSettings(), settings)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TSLOG_LEVEL", "warn")
	t.Setenv("TSLOG_CODE_FRAMES__CONTEXT_LINES", "7")

	settings, err := config.Load(testFS())
	require.NoError(t, err)

	assert.Equal(t, "warn", settings.Level)
	assert.Equal(t, 7, settings.CodeFrames.ContextLines)
	// file values without env overrides survive
	assert.Equal(t, "payments", settings.ServiceName)
}

func TestLoadEnvOnly(t *testing.T) {
	t.Setenv("TSLOG_SERVICE_NAME", "ingest")

	settings, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "ingest", settings.ServiceName)
	assert.Equal(t, "info", settings.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(fstest.MapFS{})
	assert.Error(t, err)
}

func TestLoadCustomPathAndPrefix(t *testing.T) {
	t.Setenv("APP_LEVEL", "error")

	f := fstest.MapFS{
		"conf/logging.toml": &fstest.MapFile{Data: []byte(`service_name = "api"`)},
	}
	settings, err := config.Load(f,
		config.WithFilePath("conf/logging.toml"),
		config.WithEnvPrefix("APP_"),
	)
	require.NoError(t, err)

	assert.Equal(t, "api", settings.ServiceName)
	assert.Equal(t, "error", settings.Level)
}
