package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/batch-rename/pkg/errors"
	"github.com/arthur-debert/batch-rename/pkg/ui/styles"
	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config directory at an empty temp dir
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	return filepath.Join(home, appName)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.Concurrency.DryRun)
	assert.Equal(t, 64, cfg.Concurrency.Rename)
	assert.Equal(t, time.Duration(0), cfg.Timeout())
	assert.Equal(t, "", cfg.Temp.Dir)
	assert.Equal(t, styles.ColorAuto, cfg.ColorMode())
}

func TestLoad_UserFile(t *testing.T) {
	t.Run("toml", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "config.toml"), `
[concurrency]
dry_run = 4

[command]
timeout = "1m30s"
`)

		cfg, err := Load(Options{})
		require.NoError(t, err)

		assert.Equal(t, 4, cfg.Concurrency.DryRun)
		assert.Equal(t, 64, cfg.Concurrency.Rename, "unset keys keep defaults")
		assert.Equal(t, 90*time.Second, cfg.Timeout())
	})

	t.Run("yaml", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "config.yaml"), "prompt:\n  color: never\ntemp:\n  dir: /var/tmp\n")

		cfg, err := Load(Options{})
		require.NoError(t, err)

		assert.Equal(t, styles.ColorNever, cfg.ColorMode())
		assert.Equal(t, "/var/tmp", cfg.Temp.Dir)
	})

	t.Run("explicit path wins over search", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "config.toml"), "[concurrency]\nrename = 2\n")
		explicit := filepath.Join(t.TempDir(), "other.toml")
		writeFile(t, explicit, "[concurrency]\nrename = 3\n")

		cfg, err := Load(Options{Path: explicit})
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Concurrency.Rename)
	})
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), "[concurrency]\ndry_run = 4\n")
	t.Setenv("BATCH_RENAME_CONCURRENCY__DRY_RUN", "8")
	t.Setenv("BATCH_RENAME_COMMAND__TIMEOUT", "5s")

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Concurrency.DryRun)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}

func TestLoad_OverridesWin(t *testing.T) {
	isolate(t)
	t.Setenv("BATCH_RENAME_CONCURRENCY__RENAME", "8")

	cfg, err := Load(Options{Overrides: map[string]interface{}{
		"concurrency.rename": 2,
		"prompt.color":       "always",
	}})
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Concurrency.Rename)
	assert.Equal(t, styles.ColorAlways, cfg.ColorMode())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts func(t *testing.T) Options
		code errors.ErrorCode
	}{
		{
			name: "explicit file missing",
			opts: func(t *testing.T) Options {
				return Options{Path: filepath.Join(t.TempDir(), "missing.toml")}
			},
			code: errors.ErrConfigLoad,
		},
		{
			name: "malformed file",
			opts: func(t *testing.T) Options {
				path := filepath.Join(t.TempDir(), "bad.toml")
				writeFile(t, path, "[concurrency\ndry_run = ")
				return Options{Path: path}
			},
			code: errors.ErrConfigLoad,
		},
		{
			name: "zero concurrency",
			opts: func(t *testing.T) Options {
				return Options{Overrides: map[string]interface{}{"concurrency.dry_run": 0}}
			},
			code: errors.ErrConfigValid,
		},
		{
			name: "negative rename concurrency",
			opts: func(t *testing.T) Options {
				return Options{Overrides: map[string]interface{}{"concurrency.rename": -1}}
			},
			code: errors.ErrConfigValid,
		},
		{
			name: "unknown color",
			opts: func(t *testing.T) Options {
				return Options{Overrides: map[string]interface{}{"prompt.color": "sometimes"}}
			},
			code: errors.ErrConfigValid,
		},
		{
			name: "bad duration",
			opts: func(t *testing.T) Options {
				return Options{Overrides: map[string]interface{}{"command.timeout": "soon"}}
			},
			code: errors.ErrConfigParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			_, err := Load(tt.opts(t))
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err), "error: %v", err)
		})
	}
}

func TestMarshal(t *testing.T) {
	isolate(t)
	cfg, err := Load(Options{Overrides: map[string]interface{}{"command.timeout": "2m"}})
	require.NoError(t, err)

	out, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Regexp(t, `timeout = ['"]2m0s['"]`, string(out))

	var back Config
	require.NoError(t, gotoml.Unmarshal(out, &back))
	assert.Equal(t, *cfg, back)
}

func TestDefaultContent(t *testing.T) {
	var parsed map[string]interface{}
	require.NoError(t, gotoml.Unmarshal([]byte(DefaultContent()), &parsed))
	assert.Contains(t, parsed, "concurrency")
	assert.Contains(t, parsed, "prompt")
}
