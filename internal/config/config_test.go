package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "LAYER_BASE_DIR", "SCENE_SCALE", "MAX_FEATURES_PER_LAYER",
	"FETCH_TIMEOUT_SECONDS", "MAX_CONCURRENT_FETCHES", "SCENE_TTL_HOURS",
	"FIRESTORE_PROJECT_ID", "GOOGLE_APPLICATION_CREDENTIALS",
	"SUPABASE_URL", "SUPABASE_ANON_KEY", "DATABASE_URL",
}

func clearEnv(t *testing.T) {
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("デフォルト値", func(t *testing.T) {
		clearEnv(t)

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "./data", cfg.LayerBaseDir)
		assert.Equal(t, 0.01, cfg.SceneScale)
		assert.Equal(t, 0, cfg.MaxFeaturesPerLayer)
		assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
		assert.Equal(t, 3, cfg.MaxConcurrentFetches)
		assert.Equal(t, 2*time.Hour, cfg.SceneTTL)
		assert.False(t, cfg.UseFirestore())
		assert.False(t, cfg.UseSupabase())
		assert.False(t, cfg.UsePostgres())
	})

	t.Run("環境変数で上書き", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SCENE_SCALE", "0.5")
		t.Setenv("MAX_FEATURES_PER_LAYER", "5000")
		t.Setenv("MAX_CONCURRENT_FETCHES", "0")
		t.Setenv("FIRESTORE_PROJECT_ID", "coastrisk")
		t.Setenv("SUPABASE_URL", "https://example.supabase.co")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, 0.5, cfg.SceneScale)
		assert.Equal(t, 5000, cfg.MaxFeaturesPerLayer)
		assert.Equal(t, 1, cfg.MaxConcurrentFetches)
		assert.True(t, cfg.UseFirestore())
		assert.False(t, cfg.UseSupabase())
	})

	t.Run("不正な値", func(t *testing.T) {
		for key, value := range map[string]string{
			"SCENE_SCALE":            "NaN",
			"FETCH_TIMEOUT_SECONDS":  "abc",
			"MAX_FEATURES_PER_LAYER": "1.5",
			"SCENE_TTL_HOURS":        "x",
		} {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := FromEnv()
			assert.Error(t, err, key)
		}

		for _, scale := range []string{"0", "-1", "Inf"} {
			clearEnv(t)
			t.Setenv("SCENE_SCALE", scale)
			_, err := FromEnv()
			assert.Error(t, err, scale)
		}
	})
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("PORT")
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PORT=9090\n"), 0o644))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)

	// ファイルがなくても環境変数で動作する
	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
