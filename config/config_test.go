package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "pb_data", cfg.DataDir)
	assert.Equal(t, "attached_assets/generated_images", cfg.AssetsDir)
	assert.Equal(t, "contact-messages", cfg.ContactChannel)
	assert.Equal(t, 4*time.Second, cfg.CarouselInterval)
	assert.Equal(t, 5*time.Second, cfg.NotifyTimeout)
	assert.True(t, cfg.EnableMetrics)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.RedisEnabled())
	assert.False(t, cfg.PubNubEnabled())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CAROUSEL_INTERVAL", "2s")
	t.Setenv("ENABLE_METRICS", "false")

	cfg, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, 2*time.Second, cfg.CarouselInterval)
	assert.False(t, cfg.EnableMetrics)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ASSETS_DIR=/srv/assets\nPUBNUB_PUBLISH_KEY=pub\nPUBNUB_SUBSCRIBE_KEY=sub\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("ASSETS_DIR")
		os.Unsetenv("PUBNUB_PUBLISH_KEY")
		os.Unsetenv("PUBNUB_SUBSCRIBE_KEY")
	})

	cfg, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/assets", cfg.AssetsDir)
	assert.True(t, cfg.PubNubEnabled())
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("NOTIFY_TIMEOUT", "soon")

	_, err := load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
