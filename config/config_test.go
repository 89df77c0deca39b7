package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DELIVERY_FEE", "")
	t.Setenv("TOKEN_TTL", "")

	cfg := Load()
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, int64(300), cfg.DeliveryFee)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "cloudinary", cfg.Media.Provider)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DELIVERY_FEE", "150")
	t.Setenv("CART_TTL", "30m")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("WATCH_CHANGE_STREAMS", "true")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, int64(150), cfg.DeliveryFee)
	assert.Equal(t, 30*time.Minute, cfg.CartTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CorsOrigins)
	assert.True(t, cfg.WatchChangeStreams)
}

func TestLoadIgnoresBadValues(t *testing.T) {
	t.Setenv("DELIVERY_FEE", "-5")
	t.Setenv("TOKEN_TTL", "soon")

	cfg := Load()
	assert.Equal(t, int64(300), cfg.DeliveryFee)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}
