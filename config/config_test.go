package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 100, cfg.MaxRequestsPerMin)
	assert.Equal(t, "memory", cfg.ViewStore)
	assert.Equal(t, 30, cfg.ViewTTLMinutes)
	assert.Equal(t, "landing_view", cfg.ViewCookieName)
	assert.Equal(t, 3, cfg.RedisViewDB)
}

func TestOrigins(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"", []string{"*"}},
		{"*", []string{"*"}},
		{"https://drmike.com, https://www.drmike.com", []string{"https://drmike.com", "https://www.drmike.com"}},
		{" , ", []string{"*"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Config{AllowedOrigins: tc.raw}.Origins(), tc.raw)
	}
}
