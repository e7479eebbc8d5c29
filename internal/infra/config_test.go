package infra

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVICE_FEE_PERCENT", "")
	t.Setenv("QUIZ_SESSION_TTL", "")

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 8.0, cfg.ServiceFeePercent)
	assert.Equal(t, 30*time.Minute, cfg.QuizSessionTTL)
	assert.Empty(t, cfg.Warnings)
}

func TestLoadConfigCollectsWarnings(t *testing.T) {
	t.Setenv("SERVICE_FEE_PERCENT", "oito")
	t.Setenv("QUIZ_SESSION_TTL", "-5m")

	cfg := LoadConfig()
	assert.Equal(t, 8.0, cfg.ServiceFeePercent)
	assert.Equal(t, 30*time.Minute, cfg.QuizSessionTTL)

	require.Len(t, cfg.Warnings, 2)
	assert.Equal(t, "QUIZ_SESSION_TTL", cfg.Warnings[0].Key)
	assert.Equal(t, "-5m", cfg.Warnings[0].Value)
	assert.Equal(t, "SERVICE_FEE_PERCENT", cfg.Warnings[1].Key)
	assert.Equal(t, "8", cfg.Warnings[1].Default)
	assert.Error(t, cfg.Warnings[1].Err)
}

func TestLoadConfigReadsValues(t *testing.T) {
	t.Setenv("SERVICE_FEE_PERCENT", "5.5")
	t.Setenv("QUIZ_SESSION_TTL", "10m")

	cfg := LoadConfig()
	assert.Equal(t, 5.5, cfg.ServiceFeePercent)
	assert.Equal(t, 10*time.Minute, cfg.QuizSessionTTL)
	assert.Empty(t, cfg.Warnings)
}
