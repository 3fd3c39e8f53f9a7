package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "REDIS_URI", "ATTEMPT_TTL", "MONGO_URI", "QUIZ_BANK", "QUIZ_BANK_FILE", "SITE_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 24*time.Hour, cfg.AttemptTTL)
	assert.Empty(t, cfg.MongoURI)
	assert.Equal(t, "default", cfg.BankName)
	assert.Equal(t, "https://animalquiz.example", cfg.SiteURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("REDIS_URI", "redis://cache:6379")
	t.Setenv("ATTEMPT_TTL", "30m")
	t.Setenv("QUIZ_BANK_FILE", "/etc/quiz/bank.yaml")
	t.Setenv("SITE_URL", "https://quiz.test")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, 30*time.Minute, cfg.AttemptTTL)
	assert.Equal(t, "/etc/quiz/bank.yaml", cfg.BankFile)
	assert.Equal(t, "https://quiz.test", cfg.SiteURL)
}

func TestLoadIgnoresBadDuration(t *testing.T) {
	t.Setenv("ATTEMPT_TTL", "soon")
	assert.Equal(t, 24*time.Hour, Load().AttemptTTL)
}
