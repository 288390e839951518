package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "MONGO_DB", "PUBLIC_URL", "FE_DEV_URL", "FE_PROD_URL", "MONGO_TRANSACTIONS", "LOCK_TTL_SEC"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "linkedin", cfg.MongoDB)
	assert.Equal(t, "http://localhost:3000", cfg.PublicURL)
	assert.False(t, cfg.MongoTransactions)
	assert.Equal(t, 10*time.Second, cfg.LockTTL)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, 10, cfg.PageDefaultLimit)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "3200")
	t.Setenv("PUBLIC_URL", "https://api.example.com/")
	t.Setenv("FE_DEV_URL", "http://localhost:5173")
	t.Setenv("FE_PROD_URL", "")
	t.Setenv("MONGO_TRANSACTIONS", "true")
	t.Setenv("PAGE_MAX_LIMIT", "not-a-number")

	cfg := Load()

	assert.Equal(t, "3200", cfg.Port)
	assert.Equal(t, "https://api.example.com", cfg.PublicURL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.True(t, cfg.MongoTransactions)
	assert.Equal(t, 100, cfg.PageMaxLimit)
}
