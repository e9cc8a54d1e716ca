package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonhq/neon/pkg/models"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"NEON_HOST", "NEON_PORT", "NEON_MAX_PARALLEL_CASES",
		"NEON_HEARTBEAT_INTERVAL", "NEON_STALE_RUN_AFTER",
		"NEON_JUDGE_API_KEY", "NEON_JUDGE_BASE_URL", "NEON_JUDGE_MODEL",
		"NEON_API_KEYS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 10, cfg.MaxParallelCases)
	assert.Equal(t, 10*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, 2*time.Minute, cfg.StaleRunAfter)
	assert.Empty(t, cfg.APIKeys)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("NEON_HOST", "127.0.0.1")
	t.Setenv("NEON_PORT", "9090")
	t.Setenv("NEON_MAX_PARALLEL_CASES", "4")
	t.Setenv("NEON_HEARTBEAT_INTERVAL", "5s")
	t.Setenv("NEON_STALE_RUN_AFTER", "1m")
	t.Setenv("NEON_JUDGE_API_KEY", "sk-test")
	t.Setenv("NEON_JUDGE_MODEL", "gpt-4o")
	t.Setenv("NEON_API_KEYS", "tok=proj-1=read+execute")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 4, cfg.MaxParallelCases)
	assert.Equal(t, 5*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, time.Minute, cfg.StaleRunAfter)
	assert.Equal(t, "sk-test", cfg.JudgeAPIKey)
	assert.Equal(t, "gpt-4o", cfg.JudgeModel)
	require.Contains(t, cfg.APIKeys, "tok")
	assert.Equal(t, "proj-1", cfg.APIKeys["tok"].ProjectID)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("NEON_PORT", "not-a-port")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("NEON_PORT", "")
	t.Setenv("NEON_MAX_PARALLEL_CASES", "0")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("NEON_MAX_PARALLEL_CASES", "")
	t.Setenv("NEON_HEARTBEAT_INTERVAL", "sometimes")
	_, err = Load()
	assert.Error(t, err)
}

func TestParseAPIKeys(t *testing.T) {
	keys, err := ParseAPIKeys("s3cret=proj-1=read+write, ci-token=proj-1=read+execute ,admin-tok=proj-2=admin")
	require.NoError(t, err)
	require.Len(t, keys, 3)

	assert.Equal(t, models.Principal{ProjectID: "proj-1", Scopes: []string{"read", "write"}}, keys["s3cret"])
	assert.Equal(t, models.Principal{ProjectID: "proj-1", Scopes: []string{"read", "execute"}}, keys["ci-token"])
	adminTok := keys["admin-tok"]
	assert.True(t, adminTok.HasScope(models.ScopeWrite), "admin implies every scope")
}

func TestParseAPIKeys_Empty(t *testing.T) {
	keys, err := ParseAPIKeys("   ")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestParseAPIKeys_Malformed(t *testing.T) {
	for _, raw := range []string{
		"justatoken",
		"tok=proj",
		"tok=proj=read=extra",
		"=proj=read",
		"tok==read",
		"tok=proj=",
		"tok=proj=launch", // unknown scope
	} {
		_, err := ParseAPIKeys(raw)
		assert.Error(t, err, "entry %q should be rejected", raw)
	}
}
