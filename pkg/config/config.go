// Package config assembles server configuration from the environment.
// A .env file, when present, is loaded by the entrypoint before this
// package reads anything.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/neonhq/neon/pkg/models"
)

// Config is the full server configuration.
type Config struct {
	Host string
	Port int

	MaxParallelCases  int
	HeartbeatInterval time.Duration
	StaleRunAfter     time.Duration

	JudgeAPIKey  string
	JudgeBaseURL string
	JudgeModel   string

	// APIKeys maps bearer tokens to principals.
	APIKeys map[string]models.Principal
}

// Load reads NEON_* environment variables.
func Load() (Config, error) {
	cfg := Config{
		Host:              envOr("NEON_HOST", "0.0.0.0"),
		MaxParallelCases:  10,
		HeartbeatInterval: 10 * time.Second,
		StaleRunAfter:     2 * time.Minute,
		JudgeAPIKey:       os.Getenv("NEON_JUDGE_API_KEY"),
		JudgeBaseURL:      os.Getenv("NEON_JUDGE_BASE_URL"),
		JudgeModel:        os.Getenv("NEON_JUDGE_MODEL"),
	}

	port, err := intEnv("NEON_PORT", 8080)
	if err != nil {
		return Config{}, err
	}
	cfg.Port = port

	if cfg.MaxParallelCases, err = intEnv("NEON_MAX_PARALLEL_CASES", 10); err != nil {
		return Config{}, err
	}
	if cfg.MaxParallelCases <= 0 {
		return Config{}, fmt.Errorf("NEON_MAX_PARALLEL_CASES must be positive")
	}

	if v := os.Getenv("NEON_HEARTBEAT_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid NEON_HEARTBEAT_INTERVAL %q: %w", v, err)
		}
		cfg.HeartbeatInterval = d
	}
	if v := os.Getenv("NEON_STALE_RUN_AFTER"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid NEON_STALE_RUN_AFTER %q: %w", v, err)
		}
		cfg.StaleRunAfter = d
	}

	keys, err := ParseAPIKeys(os.Getenv("NEON_API_KEYS"))
	if err != nil {
		return Config{}, err
	}
	cfg.APIKeys = keys

	return cfg, nil
}

// ParseAPIKeys parses the NEON_API_KEYS format: comma-separated
// "token=project_id=scope+scope" entries.
//
//	NEON_API_KEYS="s3cret=proj-1=read+write,ci-token=proj-1=read+execute"
func ParseAPIKeys(raw string) (map[string]models.Principal, error) {
	keys := make(map[string]models.Principal)
	if strings.TrimSpace(raw) == "" {
		return keys, nil
	}
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, "=")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid NEON_API_KEYS entry %q: want token=project_id=scopes", entry)
		}
		token, projectID, scopesRaw := parts[0], parts[1], parts[2]
		if token == "" || projectID == "" {
			return nil, fmt.Errorf("invalid NEON_API_KEYS entry %q: empty token or project", entry)
		}
		var scopes []string
		for _, s := range strings.Split(scopesRaw, "+") {
			scope := strings.TrimSpace(s)
			switch scope {
			case models.ScopeRead, models.ScopeWrite, models.ScopeExecute, models.ScopeAdmin:
				scopes = append(scopes, scope)
			default:
				return nil, fmt.Errorf("invalid NEON_API_KEYS entry %q: unknown scope %q", entry, s)
			}
		}
		if len(scopes) == 0 {
			return nil, fmt.Errorf("invalid NEON_API_KEYS entry %q: no scopes", entry)
		}
		keys[token] = models.Principal{ProjectID: projectID, Scopes: scopes}
	}
	return keys, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
