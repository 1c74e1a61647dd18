package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"refresh": "",
		},
		"auth": map[string]any{
			"accessTokenTtl": "15m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_REFRESH", want: "secretKey.refresh"},
		{envKey: "AUTH_ACCESSTOKENTTL", want: "auth.accessTokenTtl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestValidateSecrets(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.SecretKey.Access = "access-secret-key-0123456789abcdef"
		cfg.SecretKey.Refresh = "refresh-secret-key-0123456789abcdef"

		return cfg
	}

	t.Run("valid pair passes", func(t *testing.T) {
		if err := validateSecrets(valid()); err != nil {
			t.Fatalf("validateSecrets() = %v, want nil", err)
		}
	})

	t.Run("short access secret rejected", func(t *testing.T) {
		cfg := valid()
		cfg.SecretKey.Access = "short"
		if err := validateSecrets(cfg); err == nil {
			t.Fatal("validateSecrets() = nil, want error")
		}
	})

	t.Run("identical secrets rejected", func(t *testing.T) {
		cfg := valid()
		cfg.SecretKey.Refresh = cfg.SecretKey.Access
		if err := validateSecrets(cfg); err == nil {
			t.Fatal("validateSecrets() = nil, want error")
		}
	})
}

func TestValidateRateLimit(t *testing.T) {
	withRateLimit := func(rl *RateLimitConfig) *Config {
		cfg := &Config{}
		cfg.HTTP.RateLimit = rl

		return cfg
	}

	t.Run("missing config passes", func(t *testing.T) {
		if err := validateRateLimit(withRateLimit(nil)); err != nil {
			t.Fatalf("validateRateLimit() = %v, want nil", err)
		}
	})

	t.Run("disabled limiter passes regardless of window", func(t *testing.T) {
		rl := &RateLimitConfig{Enabled: false, Threshold: 5}
		if err := validateRateLimit(withRateLimit(rl)); err != nil {
			t.Fatalf("validateRateLimit() = %v, want nil", err)
		}
	})

	t.Run("enabled limiter passes with window and threshold", func(t *testing.T) {
		rl := &RateLimitConfig{Enabled: true, Threshold: 5, Window: time.Minute}
		if err := validateRateLimit(withRateLimit(rl)); err != nil {
			t.Fatalf("validateRateLimit() = %v, want nil", err)
		}
	})

	t.Run("enabled limiter without window rejected", func(t *testing.T) {
		rl := &RateLimitConfig{Enabled: true, Threshold: 5}
		if err := validateRateLimit(withRateLimit(rl)); err == nil {
			t.Fatal("validateRateLimit() = nil, want error")
		}
	})

	t.Run("enabled limiter without threshold rejected", func(t *testing.T) {
		rl := &RateLimitConfig{Enabled: true, Window: time.Minute}
		if err := validateRateLimit(withRateLimit(rl)); err == nil {
			t.Fatal("validateRateLimit() = nil, want error")
		}
	})
}
