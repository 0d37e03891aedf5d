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
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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

func TestCanonicalizeEnvKey_MarketplaceSections(t *testing.T) {
	existing := map[string]any{
		"payment": map[string]any{
			"merchantSecret": "",
		},
		"storage": map[string]any{
			"bucketUrl":      "",
			"maxUploadBytes": 0,
		},
		"env": map[string]any{
			"timeZone": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "PAYMENT_MERCHANTSECRET", want: "payment.merchantSecret"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "STORAGE_MAX_UPLOAD_BYTES", want: "storage.max.upload.bytes"},
		{envKey: "ENV_TIMEZONE", want: "env.timeZone"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q", cfg.HTTP.MaxRequestBodySize)
	}
	if cfg.Env.TimeZone != "Asia/Colombo" {
		t.Fatalf("TimeZone = %q", cfg.Env.TimeZone)
	}
	if cfg.Auth.TokenTTL != defaultTokenTTL {
		t.Fatalf("TokenTTL = %s", cfg.Auth.TokenTTL)
	}
	if cfg.PasswordStrength.MinLength != 8 || cfg.PasswordStrength.SpecialCharacters != "@$!%*?&#" {
		t.Fatalf("PasswordStrength = %+v", cfg.PasswordStrength)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Fatalf("Metrics.Path = %q", cfg.Metrics.Path)
	}
	if cfg.Storage.MaxUploadBytes != defaultMaxUploadBytes {
		t.Fatalf("MaxUploadBytes = %d", cfg.Storage.MaxUploadBytes)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{BcryptCost: 12, TokenTTL: time.Hour},
		Metrics: &MetricsConfig{Enabled: true, Path: "/internal/metrics"},
	}
	cfg.Env.TimeZone = "UTC"
	applyDefaults(cfg)

	if cfg.Env.TimeZone != "UTC" {
		t.Fatalf("TimeZone = %q", cfg.Env.TimeZone)
	}
	if cfg.Auth.TokenTTL != time.Hour || cfg.Auth.BcryptCost != 12 {
		t.Fatalf("Auth = %+v", cfg.Auth)
	}
	if cfg.Metrics.Path != "/internal/metrics" {
		t.Fatalf("Metrics.Path = %q", cfg.Metrics.Path)
	}
}
