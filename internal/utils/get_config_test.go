package utils

import "testing"

func TestGetConfigIsProdEnvFallback(t *testing.T) {
	prev := config.IsProd
	config.IsProd = nil
	t.Cleanup(func() { config.IsProd = prev })

	t.Run("unset everywhere is empty", func(t *testing.T) {
		t.Setenv("IS_PROD", "")
		if got := GetConfig("IsProd"); got != "" {
			t.Errorf("GetConfig(IsProd) = %q, want empty", got)
		}
	})

	t.Run("falls back to IS_PROD env var", func(t *testing.T) {
		t.Setenv("IS_PROD", "true")
		if got := GetConfig("IsProd"); got != "true" {
			t.Errorf("GetConfig(IsProd) = %q, want true", got)
		}
	})

	t.Run("yaml value wins over env", func(t *testing.T) {
		t.Setenv("IS_PROD", "true")
		val := false
		config.IsProd = &val
		defer func() { config.IsProd = nil }()

		if got := GetConfig("IsProd"); got != "false" {
			t.Errorf("GetConfig(IsProd) = %q, want false", got)
		}
	})
}

func TestGetConfigEnvFallback(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	if config.DBHost != "" {
		t.Skip("config.yaml present in test environment")
	}
	if got := GetConfig("DB_HOST"); got != "db.internal" {
		t.Errorf("GetConfig(DB_HOST) = %q, want db.internal", got)
	}
}
