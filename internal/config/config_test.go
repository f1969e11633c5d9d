package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")
	t.Setenv("SEED_FILE", "")
	t.Setenv("RULES_FILE", "")
	t.Setenv("ACTIVITY_LOG_CAP", "")
	c := Load()
	if c.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr default")
	}
	if c.ShutdownTimeout != 15*time.Second {
		t.Fatalf("ShutdownTimeout default")
	}
	if c.SeedFile != "" || c.RulesFile != "" {
		t.Fatalf("fixture paths default")
	}
	if c.ActivityLogCap != 0 {
		t.Fatalf("ActivityLogCap default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "2")
	t.Setenv("SEED_FILE", "/tmp/seed.yaml")
	t.Setenv("RULES_FILE", "/tmp/rules.yaml")
	t.Setenv("ACTIVITY_LOG_CAP", "100")
	c := Load()
	if c.HTTPAddr != ":9090" {
		t.Fatalf("HTTPAddr env")
	}
	if c.ShutdownTimeout != 2*time.Second {
		t.Fatalf("ShutdownTimeout env")
	}
	if c.SeedFile != "/tmp/seed.yaml" || c.RulesFile != "/tmp/rules.yaml" {
		t.Fatalf("fixture paths env")
	}
	if c.ActivityLogCap != 100 {
		t.Fatalf("ActivityLogCap env")
	}
}

func TestAtoienvBadValueFallsBack(t *testing.T) {
	t.Setenv("ACTIVITY_LOG_CAP", "not-a-number")
	c := Load()
	if c.ActivityLogCap != 0 {
		t.Fatalf("expected fallback to default, got %d", c.ActivityLogCap)
	}
}
