package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LISTEN_ADDR", "DEFAULT_DURATION_MIN", "MAX_FILES", "READ_WORKERS", "LOG_PRETTY"} {
		t.Setenv(key, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultDurationMin != 75 || cfg.MaxFiles != 10 || cfg.ReadWorkers != 4 {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.PrettyLogs {
		t.Fatal("pretty logs on by default")
	}
	if cfg.MaxUploadBytes() != int64(cfg.MaxUploadMB)<<20 {
		t.Fatalf("max upload bytes=%d", cfg.MaxUploadBytes())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("DEFAULT_GROUP_NAME", "Tytöt 2014")
	t.Setenv("DEFAULT_DURATION_MIN", " 90 ")
	t.Setenv("READ_WORKERS", "0")
	t.Setenv("RATE_LIMIT_PER_MIN", "abc")
	t.Setenv("LOG_PRETTY", "yes")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ListenAddr != ":9000" || cfg.DefaultGroupName != "Tytöt 2014" || cfg.DefaultDurationMin != 90 {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.ReadWorkers != 1 {
		t.Fatalf("read workers=%d", cfg.ReadWorkers)
	}
	if cfg.RateLimitPerMin != 60 {
		t.Fatalf("rate limit=%d", cfg.RateLimitPerMin)
	}
	if !cfg.PrettyLogs {
		t.Fatal("LOG_PRETTY=yes ignored")
	}
}

func TestLoadRejectsNonPositiveLimits(t *testing.T) {
	t.Setenv("MAX_FILES", "0")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "MAX_FILES") {
		t.Fatalf("err=%v", err)
	}
}

func TestRequire(t *testing.T) {
	var cfg Config
	if err := cfg.Require("LISTEN_ADDR", "  "); err == nil {
		t.Fatal("blank value accepted")
	}
	if err := cfg.Require("LISTEN_ADDR", ":8080"); err != nil {
		t.Fatal(err)
	}
}
