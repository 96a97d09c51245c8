package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Store.DirName != ".took" {
		t.Errorf("Store.DirName = %q, want .took", cfg.Store.DirName)
	}
	if cfg.Store.FileName != "took.json" {
		t.Errorf("Store.FileName = %q, want took.json", cfg.Store.FileName)
	}
	if got := cfg.Store.LockTimeout(); got != 3*time.Second {
		t.Errorf("Store.LockTimeout() = %v, want 3s", got)
	}
	if cfg.Report.DefaultDays != 1 {
		t.Errorf("Report.DefaultDays = %d, want 1", cfg.Report.DefaultDays)
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	t.Setenv("TOOK_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TOOK_HOME", home)

	content := "[report]\ndefault_days = 7\n"
	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Report.DefaultDays != 7 {
		t.Errorf("Report.DefaultDays = %d, want 7", cfg.Report.DefaultDays)
	}
	if cfg.Store.DirName != ".took" {
		t.Errorf("Store.DirName = %q, want default kept", cfg.Store.DirName)
	}
	if cfg.Report.BarWidth != 30 {
		t.Errorf("Report.BarWidth = %d, want default kept", cfg.Report.BarWidth)
	}
}

func TestLoadConfig_ClampsNonPositiveValues(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TOOK_HOME", home)

	content := "[store]\nlock_timeout_ms = -10\n\n[report]\ndefault_days = 0\n"
	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Store.LockTimeoutMS != 3000 {
		t.Errorf("Store.LockTimeoutMS = %d, want restored default", cfg.Store.LockTimeoutMS)
	}
	if cfg.Report.DefaultDays != 1 {
		t.Errorf("Report.DefaultDays = %d, want restored default", cfg.Report.DefaultDays)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	t.Setenv("TOOK_HOME", t.TempDir())

	want := DefaultConfig()
	want.Report.BarWidth = 42
	want.Serve.Port = 9000

	if err := SaveConfig(want); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}
	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestTookHome_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TOOK_HOME", dir)

	if got := TookHome(); got != dir {
		t.Errorf("TookHome() = %q, want %q", got, dir)
	}
}
