package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ceapwatch/ceapwatch/internal/models"
)

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load on empty dir: %v", err)
	}
	if cfg.FeatureFlags != nil {
		t.Errorf("empty config has flags: %v", cfg.FeatureFlags)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := &models.Config{
		FeatureFlags: map[string]bool{
			"subscriber_preview": false,
			"subscriber_unlock":  true,
		},
	}
	if err := Save(dir, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.FeatureFlags) != 2 {
		t.Fatalf("loaded %d flags, want 2", len(loaded.FeatureFlags))
	}
	if loaded.FeatureFlags["subscriber_preview"] != false || loaded.FeatureFlags["subscriber_unlock"] != true {
		t.Errorf("flag values lost in round trip: %v", loaded.FeatureFlags)
	}
}

func TestSetAndUnsetFeatureFlag(t *testing.T) {
	dir := t.TempDir()

	if err := SetFeatureFlag(dir, "subscriber_unlock", true); err != nil {
		t.Fatalf("SetFeatureFlag: %v", err)
	}

	value, explicit, err := GetFeatureFlag(dir, "subscriber_unlock")
	if err != nil {
		t.Fatalf("GetFeatureFlag: %v", err)
	}
	if !explicit || !value {
		t.Errorf("GetFeatureFlag = (%v, %v), want (true, true)", value, explicit)
	}

	if err := UnsetFeatureFlag(dir, "subscriber_unlock"); err != nil {
		t.Fatalf("UnsetFeatureFlag: %v", err)
	}
	_, explicit, err = GetFeatureFlag(dir, "subscriber_unlock")
	if err != nil {
		t.Fatalf("GetFeatureFlag after unset: %v", err)
	}
	if explicit {
		t.Error("flag still explicitly set after unset")
	}

	// Unsetting the last flag drops the map entirely from the file.
	data, err := os.ReadFile(filepath.Join(dir, configFile))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if string(data) == "" {
		t.Error("config file empty after unset")
	}
}

func TestGetFeatureFlagUnset(t *testing.T) {
	_, explicit, err := GetFeatureFlag(t.TempDir(), "subscriber_preview")
	if err != nil {
		t.Fatalf("GetFeatureFlag: %v", err)
	}
	if explicit {
		t.Error("unset flag reported as explicit")
	}
}
