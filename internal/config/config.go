// Package config reads and writes the local configuration file. The only
// state persisted today is the feature flag map; glossary search state is
// deliberately not saved, it belongs to a single dashboard instance.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ceapwatch/ceapwatch/internal/models"
)

const configFile = ".ceapwatch/config.json"
const lockFile = ".ceapwatch/config.json.lock"

// Load reads the config from disk. A missing file yields an empty config.
func Load(baseDir string) (*models.Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.Config{}, nil
		}
		return nil, err
	}

	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk using atomic write (temp file + rename)
func Save(baseDir string, cfg *models.Config) error {
	configPath := filepath.Join(baseDir, configFile)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "config-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, configPath)
}

// withConfigLock serializes read-modify-write cycles on config.json across
// processes using an advisory file lock.
func withConfigLock(baseDir string, fn func() error) error {
	lockPath := filepath.Join(baseDir, lockFile)

	if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := lockExclusive(f); err != nil {
		return err
	}
	defer unlockExclusive(f)

	return fn()
}

// GetFeatureFlag returns a feature flag from local config.
// The second return value indicates whether the flag is explicitly set.
func GetFeatureFlag(baseDir, name string) (bool, bool, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return false, false, err
	}
	if cfg.FeatureFlags == nil {
		return false, false, nil
	}
	value, ok := cfg.FeatureFlags[name]
	return value, ok, nil
}

// SetFeatureFlag persists a feature flag in local config.
func SetFeatureFlag(baseDir, name string, enabled bool) error {
	return withConfigLock(baseDir, func() error {
		cfg, err := Load(baseDir)
		if err != nil {
			return err
		}
		if cfg.FeatureFlags == nil {
			cfg.FeatureFlags = make(map[string]bool)
		}
		cfg.FeatureFlags[name] = enabled
		return Save(baseDir, cfg)
	})
}

// UnsetFeatureFlag removes an explicitly-set feature flag from local config.
func UnsetFeatureFlag(baseDir, name string) error {
	return withConfigLock(baseDir, func() error {
		cfg, err := Load(baseDir)
		if err != nil {
			return err
		}
		if cfg.FeatureFlags == nil {
			return nil
		}
		delete(cfg.FeatureFlags, name)
		if len(cfg.FeatureFlags) == 0 {
			cfg.FeatureFlags = nil
		}
		return Save(baseDir, cfg)
	})
}
