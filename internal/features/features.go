// Package features resolves the boolean switches that control what the
// dashboard shows. Flags are read-only from the rendering side; the
// `ceapwatch features` command is the only mutation surface.
package features

import (
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/ceapwatch/ceapwatch/internal/config"
)

// Feature describes a named feature flag.
type Feature struct {
	Name        string
	Default     bool
	Description string
}

var (
	// SubscriberPreview gates the whole subscriber section. When off the
	// section renders nothing, not even the teaser.
	SubscriberPreview = Feature{
		Name:        "subscriber_preview",
		Default:     true,
		Description: "Show the gated subscriber section (teaser always visible)",
	}

	// SubscriberUnlock reveals the locked half of the subscriber section
	// and removes the call-to-action overlay.
	SubscriberUnlock = Feature{
		Name:        "subscriber_unlock",
		Default:     false,
		Description: "Unlock the full subscriber content, no call-to-action",
	}
)

var allFeatures = []Feature{
	SubscriberPreview,
	SubscriberUnlock,
}

var defaultValues = buildDefaultMap()

func buildDefaultMap() map[string]bool {
	values := make(map[string]bool, len(allFeatures))
	for _, feature := range allFeatures {
		values[feature.Name] = feature.Default
	}
	return values
}

// ListAll returns all known features sorted by name.
func ListAll() []Feature {
	items := make([]Feature, len(allFeatures))
	copy(items, allFeatures)
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items
}

// IsKnownFeature returns true when the feature exists in the registry.
func IsKnownFeature(name string) bool {
	_, ok := defaultValues[normalizeName(name)]
	return ok
}

// IsEnabled resolves a feature using env overrides, then local config, then defaults.
func IsEnabled(baseDir, name string) bool {
	enabled, _ := Resolve(baseDir, name)
	return enabled
}

// Resolve returns the resolved feature state and the source ("env", "config", "default").
func Resolve(baseDir, name string) (bool, string) {
	canonical := normalizeName(name)

	if enabled, ok := resolveEnvOverride(canonical); ok {
		return enabled, "env"
	}

	if baseDir != "" {
		cfg, err := config.Load(baseDir)
		if err == nil && cfg.FeatureFlags != nil {
			if enabled, ok := cfg.FeatureFlags[canonical]; ok {
				return enabled, "config"
			}
		}
	}

	return getDefault(canonical), "default"
}

// Flags is the resolved pair of switches consumed by the content gate.
// All four combinations are valid; the gate collapses them into three
// observable display modes.
type Flags struct {
	SubscriberPreview bool
	SubscriberUnlock  bool
}

// ResolveFlags resolves both gate switches at once.
func ResolveFlags(baseDir string) Flags {
	return Flags{
		SubscriberPreview: IsEnabled(baseDir, SubscriberPreview.Name),
		SubscriberUnlock:  IsEnabled(baseDir, SubscriberUnlock.Name),
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func getDefault(name string) bool {
	if enabled, ok := defaultValues[name]; ok {
		return enabled
	}
	return false
}

func resolveEnvOverride(name string) (bool, bool) {
	// Emergency kill-switch for everything gated.
	if disabled, ok := parseBoolEnv("CEAPWATCH_DISABLE_EXPERIMENTAL"); ok && disabled {
		return false, true
	}

	featureVar := "CEAPWATCH_FEATURE_" + normalizeForEnvKey(name)
	if enabled, ok := parseBoolEnv(featureVar); ok {
		return enabled, true
	}

	if containsFeatureName(os.Getenv("CEAPWATCH_DISABLE_FEATURE"), name) ||
		containsFeatureName(os.Getenv("CEAPWATCH_DISABLE_FEATURES"), name) {
		return false, true
	}
	if containsFeatureName(os.Getenv("CEAPWATCH_ENABLE_FEATURE"), name) ||
		containsFeatureName(os.Getenv("CEAPWATCH_ENABLE_FEATURES"), name) {
		return true, true
	}

	return false, false
}

func normalizeForEnvKey(name string) string {
	upper := strings.ToUpper(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range upper {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

func parseBoolEnv(key string) (bool, bool) {
	value := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	switch value {
	case "1", "true", "on", "yes":
		return true, true
	case "0", "false", "off", "no":
		return false, true
	default:
		return false, false
	}
}

func containsFeatureName(raw, target string) bool {
	if raw == "" {
		return false
	}
	target = normalizeName(target)
	for _, item := range strings.Split(raw, ",") {
		if normalizeName(item) == target {
			return true
		}
	}
	return false
}
