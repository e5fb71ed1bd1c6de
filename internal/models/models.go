// Package models holds shared data types used across commands.
package models

// Config is the on-disk configuration persisted under .ceapwatch/.
type Config struct {
	FeatureFlags map[string]bool `json:"feature_flags,omitempty"`
}

// RiskLevel is the risk band assigned to a deputy by the analysis pipeline.
type RiskLevel string

const (
	RiskLow      RiskLevel = "BAIXO"
	RiskMedium   RiskLevel = "MEDIO"
	RiskHigh     RiskLevel = "ALTO"
	RiskCritical RiskLevel = "CRITICO"
)

// Risk score thresholds used by the pipeline to derive the band.
const (
	RiskMediumThreshold   = 0.35
	RiskHighThreshold     = 0.55
	RiskCriticalThreshold = 0.75
)

// RiskLevelForScore maps a composite risk score in [0,1] to its band.
func RiskLevelForScore(score float64) RiskLevel {
	switch {
	case score >= RiskCriticalThreshold:
		return RiskCritical
	case score >= RiskHighThreshold:
		return RiskHigh
	case score >= RiskMediumThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

// AllRiskLevels returns the bands from lowest to highest.
func AllRiskLevels() []RiskLevel {
	return []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical}
}
