package coverage

import (
	"fmt"

	"github.com/jonathan/cv-wizard/internal/types"
)

// Default tier boundaries, in percent
const (
	DefaultLowBelow = 30.0
	DefaultGoodFrom = 50.0
)

// Thresholds splits the coverage percentage into tiers:
// low below LowBelow, good from GoodFrom, medium in between.
type Thresholds struct {
	LowBelow float64 `json:"low_below"`
	GoodFrom float64 `json:"good_from"`
}

// DefaultThresholds returns the standard 30/50 tier boundaries
func DefaultThresholds() Thresholds {
	return Thresholds{LowBelow: DefaultLowBelow, GoodFrom: DefaultGoodFrom}
}

// Validate checks that 0 <= LowBelow <= GoodFrom <= 100
func (t Thresholds) Validate() error {
	if t.LowBelow < 0 || t.GoodFrom > 100 {
		return fmt.Errorf("coverage thresholds must be within 0-100, got low=%g good=%g", t.LowBelow, t.GoodFrom)
	}
	if t.LowBelow > t.GoodFrom {
		return fmt.Errorf("coverage low threshold %g exceeds good threshold %g", t.LowBelow, t.GoodFrom)
	}
	return nil
}

// Tier rates a coverage percentage
func (t Thresholds) Tier(coverage float64) types.CoverageTier {
	switch {
	case coverage < t.LowBelow:
		return types.TierLow
	case coverage < t.GoodFrom:
		return types.TierMedium
	default:
		return types.TierGood
	}
}
