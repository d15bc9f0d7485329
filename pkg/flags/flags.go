package flags

import (
	"golang.org/x/exp/slices"

	"github.com/pkg/errors"
)

// Flag is a recognized feature flag name. The set of flags is closed:
// lookups for names outside this list always evaluate to disabled.
type Flag string

const (
	NewDashboard       Flag = "ENABLE_NEW_DASHBOARD"
	PremiumFeatures    Flag = "ENABLE_PREMIUM_FEATURES"
	JobAlerts          Flag = "ENABLE_JOB_ALERTS"
	SavedSearches      Flag = "ENABLE_SAVED_SEARCHES"
	ApplicationTracker Flag = "ENABLE_APPLICATION_TRACKER"
	BookmarksSync      Flag = "ENABLE_BOOKMARKS_SYNC"
	DarkMode           Flag = "ENABLE_DARK_MODE"
	Analytics          Flag = "ENABLE_ANALYTICS"
	DebugPanel         Flag = "ENABLE_DEBUG_PANEL"
	MaintenanceBanner  Flag = "ENABLE_MAINTENANCE_BANNER"
)

// EnvPrefix is prepended to a flag name to form its environment
// variable override, e.g. FEATURE_ENABLE_PREMIUM_FEATURES.
const EnvPrefix = "FEATURE_"

var allFlags = []Flag{
	NewDashboard,
	PremiumFeatures,
	JobAlerts,
	SavedSearches,
	ApplicationTracker,
	BookmarksSync,
	DarkMode,
	Analytics,
	DebugPanel,
	MaintenanceBanner,
}

// All returns the recognized flags in a stable order.
func All() []Flag {
	return slices.Clone(allFlags)
}

func (f Flag) String() string {
	return string(f)
}

// Known reports whether f belongs to the recognized flag set.
func (f Flag) Known() bool {
	return slices.Contains(allFlags, f)
}

// EnvVar returns the name of the environment variable overriding f.
func (f Flag) EnvVar() string {
	return EnvPrefix + string(f)
}

// Tier is the deployment environment classification. It selects the
// bundle of flag defaults layered on top of the compiled-in ones.
type Tier string

const (
	TierDevelopment Tier = "development"
	TierStaging     Tier = "staging"
	TierProduction  Tier = "production"
	TierTest        Tier = "test"
)

var ErrUnknownTier = errors.New("unknown runtime tier")

func ParseTier(value string) (Tier, error) {
	switch Tier(value) {
	case TierDevelopment, TierStaging, TierProduction, TierTest:
		return Tier(value), nil
	}
	return "", errors.Wrap(ErrUnknownTier, value)
}

func defaultValues() map[Flag]bool {
	return map[Flag]bool{
		NewDashboard:       false,
		PremiumFeatures:    false,
		JobAlerts:          true,
		SavedSearches:      true,
		ApplicationTracker: true,
		BookmarksSync:      false,
		DarkMode:           true,
		Analytics:          false,
		DebugPanel:         false,
		MaintenanceBanner:  false,
	}
}

// tierBundle returns the per-tier overrides applied on top of the
// compiled-in defaults. Flags absent from a bundle keep their default.
func tierBundle(tier Tier) map[Flag]bool {
	switch tier {
	case TierDevelopment:
		return map[Flag]bool{
			NewDashboard: true,
			DebugPanel:   true,
		}
	case TierStaging:
		return map[Flag]bool{
			NewDashboard:    true,
			PremiumFeatures: true,
			BookmarksSync:   true,
		}
	case TierProduction:
		return map[Flag]bool{
			Analytics: true,
		}
	case TierTest:
		return map[Flag]bool{
			JobAlerts: false,
			DarkMode:  false,
		}
	}
	return nil
}
