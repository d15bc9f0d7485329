package flags

import "unicode/utf16"

// FullRollout is the percentage assumed for flags absent from the
// rollout table: once the base flag is on, everyone gets it.
const FullRollout = 100

// Bucket maps a user identifier to a stable bucket in [0, 100).
//
// The algorithm is a multiplicative string hash (multiplication by 31
// expressed as a shift and subtraction) over the UTF-16 code units of
// the identifier, accumulated in a signed 32-bit register with
// two's-complement wraparound. The final value is widened before the
// absolute value is taken, since -2^31 has no 32-bit negation.
//
// It is deterministic but not collision-resistant and must not be used
// as a security boundary. Do not change it: reassigning buckets would
// silently move users in and out of active rollout cohorts.
func Bucket(userID string) int {
	var h int32
	for _, c := range utf16.Encode([]rune(userID)) {
		h = (h << 5) - h + int32(c)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v % 100)
}

// defaultRollouts is the compiled-in rollout percentage table. Flags
// not listed here roll out to 100% of users once enabled.
func defaultRollouts() map[Flag]int {
	return map[Flag]int{
		NewDashboard:    50,
		PremiumFeatures: 25,
	}
}
