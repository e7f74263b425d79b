package assess

import "github.com/zero-day-ai/archstudio/catalog"

// TrustJumpThreshold is the largest trust-level difference a direct data
// flow can span without a warning. Flows jumping more than one level skip
// intermediate zones and should pass through a proxy or gateway with
// explicit logging.
const TrustJumpThreshold = 1

// TrustJump returns the absolute trust-level difference between two zones.
// Zones missing from the catalog contribute trust level 0; only the attack
// simulator treats unknown zone references as errors.
func TrustJump(zoneA, zoneB string, cat *catalog.Catalog) int {
	jump := cat.TrustLevel(zoneA) - cat.TrustLevel(zoneB)
	if jump < 0 {
		jump = -jump
	}
	return jump
}

// CheckTrustJump returns the trust jump between two zones and whether it
// exceeds TrustJumpThreshold. The caller decides what to do with an
// exceeded jump; the conventional policy is to warn and recommend an
// intermediate proxy or gateway plus mandatory logging for the flow.
func CheckTrustJump(zoneA, zoneB string, cat *catalog.Catalog) (jump int, exceeded bool) {
	jump = TrustJump(zoneA, zoneB, cat)
	return jump, jump > TrustJumpThreshold
}
