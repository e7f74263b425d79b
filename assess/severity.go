package assess

import "fmt"

// Severity represents the severity level of an architectural gap finding.
type Severity string

const (
	// SeverityCritical indicates a gap leaving the design one step from
	// full compromise. Examples: no MFA, no encryption at rest for data.
	SeverityCritical Severity = "critical"

	// SeverityHigh indicates a gap exposing an entire zone to a common
	// attack class. Examples: a DMZ without a WAF.
	SeverityHigh Severity = "high"

	// SeverityMedium indicates a gap that widens blast radius rather than
	// opening the door. Examples: missing micro-segmentation.
	SeverityMedium Severity = "medium"

	// SeverityInfo indicates missing documentation or hygiene, not a
	// direct exposure. Examples: no data flows documented.
	SeverityInfo Severity = "info"
)

// severityWeights orders severities for comparison. Higher is more severe.
var severityWeights = map[Severity]int{
	SeverityCritical: 4,
	SeverityHigh:     3,
	SeverityMedium:   2,
	SeverityInfo:     1,
}

// IsValid returns true if the severity level is valid.
func (s Severity) IsValid() bool {
	_, ok := severityWeights[s]
	return ok
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// Label returns the upper-case report label for the severity (e.g.
// "CRITICAL"), or "UNKNOWN" for an invalid severity.
func (s Severity) Label() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityHigh:
		return "HIGH"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityInfo:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// Weight returns the comparison weight of the severity.
// Returns 0 for invalid severity levels.
func (s Severity) Weight() int {
	return severityWeights[s]
}

// ParseSeverity parses a string into a Severity value.
// Returns an error if the string is not a valid severity level.
func ParseSeverity(s string) (Severity, error) {
	severity := Severity(s)
	if !severity.IsValid() {
		return "", fmt.Errorf("invalid severity: %s", s)
	}
	return severity, nil
}

// CompareSeverity compares two severity levels.
// Returns:
//   - negative if s1 < s2
//   - zero if s1 == s2
//   - positive if s1 > s2
func CompareSeverity(s1, s2 Severity) int {
	return s1.Weight() - s2.Weight()
}

// AllSeverities returns all valid severity levels from critical to info.
func AllSeverities() []Severity {
	return []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityInfo}
}
