package catalog

import (
	"encoding/json"
	"fmt"
)

// AllZones is the scope marker meaning a control or blocking rule applies
// in every zone rather than a specific set.
const AllZones = "All Zones"

// Effort represents the implementation effort of a control.
type Effort string

const (
	// EffortLow indicates a control that is cheap to deploy and operate.
	EffortLow Effort = "Low"

	// EffortMedium indicates a control requiring meaningful integration work.
	EffortMedium Effort = "Medium"

	// EffortHigh indicates a control with significant organizational cost.
	EffortHigh Effort = "High"
)

// IsValid returns true if the effort level is valid.
func (e Effort) IsValid() bool {
	switch e {
	case EffortLow, EffortMedium, EffortHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the effort level.
func (e Effort) String() string {
	return string(e)
}

// ParseEffort parses a string into an Effort value.
// Returns an error if the string is not a valid effort level.
func ParseEffort(s string) (Effort, error) {
	effort := Effort(s)
	if !effort.IsValid() {
		return "", fmt.Errorf("invalid effort: %s", s)
	}
	return effort, nil
}

// Scope describes the set of zones something applies to. A scope either
// names zones explicitly or covers every zone via the AllZones marker.
//
// In YAML and JSON a scope is a plain list of zone names where the literal
// "All Zones" entry promotes the scope to all-zones coverage, matching the
// original reference data format.
type Scope struct {
	all   bool
	zones []string
}

// ZoneScope returns a scope covering exactly the named zones.
func ZoneScope(zones ...string) Scope {
	return Scope{zones: append([]string(nil), zones...)}
}

// AllZoneScope returns a scope covering every zone.
func AllZoneScope() Scope {
	return Scope{all: true}
}

// Covers reports whether the scope includes the named zone.
func (s Scope) Covers(zone string) bool {
	if s.all {
		return true
	}
	for _, z := range s.zones {
		if z == zone {
			return true
		}
	}
	return false
}

// All reports whether the scope covers every zone.
func (s Scope) All() bool {
	return s.all
}

// Zones returns the explicitly named zones, or nil for an all-zones scope.
func (s Scope) Zones() []string {
	if s.all {
		return nil
	}
	return append([]string(nil), s.zones...)
}

// names returns the wire representation: the zone list, with all-zones
// coverage encoded as the single AllZones entry.
func (s Scope) names() []string {
	if s.all {
		return []string{AllZones}
	}
	return append([]string(nil), s.zones...)
}

// scopeFromNames builds a Scope from a wire-format zone list.
func scopeFromNames(names []string) Scope {
	var zones []string
	all := false
	for _, n := range names {
		if n == AllZones {
			all = true
			continue
		}
		zones = append(zones, n)
	}
	if all {
		return Scope{all: true}
	}
	return Scope{zones: zones}
}

// MarshalYAML implements yaml.Marshaler.
func (s Scope) MarshalYAML() (any, error) {
	return s.names(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Scope) UnmarshalYAML(unmarshal func(any) error) error {
	var names []string
	if err := unmarshal(&names); err != nil {
		return err
	}
	*s = scopeFromNames(names)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Scope) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.names())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scope) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*s = scopeFromNames(names)
	return nil
}

// Control is a named mitigation that can be assigned to a zone.
// Controls are defined once in the catalog and never mutated.
type Control struct {
	// Name uniquely identifies the control within a catalog.
	Name string `json:"name" yaml:"name"`

	// Category groups related controls (e.g. "Identity & Access").
	// Categories drive the breadth half of the coverage score.
	Category string `json:"category" yaml:"category"`

	// Blocks lists the abstract threat labels this control mitigates.
	// Labels are free text, not a closed taxonomy.
	Blocks []string `json:"blocks,omitempty" yaml:"blocks,omitempty"`

	// NaturalZones describes where the control is typically deployed.
	// Advisory only; evaluators never enforce it.
	NaturalZones Scope `json:"natural_zones,omitempty" yaml:"natural_zones,omitempty"`

	// Effort is the implementation effort. Advisory; unused by evaluators.
	Effort Effort `json:"effort,omitempty" yaml:"effort,omitempty"`
}
