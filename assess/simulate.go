package assess

import (
	"fmt"
	"math"

	"github.com/zero-day-ai/archstudio/catalog"
	"github.com/zero-day-ai/archstudio/design"
)

// UnknownReferenceError reports an attack scenario referencing a zone that
// does not exist in the catalog. It is the only unknown-name condition the
// evaluators treat as an error; unrecognized control names are tolerated.
type UnknownReferenceError struct {
	// Scenario is the attack scenario carrying the dangling reference.
	Scenario string

	// Zone is the referenced zone missing from the catalog.
	Zone string
}

// Error implements the error interface.
func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("assess: attack scenario %q references unknown zone %q", e.Scenario, e.Zone)
}

// StageVerdict is the simulator's judgment for one kill-chain stage.
type StageVerdict struct {
	// Index is the zero-based position of the stage in the kill chain.
	Index int `json:"index"`

	// Zone is the zone the stage takes place in.
	Zone string `json:"zone"`

	// Phase is the kill-chain phase label.
	Phase string `json:"phase"`

	// Technique describes the attacker action for this stage.
	Technique string `json:"technique"`

	// Blocked is true when at least one blocking control is assigned in
	// the stage's zone.
	Blocked bool `json:"blocked"`

	// BlockedBy lists the controls that block the stage, in the
	// scenario's blocking-rule declaration order. Empty when Blocked is
	// false.
	BlockedBy []string `json:"blocked_by,omitempty"`
}

// SimulationResult is the full outcome of running one attack scenario
// against a design.
type SimulationResult struct {
	// Scenario is the attack scenario name.
	Scenario string `json:"scenario"`

	// Goal is the adversary's goal.
	Goal string `json:"goal"`

	// Stages holds the per-stage verdicts in kill-chain order.
	Stages []StageVerdict `json:"stages"`

	// ControlsInPlace counts the scenario's blocking controls that are
	// assigned anywhere in the design.
	ControlsInPlace int `json:"controls_in_place"`

	// ControlsRecommended counts the scenario's blocking controls.
	ControlsRecommended int `json:"controls_recommended"`

	// ProtectionPct is ControlsInPlace over ControlsRecommended as a
	// rounded percentage, or 0 when the scenario declares no blocking
	// controls.
	ProtectionPct int `json:"protection_pct"`
}

// Simulate walks an attack scenario's kill chain against a design and
// reports, stage by stage, whether the design blocks the attacker there.
//
// A stage is blocked when at least one of the scenario's blocking controls
// is assigned in the stage's zone and the control's blocking scope covers
// that zone. The aggregate protection percentage is looser: a
// blocking control counts if it is assigned anywhere in the design, even in
// a zone the kill chain never visits. The two measures answer different
// questions (is this path cut, versus are the recommended controls bought)
// and their divergence is intended.
//
// Returns UnknownReferenceError if any stage zone or blocking-rule scope
// zone is missing from the catalog.
func Simulate(d *design.State, cat *catalog.Catalog, scenario catalog.AttackScenario) (*SimulationResult, error) {
	for _, st := range scenario.Stages {
		if !cat.HasZone(st.Zone) {
			return nil, &UnknownReferenceError{Scenario: scenario.Name, Zone: st.Zone}
		}
	}
	for _, rule := range scenario.BlockingRules {
		for _, z := range rule.Scope.Zones() {
			if !cat.HasZone(z) {
				return nil, &UnknownReferenceError{Scenario: scenario.Name, Zone: z}
			}
		}
	}

	result := &SimulationResult{
		Scenario:            scenario.Name,
		Goal:                scenario.Goal,
		ControlsRecommended: len(scenario.BlockingRules),
	}

	for i, st := range scenario.Stages {
		assigned := make(map[string]bool)
		for _, c := range d.Controls(st.Zone) {
			assigned[c] = true
		}

		var blockedBy []string
		for _, rule := range scenario.BlockingRules {
			if assigned[rule.Control] && rule.Scope.Covers(st.Zone) {
				blockedBy = append(blockedBy, rule.Control)
			}
		}

		result.Stages = append(result.Stages, StageVerdict{
			Index:     i,
			Zone:      st.Zone,
			Phase:     st.Phase,
			Technique: st.Technique,
			Blocked:   len(blockedBy) > 0,
			BlockedBy: blockedBy,
		})
	}

	for _, rule := range scenario.BlockingRules {
		if d.HasControl(rule.Control) {
			result.ControlsInPlace++
		}
	}
	if result.ControlsRecommended > 0 {
		result.ProtectionPct = int(math.Round(
			100 * float64(result.ControlsInPlace) / float64(result.ControlsRecommended)))
	}

	return result, nil
}
