package export

import (
	"encoding/json"
	"time"

	"github.com/zero-day-ai/archstudio/assess"
	"github.com/zero-day-ai/archstudio/catalog"
	"github.com/zero-day-ai/archstudio/design"
)

// Report bundles a design snapshot with every evaluator output, ready to be
// serialized for download. All fields are plain data.
type Report struct {
	// GeneratedAt is when the report was built.
	GeneratedAt time.Time `json:"generated_at"`

	// Brief is the engagement brief the design targets, when known.
	Brief *catalog.DesignScenario `json:"brief,omitempty"`

	// Design is the evaluated design snapshot.
	Design design.Snapshot `json:"design"`

	// CoverageScore is the 0..100 coverage score.
	CoverageScore int `json:"coverage_score"`

	// Findings are the gap analyzer's findings in rule-table order.
	Findings []assess.Finding `json:"findings"`

	// Simulations holds one result per catalog attack scenario.
	Simulations []assess.SimulationResult `json:"simulations,omitempty"`
}

// Build evaluates a design against a catalog and assembles the full report:
// coverage score, gap findings, and a simulation of every attack scenario
// the catalog defines. Returns the simulator's UnknownReferenceError if a
// scenario references a zone missing from the catalog.
func Build(d *design.State, cat *catalog.Catalog) (*Report, error) {
	r := &Report{
		GeneratedAt:   time.Now().UTC(),
		Design:        d.Snapshot(),
		CoverageScore: assess.Score(d, cat),
		Findings:      assess.Analyze(d, cat),
	}

	for _, scenario := range cat.AttackScenarios() {
		result, err := assess.Simulate(d, cat, scenario)
		if err != nil {
			return nil, err
		}
		r.Simulations = append(r.Simulations, *result)
	}

	return r, nil
}

// JSON serializes the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
