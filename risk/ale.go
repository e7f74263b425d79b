package risk

import (
	"errors"
	"math"
)

// ErrInvalidReduction is returned when a risk reduction factor falls
// outside [0, 1].
var ErrInvalidReduction = errors.New("risk: reduction must be between 0 and 1")

// Exposure quantifies one risk in FAIR terms: how often a loss event occurs
// and what a single occurrence costs.
type Exposure struct {
	// LossEventFrequency is the expected number of loss events per year.
	// A probability such as 0.15 reads as one event every ~6.7 years.
	LossEventFrequency float64 `json:"loss_event_frequency"`

	// SingleLossExpectancy is the cost of one loss event, in the caller's
	// currency unit.
	SingleLossExpectancy float64 `json:"single_loss_expectancy"`
}

// AnnualLossExpectancy returns the expected yearly cost of the exposure:
// loss event frequency times single loss expectancy.
func (e Exposure) AnnualLossExpectancy() float64 {
	return e.LossEventFrequency * e.SingleLossExpectancy
}

// Residual returns the annual loss expectancy remaining after a control
// reduces the risk by the given factor (0 = no effect, 1 = eliminated).
// Returns ErrInvalidReduction for factors outside [0, 1].
func (e Exposure) Residual(reduction float64) (float64, error) {
	if reduction < 0 || reduction > 1 || math.IsNaN(reduction) {
		return 0, ErrInvalidReduction
	}
	return e.AnnualLossExpectancy() * (1 - reduction), nil
}

// Investment describes a proposed control spend against an exposure.
type Investment struct {
	// AnnualCost is the yearly cost of implementing and operating the
	// control, in the same currency unit as the exposure.
	AnnualCost float64 `json:"annual_cost"`

	// Reduction is the fraction of the exposure the control removes,
	// between 0 and 1.
	Reduction float64 `json:"reduction"`
}

// Savings returns the yearly loss avoided by the investment.
// Returns ErrInvalidReduction for reduction factors outside [0, 1].
func (e Exposure) Savings(inv Investment) (float64, error) {
	residual, err := e.Residual(inv.Reduction)
	if err != nil {
		return 0, err
	}
	return e.AnnualLossExpectancy() - residual, nil
}

// ROI returns the return on the investment as a percentage: avoided loss
// minus cost, over cost. A positive value means the control pays for
// itself. Returns 0 for a zero-cost investment rather than dividing by
// zero.
func (e Exposure) ROI(inv Investment) (float64, error) {
	savings, err := e.Savings(inv)
	if err != nil {
		return 0, err
	}
	if inv.AnnualCost == 0 {
		return 0, nil
	}
	return (savings - inv.AnnualCost) / inv.AnnualCost * 100, nil
}

// Band classifies an annual loss expectancy against caution and danger
// thresholds, mirroring the green/amber/red gauge presentation.
type Band string

const (
	// BandLow indicates the loss expectancy is below the caution
	// threshold.
	BandLow Band = "low"

	// BandModerate indicates the loss expectancy is between the caution
	// and danger thresholds.
	BandModerate Band = "moderate"

	// BandSevere indicates the loss expectancy is at or above the danger
	// threshold.
	BandSevere Band = "severe"
)

// Classify places an annual loss expectancy into a band given caution and
// danger thresholds. Values at a threshold fall into the higher band.
func Classify(ale, caution, danger float64) Band {
	switch {
	case ale >= danger:
		return BandSevere
	case ale >= caution:
		return BandModerate
	default:
		return BandLow
	}
}
