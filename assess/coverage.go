package assess

import (
	"math"

	"github.com/zero-day-ai/archstudio/catalog"
	"github.com/zero-day-ai/archstudio/design"
)

// countSaturation is the number of distinct assigned controls at which the
// count half of the coverage score maxes out.
const countSaturation = 15

// Score computes the 0..100 coverage score of a design against a catalog.
//
// The score is the sum of two halves:
//
//   - Category breadth: 50 points scaled by how many catalog categories
//     have at least one member assigned somewhere in the design.
//   - Control count: 50 points scaled by the number of distinct assigned
//     controls, saturating at 15.
//
// Control names that do not exist in the catalog count toward the control
// count but cannot hit a category. An empty design scores 0. The function
// is pure and independent of map iteration order.
func Score(d *design.State, cat *catalog.Catalog) int {
	flat := d.FlatControls()
	if len(flat) == 0 {
		return 0
	}

	hit := make(map[string]bool)
	for _, name := range flat {
		if ctrl, ok := cat.Control(name); ok {
			hit[ctrl.Category] = true
		}
	}

	categories := cat.Categories()
	var categoryScore float64
	if len(categories) > 0 {
		categoryScore = 50 * float64(len(hit)) / float64(len(categories))
	}

	countScore := 50 * float64(len(flat)) / countSaturation
	if countScore > 50 {
		countScore = 50
	}

	return int(math.Round(categoryScore + countScore))
}
