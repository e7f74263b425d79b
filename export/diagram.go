package export

import (
	"fmt"
	"strings"

	"github.com/zero-day-ai/archstudio/catalog"
	"github.com/zero-day-ai/archstudio/design"
)

// Diagram renders the design's zones as an ASCII stack in selection order,
// with a trust-level bar and a control summary per zone. Returns a
// placeholder line when the design has no zones.
func Diagram(d *design.State, cat *catalog.Catalog) string {
	zones := d.SelectedZones()
	if len(zones) == 0 {
		return "No zones defined yet."
	}

	maxTrust := cat.MaxTrustLevel()
	lines := []string{
		"┌───────────────────────────────────────────────────────┐",
		"│         SECURITY ARCHITECTURE  —  ZONE DIAGRAM        │",
		"└───────────────────────────────────────────────────────┘",
		"",
	}

	for i, z := range zones {
		ctrls := d.Controls(z)
		summary := strings.Join(truncateList(ctrls, 3), " | ")
		if len(ctrls) > 3 {
			summary += fmt.Sprintf("  +%d more", len(ctrls)-3)
		}
		if len(ctrls) == 0 {
			summary = "NO CONTROLS ASSIGNED"
		}
		if r := []rune(summary); len(r) > 52 {
			summary = string(r[:52])
		}

		trust := cat.TrustLevel(z)
		bar := strings.Repeat("█", trust+1) + strings.Repeat("░", maxTrust-trust)
		// Bars wider than the box (trust levels above 41) get no padding.
		pad := 41 - maxTrust
		if pad < 0 {
			pad = 0
		}

		lines = append(lines,
			"╔══════════════════════════════════════════════════════╗",
			fmt.Sprintf("║  %-52s║", z),
			fmt.Sprintf("║     Trust [%s]%s║", bar, strings.Repeat(" ", pad)),
			fmt.Sprintf("║     %-49s║", summary),
			"╚══════════════════════════════════════════════════════╝",
		)
		if i < len(zones)-1 {
			lines = append(lines, "                │   ▼  (firewall / boundary control)")
		}
	}

	return strings.Join(lines, "\n")
}

func truncateList(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
