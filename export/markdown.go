package export

import (
	"fmt"
	"strings"

	"github.com/zero-day-ai/archstudio/assess"
	"github.com/zero-day-ai/archstudio/catalog"
	"github.com/zero-day-ai/archstudio/design"
)

// Markdown renders the report as a security architecture design document:
// overview, zone diagram, per-zone detail, control inventory, data flows
// with trust-jump warnings, gap analysis, and attack simulation summaries.
func Markdown(r *Report, cat *catalog.Catalog) string {
	var b strings.Builder
	d := design.FromSnapshot(r.Design)

	fmt.Fprintf(&b, "# SECURITY ARCHITECTURE DESIGN DOCUMENT\n")
	if r.Design.Scenario != "" {
		fmt.Fprintf(&b, "**Scenario:** %s\n", r.Design.Scenario)
	}
	fmt.Fprintf(&b, "**Generated:** %s\n", r.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "**Coverage Score:** %d/100\n\n---\n\n", r.CoverageScore)

	b.WriteString("## 1. SYSTEM OVERVIEW\n")
	if brief := r.Brief; brief != nil {
		fmt.Fprintf(&b, "%s\n\n", orDash(brief.Description))
		b.WriteString("| Field | Detail |\n|-------|--------|\n")
		fmt.Fprintf(&b, "| Data in Scope | %s |\n", orDash(brief.Data))
		fmt.Fprintf(&b, "| Users | %s |\n", orDash(brief.Users))
		fmt.Fprintf(&b, "| Platform | %s |\n", orDash(brief.Platform))
		fmt.Fprintf(&b, "| Compliance | %s |\n", orDash(strings.Join(brief.Compliance, ", ")))
		fmt.Fprintf(&b, "| Crown Jewel | %s |\n", orDash(brief.CrownJewel))
	} else {
		b.WriteString("—\n")
	}
	b.WriteString("\n---\n\n")

	b.WriteString("## 2. ARCHITECTURE DIAGRAM\n```\n")
	b.WriteString(Diagram(d, cat))
	b.WriteString("\n```\n\n---\n\n")

	b.WriteString("## 3. SECURITY ZONES\n")
	maxTrust := cat.MaxTrustLevel()
	for _, name := range r.Design.SelectedZones {
		fmt.Fprintf(&b, "\n### %s\n", name)
		if z, ok := cat.Zone(name); ok {
			fmt.Fprintf(&b, "- **Trust Level:** %d/%d\n", z.TrustLevel, maxTrust)
			fmt.Fprintf(&b, "- **Purpose:** %s\n", z.Description)
		}
		ctrls := r.Design.ControlsByZone[name]
		if len(ctrls) == 0 {
			b.WriteString("- **Controls Applied:** None assigned\n")
		} else {
			fmt.Fprintf(&b, "- **Controls Applied:** %s\n", strings.Join(ctrls, ", "))
		}
	}
	b.WriteString("\n---\n\n")

	b.WriteString("## 4. SECURITY CONTROLS\n")
	writeControlInventory(&b, d, cat)
	b.WriteString("\n---\n\n")

	b.WriteString("## 5. DATA FLOWS\n")
	if len(r.Design.DataFlows) == 0 {
		b.WriteString("No data flows documented.\n")
	} else {
		b.WriteString("| Source | Destination | Protocol | Description | Trust Jump |\n")
		b.WriteString("|--------|-------------|----------|-------------|------------|\n")
		for _, f := range r.Design.DataFlows {
			jump, exceeded := assess.CheckTrustJump(f.Source, f.Destination, cat)
			note := fmt.Sprintf("%d", jump)
			if exceeded {
				note = fmt.Sprintf("%d ⚠ add proxy/gateway + logging", jump)
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				f.Source, f.Destination, orDash(f.Protocol), orDash(f.Description), note)
		}
	}
	b.WriteString("\n---\n\n")

	b.WriteString("## 6. GAP ANALYSIS\n")
	if len(r.Findings) == 0 {
		b.WriteString("No gaps identified.\n")
	} else {
		b.WriteString("| Severity | Issue | Remediation |\n|----------|-------|-------------|\n")
		for _, g := range r.Findings {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", g.Severity.Label(), g.Issue, g.Remediation)
		}
	}

	if len(r.Simulations) > 0 {
		b.WriteString("\n---\n\n## 7. ATTACK SIMULATIONS\n")
		for _, sim := range r.Simulations {
			fmt.Fprintf(&b, "\n### %s\n", sim.Scenario)
			fmt.Fprintf(&b, "**Goal:** %s\n", sim.Goal)
			fmt.Fprintf(&b, "**Protection:** %d%% (%d/%d recommended controls in place)\n\n",
				sim.ProtectionPct, sim.ControlsInPlace, sim.ControlsRecommended)
			for _, st := range sim.Stages {
				status := "VULNERABLE ✗"
				detail := "No blocking control in your current design for this zone"
				if st.Blocked {
					status = "BLOCKED ✓"
					detail = "Blocked by: " + strings.Join(st.BlockedBy, ", ")
				}
				fmt.Fprintf(&b, "- **Stage %d — %s — %s:** %s. %s\n",
					st.Index+1, st.Zone, st.Phase, status, detail)
			}
		}
	}

	if r.Design.Notes != "" {
		fmt.Fprintf(&b, "\n---\n\n## NOTES\n%s\n", r.Design.Notes)
	}

	return b.String()
}

// writeControlInventory lists the assigned controls grouped by catalog
// category, with unrecognized names collected at the end.
func writeControlInventory(b *strings.Builder, d *design.State, cat *catalog.Catalog) {
	flat := d.FlatControls()
	if len(flat) == 0 {
		b.WriteString("No controls assigned.\n")
		return
	}

	assigned := make(map[string]bool, len(flat))
	for _, c := range flat {
		assigned[c] = true
	}

	for _, category := range cat.Categories() {
		var rows []catalog.Control
		for _, ctrl := range cat.ControlsInCategory(category) {
			if assigned[ctrl.Name] {
				rows = append(rows, ctrl)
			}
		}
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintf(b, "\n### %s\n", category)
		for _, ctrl := range rows {
			fmt.Fprintf(b, "- **%s** (effort: %s) — blocks: %s\n",
				ctrl.Name, ctrl.Effort, strings.Join(ctrl.Blocks, ", "))
		}
	}

	var unknown []string
	for _, c := range flat {
		if !cat.HasControl(c) {
			unknown = append(unknown, c)
		}
	}
	if len(unknown) > 0 {
		b.WriteString("\n### Other\n")
		for _, c := range unknown {
			fmt.Fprintf(b, "- %s (not in catalog)\n", c)
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
