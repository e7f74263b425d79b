package assess

import (
	"github.com/zero-day-ai/archstudio/catalog"
	"github.com/zero-day-ai/archstudio/design"
)

// Finding is one architectural gap: a severity, what is wrong, and what to
// do about it.
type Finding struct {
	// Severity classifies how badly the gap exposes the design.
	Severity Severity `json:"severity"`

	// Issue states what is missing and why it matters.
	Issue string `json:"issue"`

	// Remediation states the concrete fix.
	Remediation string `json:"remediation"`
}

// RuleInput is the view of a design a gap rule predicate evaluates against.
type RuleInput struct {
	// Flat is the set of control names assigned anywhere in the design.
	Flat map[string]bool

	// Zones is the set of selected zone names.
	Zones map[string]bool

	// FlowCount is the number of documented data flows.
	FlowCount int
}

// Rule is one entry of the gap rule table: a predicate plus the finding it
// produces when triggered.
//
// The rule table is ordered data, not a conditional chain. Analyze walks it
// top to bottom and emits findings in table order, so adding a rule at the
// end never reorders the findings existing rules produce.
type Rule struct {
	// Severity of the finding the rule produces.
	Severity Severity

	// Issue text of the finding.
	Issue string

	// Remediation text of the finding.
	Remediation string

	// Triggered reports whether the rule fires for the given design view.
	Triggered func(in RuleInput) bool
}

// missingControl returns a predicate that fires when the named control is
// assigned nowhere in the design.
func missingControl(control string) func(RuleInput) bool {
	return func(in RuleInput) bool {
		return !in.Flat[control]
	}
}

// missingControlWithZone returns a predicate that fires when the named zone
// is selected but the named control is assigned nowhere in the design.
func missingControlWithZone(control, zone string) func(RuleInput) bool {
	return func(in RuleInput) bool {
		return in.Zones[zone] && !in.Flat[control]
	}
}

// noFlows fires when the design documents no data flows.
func noFlows(in RuleInput) bool {
	return in.FlowCount == 0
}

// DefaultRules returns the fixed gap rule table. The table is append-only:
// rule order is part of the analyzer's contract and tests assert the
// literal output order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Severity:    SeverityCritical,
			Issue:       "No MFA anywhere. All accounts are one stolen password from compromise.",
			Remediation: "Add MFA to every user-facing auth point. Start with privileged accounts.",
			Triggered:   missingControl(catalog.ControlMFA),
		},
		{
			Severity:    SeverityCritical,
			Issue:       "Data Zone present but no encryption at rest. Stolen disk = stolen data.",
			Remediation: "Enable AES-256 encryption at rest on all Data Zone storage. Use KMS/HSM for keys.",
			Triggered:   missingControlWithZone(catalog.ControlEncryptionAtRest, catalog.ZoneData),
		},
		{
			Severity:    SeverityCritical,
			Issue:       "No SIEM. You're architecturally blind — breaches go undetected for months.",
			Remediation: "Deploy SIEM. Aggregate logs from every zone boundary and critical system.",
			Triggered:   missingControl(catalog.ControlSIEM),
		},
		{
			Severity:    SeverityHigh,
			Issue:       "DMZ without WAF. OWASP Top 10 web attacks (SQLi, XSS) are completely unmitigated.",
			Remediation: "Place WAF at DMZ ingress, in front of all public-facing services.",
			Triggered:   missingControlWithZone(catalog.ControlWAF, catalog.ZoneDMZ),
		},
		{
			Severity:    SeverityHigh,
			Issue:       "Management Zone without PAM. Privileged access is unrecorded and uncontrolled.",
			Remediation: "Implement PAM with session recording for all admin access to management-zone systems.",
			Triggered:   missingControlWithZone(catalog.ControlPAM, catalog.ZoneManagement),
		},
		{
			Severity:    SeverityMedium,
			Issue:       "Application Zone without micro-segmentation. Compromised app server reaches all peers.",
			Remediation: "Implement micro-segmentation to limit east-west movement within the Application Zone.",
			Triggered:   missingControlWithZone(catalog.ControlMicrosegmentation, catalog.ZoneApplication),
		},
		{
			Severity:    SeverityMedium,
			Issue:       "No TLS in transit. Traffic between zones can be intercepted.",
			Remediation: "Enforce TLS 1.3 on all inter-zone connections. Use mTLS for service-to-service.",
			Triggered:   missingControl(catalog.ControlEncryptionInTransit),
		},
		{
			Severity:    SeverityInfo,
			Issue:       "No data flows documented. Unknown flows = unknown attack paths.",
			Remediation: "Document all data flows, especially those crossing zone boundaries.",
			Triggered:   noFlows,
		},
	}
}

// Analyze runs the default gap rule table against a design and returns the
// triggered findings in table order. The catalog parameter is part of the
// evaluator contract; the default rules only consult the design itself.
func Analyze(d *design.State, cat *catalog.Catalog) []Finding {
	return AnalyzeWith(d, cat, DefaultRules())
}

// AnalyzeWith runs a custom rule table against a design. Findings appear in
// the same order as their rules; untriggered rules produce nothing.
func AnalyzeWith(d *design.State, _ *catalog.Catalog, rules []Rule) []Finding {
	in := RuleInput{
		Flat:      make(map[string]bool),
		Zones:     make(map[string]bool),
		FlowCount: len(d.Flows()),
	}
	for _, c := range d.FlatControls() {
		in.Flat[c] = true
	}
	for _, z := range d.SelectedZones() {
		in.Zones[z] = true
	}

	var findings []Finding
	for _, r := range rules {
		if r.Triggered != nil && r.Triggered(in) {
			findings = append(findings, Finding{
				Severity:    r.Severity,
				Issue:       r.Issue,
				Remediation: r.Remediation,
			})
		}
	}
	return findings
}
