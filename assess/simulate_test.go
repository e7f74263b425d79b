package assess

import (
	"errors"
	"testing"

	"github.com/zero-day-ai/archstudio/catalog"
	"github.com/zero-day-ai/archstudio/design"
)

func externalAttacker(t *testing.T, cat *catalog.Catalog) catalog.AttackScenario {
	t.Helper()
	sc, ok := cat.AttackScenario("External Attacker — Web App Breach")
	if !ok {
		t.Fatal("builtin external attacker scenario missing")
	}
	return sc
}

func TestSimulate_EmptyDesign(t *testing.T) {
	cat := catalog.Default()
	sc := externalAttacker(t, cat)

	result, err := Simulate(design.Default(), cat, sc)
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}

	if len(result.Stages) != len(sc.Stages) {
		t.Fatalf("got %d stage verdicts, want %d", len(result.Stages), len(sc.Stages))
	}
	for _, st := range result.Stages {
		if st.Blocked {
			t.Errorf("stage %d blocked with no controls assigned", st.Index)
		}
		if len(st.BlockedBy) != 0 {
			t.Errorf("stage %d has BlockedBy %v with no controls assigned", st.Index, st.BlockedBy)
		}
	}
	if result.ControlsInPlace != 0 {
		t.Errorf("ControlsInPlace = %d, want 0", result.ControlsInPlace)
	}
	if result.ProtectionPct != 0 {
		t.Errorf("ProtectionPct = %d, want 0", result.ProtectionPct)
	}
}

func TestSimulate_StageBlocking(t *testing.T) {
	cat := catalog.Default()
	sc := externalAttacker(t, cat)

	d := design.Default()
	d.AssignControl(catalog.ZoneDMZ, catalog.ControlWAF)

	result, err := Simulate(d, cat, sc)
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}

	// Only the DMZ stage is blocked; the WAF's blocking scope is the DMZ.
	for _, st := range result.Stages {
		blocked := st.Zone == catalog.ZoneDMZ
		if st.Blocked != blocked {
			t.Errorf("stage %d (%s) Blocked = %v, want %v", st.Index, st.Zone, st.Blocked, blocked)
		}
		if blocked {
			if len(st.BlockedBy) != 1 || st.BlockedBy[0] != catalog.ControlWAF {
				t.Errorf("stage %d BlockedBy = %v, want [%s]", st.Index, st.BlockedBy, catalog.ControlWAF)
			}
		}
	}

	// 1 of 5 recommended controls in place: 20%.
	if result.ControlsInPlace != 1 || result.ControlsRecommended != 5 {
		t.Errorf("ControlsInPlace/Recommended = %d/%d, want 1/5",
			result.ControlsInPlace, result.ControlsRecommended)
	}
	if result.ProtectionPct != 20 {
		t.Errorf("ProtectionPct = %d, want 20", result.ProtectionPct)
	}
}

func TestSimulate_BlockedByOrder(t *testing.T) {
	cat := catalog.Default()
	sc := externalAttacker(t, cat)

	// Assigned in reverse of the scenario's blocking-rule order; BlockedBy
	// must still follow declaration order.
	d := design.Default()
	d.AssignControl(catalog.ZoneApplication, catalog.ControlMicrosegmentation)
	d.AssignControl(catalog.ZoneApplication, catalog.ControlInputValidation)

	result, err := Simulate(d, cat, sc)
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}

	var appStage *StageVerdict
	for i := range result.Stages {
		if result.Stages[i].Zone == catalog.ZoneApplication {
			appStage = &result.Stages[i]
			break
		}
	}
	if appStage == nil {
		t.Fatal("no Application Zone stage in verdicts")
	}
	want := []string{catalog.ControlInputValidation, catalog.ControlMicrosegmentation}
	if len(appStage.BlockedBy) != len(want) {
		t.Fatalf("BlockedBy = %v, want %v", appStage.BlockedBy, want)
	}
	for i := range want {
		if appStage.BlockedBy[i] != want[i] {
			t.Errorf("BlockedBy[%d] = %q, want %q", i, appStage.BlockedBy[i], want[i])
		}
	}
}

func TestSimulate_AggregateVsPerStage(t *testing.T) {
	cat := catalog.Default()
	sc := externalAttacker(t, cat)

	// Every recommended control bought, but parked in a zone the kill chain
	// never exercises them in. The aggregate says 100% protected while
	// every stage stays vulnerable. The divergence is the point.
	d := design.Default()
	d.SelectZone(catalog.ZoneManagement)
	for _, rule := range sc.BlockingRules {
		if err := d.AssignControl(catalog.ZoneManagement, rule.Control); err != nil {
			t.Fatalf("AssignControl(%q) error: %v", rule.Control, err)
		}
	}

	result, err := Simulate(d, cat, sc)
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}

	if result.ProtectionPct != 100 {
		t.Errorf("ProtectionPct = %d, want 100", result.ProtectionPct)
	}
	for _, st := range result.Stages {
		if st.Blocked {
			t.Errorf("stage %d (%s) blocked; controls are assigned in the wrong zone", st.Index, st.Zone)
		}
	}
}

func TestSimulate_AllZoneScope(t *testing.T) {
	cat := catalog.Default()
	sc := externalAttacker(t, cat)

	// Encryption in transit blocks in every zone, but only where assigned.
	d := design.Default()
	d.AssignControl(catalog.ZoneInternet, catalog.ControlEncryptionInTransit)

	result, err := Simulate(d, cat, sc)
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}

	for _, st := range result.Stages {
		blocked := st.Zone == catalog.ZoneInternet
		if st.Blocked != blocked {
			t.Errorf("stage %d (%s) Blocked = %v, want %v", st.Index, st.Zone, st.Blocked, blocked)
		}
	}
}

func TestSimulate_UnknownStageZone(t *testing.T) {
	cat := catalog.Default()

	sc := catalog.AttackScenario{
		Name: "Vendor Pivot",
		Goal: "Reach internal systems via a supplier",
		Stages: []catalog.Stage{
			{Zone: "Vendor Zone", Phase: "Initial Access", Technique: "Compromise supplier VPN"},
		},
	}

	_, err := Simulate(design.Default(), cat, sc)
	if err == nil {
		t.Fatal("expected error for unknown stage zone")
	}
	var ure *UnknownReferenceError
	if !errors.As(err, &ure) {
		t.Fatalf("expected UnknownReferenceError, got %T", err)
	}
	if ure.Scenario != "Vendor Pivot" || ure.Zone != "Vendor Zone" {
		t.Errorf("unexpected error fields: %+v", ure)
	}
}

func TestSimulate_UnknownScopeZone(t *testing.T) {
	cat := catalog.Default()

	sc := catalog.AttackScenario{
		Name: "Misdeclared Rule",
		Goal: "n/a",
		Stages: []catalog.Stage{
			{Zone: catalog.ZoneDMZ, Phase: "Initial Access", Technique: "n/a"},
		},
		BlockingRules: []catalog.BlockingRule{
			{Control: catalog.ControlWAF, Scope: catalog.ZoneScope("Partner Zone")},
		},
	}

	_, err := Simulate(design.Default(), cat, sc)
	var ure *UnknownReferenceError
	if !errors.As(err, &ure) {
		t.Fatalf("expected UnknownReferenceError, got %v", err)
	}
	if ure.Zone != "Partner Zone" {
		t.Errorf("ure.Zone = %q, want %q", ure.Zone, "Partner Zone")
	}
}

func TestSimulate_NoBlockingRules(t *testing.T) {
	cat := catalog.Default()

	sc := catalog.AttackScenario{
		Name: "Undefended Path",
		Goal: "n/a",
		Stages: []catalog.Stage{
			{Zone: catalog.ZoneInternet, Phase: "Recon", Technique: "n/a"},
		},
	}

	result, err := Simulate(design.Default(), cat, sc)
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}
	if result.ProtectionPct != 0 || result.ControlsRecommended != 0 {
		t.Errorf("expected zero protection for a scenario with no blocking rules, got %+v", result)
	}
}
