package export

import (
	"strings"
	"testing"

	"github.com/zero-day-ai/archstudio/catalog"
	"github.com/zero-day-ai/archstudio/design"
)

func TestDiagram_NoZones(t *testing.T) {
	got := Diagram(design.New(), catalog.Default())
	if got != "No zones defined yet." {
		t.Errorf("Diagram(empty) = %q", got)
	}
}

func TestDiagram_ZonesAndControls(t *testing.T) {
	cat := catalog.Default()
	d := design.Default()
	d.AssignControl(catalog.ZoneDMZ, catalog.ControlWAF)

	got := Diagram(d, cat)

	for _, zone := range d.SelectedZones() {
		if !strings.Contains(got, zone) {
			t.Errorf("diagram missing zone %q", zone)
		}
	}
	if !strings.Contains(got, catalog.ControlWAF) {
		t.Error("diagram missing assigned control")
	}
	if !strings.Contains(got, "NO CONTROLS ASSIGNED") {
		t.Error("diagram should flag zones without controls")
	}

	// Zones in selection order: Internet before Data.
	if strings.Index(got, catalog.ZoneInternet) > strings.Index(got, catalog.ZoneData) {
		t.Error("zones not rendered in selection order")
	}
}

func TestDiagram_WideTrustRange(t *testing.T) {
	cat, err := catalog.New(
		[]catalog.Zone{{Name: "Edge", TrustLevel: 0}, {Name: "Vault", TrustLevel: 42}},
		[]catalog.Control{{Name: "Firewall", Category: "Network"}},
		nil,
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	d := design.New()
	d.SelectZone("Vault")

	got := Diagram(d, cat)

	if !strings.Contains(got, "["+strings.Repeat("█", 43)+"]") {
		t.Errorf("expected full 43-cell bar, got:\n%s", got)
	}
}

func TestDiagram_ControlOverflow(t *testing.T) {
	cat := catalog.Default()
	d := design.New()
	d.SelectZone(catalog.ZoneData)
	for _, c := range []string{"A", "B", "C", "D", "E"} {
		d.AssignControl(catalog.ZoneData, c)
	}

	got := Diagram(d, cat)
	if !strings.Contains(got, "+2 more") {
		t.Errorf("expected overflow marker, got:\n%s", got)
	}
}

func TestDiagram_TrustBar(t *testing.T) {
	cat := catalog.Default()
	d := design.New()
	d.SelectZone(catalog.ZoneInternet)
	d.SelectZone(catalog.ZoneManagement)

	got := Diagram(d, cat)

	// Internet is trust 0 of 4: one filled cell. Management is 4 of 4:
	// all filled.
	if !strings.Contains(got, "[█░░░░]") {
		t.Errorf("expected minimum-trust bar, got:\n%s", got)
	}
	if !strings.Contains(got, "[█████]") {
		t.Errorf("expected maximum-trust bar, got:\n%s", got)
	}
}
