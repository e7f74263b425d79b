package design

import (
	"encoding/json"
	"testing"

	"github.com/zero-day-ai/archstudio/catalog"
)

func TestSelectZone(t *testing.T) {
	s := New()

	if err := s.SelectZone("DMZ (Perimeter Zone)"); err != nil {
		t.Fatalf("SelectZone returned error: %v", err)
	}
	if !s.IsSelected("DMZ (Perimeter Zone)") {
		t.Error("expected zone to be selected")
	}
	if got := s.Controls("DMZ (Perimeter Zone)"); len(got) != 0 {
		t.Errorf("expected empty control list, got %v", got)
	}

	// Re-selecting is a no-op, not a duplicate.
	if err := s.SelectZone("DMZ (Perimeter Zone)"); err != nil {
		t.Fatalf("re-select returned error: %v", err)
	}
	if got := s.SelectedZones(); len(got) != 1 {
		t.Errorf("expected 1 selected zone, got %v", got)
	}

	err := s.SelectZone("")
	if err == nil {
		t.Fatal("expected error for empty zone name")
	}
	if !IsValidationError(err) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestDeselectZone(t *testing.T) {
	s := New()
	s.SelectZone("Application Zone")
	s.AssignControl("Application Zone", "SAST/DAST Scanning")

	s.DeselectZone("Application Zone")

	if s.IsSelected("Application Zone") {
		t.Error("expected zone to be deselected")
	}
	if s.HasControl("SAST/DAST Scanning") {
		t.Error("expected control assignments to be dropped with the zone")
	}

	// Deselecting an unselected zone is a no-op.
	s.DeselectZone("Data Zone")
}

func TestSetZones(t *testing.T) {
	s := New()
	s.SelectZone("Internet Zone")
	s.SelectZone("Data Zone")
	s.AssignControl("Data Zone", "Encryption at Rest (AES-256)")

	if err := s.SetZones([]string{"Data Zone", "Management Zone", "Data Zone"}); err != nil {
		t.Fatalf("SetZones returned error: %v", err)
	}

	got := s.SelectedZones()
	want := []string{"Data Zone", "Management Zone"}
	if len(got) != len(want) {
		t.Fatalf("SelectedZones() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SelectedZones()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Kept zones keep their controls; dropped zones lose theirs.
	if !s.HasControl("Encryption at Rest (AES-256)") {
		t.Error("expected kept zone to retain its controls")
	}
	if s.IsSelected("Internet Zone") {
		t.Error("expected dropped zone to be deselected")
	}

	if err := s.SetZones([]string{"Data Zone", ""}); err == nil {
		t.Error("expected error for empty zone name")
	}
}

func TestAssignControl(t *testing.T) {
	s := New()
	s.SelectZone("Data Zone")

	if err := s.AssignControl("Data Zone", "Database Activity Monitoring"); err != nil {
		t.Fatalf("AssignControl returned error: %v", err)
	}
	// Duplicate assignment is a no-op.
	if err := s.AssignControl("Data Zone", "Database Activity Monitoring"); err != nil {
		t.Fatalf("duplicate assign returned error: %v", err)
	}
	if got := s.Controls("Data Zone"); len(got) != 1 {
		t.Errorf("expected 1 control, got %v", got)
	}

	if err := s.AssignControl("Data Zone", ""); err == nil {
		t.Error("expected error for empty control name")
	}
	err := s.AssignControl("Management Zone", "PAM (Privileged Access Management)")
	if err == nil {
		t.Fatal("expected error for unselected zone")
	}
	if !IsValidationError(err) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestUnassignControl(t *testing.T) {
	s := New()
	s.SelectZone("DMZ (Perimeter Zone)")
	s.AssignControl("DMZ (Perimeter Zone)", "WAF (Web Application Firewall)")

	if err := s.UnassignControl("DMZ (Perimeter Zone)", "WAF (Web Application Firewall)"); err != nil {
		t.Fatalf("UnassignControl returned error: %v", err)
	}
	if s.HasControl("WAF (Web Application Firewall)") {
		t.Error("expected control to be removed")
	}

	// Removing an absent control is a no-op.
	if err := s.UnassignControl("DMZ (Perimeter Zone)", "WAF (Web Application Firewall)"); err != nil {
		t.Errorf("removing absent control returned error: %v", err)
	}
	if err := s.UnassignControl("Data Zone", "SIEM"); err == nil {
		t.Error("expected error for unselected zone")
	}
}

func TestSetControls(t *testing.T) {
	s := New()
	s.SelectZone("Application Zone")

	err := s.SetControls("Application Zone", []string{"SIEM", "EDR/XDR", "SIEM"})
	if err != nil {
		t.Fatalf("SetControls returned error: %v", err)
	}
	got := s.Controls("Application Zone")
	if len(got) != 2 || got[0] != "SIEM" || got[1] != "EDR/XDR" {
		t.Errorf("Controls() = %v, want [SIEM EDR/XDR]", got)
	}

	if err := s.SetControls("Application Zone", []string{"SIEM", ""}); err == nil {
		t.Error("expected error for empty control name")
	}
	if err := s.SetControls("Data Zone", []string{"SIEM"}); err == nil {
		t.Error("expected error for unselected zone")
	}
}

func TestFlatControls(t *testing.T) {
	s := New()
	s.SelectZone("Internet Zone")
	s.SelectZone("DMZ (Perimeter Zone)")
	s.AssignControl("Internet Zone", "DDoS Protection")
	s.AssignControl("DMZ (Perimeter Zone)", "SIEM")
	s.AssignControl("DMZ (Perimeter Zone)", "DDoS Protection")

	got := s.FlatControls()
	want := []string{"DDoS Protection", "SIEM"}
	if len(got) != len(want) {
		t.Fatalf("FlatControls() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FlatControls()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAddFlow(t *testing.T) {
	s := New()

	f, err := s.AddFlow("Internet Zone", "DMZ (Perimeter Zone)", "HTTPS", "User traffic")
	if err != nil {
		t.Fatalf("AddFlow returned error: %v", err)
	}
	if f.ID == "" {
		t.Error("expected a generated flow ID")
	}
	if len(s.Flows()) != 1 {
		t.Errorf("expected 1 flow, got %d", len(s.Flows()))
	}

	tests := []struct {
		name     string
		src, dst string
	}{
		{"same zone", "Data Zone", "Data Zone"},
		{"empty source", "", "Data Zone"},
		{"empty destination", "Data Zone", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddFlow(tt.src, tt.dst, "TCP", "")
			if err == nil {
				t.Fatal("expected error")
			}
			if !IsValidationError(err) {
				t.Errorf("expected ValidationError, got %T", err)
			}
		})
	}
	if len(s.Flows()) != 1 {
		t.Errorf("rejected flows must not be appended, got %d flows", len(s.Flows()))
	}
}

func TestRemoveFlow(t *testing.T) {
	s := New()
	f, _ := s.AddFlow("Application Zone", "Data Zone", "SQL/TLS", "Queries")

	if err := s.RemoveFlow(f.ID); err != nil {
		t.Fatalf("RemoveFlow returned error: %v", err)
	}
	if len(s.Flows()) != 0 {
		t.Error("expected flow to be removed")
	}
	if err := s.RemoveFlow(f.ID); err != ErrFlowNotFound {
		t.Errorf("expected ErrFlowNotFound, got %v", err)
	}
}

func TestDefault(t *testing.T) {
	s := Default()

	want := []string{
		catalog.ZoneInternet, catalog.ZoneDMZ, catalog.ZoneApplication, catalog.ZoneData,
	}
	got := s.SelectedZones()
	if len(got) != len(want) {
		t.Fatalf("SelectedZones() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SelectedZones()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if len(s.FlatControls()) != 0 {
		t.Error("default design should start with no controls")
	}
}

func TestClone(t *testing.T) {
	s := Default()
	s.AssignControl(catalog.ZoneData, "Encryption at Rest (AES-256)")
	s.AddFlow(catalog.ZoneInternet, catalog.ZoneDMZ, "HTTPS", "")

	c := s.Clone()
	c.AssignControl(catalog.ZoneData, "Backup & Recovery")
	c.DeselectZone(catalog.ZoneInternet)

	if s.HasControl("Backup & Recovery") {
		t.Error("mutating the clone must not affect the original")
	}
	if !s.IsSelected(catalog.ZoneInternet) {
		t.Error("deselecting on the clone must not affect the original")
	}
	if len(c.Flows()) != 1 {
		t.Error("clone should carry the original's flows")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	s := Default()
	s.Scenario = "Healthcare Patient Portal"
	s.Notes = "Phase 1 draft"
	s.AssignControl(catalog.ZoneDMZ, "WAF (Web Application Firewall)")
	s.AddFlow(catalog.ZoneInternet, catalog.ZoneDMZ, "HTTPS", "Patient logins")

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	var back State
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	if back.Scenario != s.Scenario || back.Notes != s.Notes {
		t.Error("scenario or notes lost in round trip")
	}
	if !back.HasControl("WAF (Web Application Firewall)") {
		t.Error("control assignments lost in round trip")
	}
	if len(back.Flows()) != 1 {
		t.Error("flows lost in round trip")
	}
	if got, want := back.SelectedZones(), s.SelectedZones(); len(got) != len(want) {
		t.Errorf("zone selection lost in round trip: %v vs %v", got, want)
	}
}

func TestFromSnapshot_Resync(t *testing.T) {
	snap := Snapshot{
		SelectedZones: []string{"Data Zone", "", "Data Zone"},
		ControlsByZone: map[string][]string{
			"Data Zone":     {"Encryption at Rest (AES-256)"},
			"Internet Zone": {"DDoS Protection"}, // not selected, must be dropped
		},
	}

	s := FromSnapshot(snap)

	if got := s.SelectedZones(); len(got) != 1 || got[0] != "Data Zone" {
		t.Errorf("SelectedZones() = %v, want [Data Zone]", got)
	}
	if s.HasControl("DDoS Protection") {
		t.Error("controls for unselected zones must be dropped")
	}
	if !s.HasControl("Encryption at Rest (AES-256)") {
		t.Error("controls for selected zones must survive")
	}
}
