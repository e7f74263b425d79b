package assess

import (
	"testing"

	"github.com/zero-day-ai/archstudio/catalog"
	"github.com/zero-day-ai/archstudio/design"
)

func TestScore_EmptyDesign(t *testing.T) {
	cat := catalog.Default()

	if got := Score(design.New(), cat); got != 0 {
		t.Errorf("Score(empty) = %d, want 0", got)
	}
	// Zones selected but no controls assigned still scores 0.
	if got := Score(design.Default(), cat); got != 0 {
		t.Errorf("Score(default zones, no controls) = %d, want 0", got)
	}
}

func TestScore_Exact(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name     string
		controls []string
		want     int
	}{
		{
			// 1 of 5 categories (10) + 1/15 count (3.33) = 13.33 -> 13
			name:     "single catalog control",
			controls: []string{catalog.ControlMFA},
			want:     13,
		},
		{
			// same category twice: 10 + 2/15*50 (6.67) = 16.67 -> 17
			name:     "two controls one category",
			controls: []string{catalog.ControlMFA, catalog.ControlPAM},
			want:     17,
		},
		{
			// unknown names count toward the count half only: 0 + 3.33 -> 3
			name:     "unknown control",
			controls: []string{"Blockchain Firewall"},
			want:     3,
		},
		{
			// 5 of 5 categories (50) + 5/15*50 (16.67) = 66.67 -> 67
			name: "one control per category",
			controls: []string{
				catalog.ControlMFA,
				catalog.ControlWAF,
				catalog.ControlEncryptionAtRest,
				catalog.ControlSIEM,
				catalog.ControlInputValidation,
			},
			want: 67,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := design.Default()
			for _, c := range tt.controls {
				if err := d.AssignControl(catalog.ZoneData, c); err != nil {
					t.Fatalf("AssignControl(%q) error: %v", c, err)
				}
			}
			if got := Score(d, cat); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore_Saturation(t *testing.T) {
	cat := catalog.Default()

	// Every catalog control assigned: all categories hit, count well past
	// the saturation point. The score must cap at exactly 100.
	d := design.Default()
	for _, c := range cat.Controls() {
		if err := d.AssignControl(catalog.ZoneData, c.Name); err != nil {
			t.Fatalf("AssignControl(%q) error: %v", c.Name, err)
		}
	}
	if got := Score(d, cat); got != 100 {
		t.Errorf("Score(all controls) = %d, want 100", got)
	}
}

func TestScore_Monotonic(t *testing.T) {
	cat := catalog.Default()
	d := design.Default()

	prev := Score(d, cat)
	for _, c := range cat.Controls() {
		if err := d.AssignControl(catalog.ZoneApplication, c.Name); err != nil {
			t.Fatalf("AssignControl(%q) error: %v", c.Name, err)
		}
		got := Score(d, cat)
		if got < prev {
			t.Fatalf("score decreased from %d to %d after adding %q", prev, got, c.Name)
		}
		prev = got
	}
}

func TestScore_DuplicateAcrossZones(t *testing.T) {
	cat := catalog.Default()

	// The same control in two zones counts once.
	d := design.Default()
	d.AssignControl(catalog.ZoneDMZ, catalog.ControlWAF)

	single := Score(d, cat)

	d.AssignControl(catalog.ZoneApplication, catalog.ControlWAF)
	if got := Score(d, cat); got != single {
		t.Errorf("Score() = %d after duplicate assignment, want %d", got, single)
	}
}
