package catalog

import (
	"errors"
	"fmt"
)

// Common errors returned when constructing a catalog.
var (
	// ErrNoZones is returned when a catalog is built without any zones.
	ErrNoZones = errors.New("catalog: at least one zone is required")

	// ErrNoControls is returned when a catalog is built without any controls.
	ErrNoControls = errors.New("catalog: at least one control is required")
)

// Catalog is the immutable reference data evaluators read: zones, the
// control library grouped by category, and attack scenarios.
//
// All accessor methods return copies; a Catalog cannot be mutated after New
// returns, which makes it safe for concurrent use by any number of
// evaluations.
type Catalog struct {
	zones      []Zone
	zoneIndex  map[string]int
	controls   []Control
	ctrlIndex  map[string]int
	categories []string
	attacks    []AttackScenario
	atkIndex   map[string]int
}

// New builds a validated catalog from zone, control, and attack scenario
// definitions. Validation covers the zone and control tables only:
// duplicate or empty names, duplicate trust levels, and invalid effort
// levels are construction errors. Zone references inside attack scenarios
// are not checked here; a dangling scenario reference is an evaluation-time
// error raised by the attack simulator.
func New(zones []Zone, controls []Control, attacks []AttackScenario) (*Catalog, error) {
	if len(zones) == 0 {
		return nil, ErrNoZones
	}
	if len(controls) == 0 {
		return nil, ErrNoControls
	}

	c := &Catalog{
		zones:     append([]Zone(nil), zones...),
		zoneIndex: make(map[string]int, len(zones)),
		controls:  append([]Control(nil), controls...),
		ctrlIndex: make(map[string]int, len(controls)),
		attacks:   append([]AttackScenario(nil), attacks...),
		atkIndex:  make(map[string]int, len(attacks)),
	}

	trustSeen := make(map[int]string, len(zones))
	for i, z := range c.zones {
		if z.Name == "" {
			return nil, fmt.Errorf("catalog: zone %d has an empty name", i)
		}
		if _, dup := c.zoneIndex[z.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate zone %q", z.Name)
		}
		if prev, dup := trustSeen[z.TrustLevel]; dup {
			return nil, fmt.Errorf("catalog: zones %q and %q share trust level %d", prev, z.Name, z.TrustLevel)
		}
		if z.TrustLevel < 0 {
			return nil, fmt.Errorf("catalog: zone %q has negative trust level %d", z.Name, z.TrustLevel)
		}
		trustSeen[z.TrustLevel] = z.Name
		c.zoneIndex[z.Name] = i
	}

	catSeen := make(map[string]bool)
	for i, ctrl := range c.controls {
		if ctrl.Name == "" {
			return nil, fmt.Errorf("catalog: control %d has an empty name", i)
		}
		if _, dup := c.ctrlIndex[ctrl.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate control %q", ctrl.Name)
		}
		if ctrl.Category == "" {
			return nil, fmt.Errorf("catalog: control %q has an empty category", ctrl.Name)
		}
		if ctrl.Effort != "" && !ctrl.Effort.IsValid() {
			return nil, fmt.Errorf("catalog: control %q has invalid effort %q", ctrl.Name, ctrl.Effort)
		}
		c.ctrlIndex[ctrl.Name] = i
		if !catSeen[ctrl.Category] {
			catSeen[ctrl.Category] = true
			c.categories = append(c.categories, ctrl.Category)
		}
	}

	for i, a := range c.attacks {
		if a.Name == "" {
			return nil, fmt.Errorf("catalog: attack scenario %d has an empty name", i)
		}
		if _, dup := c.atkIndex[a.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate attack scenario %q", a.Name)
		}
		c.atkIndex[a.Name] = i
	}

	return c, nil
}

// Zones returns all zones in declaration order.
func (c *Catalog) Zones() []Zone {
	return append([]Zone(nil), c.zones...)
}

// Zone returns the named zone and whether it exists.
func (c *Catalog) Zone(name string) (Zone, bool) {
	i, ok := c.zoneIndex[name]
	if !ok {
		return Zone{}, false
	}
	return c.zones[i], true
}

// HasZone reports whether the named zone exists in the catalog.
func (c *Catalog) HasZone(name string) bool {
	_, ok := c.zoneIndex[name]
	return ok
}

// TrustLevel returns the trust level of the named zone.
// Unknown zones report trust level 0, matching the tolerant treatment of
// unrecognized names outside the attack simulator.
func (c *Catalog) TrustLevel(name string) int {
	if z, ok := c.Zone(name); ok {
		return z.TrustLevel
	}
	return 0
}

// MaxTrustLevel returns the highest trust level defined in the catalog.
func (c *Catalog) MaxTrustLevel() int {
	max := 0
	for _, z := range c.zones {
		if z.TrustLevel > max {
			max = z.TrustLevel
		}
	}
	return max
}

// Controls returns all controls in declaration order.
func (c *Catalog) Controls() []Control {
	return append([]Control(nil), c.controls...)
}

// Control returns the named control and whether it exists.
func (c *Catalog) Control(name string) (Control, bool) {
	i, ok := c.ctrlIndex[name]
	if !ok {
		return Control{}, false
	}
	return c.controls[i], true
}

// HasControl reports whether the named control exists in the catalog.
func (c *Catalog) HasControl(name string) bool {
	_, ok := c.ctrlIndex[name]
	return ok
}

// Categories returns the distinct control categories in the order their
// first member was declared.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// ControlsInCategory returns the controls belonging to the named category,
// in declaration order.
func (c *Catalog) ControlsInCategory(category string) []Control {
	var out []Control
	for _, ctrl := range c.controls {
		if ctrl.Category == category {
			out = append(out, ctrl)
		}
	}
	return out
}

// AttackScenarios returns all attack scenarios in declaration order.
func (c *Catalog) AttackScenarios() []AttackScenario {
	return append([]AttackScenario(nil), c.attacks...)
}

// AttackScenario returns the named scenario and whether it exists.
func (c *Catalog) AttackScenario(name string) (AttackScenario, bool) {
	i, ok := c.atkIndex[name]
	if !ok {
		return AttackScenario{}, false
	}
	return c.attacks[i], true
}
