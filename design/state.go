package design

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zero-day-ai/archstudio/catalog"
)

// ErrFlowNotFound is returned when removing a flow that does not exist.
var ErrFlowNotFound = errors.New("design: flow not found")

// ValidationError reports a mutation rejected for violating a design
// invariant. It is returned synchronously from the mutation that caused it;
// the design is never left partially modified.
type ValidationError struct {
	// Op is the mutation that was rejected (e.g. "AddFlow").
	Op string

	// Reason explains why the mutation was rejected.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("design: %s: %s", e.Op, e.Reason)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// State is the user's in-progress architecture: the zones they selected, the
// controls assigned to each zone, and the data flows they documented.
//
// Zone selection and the controls-by-zone table are kept in sync by every
// mutation: selecting a zone creates its (empty) control list and
// deselecting a zone drops the list in the same step, so evaluators never
// observe a control entry for an unselected zone.
//
// Control names are not validated against any catalog. Unknown names are
// legal and simply contribute nothing to scoring or simulation.
type State struct {
	// Scenario is the name of the engagement brief this design is for.
	Scenario string

	// Notes holds free-form architecture notes included in exports.
	Notes string

	zones    []string
	controls map[string][]string
	flows    []Flow
}

// New returns an empty design: no zones, no controls, no flows.
func New() *State {
	return &State{controls: make(map[string][]string)}
}

// Default returns the starting design users begin from: the Internet, DMZ,
// Application, and Data zones selected with no controls assigned yet.
func Default() *State {
	s := New()
	for _, z := range []string{
		catalog.ZoneInternet, catalog.ZoneDMZ, catalog.ZoneApplication, catalog.ZoneData,
	} {
		s.SelectZone(z)
	}
	return s
}

// SelectZone adds a zone to the design and creates its empty control list.
// Selecting an already-selected zone is a no-op. Returns a ValidationError
// for an empty zone name.
func (s *State) SelectZone(zone string) error {
	if zone == "" {
		return &ValidationError{Op: "SelectZone", Reason: "zone name must not be empty"}
	}
	if _, ok := s.controls[zone]; ok {
		return nil
	}
	s.zones = append(s.zones, zone)
	s.controls[zone] = nil
	return nil
}

// DeselectZone removes a zone and its control assignments in one step.
// Deselecting a zone that is not selected is a no-op. Data flows touching
// the zone are kept; they remain documented intent.
func (s *State) DeselectZone(zone string) {
	if _, ok := s.controls[zone]; !ok {
		return
	}
	delete(s.controls, zone)
	for i, z := range s.zones {
		if z == zone {
			s.zones = append(s.zones[:i], s.zones[i+1:]...)
			break
		}
	}
}

// SetZones replaces the zone selection wholesale, preserving the control
// assignments of zones that remain selected. Duplicate names collapse to
// their first occurrence. Returns a ValidationError for an empty zone name.
func (s *State) SetZones(zones []string) error {
	for _, z := range zones {
		if z == "" {
			return &ValidationError{Op: "SetZones", Reason: "zone name must not be empty"}
		}
	}

	next := make(map[string][]string, len(zones))
	var order []string
	for _, z := range zones {
		if _, dup := next[z]; dup {
			continue
		}
		next[z] = s.controls[z]
		order = append(order, z)
	}
	s.zones = order
	s.controls = next
	return nil
}

// SelectedZones returns the selected zones in selection order.
func (s *State) SelectedZones() []string {
	return append([]string(nil), s.zones...)
}

// IsSelected reports whether the zone is currently selected.
func (s *State) IsSelected(zone string) bool {
	_, ok := s.controls[zone]
	return ok
}

// AssignControl adds a control to a zone's list. Assigning a control the
// zone already has is a no-op. Returns a ValidationError if the zone is not
// selected or the control name is empty.
func (s *State) AssignControl(zone, control string) error {
	if control == "" {
		return &ValidationError{Op: "AssignControl", Reason: "control name must not be empty"}
	}
	assigned, ok := s.controls[zone]
	if !ok {
		return &ValidationError{Op: "AssignControl", Reason: fmt.Sprintf("zone %q is not selected", zone)}
	}
	for _, c := range assigned {
		if c == control {
			return nil
		}
	}
	s.controls[zone] = append(assigned, control)
	return nil
}

// UnassignControl removes a control from a zone's list. Removing a control
// the zone does not have is a no-op. Returns a ValidationError if the zone
// is not selected.
func (s *State) UnassignControl(zone, control string) error {
	assigned, ok := s.controls[zone]
	if !ok {
		return &ValidationError{Op: "UnassignControl", Reason: fmt.Sprintf("zone %q is not selected", zone)}
	}
	for i, c := range assigned {
		if c == control {
			s.controls[zone] = append(assigned[:i], assigned[i+1:]...)
			return nil
		}
	}
	return nil
}

// SetControls replaces a zone's control list, deduplicating while keeping
// first-occurrence order. Returns a ValidationError if the zone is not
// selected or any control name is empty.
func (s *State) SetControls(zone string, controls []string) error {
	if _, ok := s.controls[zone]; !ok {
		return &ValidationError{Op: "SetControls", Reason: fmt.Sprintf("zone %q is not selected", zone)}
	}
	var next []string
	seen := make(map[string]bool, len(controls))
	for _, c := range controls {
		if c == "" {
			return &ValidationError{Op: "SetControls", Reason: "control name must not be empty"}
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		next = append(next, c)
	}
	s.controls[zone] = next
	return nil
}

// Controls returns the controls assigned to a zone, in assignment order.
// Returns nil for a zone that is not selected.
func (s *State) Controls(zone string) []string {
	return append([]string(nil), s.controls[zone]...)
}

// ControlsByZone returns a copy of the full zone-to-controls table.
func (s *State) ControlsByZone() map[string][]string {
	out := make(map[string][]string, len(s.controls))
	for z, cl := range s.controls {
		out[z] = append([]string(nil), cl...)
	}
	return out
}

// FlatControls returns every distinct control name assigned anywhere in the
// design, walking zones in selection order so the result is deterministic.
func (s *State) FlatControls() []string {
	var flat []string
	seen := make(map[string]bool)
	for _, z := range s.zones {
		for _, c := range s.controls[z] {
			if seen[c] {
				continue
			}
			seen[c] = true
			flat = append(flat, c)
		}
	}
	return flat
}

// HasControl reports whether the named control is assigned in any zone.
func (s *State) HasControl(control string) bool {
	for _, cl := range s.controls {
		for _, c := range cl {
			if c == control {
				return true
			}
		}
	}
	return false
}

// AddFlow documents a data flow between two zones. Returns a
// ValidationError if source and destination are equal or either is empty;
// the flow list is unchanged on error.
func (s *State) AddFlow(source, destination, protocol, description string) (Flow, error) {
	if source == "" || destination == "" {
		return Flow{}, &ValidationError{Op: "AddFlow", Reason: "source and destination must not be empty"}
	}
	if source == destination {
		return Flow{}, &ValidationError{Op: "AddFlow", Reason: "source and destination must differ"}
	}

	f := Flow{
		ID:          newFlowID(),
		Source:      source,
		Destination: destination,
		Protocol:    protocol,
		Description: description,
	}
	s.flows = append(s.flows, f)
	return f, nil
}

// RemoveFlow deletes a documented flow by ID.
// Returns ErrFlowNotFound if no flow has that ID.
func (s *State) RemoveFlow(id string) error {
	for i, f := range s.flows {
		if f.ID == id {
			s.flows = append(s.flows[:i], s.flows[i+1:]...)
			return nil
		}
	}
	return ErrFlowNotFound
}

// Flows returns the documented data flows in creation order.
func (s *State) Flows() []Flow {
	return append([]Flow(nil), s.flows...)
}

// Clone returns a deep copy of the design. Evaluating a clone is safe while
// the original keeps being mutated.
func (s *State) Clone() *State {
	c := &State{
		Scenario: s.Scenario,
		Notes:    s.Notes,
		zones:    append([]string(nil), s.zones...),
		controls: make(map[string][]string, len(s.controls)),
		flows:    append([]Flow(nil), s.flows...),
	}
	for z, cl := range s.controls {
		c.controls[z] = append([]string(nil), cl...)
	}
	return c
}

// Snapshot is the plain serializable form of a design, exposed so callers
// can format or persist a design without reaching into State internals.
type Snapshot struct {
	// Scenario is the engagement brief name.
	Scenario string `json:"scenario,omitempty"`

	// Notes holds free-form architecture notes.
	Notes string `json:"notes,omitempty"`

	// SelectedZones lists the selected zones in selection order.
	SelectedZones []string `json:"selected_zones"`

	// ControlsByZone maps each selected zone to its assigned controls.
	ControlsByZone map[string][]string `json:"controls_by_zone"`

	// DataFlows lists the documented flows in creation order.
	DataFlows []Flow `json:"data_flows"`
}

// Snapshot returns the plain serializable form of the design.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Scenario:       s.Scenario,
		Notes:          s.Notes,
		SelectedZones:  append([]string(nil), s.zones...),
		ControlsByZone: s.ControlsByZone(),
		DataFlows:      append([]Flow(nil), s.flows...),
	}
}

// FromSnapshot rebuilds a State from its serialized form, re-establishing
// the zone/control key synchronization: control entries for zones not in
// SelectedZones are dropped, and selected zones without an entry get an
// empty list.
func FromSnapshot(snap Snapshot) *State {
	s := New()
	s.Scenario = snap.Scenario
	s.Notes = snap.Notes
	for _, z := range snap.SelectedZones {
		if z == "" {
			continue
		}
		if s.IsSelected(z) {
			continue
		}
		s.zones = append(s.zones, z)
		s.controls[z] = append([]string(nil), snap.ControlsByZone[z]...)
	}
	s.flows = append([]Flow(nil), snap.DataFlows...)
	return s
}

// MarshalJSON implements json.Marshaler using the Snapshot form.
func (s *State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Snapshot())
}

// UnmarshalJSON implements json.Unmarshaler using the Snapshot form.
func (s *State) UnmarshalJSON(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	*s = *FromSnapshot(snap)
	return nil
}
