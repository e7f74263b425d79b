package design

import "github.com/google/uuid"

// Flow documents one data flow between two zones of the design.
type Flow struct {
	// ID uniquely identifies the flow within a design.
	ID string `json:"id"`

	// Source is the zone the data originates from.
	Source string `json:"source"`

	// Destination is the zone the data travels to.
	// Always differs from Source; same-zone flows are rejected at creation.
	Destination string `json:"destination"`

	// Protocol is the transport the flow uses (e.g. "HTTPS", "gRPC/mTLS").
	Protocol string `json:"protocol"`

	// Description explains what data moves and why.
	Description string `json:"description"`
}

// newFlowID returns a unique identifier for a new flow.
func newFlowID() string {
	return uuid.New().String()
}
