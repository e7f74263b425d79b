package catalog

// Zone is a named trust tier that components and assets can be placed in.
// Zones are defined once in the catalog and never mutated at runtime.
type Zone struct {
	// Name uniquely identifies the zone within a catalog.
	Name string `json:"name" yaml:"name"`

	// TrustLevel orders zones from 0 (fully untrusted) upward.
	// Trust levels are unique per catalog.
	TrustLevel int `json:"trust_level" yaml:"trust_level"`

	// Description explains the zone's purpose and trust assumptions.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// RecommendedControls lists control names that are a natural fit for
	// this zone. Advisory only; nothing enforces their presence.
	RecommendedControls []string `json:"recommended_controls,omitempty" yaml:"recommended_controls,omitempty"`

	// Assets lists typical assets found in this zone. Advisory only.
	Assets []string `json:"assets,omitempty" yaml:"assets,omitempty"`
}
