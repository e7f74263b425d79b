package catalog

// Stage is a single step of an attack scenario's kill chain: the zone the
// attacker operates in, the phase name, and the technique used.
type Stage struct {
	// Zone names the catalog zone this stage takes place in.
	Zone string `json:"zone" yaml:"zone"`

	// Phase is the kill-chain phase label (e.g. "Recon", "Initial Access").
	Phase string `json:"phase" yaml:"phase"`

	// Technique describes what the attacker does during this stage.
	Technique string `json:"technique" yaml:"technique"`
}

// BlockingRule declares, for one attack scenario, that a control neutralizes
// the kill chain when it is assigned in a zone covered by the rule's scope.
//
// Rules keep their declaration order; the simulator reports blocking
// controls in that order.
type BlockingRule struct {
	// Control is the control name that can break the chain.
	Control string `json:"control" yaml:"control"`

	// Scope is the set of zones where the control is effective against
	// this scenario.
	Scope Scope `json:"scope" yaml:"scope"`
}

// AttackScenario is an ordered kill chain used by the attack simulator.
type AttackScenario struct {
	// Name uniquely identifies the scenario within a catalog.
	Name string `json:"name" yaml:"name"`

	// Goal describes what the adversary is trying to achieve.
	Goal string `json:"goal" yaml:"goal"`

	// Stages is the ordered kill chain.
	Stages []Stage `json:"stages" yaml:"stages"`

	// BlockingRules declares which controls neutralize which zones of the
	// chain, in declaration order.
	BlockingRules []BlockingRule `json:"blocking_rules" yaml:"blocking_rules"`
}

// DesignScenario is an engagement brief: the system whose security
// architecture a user is designing. Briefs are reference content consumed by
// the document exporter; evaluators never read them.
type DesignScenario struct {
	// Name uniquely identifies the scenario.
	Name string `json:"name" yaml:"name"`

	// Description summarizes the system under design.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Data describes the data in scope and its sensitivity.
	Data string `json:"data,omitempty" yaml:"data,omitempty"`

	// Users describes who uses the system and how.
	Users string `json:"users,omitempty" yaml:"users,omitempty"`

	// Platform names the hosting platform(s).
	Platform string `json:"platform,omitempty" yaml:"platform,omitempty"`

	// Compliance lists applicable regulatory regimes.
	Compliance []string `json:"compliance,omitempty" yaml:"compliance,omitempty"`

	// KeyRisks lists the engagement's headline risks.
	KeyRisks []string `json:"key_risks,omitempty" yaml:"key_risks,omitempty"`

	// CrownJewel names the single asset whose compromise hurts most.
	CrownJewel string `json:"crown_jewel,omitempty" yaml:"crown_jewel,omitempty"`
}
