package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileCatalog is the YAML schema for a catalog file.
//
// Example:
//
//	zones:
//	  - name: "DMZ (Perimeter Zone)"
//	    trust_level: 1
//	    recommended_controls: ["WAF", "IDS/IPS"]
//	controls:
//	  - name: "WAF (Web Application Firewall)"
//	    category: "Network Security"
//	    blocks: ["SQLi", "XSS"]
//	    natural_zones: ["DMZ (Perimeter Zone)"]
//	    effort: Low
//	attack_scenarios:
//	  - name: "External Attacker"
//	    goal: "Exfiltrate customer database"
//	    stages:
//	      - zone: "DMZ (Perimeter Zone)"
//	        phase: "Initial Access"
//	        technique: "SQLi via vulnerable login form"
//	    blocking_rules:
//	      - control: "WAF (Web Application Firewall)"
//	        scope: ["DMZ (Perimeter Zone)"]
type fileCatalog struct {
	Zones           []Zone           `yaml:"zones"`
	Controls        []Control        `yaml:"controls"`
	AttackScenarios []AttackScenario `yaml:"attack_scenarios"`
}

// LoadFile reads and validates a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", path, err)
	}
	return c, nil
}

// Parse parses and validates a catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	return New(fc.Zones, fc.Controls, fc.AttackScenarios)
}
