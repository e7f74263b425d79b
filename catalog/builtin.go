package catalog

// Builtin zone names. The default catalog orders these by ascending trust.
const (
	ZoneInternet    = "Internet Zone"
	ZoneDMZ         = "DMZ (Perimeter Zone)"
	ZoneApplication = "Application Zone"
	ZoneData        = "Data Zone"
	ZoneManagement  = "Management Zone"
)

// Builtin control names referenced by the default gap rules and attack
// scenarios. The full control library is larger; only names needed by
// callers are exported as constants.
const (
	ControlMFA                 = "MFA (Multi-Factor Authentication)"
	ControlPAM                 = "PAM (Privileged Access Management)"
	ControlJITAccess           = "JIT Access (Just-in-Time)"
	ControlZeroStanding        = "Zero Standing Privileges"
	ControlMicrosegmentation   = "Micro-segmentation"
	ControlWAF                 = "WAF (Web Application Firewall)"
	ControlDNSFiltering        = "DNS Filtering / RPZ"
	ControlEncryptionAtRest    = "Encryption at Rest (AES-256)"
	ControlEncryptionInTransit = "Encryption in Transit (TLS 1.3)"
	ControlDLP                 = "DLP (Data Loss Prevention)"
	ControlSecretsManagement   = "Secrets Management (Vault)"
	ControlSIEM                = "SIEM"
	ControlEDR                 = "EDR (Endpoint Detection & Response)"
	ControlUEBA                = "Log Aggregation & UEBA"
	ControlInputValidation     = "Input Validation & Sanitization"
	ControlSBOM                = "SBOM & Dependency Scanning"
)

// Builtin control categories.
const (
	CategoryIdentity  = "Identity & Access"
	CategoryNetwork   = "Network Security"
	CategoryData      = "Data Protection"
	CategoryDetection = "Detection & Response"
	CategoryAppSec    = "Application Security"
)

// Default returns the builtin catalog: five zones spanning trust levels
// 0 (Internet) through 4 (Management), a 35-control library across five
// categories, and four attack scenarios.
func Default() *Catalog {
	c, err := New(builtinZones(), builtinControls(), builtinAttacks())
	if err != nil {
		// The builtin tables are fixed and covered by tests; a
		// construction failure here is a programming error.
		panic("catalog: invalid builtin data: " + err.Error())
	}
	return c
}

func builtinZones() []Zone {
	return []Zone{
		{
			Name:        ZoneInternet,
			TrustLevel:  0,
			Description: "Fully untrusted. Everything here is hostile. You have zero control over traffic originating here.",
			RecommendedControls: []string{
				"NGFW / Packet Filter", "DDoS Protection", "BGP Filtering", "Geo-blocking",
			},
			Assets: []string{"External Users", "Internet Traffic", "Public DNS", "CDN Edge"},
		},
		{
			Name:        ZoneDMZ,
			TrustLevel:  1,
			Description: "Semi-trusted buffer. Public-facing services live here. No direct path to internal zones.",
			RecommendedControls: []string{
				"Reverse Proxy", "WAF", "IDS/IPS", "TLS Termination", "Load Balancer",
			},
			Assets: []string{"Web Servers", "API Gateway", "Email Gateway", "Jump / Bastion Host"},
		},
		{
			Name:        ZoneApplication,
			TrustLevel:  2,
			Description: "Business logic layer. Only reachable via DMZ. No direct internet access.",
			RecommendedControls: []string{
				"Internal Firewall", "mTLS", "Service Mesh", "App-layer AuthZ",
			},
			Assets: []string{"App Servers", "Microservices", "Message Queues", "Cache Layer"},
		},
		{
			Name:        ZoneData,
			TrustLevel:  3,
			Description: "Highest sensitivity. Databases and secrets. Strictly controlled, heavily monitored.",
			RecommendedControls: []string{
				"DB Firewall", "Encryption at Rest", "PAM", "Audit Logging", "DLP",
			},
			Assets: []string{"Databases", "Data Warehouses", "Key Management (KMS/HSM)", "Secrets Vault"},
		},
		{
			Name:        ZoneManagement,
			TrustLevel:  4,
			Description: "Out-of-band admin network. Only privileged users via hardened access paths. Never reachable from app zone.",
			RecommendedControls: []string{
				"MFA", "PAM + Session Recording", "JIT Access", "Bastion Host", "Immutable Audit Logs",
			},
			Assets: []string{"Admin Consoles", "SIEM / SOAR", "Config Management", "Monitoring Tools"},
		},
	}
}

func builtinControls() []Control {
	return []Control{
		// Identity & Access
		{Name: ControlMFA, Category: CategoryIdentity,
			Blocks:       []string{"Credential Theft", "Phishing", "Password Spray"},
			NaturalZones: AllZoneScope(), Effort: EffortLow},
		{Name: "SSO (Single Sign-On)", Category: CategoryIdentity,
			Blocks:       []string{"Password Sprawl", "Credential Reuse"},
			NaturalZones: ZoneScope(ZoneApplication), Effort: EffortMedium},
		{Name: ControlPAM, Category: CategoryIdentity,
			Blocks:       []string{"Privilege Escalation", "Insider Threat"},
			NaturalZones: ZoneScope(ZoneManagement, ZoneData), Effort: EffortHigh},
		{Name: ControlJITAccess, Category: CategoryIdentity,
			Blocks:       []string{"Standing Privilege Abuse", "Privilege Persistence"},
			NaturalZones: ZoneScope(ZoneManagement), Effort: EffortHigh},
		{Name: "RBAC (Role-Based Access Control)", Category: CategoryIdentity,
			Blocks:       []string{"Excessive Permissions", "Horizontal Privilege Escalation"},
			NaturalZones: ZoneScope(ZoneApplication, ZoneData), Effort: EffortMedium},
		{Name: ControlZeroStanding, Category: CategoryIdentity,
			Blocks:       []string{"Lateral Movement", "Insider Threat"},
			NaturalZones: AllZoneScope(), Effort: EffortHigh},
		{Name: "Certificate-Based Auth (mTLS)", Category: CategoryIdentity,
			Blocks:       []string{"Service Impersonation", "MITM between services"},
			NaturalZones: ZoneScope(ZoneApplication, ZoneDMZ), Effort: EffortMedium},

		// Network Security
		{Name: "Next-Gen Firewall (NGFW)", Category: CategoryNetwork,
			Blocks:       []string{"Unauthorized Access", "C2 Traffic", "Port Scanning"},
			NaturalZones: ZoneScope(ZoneDMZ, ZoneApplication), Effort: EffortMedium},
		{Name: ControlMicrosegmentation, Category: CategoryNetwork,
			Blocks:       []string{"Lateral Movement", "East-West Attack"},
			NaturalZones: ZoneScope(ZoneApplication, ZoneData), Effort: EffortHigh},
		{Name: ControlWAF, Category: CategoryNetwork,
			Blocks:       []string{"SQLi", "XSS", "OWASP Top 10", "API Abuse"},
			NaturalZones: ZoneScope(ZoneDMZ), Effort: EffortLow},
		{Name: "IDS/IPS", Category: CategoryNetwork,
			Blocks:       []string{"Known Exploits", "Anomalous Scanning", "C2 Traffic"},
			NaturalZones: ZoneScope(ZoneDMZ, ZoneApplication), Effort: EffortMedium},
		{Name: "Network ACLs", Category: CategoryNetwork,
			Blocks:       []string{"Unauthorized Lateral Movement"},
			NaturalZones: AllZoneScope(), Effort: EffortLow},
		{Name: "VPN / ZTNA", Category: CategoryNetwork,
			Blocks:       []string{"Unauthorized Remote Access", "Exposed Services"},
			NaturalZones: ZoneScope(ZoneInternet), Effort: EffortMedium},
		{Name: ControlDNSFiltering, Category: CategoryNetwork,
			Blocks:       []string{"C2 over DNS", "Malware Callbacks", "Phishing Domains"},
			NaturalZones: ZoneScope(ZoneInternet, ZoneDMZ), Effort: EffortLow},

		// Data Protection
		{Name: ControlEncryptionAtRest, Category: CategoryData,
			Blocks:       []string{"Data Theft from Storage", "Backup Theft"},
			NaturalZones: ZoneScope(ZoneData), Effort: EffortLow},
		{Name: ControlEncryptionInTransit, Category: CategoryData,
			Blocks:       []string{"Eavesdropping", "MITM", "Network Sniffing"},
			NaturalZones: AllZoneScope(), Effort: EffortLow},
		{Name: "Tokenization", Category: CategoryData,
			Blocks:       []string{"PAN Data Exposure", "PCI Scope Creep"},
			NaturalZones: ZoneScope(ZoneApplication, ZoneData), Effort: EffortHigh},
		{Name: ControlDLP, Category: CategoryData,
			Blocks:       []string{"Data Exfiltration", "Accidental Disclosure"},
			NaturalZones: ZoneScope(ZoneApplication, ZoneInternet), Effort: EffortHigh},
		{Name: "Database Encryption (TDE)", Category: CategoryData,
			Blocks:       []string{"Physical Theft", "Raw Disk Access"},
			NaturalZones: ZoneScope(ZoneData), Effort: EffortLow},
		{Name: "Key Management (HSM/KMS)", Category: CategoryData,
			Blocks:       []string{"Key Theft", "Crypto Weakness"},
			NaturalZones: ZoneScope(ZoneData, ZoneManagement), Effort: EffortMedium},
		{Name: "Data Masking", Category: CategoryData,
			Blocks:       []string{"Dev/Test Data Exposure", "Insider View of PII"},
			NaturalZones: ZoneScope(ZoneApplication, ZoneData), Effort: EffortMedium},

		// Detection & Response
		{Name: ControlSIEM, Category: CategoryDetection,
			Blocks:       []string{"Undetected Breaches", "Slow Response"},
			NaturalZones: ZoneScope(ZoneManagement), Effort: EffortHigh},
		{Name: ControlEDR, Category: CategoryDetection,
			Blocks:       []string{"Malware", "Ransomware", "Fileless Attack"},
			NaturalZones: ZoneScope(ZoneApplication), Effort: EffortMedium},
		{Name: "SOAR (Security Orchestration)", Category: CategoryDetection,
			Blocks:       []string{"Slow Manual Response"},
			NaturalZones: ZoneScope(ZoneManagement), Effort: EffortHigh},
		{Name: ControlUEBA, Category: CategoryDetection,
			Blocks:       []string{"Insider Threat", "Anomalous Behavior"},
			NaturalZones: ZoneScope(ZoneManagement), Effort: EffortMedium},
		{Name: "Honeypots / Deception", Category: CategoryDetection,
			Blocks:       []string{"Internal Recon", "Lateral Movement"},
			NaturalZones: ZoneScope(ZoneApplication, ZoneData), Effort: EffortMedium},
		{Name: "Threat Intelligence Feed", Category: CategoryDetection,
			Blocks:       []string{"Known IOCs", "Emerging Threat Actors"},
			NaturalZones: ZoneScope(ZoneManagement), Effort: EffortLow},
		{Name: "Cloud Security Posture Mgmt (CSPM)", Category: CategoryDetection,
			Blocks:       []string{"Cloud Misconfigurations", "Exposed Storage Buckets"},
			NaturalZones: ZoneScope(ZoneManagement), Effort: EffortLow},

		// Application Security
		{Name: "API Gateway with Rate Limiting", Category: CategoryAppSec,
			Blocks:       []string{"API Abuse", "DDoS on APIs", "Credential Stuffing"},
			NaturalZones: ZoneScope(ZoneDMZ), Effort: EffortLow},
		{Name: ControlInputValidation, Category: CategoryAppSec,
			Blocks:       []string{"SQLi", "XSS", "Command Injection"},
			NaturalZones: ZoneScope(ZoneApplication), Effort: EffortLow},
		{Name: ControlSecretsManagement, Category: CategoryAppSec,
			Blocks:       []string{"Hardcoded Credentials", "Secret Sprawl"},
			NaturalZones: ZoneScope(ZoneApplication, ZoneData), Effort: EffortMedium},
		{Name: ControlSBOM, Category: CategoryAppSec,
			Blocks:       []string{"Supply Chain Attack", "Known Vulnerable Libraries"},
			NaturalZones: ZoneScope(ZoneApplication), Effort: EffortLow},
		{Name: "Container Security (Runtime)", Category: CategoryAppSec,
			Blocks:       []string{"Container Escape", "Privilege Escalation in Pods"},
			NaturalZones: ZoneScope(ZoneApplication), Effort: EffortMedium},
		{Name: "CSP (Content Security Policy)", Category: CategoryAppSec,
			Blocks:       []string{"XSS", "Clickjacking", "Data Injection"},
			NaturalZones: ZoneScope(ZoneDMZ), Effort: EffortLow},
		{Name: "RASP (Runtime App Self-Protection)", Category: CategoryAppSec,
			Blocks:       []string{"Zero-Day Exploits", "Unknown Attack Patterns"},
			NaturalZones: ZoneScope(ZoneApplication), Effort: EffortHigh},
	}
}

func builtinAttacks() []AttackScenario {
	return []AttackScenario{
		{
			Name: "External Attacker — Web App Breach",
			Goal: "Exfiltrate customer database",
			Stages: []Stage{
				{Zone: ZoneInternet, Phase: "Recon",
					Technique: "Scan public assets, identify web tech stack via HTTP headers, scrape for employee emails"},
				{Zone: ZoneDMZ, Phase: "Initial Access",
					Technique: "SQLi via vulnerable login form; WAF bypass using double-encoding technique"},
				{Zone: ZoneApplication, Phase: "Lateral Movement",
					Technique: "Pivot from web server to app server via unprotected internal API call"},
				{Zone: ZoneData, Phase: "Exfiltration",
					Technique: "Dump customer table via app-layer DB connection. Exfil via HTTPS to attacker-controlled server"},
			},
			BlockingRules: []BlockingRule{
				{Control: ControlWAF, Scope: ZoneScope(ZoneDMZ)},
				{Control: ControlInputValidation, Scope: ZoneScope(ZoneApplication)},
				{Control: ControlMicrosegmentation, Scope: ZoneScope(ZoneApplication)},
				{Control: ControlDLP, Scope: ZoneScope(ZoneApplication)},
				{Control: ControlEncryptionInTransit, Scope: AllZoneScope()},
			},
		},
		{
			Name: "Phishing → Ransomware",
			Goal: "Encrypt all data, demand ransom",
			Stages: []Stage{
				{Zone: ZoneInternet, Phase: "Delivery",
					Technique: "Spear phishing email with malicious Office macro attachment sent to finance team"},
				{Zone: ZoneApplication, Phase: "Execution",
					Technique: "User opens attachment; macro executes PowerShell, downloads loader from C2 via HTTPS"},
				{Zone: ZoneApplication, Phase: "Lateral Movement",
					Technique: "Credential dumping via LSASS; Pass-the-Hash to pivot to other workstations and file servers"},
				{Zone: ZoneData, Phase: "Impact",
					Technique: "Encrypt file shares, databases, and detected backup systems. Delete VSS shadow copies"},
			},
			BlockingRules: []BlockingRule{
				{Control: ControlMFA, Scope: AllZoneScope()},
				{Control: ControlEDR, Scope: ZoneScope(ZoneApplication)},
				{Control: ControlSIEM, Scope: ZoneScope(ZoneManagement)},
				{Control: ControlMicrosegmentation, Scope: ZoneScope(ZoneApplication)},
				{Control: ControlDNSFiltering, Scope: ZoneScope(ZoneInternet)},
			},
		},
		{
			Name: "Insider Threat — Privileged User Data Theft",
			Goal: "Exfiltrate IP to sell to competitor",
			Stages: []Stage{
				{Zone: ZoneManagement, Phase: "Internal Recon",
					Technique: "Admin uses existing PAM session to browse database schemas and identify high-value tables"},
				{Zone: ZoneData, Phase: "Collection",
					Technique: "Bulk export of customer and IP data using standing DB admin privileges to local CSV"},
				{Zone: ZoneApplication, Phase: "Staging",
					Technique: "Copy files to personal laptop via USB / unapproved cloud sync tool"},
				{Zone: ZoneInternet, Phase: "Exfiltration",
					Technique: "Upload staged files to personal Google Drive over corporate network during lunch"},
			},
			BlockingRules: []BlockingRule{
				{Control: ControlPAM, Scope: ZoneScope(ZoneManagement, ZoneData)},
				{Control: ControlJITAccess, Scope: ZoneScope(ZoneManagement)},
				{Control: ControlUEBA, Scope: ZoneScope(ZoneManagement)},
				{Control: ControlDLP, Scope: ZoneScope(ZoneApplication, ZoneInternet)},
				{Control: ControlZeroStanding, Scope: AllZoneScope()},
			},
		},
		{
			Name: "Supply Chain Compromise (SolarWinds-style)",
			Goal: "Persistent silent espionage across multiple organizations",
			Stages: []Stage{
				{Zone: ZoneApplication, Phase: "Initial Compromise",
					Technique: "Trojanized build of a trusted software update deployed to production (signed, legitimate-looking)"},
				{Zone: ZoneApplication, Phase: "Persistence",
					Technique: "Backdoor beacons to C2 over HTTPS with randomized delays to evade detection"},
				{Zone: ZoneManagement, Phase: "Privilege Escalation",
					Technique: "Use initial foothold to harvest service account credentials with high privileges"},
				{Zone: ZoneData, Phase: "Collection/Exfil",
					Technique: "Exfiltrate sensitive data via encrypted DNS tunneling or slow HTTPS upload to appear as normal traffic"},
			},
			BlockingRules: []BlockingRule{
				{Control: ControlSBOM, Scope: ZoneScope(ZoneApplication)},
				{Control: ControlSIEM, Scope: ZoneScope(ZoneManagement)},
				{Control: ControlDNSFiltering, Scope: ZoneScope(ZoneInternet)},
				{Control: ControlEDR, Scope: ZoneScope(ZoneApplication)},
				{Control: ControlSecretsManagement, Scope: ZoneScope(ZoneApplication, ZoneData)},
			},
		},
	}
}

// DefaultDesignScenarios returns the builtin engagement briefs used by the
// document exporter.
func DefaultDesignScenarios() []DesignScenario {
	return []DesignScenario{
		{
			Name:        "Healthcare SaaS (PHI / HIPAA)",
			Description: "Cloud-based EHR platform storing patient health records for 200 hospitals. Used by 50,000 clinicians daily.",
			Data:        "PHI (Protected Health Information) — medical records, lab results, prescriptions, diagnoses",
			Users:       "Clinicians, Nurses, Patients (portal), Admins — via web browser and mobile app",
			Platform:    "AWS Multi-region (us-east-1, eu-west-1)",
			Compliance:  []string{"HIPAA", "HITRUST CSF", "SOC 2 Type II"},
			KeyRisks: []string{
				"Unauthorised access to PHI", "Data breach / mass exfiltration",
				"Ransomware disrupting care", "Insider data theft by clinicians",
			},
			CrownJewel: "Patient health records database — PHI is the most sensitive asset. Breach = regulatory fines + patient harm.",
		},
		{
			Name:        "Fintech Payment Platform (PCI-DSS)",
			Description: "Payment processing API handling card transactions for 5,000 merchants. 10M transactions/day.",
			Data:        "PAN (card numbers), CVV, transaction records — must be tokenised. Never store raw card data.",
			Users:       "Merchants via API keys, internal ops team, compliance team",
			Platform:    "GCP + On-prem HSM for key storage",
			Compliance:  []string{"PCI-DSS Level 1", "SOX", "GDPR"},
			KeyRisks: []string{
				"Card data theft", "Transaction fraud / replay",
				"API key compromise", "Audit failure / PCI de-certification",
			},
			CrownJewel: "Cardholder data environment (CDE) — card numbers in any unencrypted form. Compromise = immediate PCI de-cert.",
		},
		{
			Name:        "Enterprise B2B SaaS (ISO 27001)",
			Description: "CRM platform storing confidential sales data for 50 Fortune 500 enterprise customers.",
			Data:        "Customer PII, deal pipeline data, revenue forecasts — customer-classified as Confidential/Restricted",
			Users:       "Sales teams across 50 enterprise customers — SSO via SAML 2.0 federated to customer IdPs",
			Platform:    "Azure (multi-tenant, single deployment)",
			Compliance:  []string{"SOC 2 Type II", "ISO 27001", "GDPR", "Customer contractual obligations"},
			KeyRisks: []string{
				"Cross-tenant data isolation failure", "Account takeover via SSO misconfiguration",
				"API key/token theft", "Bulk exfiltration via reporting features",
			},
			CrownJewel: "Tenant data isolation — if Customer A can see Customer B's data, the product is finished.",
		},
	}
}
