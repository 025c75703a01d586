package rules

// Category and subgroup names referenced by the analyzer and the flaw
// severity rules. The numeric prefixes are part of the display names.
const (
	CategoryCollection = "1. Data Collection (Schema & Ingestion)"
	CategorySharing    = "2. Data Sharing (External Relationships)"
	CategoryRights     = "3. User Rights & Controls (CRUD Operations)"
	CategorySecurity   = "4. Security & Retention (Storage & Archiving)"
	CategoryWeasel     = "5. Weasel Words (Red Flags)"

	SubgroupHighRisk  = "High-Risk Identifiers"
	SubgroupTimelines = "Timelines"
)

// TermSubgroup groups related terms inside a category
type TermSubgroup struct {
	Name  string
	Terms []string
}

// TermCategory is one top-level grouping of policy-language concerns
type TermCategory struct {
	Name      string
	Subgroups []TermSubgroup
}

// Dictionary is the fixed term dictionary shared read-only across all
// analyses. Declaration order is the scan order; nothing ever writes to
// this table after init.
var Dictionary = []TermCategory{
	{
		Name: CategoryCollection,
		Subgroups: []TermSubgroup{
			{
				Name: "Explicit Data",
				Terms: []string{
					"collect",
					"gather",
					"provided by you",
					"registration",
					"account creation",
				},
			},
			{
				Name: "Automated Tracking",
				Terms: []string{
					"automatically collect",
					"tracking technologies",
					"cookies",
					"web beacons",
					"pixel tags",
					"Local Shared Objects",
				},
			},
			{
				Name: SubgroupHighRisk,
				Terms: []string{
					"IP address",
					"device identifier",
					"geolocation",
					"biometric data",
					"browsing history",
					"SSN",
					"government-issued ID",
				},
			},
		},
	},
	{
		Name: CategorySharing,
		Subgroups: []TermSubgroup{
			{
				Name: "The Entities",
				Terms: []string{
					"third party",
					"affiliates",
					"service providers",
					"subsidiaries",
					"business partners",
					"advertising networks",
					"data broker",
				},
			},
			{
				Name: "The Actions",
				Terms: []string{
					"share",
					"don't Currently sell",
					"sell",
					"disclose",
					"transfer",
				},
			},
			{
				Name: "The Exceptions (Loopholes for sharing)",
				Terms: []string{
					"business transfers",
					"legal requirements",
					"law enforcement",
					"subpoena",
					"merger",
					"bankruptcy",
				},
			},
		},
	},
	{
		Name: CategoryRights,
		Subgroups: []TermSubgroup{
			{
				Name: "Access & Deletion",
				Terms: []string{
					"right to access",
					"right to be forgotten",
					"request deletion",
					"rectify",
					"update your information",
				},
			},
			{
				Name: "Consent Mechanisms",
				Terms: []string{
					"opt-out",
					"withdraw consent",
					"unsubscribe",
					"Do Not Sell or Share My Personal Information",
					"privacy choices",
				},
			},
		},
	},
	{
		Name: CategorySecurity,
		Subgroups: []TermSubgroup{
			{
				Name: "Security Standards",
				Terms: []string{
					"encryption",
					"Secure Socket Layer (SSL)",
					"anonymize",
					"pseudonymization",
					"safeguards",
				},
			},
			{
				Name: SubgroupTimelines,
				Terms: []string{
					"retain",
					"retention period",
					"as long as necessary",
					"delete after",
				},
			},
		},
	},
	{
		Name: CategoryWeasel,
		Subgroups: []TermSubgroup{
			{
				Name: "Vague Qualifiers",
				Terms: []string{
					"may include",
					"might collect",
					"possibly",
					"could",
				},
			},
			{
				Name: "Open-Ended Lists",
				Terms: []string{
					"such as",
					"including, but not limited to",
				},
			},
			{
				Name: "Conditional Promises",
				Terms: []string{
					"commercially reasonable",
					"generally",
					"as applicable",
					"as needed",
				},
			},
		},
	},
}
