package subteam

// AliasTable maps short sub-team ids (stable slugs like "powertrain") to the
// long display names stored in member rows (like "Electronics & Powertrain").
// The mapping is many-to-one, not bijective: several slugs share one member
// pool. Ids without an entry resolve to themselves.
type AliasTable map[string]string

// DefaultAliasTable returns the hand-maintained id translation used by the
// public site. "autonomous" and "rnd" currently share the Electronics &
// Powertrain pool and "dynamics" shares Chassis & Suspension; that collapse is
// the observed production behavior and is kept as-is.
func DefaultAliasTable() AliasTable {
	return AliasTable{
		"chassis":    "Chassis & Suspension",
		"powertrain": "Electronics & Powertrain",
		"dynamics":   "Chassis & Suspension",
		"autonomous": "Electronics & Powertrain",
		"management": "Business & Marketing",
		"rnd":        "Electronics & Powertrain",
	}
}

// Resolve translates a short id to the member-pool display name.
func (t AliasTable) Resolve(id string) string {
	if name, ok := t[id]; ok {
		return name
	}
	return id
}
