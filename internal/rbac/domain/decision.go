package domain

// Decision is the outcome of an access evaluation. Reason is always specific
// enough to audit: grants name the matching role/policy/permission triple,
// denials say exactly which stage fell through.
type Decision struct {
	Granted bool
	Reason  string
}

// Grant is a permission together with the policy that contributed it.
// Provenance is kept so that decisions can name their source policy.
type Grant struct {
	Permission Permission
	PolicyID   string
}
