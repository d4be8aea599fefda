package constants

// ClaimStatus is the canonical status for a persisted claim record.
type ClaimStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending    ClaimStatus = "Pending"    // claim form filed, not yet decided
	StatusApproved   ClaimStatus = "Approved"   // title granted
	StatusUnemployed ClaimStatus = "Unemployed" // employment status recorded on the claim
	StatusUnknown    ClaimStatus = "Unknown"    // sentinel: title carries no status mapping
)
