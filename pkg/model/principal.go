package model

// AdminPrincipal is the authenticated administrative identity.
// It is reconstructed on every verification and never persisted.
type AdminPrincipal struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}
