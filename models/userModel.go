package models

// Profile is the backend's view of the signed-in user. The storefront never
// edits it directly; it is whatever /auth/me (or login/register) last said.
type Profile struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Credential pairs a bearer token with the profile it belongs to. The two
// are always set and cleared together; a credential with only one half is
// treated as absent.
type Credential struct {
	Token   string   `json:"token"`
	Profile *Profile `json:"user"`
}

const RoleAdmin = "admin"
