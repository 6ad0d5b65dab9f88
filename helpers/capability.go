package helpers

import (
	"strings"

	"go-foodie-storefront/models"
)

// Role gating is derived here and nowhere else: route guards and view
// conditionals all ask these two questions.

func IsAdmin(p *models.Profile) bool {
	return p != nil && p.Role == models.RoleAdmin
}

// IsSuperAdmin is the single designated account allowed to manage
// categories and admin users, identified by email match.
func IsSuperAdmin(p *models.Profile, superAdminEmail string) bool {
	return IsAdmin(p) && strings.EqualFold(p.Email, superAdminEmail)
}
