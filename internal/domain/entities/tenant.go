package entities

import (
	"strings"
	"time"
)

// Tenant is the optical shop owning a set of orders. It is read-only here.
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logo_url"`
	Address   string    `json:"address"`
	Number    string    `json:"number"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// FullAddress joins street and number the way the slips print it.
func (t Tenant) FullAddress() string {
	addr := strings.TrimSpace(t.Address)
	if addr == "" {
		return ""
	}
	if n := strings.TrimSpace(t.Number); n != "" {
		return addr + ", " + n
	}
	return addr
}

type ProfileRole string

const (
	ProfileRoleOwner ProfileRole = "owner"
	ProfileRoleAdmin ProfileRole = "admin"
	ProfileRoleStaff ProfileRole = "staff"
)

// Profile links an authenticated user to the tenant they work for.
type Profile struct {
	UserID    string      `json:"user_id"`
	TenantID  string      `json:"tenant_id"`
	Role      ProfileRole `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}
