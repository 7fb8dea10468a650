package domain

import "time"

// User represents a tenant user created by an import.
type User struct {
	ID                    string    `json:"id"`
	TenantID              string    `json:"tenant_id"`
	Email                 string    `json:"email"`
	Name                  string    `json:"name"`
	Phone                 string    `json:"phone,omitempty"`
	BuyerNTNCNIC          string    `json:"buyer_ntn_cnic,omitempty"`
	BuyerBusinessName     string    `json:"buyer_business_name,omitempty"`
	BuyerProvince         string    `json:"buyer_province,omitempty"`
	BuyerAddress          string    `json:"buyer_address,omitempty"`
	BuyerRegistrationType string    `json:"buyer_registration_type,omitempty"`
	Role                  string    `json:"role"`
	Active                bool      `json:"is_active"`
	ImportJobID           string    `json:"import_job_id,omitempty"`
	ImportRow             int       `json:"import_row,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}

// LoyaltyPoints is the points balance initialised alongside a new user.
type LoyaltyPoints struct {
	ID             string `json:"id"`
	TenantID       string `json:"tenant_id"`
	UserID         string `json:"user_id"`
	Balance        int    `json:"balance"`
	LifetimePoints int    `json:"lifetime_points"`
}

// ValidRoles contains all valid user roles.
var ValidRoles = []string{"customer", "admin", "manager", "staff"}

// DefaultRole is assigned when the import row has no role.
const DefaultRole = "customer"

// IsValidRole checks if a role is valid.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// ValidRegistrationTypes contains the buyer registration types.
var ValidRegistrationTypes = []string{"Registered", "Unregistered"}

// ExistingRecord describes a record found by a duplicate check.
type ExistingRecord struct {
	ID          string
	ImportJobID *string
	ImportRow   *int
}

// CreatedBy reports whether the record was written for the given file row of
// the given job. Another row of the same job with the same key is a duplicate.
func (r *ExistingRecord) CreatedBy(jobID string, row int) bool {
	return r != nil &&
		r.ImportJobID != nil && *r.ImportJobID == jobID &&
		r.ImportRow != nil && *r.ImportRow == row
}
