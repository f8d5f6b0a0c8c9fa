package models

// Role is the closed set of account roles known to the system.
// Unknown role strings coming from storage or tokens are rejected by Valid.
type Role string

const (
	RoleTechnician Role = "Technician" // may upload scans
	RoleDentist    Role = "Dentist"    // may view and delete scans
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleTechnician, RoleDentist:
		return true
	}
	return false
}

// AccountDB represents an account record in the database.
// Accounts are seeded at first boot and never modified at runtime.
type AccountDB struct {
	ID           int64  `json:"id" db:"id"`           // Primary key
	Email        string `json:"email" db:"email"`     // Unique login email
	PasswordHash string `json:"-" db:"password_hash"` // bcrypt hash
	Role         Role   `json:"role" db:"role"`       // Technician or Dentist
}
