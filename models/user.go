package models

// Role is the closed set of user roles in the system.
type Role string

const (
	RoleCustomer    Role = "customer"
	RoleAdmin       Role = "admin"
	RoleManager     Role = "manager"
	RoleTailor      Role = "tailor"
	RoleSalesperson Role = "salesperson"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleManager, RoleTailor, RoleSalesperson:
		return true
	}
	return false
}

// IsStaff reports whether r grants access to the staff dashboards.
// Customers are the only non-staff role.
func (r Role) IsStaff() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleTailor, RoleSalesperson:
		return true
	}
	return false
}

// User represents an account in the system (customer or staff).
// A customer account is unusable until a staff member sets Approved;
// staff accounts are created pre-approved.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile,omitempty"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
	Name     string `json:"name,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Approved bool   `json:"approved"`
}
