package domain

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// ValidRole reports whether s is one of the three marketplace roles.
func ValidRole(s string) bool {
	return s == RoleBuyer || s == RoleSeller || s == RoleAdmin
}

type User struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	Hash     string `db:"password_hash" json:"-"`
	Role     string `db:"role" json:"role"` // buyer | seller | admin
	Verified bool   `db:"verified" json:"verified"`
}
