package entity

type UserRole string

const (
	RoleBuyer   UserRole = "BUYER"
	RoleRealtor UserRole = "REALTOR"
	RoleAdmin   UserRole = "ADMIN"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleBuyer, RoleRealtor, RoleAdmin:
		return true
	default:
		return false
	}
}

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	Phone        string   `db:"phone"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}
