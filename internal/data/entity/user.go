package entity

type UserRole string

const (
	RoleBuyer  UserRole = "buyer"
	RoleSeller UserRole = "seller"
)

func (r UserRole) Valid() bool {
	return r == RoleBuyer || r == RoleSeller
}

// User is a row of profiles. Role is not stored here, it belongs to the
// session the user signed in with.
type User struct {
	BaseSimple
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
}
