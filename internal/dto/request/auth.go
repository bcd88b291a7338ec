package request

type SignUpRequest struct {
	Username        string `json:"username" validate:"notblank,max=50"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// SignInRequest carries the role the user wants for this session.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=buyer seller"`
}

type SetRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=buyer seller"`
}
