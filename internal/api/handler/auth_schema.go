package handler

// Form payloads bound from the server-rendered pages. Validation tags mirror
// what the backend enforces so obviously bad submissions fail fast, before a
// network round-trip.

type loginForm struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type registerForm struct {
	Name            string `form:"name"             validate:"required"`
	Email           string `form:"email"            validate:"required,email"`
	Address         string `form:"address"`
	Phone           string `form:"phone"`
	Password        string `form:"password"         validate:"required,min=8"`
	PasswordConfirm string `form:"password_confirm" validate:"required,eqfield=Password"`
	Role            string `form:"role"             validate:"required,oneof=client advocate"`
}

type verificationForm struct {
	BarNumber      string `form:"bar_number"     validate:"required"`
	Specialization string `form:"specialization" validate:"required"`
	Experience     string `form:"experience"`
}
