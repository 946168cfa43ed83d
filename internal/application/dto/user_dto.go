package dto

import "time"

// RegisterRequest cuerpo de registro de usuario.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginRequest cuerpo de login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse representación HTTP de un usuario (nunca expone el hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateRoleRequest cuerpo para cambiar el rol de un usuario.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// ForgotPasswordRequest solicitud de código de recuperación.
type ForgotPasswordRequest struct {
	Identifier string `json:"identifier"` // username
}

// VerifyCodeRequest verificación del código de recuperación.
type VerifyCodeRequest struct {
	Username string `json:"username"`
	Code     string `json:"code"`
}

// VerifyCodeResponse el código verificado dobla como token para el paso de reset.
type VerifyCodeResponse struct {
	Token string `json:"token"`
}

// ResetPasswordRequest consumo del código: fija la nueva contraseña.
type ResetPasswordRequest struct {
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}
