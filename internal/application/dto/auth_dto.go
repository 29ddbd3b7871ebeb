package dto

// LoginRequest entrada para login de empresa o de administrador.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse salida del login: token de sesión + perfil de la empresa.
type LoginResponse struct {
	Token   string          `json:"token"`
	Company CompanyResponse `json:"company"`
}

// MeResponse salida de la revalidación de sesión (/auth/me).
type MeResponse struct {
	Company CompanyResponse `json:"company"`
	Role    string          `json:"role"`
}
