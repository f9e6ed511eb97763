package dto

// LoginRequest credenciales del formulario de login (id de negocio + clave).
type LoginRequest struct {
	ID       string `json:"id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// IdentityResponse identidad activa (nunca incluye la clave).
type IdentityResponse struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	Name string `json:"name"`
}

// LoginResponse token de la API local, identidad y vista inicial del rol.
type LoginResponse struct {
	Token   string           `json:"token"`
	User    IdentityResponse `json:"user"`
	Landing string           `json:"landing"`
}

// SessionResponse estado de la sesión y vistas a las que la identidad tiene acceso.
type SessionResponse struct {
	User    IdentityResponse `json:"user"`
	Landing string           `json:"landing"`
	Views   []ViewInfo       `json:"views"`
}
