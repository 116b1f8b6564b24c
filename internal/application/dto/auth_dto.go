package dto

import "time"

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// LoginResponse token de acceso firmado y su expiración.
type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// RegisterRequest alta de usuario.
type RegisterRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// RegisterResponse identidad del usuario creado.
type RegisterResponse struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
}
