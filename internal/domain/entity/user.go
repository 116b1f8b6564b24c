package entity

import "time"

// User representa un usuario del sistema (tabla users).
// PasswordHash y PasswordSalt van en base64 (PBKDF2-SHA256); nunca se expone el hash.
type User struct {
	RecID        string
	UserID       string // login, único
	Email        string // opcional
	PasswordHash string
	PasswordSalt string
	Active       bool
	LastLogonAt  *time.Time
	CreatedAt    time.Time
	ModifiedAt   time.Time
}
