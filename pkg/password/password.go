// Package password implementa el esquema de credenciales: PBKDF2-SHA256 con
// salt aleatorio y verificación en tiempo constante.
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Parámetros del esquema. Cambiarlos invalida los hashes almacenados.
const (
	saltSize   = 16
	iterations = 100_000
	keySize    = 32
)

// GenerateSalt genera un salt aleatorio en base64.
func GenerateSalt() (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generar salt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// Hash deriva la clave PBKDF2-SHA256 del password con el salt dado (base64)
// y la devuelve en base64.
func Hash(password, saltB64 string) (string, error) {
	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return "", fmt.Errorf("decodificar salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, iterations, keySize, sha256.New)
	return base64.StdEncoding.EncodeToString(key), nil
}

// Verify compara el password contra el hash esperado en tiempo constante,
// sin importar en qué byte difiera (evita side channels de timing).
func Verify(password, saltB64, expectedHashB64 string) bool {
	computed, err := Hash(password, saltB64)
	if err != nil {
		return false
	}
	expected, err := base64.StdEncoding.DecodeString(expectedHashB64)
	if err != nil {
		return false
	}
	got, err := base64.StdEncoding.DecodeString(computed)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(got, expected) == 1
}
