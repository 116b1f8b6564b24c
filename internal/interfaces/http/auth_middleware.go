package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jcalderon/inventario-movil/internal/application/dto"
	"github.com/jcalderon/inventario-movil/pkg/jwt"
)

// Locals keys para la identidad del actor en Fiber.
const (
	LocalActorRecID = "actor_rec_id"
	LocalActorLogin = "actor_login"
)

// AuthMiddleware valida el Bearer Token JWT y carga el RecID del actor a c.Locals.
// Toda escritura aguas abajo queda atribuida a esa identidad verificada.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		actorRecID, actorLogin, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalActorRecID, actorRecID)
		c.Locals(LocalActorLogin, actorLogin)
		return c.Next()
	}
}

// GetActorRecID devuelve el RecID del actor autenticado (después del middleware).
func GetActorRecID(c *fiber.Ctx) string {
	v := c.Locals(LocalActorRecID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
