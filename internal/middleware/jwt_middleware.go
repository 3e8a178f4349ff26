package middleware

import (
	"log"
	"strings"

	"healthtrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal"

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID   uint
	Username string
}

// AuthRequired is a Fiber middleware to check for a valid JWT token.
// On success it stores the caller's Principal in the request locals.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		// JSON numbers decode as float64.
		rawID, ok := claims["user_id"].(float64)
		if !ok || rawID < 1 || rawID != float64(uint(rawID)) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   "token carries no user_id",
			})
		}
		username, _ := claims["username"].(string)

		c.Locals(principalKey, Principal{UserID: uint(rawID), Username: username})
		return c.Next()
	}
}

// PrincipalFrom returns the Principal stored by AuthRequired.
func PrincipalFrom(c *fiber.Ctx) (Principal, bool) {
	p, ok := c.Locals(principalKey).(Principal)
	return p, ok
}
