package middleware

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/appbook/appbook/models"
	"github.com/appbook/appbook/services"
)

// JWTSecret returns the signing secret shared by token issuing and
// verification.
func JWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	return secret
}

// Protected verifies the bearer token and resolves the caller's
// identity into locals once per request.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(JWTSecret()),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			userToken := c.Locals("user")
			if userToken == nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "No authentication token",
				})
			}

			token, ok := userToken.(*jwt.Token)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid token",
				})
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid token claims",
				})
			}

			userID, err := extractUserID(claims)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid user ID in token",
				})
			}

			role, err := extractRole(claims)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid role in token",
				})
			}

			c.Locals("userID", userID)
			c.Locals("role", role)

			return c.Next()
		},
	})
}

// Session builds the explicit caller context consumed by the service
// layer.
func Session(c *fiber.Ctx) services.Session {
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(models.Role)
	return services.Session{UserID: userID, Role: role}
}

// RequireRole gates a route to a single role.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if got, _ := c.Locals("role").(models.Role); got != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have the required role to perform this action",
			})
		}
		return c.Next()
	}
}

// extractUserID handles multiple potential formats of user ID in token
func extractUserID(claims jwt.MapClaims) (uint, error) {
	idVal := claims["id"]
	if idVal == nil {
		return 0, fmt.Errorf("no ID found in claims")
	}

	switch v := idVal.(type) {
	case float64:
		return uint(v), nil
	case string:
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse ID string: %v", err)
		}
		return uint(parsed), nil
	default:
		return 0, fmt.Errorf("unsupported ID type: %T", v)
	}
}

// extractRole reads and checks the role claim against the closed role
// set.
func extractRole(claims jwt.MapClaims) (models.Role, error) {
	roleVal, ok := claims["role"].(string)
	if !ok {
		return "", fmt.Errorf("no role found in claims")
	}
	role := models.Role(roleVal)
	if !role.IsValid() {
		return "", fmt.Errorf("unknown role %q", roleVal)
	}
	return role, nil
}

// jwtError handles JWT errors
func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":   "Unauthorized",
		"message": "Invalid or expired token",
	})
}
