package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/appbook/appbook/models"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(JWTSecret()))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", Protected(), func(c *fiber.Ctx) error {
		sess := Session(c)
		return c.JSON(fiber.Map{"user_id": sess.UserID, "role": sess.Role})
	})
	app.Get("/admin", Protected(), RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestProtected(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")
	app := protectedApp()

	t.Run("no token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", resp.StatusCode)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"id":   float64(42),
			"role": string(models.RoleUser),
			"exp":  time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"id":   float64(42),
			"role": string(models.RoleUser),
			"exp":  time.Now().Add(-time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", resp.StatusCode)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"id":   float64(42),
			"role": "SUPERUSER",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", resp.StatusCode)
		}
	})
}

func TestRequireRole(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")
	app := protectedApp()

	cases := []struct {
		role models.Role
		want int
	}{
		{models.RoleAdmin, http.StatusOK},
		{models.RoleUser, http.StatusForbidden},
		{models.RoleProfessional, http.StatusForbidden},
	}

	for _, tt := range cases {
		t.Run(string(tt.role), func(t *testing.T) {
			token := signToken(t, jwt.MapClaims{
				"id":   float64(7),
				"role": string(tt.role),
				"exp":  time.Now().Add(time.Hour).Unix(),
			})
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("role %s: status = %d, want %d", tt.role, resp.StatusCode, tt.want)
			}
		})
	}
}
