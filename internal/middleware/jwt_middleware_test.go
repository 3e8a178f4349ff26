package middleware_test

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"healthtrack/internal/middleware"
	"healthtrack/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test_jwt_secret"

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func newTestApp() *fiber.App {
	authService := services.NewAuthService(nil, testJWTSecret, time.Hour)
	app := fiber.New()
	app.Get("/whoami", middleware.AuthRequired(authService), func(c *fiber.Ctx) error {
		p, ok := middleware.PrincipalFrom(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"userId": p.UserID, "username": p.Username})
	})
	return app
}

func TestAuthRequired(t *testing.T) {
	app := newTestApp()
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, jwt.MapClaims{"user_id": 7, "exp": time.Now().Add(-time.Hour).Unix()}), http.StatusUnauthorized},
		{"no user id", "Bearer " + signToken(t, jwt.MapClaims{"username": "x", "exp": exp}), http.StatusUnauthorized},
		{"fractional user id", "Bearer " + signToken(t, jwt.MapClaims{"user_id": 1.5, "exp": exp}), http.StatusUnauthorized},
		{"valid", "Bearer " + signToken(t, jwt.MapClaims{"user_id": 7, "username": "alice", "exp": exp}), http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)

			if tc.status == http.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				assert.JSONEq(t, `{"userId":7,"username":"alice"}`, string(body))
			}
		})
	}
}
