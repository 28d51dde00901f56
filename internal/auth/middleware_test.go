package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trishaw-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func unlockApp() *fiber.App {
	cfg := &config.Config{JWTSecret: testSecret}
	app := fiber.New()
	app.Put("/toggle", UnlockMiddleware(cfg), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func requestWith(t *testing.T, app *fiber.App, authHeader string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/toggle", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func signUnlockClaims(t *testing.T, purpose string, expiresAt time.Time, secret string) string {
	t.Helper()
	claims := &UnlockClaims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	return token
}

func TestGenerateUnlockToken(t *testing.T) {
	tokenStr, err := GenerateUnlockToken(testSecret)
	if err != nil {
		t.Fatalf("GenerateUnlockToken error: %v", err)
	}

	token, err := jwt.ParseWithClaims(tokenStr, &UnlockClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}
	claims := token.Claims.(*UnlockClaims)
	if claims.Purpose != unlockPurpose {
		t.Fatalf("purpose = %q, want %q", claims.Purpose, unlockPurpose)
	}
	if claims.ExpiresAt.After(time.Now().Add(11 * time.Minute)) {
		t.Fatal("unlock token must be short-lived")
	}
}

func TestUnlockMiddleware_ValidToken(t *testing.T) {
	app := unlockApp()

	token, err := GenerateUnlockToken(testSecret)
	if err != nil {
		t.Fatalf("GenerateUnlockToken error: %v", err)
	}
	if code := requestWith(t, app, "Bearer "+token); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
}

func TestUnlockMiddleware_Rejections(t *testing.T) {
	app := unlockApp()

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer scheme", "Token abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + signUnlockClaims(t, unlockPurpose, time.Now().Add(10*time.Minute), "another-secret-another-secret-32")},
		{"expired", "Bearer " + signUnlockClaims(t, unlockPurpose, time.Now().Add(-time.Minute), testSecret)},
		{"wrong purpose", "Bearer " + signUnlockClaims(t, "password_reset", time.Now().Add(10*time.Minute), testSecret)},
	}

	for _, tc := range cases {
		if code := requestWith(t, app, tc.header); code != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", tc.name, code)
		}
	}
}
