package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestPasswordHashing(t *testing.T) {
	password := "sleeve-piece-9"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "" || hash == password {
		t.Fatal("expected a non-empty hash distinct from the password")
	}
	if !CheckPasswordHash(password, hash) {
		t.Fatal("CheckPasswordHash should succeed for the right password")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Fatal("CheckPasswordHash should fail for a wrong password")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", GenerateJWTSecret())

	token, err := GenerateToken("6f1b4f58-8a3c-4f6e-9a3e-111111111111", "admin")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	userID, role, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if userID != "6f1b4f58-8a3c-4f6e-9a3e-111111111111" {
		t.Fatalf("unexpected user id claim %q", userID)
	}
	if role != "admin" {
		t.Fatalf("unexpected role claim %q", role)
	}
}

func TestParseToken_RejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", GenerateJWTSecret())

	if _, _, err := ParseToken("not-a-token"); err == nil {
		t.Fatal("expected an error for a malformed token")
	}
}

func TestAuthMiddleware_AcceptsCookieToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", GenerateJWTSecret())

	token, err := GenerateToken("6f1b4f58-8a3c-4f6e-9a3e-222222222222", "user")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	// No Authorization header, only the cookie set at login.
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	c.Request.AddCookie(&http.Cookie{Name: "token", Value: token})

	AuthMiddleware()(c)

	if c.IsAborted() {
		t.Fatal("middleware should accept the cookie token")
	}
	if got, _ := c.Get("userId"); got != "6f1b4f58-8a3c-4f6e-9a3e-222222222222" {
		t.Fatalf("unexpected userId in context: %v", got)
	}
	if got, _ := c.Get("role"); got != "user" {
		t.Fatalf("unexpected role in context: %v", got)
	}
}

func TestAuthMiddleware_RejectsMissingCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", GenerateJWTSecret())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/appointments", nil)

	AuthMiddleware()(c)

	if !c.IsAborted() {
		t.Fatal("middleware should abort without a header or cookie")
	}
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", GenerateJWTSecret())
	token, err := GenerateToken("user-id", "user")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	t.Setenv("JWT_SECRET", GenerateJWTSecret())
	if _, _, err := ParseToken(token); err == nil {
		t.Fatal("expected an error for a token signed with another secret")
	}
}
