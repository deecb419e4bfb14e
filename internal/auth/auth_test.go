package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "tester",
		"exp":      exp.Unix(),
		"iat":      time.Now().Unix(),
	})
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return tokenString
}

func TestValidToken(t *testing.T) {
	if !validToken(signToken(t, time.Now().Add(time.Hour))) {
		t.Error("freshly signed token should validate")
	}
	if validToken(signToken(t, time.Now().Add(-time.Hour))) {
		t.Error("expired token should not validate")
	}
	if validToken("garbage") {
		t.Error("malformed token should not validate")
	}
}

func TestCheckPasswordPlain(t *testing.T) {
	t.Setenv("AUTH_PASSWORD", "hunter2")
	if !checkPassword("hunter2") {
		t.Error("correct password rejected")
	}
	if checkPassword("wrong") {
		t.Error("wrong password accepted")
	}
}

func TestCheckPasswordBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("AUTH_PASSWORD_HASH", string(hash))
	if !checkPassword("hunter2") {
		t.Error("correct password rejected against bcrypt hash")
	}
	if checkPassword("wrong") {
		t.Error("wrong password accepted against bcrypt hash")
	}
}

func loginRouter() *gin.Engine {
	r := gin.New()
	r.POST("/api/auth/login", LoginHandler)
	return r
}

func performLogin(t *testing.T, r *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(LoginRequest{Username: username, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginHandler(t *testing.T) {
	t.Setenv("AUTH_USERNAME", "admin")
	t.Setenv("AUTH_PASSWORD", "secret")
	r := loginRouter()

	w := performLogin(t, r, "admin", "secret")
	if w.Code != http.StatusOK {
		t.Fatalf("login returned %d, want 200: %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == "auth_token" && c.Value != "" {
			found = true
			if !c.HttpOnly {
				t.Error("auth cookie should be HTTP-only")
			}
		}
	}
	if !found {
		t.Error("login should set auth_token cookie")
	}

	w = performLogin(t, r, "admin", "wrong")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad password returned %d, want 401", w.Code)
	}
}

func TestMiddleware(t *testing.T) {
	t.Setenv("AUTH_USERNAME", "admin")
	t.Setenv("AUTH_PASSWORD", "secret")

	r := gin.New()
	r.GET("/protected", Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("request without token returned %d, want 401", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: signToken(t, time.Now().Add(time.Hour))})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("request with valid token returned %d, want 200", w.Code)
	}
}

func TestMiddlewareAPIKey(t *testing.T) {
	t.Setenv("AUTH_USERNAME", "admin")
	t.Setenv("AUTH_PASSWORD", "secret")
	t.Setenv("API_KEY", "top-secret-key")

	r := gin.New()
	r.GET("/protected", Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("X-API-Key", "top-secret-key")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("request with API key returned %d, want 200", w.Code)
	}
}

func TestMiddlewareOpenWhenUnconfigured(t *testing.T) {
	r := gin.New()
	r.GET("/protected", Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("unconfigured auth should pass through, got %d", w.Code)
	}
}
