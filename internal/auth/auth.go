package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/pixelbend/pixelbend/internal/config"
)

var jwtSecret []byte
var (
	loginLimiters sync.Map
	loginRate     = rate.Every(time.Minute / 5) // 5 requests per minute
)

// Default session timeout is 24 hours, can be overridden via SESSION_TIMEOUT env var.
var sessionTimeout = 24 * time.Hour

func getLoginLimiter(ip string) *rate.Limiter {
	val, ok := loginLimiters.Load(ip)
	if ok {
		return val.(*rate.Limiter)
	}
	limiter := rate.NewLimiter(loginRate, 5)
	loginLimiters.Store(ip, limiter)
	return limiter
}

func allowInsecure() bool {
	v := strings.ToLower(config.Get("ALLOW_INSECURE", ""))
	return v == "1" || v == "true" || v == "yes"
}

func init() {
	// Generate a random JWT secret if not provided
	if secret := config.Get("JWT_SECRET", ""); secret != "" {
		jwtSecret = []byte(secret)
	} else {
		jwtSecret = make([]byte, 32)
		rand.Read(jwtSecret)
	}

	sessionTimeout = config.GetDuration("SESSION_TIMEOUT", 24*time.Hour)
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Enabled reports whether web authentication is configured. When it is
// not, the API is open and the auth middleware passes everything through.
func Enabled() bool {
	if config.Get("AUTH_USERNAME", "") == "" {
		return false
	}
	return config.Get("AUTH_PASSWORD", "") != "" || config.Get("AUTH_PASSWORD_HASH", "") != ""
}

// checkPassword verifies the supplied password against AUTH_PASSWORD_HASH
// (bcrypt) when set, otherwise against AUTH_PASSWORD in constant time.
func checkPassword(password string) bool {
	if hash := config.Get("AUTH_PASSWORD_HASH", ""); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	envPassword := config.Get("AUTH_PASSWORD", "")
	if envPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(envPassword)) == 1
}

func LoginHandler(c *gin.Context) {
	// rate limit by client IP
	ip := c.ClientIP()
	if !getLoginLimiter(ip).Allow() {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts"})
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if !Enabled() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication not configured"})
		return
	}

	envUsername := config.Get("AUTH_USERNAME", "")
	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(envUsername)) == 1
	if !usernameOK || !checkPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": req.Username,
		"exp":      time.Now().Add(sessionTimeout).Unix(),
		"iat":      time.Now().Unix(),
	})

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
		return
	}

	secure := !allowInsecure()
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("auth_token", tokenString, int(sessionTimeout.Seconds()), "/", "", secure, true)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func LogoutHandler(c *gin.Context) {
	secure := !allowInsecure()
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("auth_token", "", -1, "/", "", secure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func CheckAuthHandler(c *gin.Context) {
	if !Enabled() {
		c.JSON(http.StatusOK, gin.H{"authenticated": true})
		return
	}
	if isValidAPIKey(c) {
		c.JSON(http.StatusOK, gin.H{"authenticated": true})
		return
	}

	tokenString, err := c.Cookie("auth_token")
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"authenticated": validToken(tokenString)})
}

// isValidAPIKey checks if the request carries the configured API key
func isValidAPIKey(c *gin.Context) bool {
	envAPIKey := config.Get("API_KEY", "")
	if envAPIKey == "" {
		return false
	}

	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		apiKey := strings.TrimPrefix(authHeader, "Bearer ")
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(envAPIKey)) == 1 {
			return true
		}
	}

	if apiKey := c.GetHeader("X-API-Key"); apiKey != "" {
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(envAPIKey)) == 1 {
			return true
		}
	}

	return false
}

func validToken(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})
	return err == nil && token.Valid
}
