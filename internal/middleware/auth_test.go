package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/delologroup/site/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-for-middleware-testing"

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret(testSecret)
}

func protectedRouter() *gin.Engine {
	router := gin.New()
	router.Use(AuthRequired())
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"user_id":  GetUserID(c),
			"username": GetUsername(c),
		})
	})
	return router
}

func doGet(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRequired_NoToken(t *testing.T) {
	router := protectedRouter()

	for _, header := range []string{"", "Bearer", "Bearer   "} {
		w := doGet(router, header)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected status %d, got %d", header, http.StatusUnauthorized, w.Code)
		}
		if w.Body.Len() != 0 {
			t.Errorf("header %q: expected empty body, got %q", header, w.Body.String())
		}
	}
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	router := protectedRouter()

	for _, header := range []string{"Bearer invalid.jwt.token", "Basic dXNlcjpwYXNz"} {
		w := doGet(router, header)
		if w.Code != http.StatusForbidden {
			t.Errorf("header %q: expected status %d, got %d", header, http.StatusForbidden, w.Code)
		}
		if w.Body.Len() != 0 {
			t.Errorf("header %q: expected empty body, got %q", header, w.Body.String())
		}
	}
}

func TestAuthRequired_ExpiredToken(t *testing.T) {
	claims := utils.Claims{
		UserID:   1,
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))

	w := doGet(protectedRouter(), "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestAuthRequired_ValidToken(t *testing.T) {
	token, _ := utils.GenerateToken(7, "admin", 24)

	w := doGet(protectedRouter(), "Bearer "+token)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if w.Body.String() != `{"user_id":7,"username":"admin"}` {
		t.Errorf("claims not attached to context: %s", w.Body.String())
	}
}

func TestGetUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if id := GetUserID(c); id != 0 {
		t.Errorf("expected 0 for missing user_id, got %d", id)
	}

	c.Set(ContextUserID, uint(42))
	if id := GetUserID(c); id != 42 {
		t.Errorf("expected 42, got %d", id)
	}

	c.Set(ContextUserID, "not-a-uint")
	if id := GetUserID(c); id != 0 {
		t.Errorf("expected 0 for wrong type, got %d", id)
	}
}

func TestGetUsername(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if name := GetUsername(c); name != "" {
		t.Errorf("expected empty string for missing username, got %q", name)
	}

	c.Set(ContextUsername, "admin")
	if name := GetUsername(c); name != "admin" {
		t.Errorf("expected %q, got %q", "admin", name)
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"Bearer", ""},
		{"", ""},
		{"  Bearer  abc  ", "abc"},
	}
	for _, tt := range tests {
		if got := bearerToken(tt.header); got != tt.want {
			t.Errorf("bearerToken(%q) = %q, expected %q", tt.header, got, tt.want)
		}
	}
}
