package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCORS_AllowsAnyOrigin(t *testing.T) {
	router := gin.New()
	router.Use(CORS())
	router.GET("/api/members", func(c *gin.Context) {
		c.JSON(200, []string{})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/members", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, expected *", got)
	}
}

func TestCORS_PreflightAllowsAuthorization(t *testing.T) {
	router := gin.New()
	router.Use(CORS())
	router.PUT("/api/members/:id", func(c *gin.Context) {
		c.JSON(200, gin.H{"changes": 1})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/api/members/1", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "PUT")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, Authorization")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent && w.Code != http.StatusOK {
		t.Errorf("preflight request should return 200 or 204, got %d", w.Code)
	}

	allowHeaders := strings.ToLower(w.Header().Get("Access-Control-Allow-Headers"))
	if !strings.Contains(allowHeaders, "authorization") {
		t.Errorf("Authorization should be allowed, got %q", allowHeaders)
	}
}
