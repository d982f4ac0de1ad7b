package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/delologroup/site/internal/models"
	"github.com/delologroup/site/pkg/logger"
	"github.com/gin-gonic/gin"
)

type memoryRecorder struct {
	entries []*models.SystemLog
	err     error
}

func (m *memoryRecorder) Create(entry *models.SystemLog) error {
	m.entries = append(m.entries, entry)
	return m.err
}

func auditRouter(rec AuditRecorder) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(ContextUserID, uint(1))
		c.Set(ContextUsername, "admin")
		c.Next()
	})
	router.Use(AuditLog(rec))
	handler := func(c *gin.Context) {
		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
		}
		c.String(200, string(body))
	}
	router.GET("/api/members", handler)
	router.POST("/api/members", handler)
	router.PUT("/api/site-content/:key", handler)
	router.DELETE("/api/news/:id", func(c *gin.Context) {
		c.JSON(500, gin.H{"error": "db closed"})
	})
	return router
}

func TestAuditLog_SkipsReads(t *testing.T) {
	rec := &memoryRecorder{}
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/members", nil)
	auditRouter(rec).ServeHTTP(w, req)

	if len(rec.entries) != 0 {
		t.Errorf("GET should not be audited, got %d entries", len(rec.entries))
	}
}

func TestAuditLog_RecordsWriteAndKeepsBody(t *testing.T) {
	rec := &memoryRecorder{}
	payload := `{"name":"Ana","type":"current"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/members", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	auditRouter(rec).ServeHTTP(w, req)

	if w.Body.String() != payload {
		t.Errorf("handler should still see the full body, got %q", w.Body.String())
	}
	if len(rec.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(rec.entries))
	}

	entry := rec.entries[0]
	if entry.Module != "members" || entry.Action != "Create" {
		t.Errorf("module/action = %q/%q", entry.Module, entry.Action)
	}
	if entry.Username != "admin" || entry.UserID == nil || *entry.UserID != 1 {
		t.Errorf("user not recorded: %+v", entry)
	}
	if entry.Status != 200 || entry.Level != "info" {
		t.Errorf("status/level = %d/%s", entry.Status, entry.Level)
	}
	if !strings.Contains(entry.Extra, `\"name\":\"Ana\"`) {
		t.Errorf("extra should carry the body, got %s", entry.Extra)
	}
}

func TestAuditLog_FailedWriteIsWarning(t *testing.T) {
	rec := &memoryRecorder{err: errors.New("disk full")}
	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/news/3", nil)
	auditRouter(rec).ServeHTTP(w, req)

	if len(rec.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(rec.entries))
	}
	entry := rec.entries[0]
	if entry.Level != "warning" || entry.Action != "Delete" || entry.Module != "news" {
		t.Errorf("unexpected entry %+v", entry)
	}
	if !strings.HasSuffix(entry.Message, "Failed") {
		t.Errorf("message = %q", entry.Message)
	}
}

func TestParseRouteInfo(t *testing.T) {
	tests := []struct {
		path, method   string
		module, action string
	}{
		{"/api/members/:id", "PUT", "members", "Update"},
		{"/api/site-content/:key", "DELETE", "site-content", "Delete"},
		{"/api/upload", "POST", "upload", "Create"},
		{"", "PATCH", "unknown", "PATCH"},
	}
	for _, tt := range tests {
		module, action := parseRouteInfo(tt.path, tt.method)
		if module != tt.module || action != tt.action {
			t.Errorf("parseRouteInfo(%q, %q) = %q, %q", tt.path, tt.method, module, action)
		}
	}
}

func TestMaskSensitiveFields(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"old_password":"a","new_password":"b"}`, `{"old_password":"***","new_password":"***"}`},
		{`{"Password" : "x\"y"}`, `{"Password" : "***"}`},
		{`{"name":"password"}`, `{"name":"password"}`},
	}
	for _, tt := range tests {
		if got := maskSensitiveFields(tt.in); got != tt.want {
			t.Errorf("maskSensitiveFields(%s) = %s, expected %s", tt.in, got, tt.want)
		}
	}
}

func TestAuditLog_NilBody(t *testing.T) {
	rec := &memoryRecorder{}
	req := httptest.NewRequest("DELETE", "/api/news/3", nil)
	req.Body = nil

	w := httptest.NewRecorder()
	auditRouter(rec).ServeHTTP(w, req)

	if len(rec.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(rec.entries))
	}
}

func TestAuditLog_BodyReadErrorIsLogged(t *testing.T) {
	var buf strings.Builder
	logger.InitWithWriter("info", &buf)
	defer logger.Init("info")

	rec := &memoryRecorder{}
	body := io.MultiReader(strings.NewReader(`{"name":"Ana"`), iotest.ErrReader(errors.New("connection reset")))
	req := httptest.NewRequest("POST", "/api/members", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	auditRouter(rec).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, expected %d", w.Code, http.StatusOK)
	}
	if len(rec.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(rec.entries))
	}
	out := buf.String()
	if !strings.Contains(out, "failed to read request body for audit") || !strings.Contains(out, "connection reset") {
		t.Errorf("read error not logged: %q", out)
	}
}
