package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"regexp"
	"strings"

	"github.com/delologroup/site/internal/models"
	"github.com/delologroup/site/pkg/logger"
	"github.com/gin-gonic/gin"
)

const maxAuditBody = 2000

// AuditRecorder persists audit entries.
type AuditRecorder interface {
	Create(entry *models.SystemLog) error
}

// AuditLog records write operations (POST/PUT/DELETE) after they complete.
// Multipart bodies are not captured.
func AuditLog(recorder AuditRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		if method != "POST" && method != "PUT" && method != "DELETE" {
			c.Next()
			return
		}

		var body string
		if c.Request.Body != nil && !strings.HasPrefix(c.ContentType(), "multipart/") {
			raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxAuditBody+1))
			var rest []byte
			if err == nil {
				rest, err = io.ReadAll(c.Request.Body)
			}
			if err != nil {
				logger.Warn().Err(err).
					Str("path", c.Request.URL.Path).
					Str("request_id", c.GetString(logger.RequestIDKey)).
					Msg("failed to read request body for audit")
			}
			c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(raw), bytes.NewReader(rest)))
			body = string(raw)
			if len(body) > maxAuditBody {
				body = body[:maxAuditBody] + "...[truncated]"
			}
			body = maskSensitiveFields(body)
		}

		c.Next()

		userID := GetUserID(c)
		username := GetUsername(c)
		status := c.Writer.Status()
		module, action := parseRouteInfo(c.FullPath(), method)

		level := "info"
		if status >= 400 {
			level = "warning"
		}

		extra, _ := json.Marshal(map[string]interface{}{
			"body":       body,
			"request_id": c.GetString(logger.RequestIDKey),
		})

		entry := &models.SystemLog{
			Level:     level,
			Module:    module,
			Action:    action,
			Message:   formatAuditMessage(username, method, c.Request.URL.Path, status),
			Username:  username,
			Method:    method,
			Path:      c.Request.URL.Path,
			Status:    status,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Extra:     string(extra),
		}
		if userID > 0 {
			entry.UserID = &userID
		}

		if err := recorder.Create(entry); err != nil {
			logger.Warn().Err(err).Str("path", entry.Path).Msg("failed to write audit log")
		}
	}
}

// parseRouteInfo extracts module and action from a Gin route pattern.
// e.g. "/api/site-content/:key" + "PUT" -> module="site-content", action="Update"
func parseRouteInfo(fullPath, method string) (module, action string) {
	path := strings.TrimPrefix(fullPath, "/api/")
	module = strings.SplitN(path, "/", 2)[0]
	if module == "" {
		module = "unknown"
	}

	switch method {
	case "POST":
		action = "Create"
	case "PUT":
		action = "Update"
	case "DELETE":
		action = "Delete"
	default:
		action = method
	}

	return module, action
}

func formatAuditMessage(username, method, path string, status int) string {
	var b strings.Builder
	b.WriteString("[Audit] ")
	b.WriteString(username)
	b.WriteString(" ")
	b.WriteString(method)
	b.WriteString(" ")
	b.WriteString(path)
	if status >= 200 && status < 300 {
		b.WriteString(" -> OK")
	} else {
		b.WriteString(" -> Failed")
	}
	return b.String()
}

var sensitiveJSONValue = regexp.MustCompile(`(?i)("(?:password|old_password|new_password|token|secret)"\s*:\s*)"(?:[^"\\]|\\.)*"`)

// maskSensitiveFields replaces credential values in a JSON body with ***.
func maskSensitiveFields(body string) string {
	return sensitiveJSONValue.ReplaceAllString(body, `$1"***"`)
}
