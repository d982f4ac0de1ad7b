package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the single error envelope returned by every handler.
type ErrorBody struct {
	Error string `json:"error"`
}

// AppError represents a structured application error with an HTTP status.
type AppError struct {
	HTTPStatus int
	Message    string
}

func (e *AppError) Error() string {
	return e.Message
}

// Pre-defined error constructors

func NewBadRequest(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusBadRequest, Message: msg}
}

func NewUnauthorized(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusUnauthorized, Message: msg}
}

func NewNotFound(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusNotFound, Message: msg}
}

// --- Gin response helpers ---

// Success sends a 200 OK response with the bare payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created replies {id} for an inserted row.
func Created(c *gin.Context, id uint) {
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// Changes replies {changes} with the number of affected rows.
func Changes(c *gin.Context, n int64) {
	c.JSON(http.StatusOK, gin.H{"changes": n})
}

// Error sends an error response. If err is an *AppError its status is used;
// otherwise a 500 carrying the raw error text is returned.
func Error(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorBody{Error: appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: err.Error()})
}

// BadRequest replies 400 with the error envelope.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: msg})
}
