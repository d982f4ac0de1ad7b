package handlers

import (
	"strconv"

	"github.com/delologroup/site/pkg/response"
	"github.com/gin-gonic/gin"
)

// parseID reads the :id path parameter, replying 400 when it is not a
// positive integer.
func parseID(c *gin.Context, entity string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid "+entity+" id")
		return 0, false
	}
	return uint(id), true
}

// bindBody decodes the JSON request body, replying 400 on malformed input.
func bindBody(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, err.Error())
		return false
	}
	return true
}
