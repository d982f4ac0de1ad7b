package handlers

import (
	"github.com/delologroup/site/internal/services"
	"github.com/delologroup/site/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MemberHandler struct {
	memberService *services.MemberService
}

func NewMemberHandler(db *gorm.DB) *MemberHandler {
	return &MemberHandler{
		memberService: services.NewMemberService(db),
	}
}

// List returns members
// GET /api/members
func (h *MemberHandler) List(c *gin.Context) {
	var req services.MemberListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	members, err := h.memberService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, members)
}

// GetByID returns a member by ID
// GET /api/members/:id
func (h *MemberHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "member")
	if !ok {
		return
	}

	member, err := h.memberService.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, member)
}

// Create creates a new member
// POST /api/members
func (h *MemberHandler) Create(c *gin.Context) {
	var req services.MemberRequest
	if !bindBody(c, &req) {
		return
	}

	id, err := h.memberService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, id)
}

// Update replaces a member
// PUT /api/members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "member")
	if !ok {
		return
	}

	var req services.MemberRequest
	if !bindBody(c, &req) {
		return
	}

	changes, err := h.memberService.Update(id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Changes(c, changes)
}

// Delete deletes a member
// DELETE /api/members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "member")
	if !ok {
		return
	}

	changes, err := h.memberService.Delete(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Changes(c, changes)
}
