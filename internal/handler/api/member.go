package api

import (
	"errors"
	"net/http"

	"library-circulation/internal/domain/member"
	reqdto "library-circulation/internal/handler/dto/request"
	resdto "library-circulation/internal/handler/dto/response"
	"library-circulation/internal/handler/middleware"
	"library-circulation/internal/usecase/commands"
	"library-circulation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MemberHandler struct {
	members *commands.MemberCommands
	reads   *queries.MemberQueries
	loans   *queries.LoanQueries
}

func NewMemberHandler(members *commands.MemberCommands, reads *queries.MemberQueries, loans *queries.LoanQueries) *MemberHandler {
	return &MemberHandler{members: members, reads: reads, loans: loans}
}

// @Summary List members
// @Tags members
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MemberResponse
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	limit, offset := parsePaging(c)

	views, err := h.reads.ListMembers(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	resp, err := resdto.FromMemberViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get a member
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} resdto.MemberResponse
// @Failure 404 {object} map[string]string
// @Router /members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	view, err := h.reads.GetMember(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromMemberView(view))
}

// @Summary Register a member
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterMemberRequest true "Member"
// @Success 201 {object} resdto.MemberResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /members [post]
func (h *MemberHandler) RegisterMember(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	role := req.Role
	if role == "" {
		role = member.RoleMember.String()
	}

	id, err := h.members.Register(c.Request.Context(), actor, commands.RegisterMemberInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		case errors.Is(err, member.ErrInvalidEmail), errors.Is(err, member.ErrInvalidRole), errors.Is(err, member.ErrEmptyName):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	view, err := h.reads.GetMember(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMemberView(view))
}

// @Summary Update a member
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Param request body reqdto.UpdateMemberRequest true "Member"
// @Success 200 {object} resdto.MemberResponse
// @Failure 404 {object} map[string]string
// @Router /members/{id} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	var req reqdto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err = h.members.Update(c.Request.Context(), actor, commands.UpdateMemberInput{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		IsActive: *req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		case errors.Is(err, commands.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		case errors.Is(err, member.ErrInvalidEmail), errors.Is(err, member.ErrInvalidRole), errors.Is(err, member.ErrEmptyName):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	view, err := h.reads.GetMember(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromMemberView(view))
}

// @Summary Deactivate a member
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /members/{id} [delete]
func (h *MemberHandler) DeactivateMember(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	if err := h.members.Deactivate(c.Request.Context(), actor, id); err != nil {
		if errors.Is(err, commands.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List a member's loans
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {array} resdto.LoanResponse
// @Router /members/{id}/loans [get]
func (h *MemberHandler) ListMemberLoans(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	views, err := h.loans.ListMemberLoans(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	resp, err := resdto.FromLoanViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
