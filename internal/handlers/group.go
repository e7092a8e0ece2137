package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mentorlink/mentorship-api/internal/dto"
	apierrors "github.com/mentorlink/mentorship-api/internal/errors"
	"github.com/mentorlink/mentorship-api/internal/middleware"
	"github.com/mentorlink/mentorship-api/internal/services"
	"github.com/mentorlink/mentorship-api/internal/utils"
)

// GroupHandler exposes study-group operations over HTTP.
type GroupHandler struct {
	groupService *services.GroupService
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(groupService *services.GroupService) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
	}
}

// CreateGroup creates a group owned by the calling student.
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	type CreateGroupRequest struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserID(c)

	group, err := h.groupService.CreateGroup(services.CreateGroupInput{
		CreatorID:   userID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondGroupError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGroupDTO(*group))
}

// GetGroup returns one group with its creator and members.
func (h *GroupHandler) GetGroup(c *gin.Context) {
	groupID, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid group ID")
		return
	}

	group, err := h.groupService.GetGroup(groupID)
	if err != nil {
		respondGroupError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToGroupDTO(*group))
}

// ListGroups returns all groups newest first with pagination.
func (h *GroupHandler) ListGroups(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	groups, total, err := h.groupService.ListGroups(params.Offset, params.Limit)
	if err != nil {
		respondGroupError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GroupListResponse{
		Groups: dto.ToGroupDTOs(groups),
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetMyGroups returns groups the caller is an accepted member of.
func (h *GroupHandler) GetMyGroups(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	groups, err := h.groupService.GetUserGroups(userID)
	if err != nil {
		respondGroupError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToGroupDTOs(groups))
}

// JoinGroup files a pending join request for the caller.
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	groupID, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid group ID")
		return
	}

	userID, _ := middleware.GetUserID(c)

	member, err := h.groupService.JoinGroup(userID, groupID)
	if err != nil {
		respondGroupError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToGroupMemberDTO(*member))
}

// RespondToJoinRequest accepts or rejects a pending join request. Routed
// behind RequireGroupCreator.
func (h *GroupHandler) RespondToJoinRequest(c *gin.Context) {
	type RespondRequest struct {
		Accept *bool `json:"accept" binding:"required"`
	}

	groupID, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid group ID")
		return
	}
	memberID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	member, err := h.groupService.RespondToJoinRequest(groupID, memberID, *req.Accept)
	if err != nil {
		respondGroupError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToGroupMemberDTO(*member))
}

// LeaveGroup removes the caller's accepted membership.
func (h *GroupHandler) LeaveGroup(c *gin.Context) {
	groupID, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid group ID")
		return
	}

	userID, _ := middleware.GetUserID(c)

	if err := h.groupService.LeaveGroup(userID, groupID); err != nil {
		respondGroupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Left group successfully"})
}

// DeleteGroup removes a group and its memberships. Routed behind
// RequireGroupCreator.
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	groupID, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid group ID")
		return
	}

	if err := h.groupService.DeleteGroup(groupID); err != nil {
		respondGroupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Group deleted successfully"})
}

func respondGroupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrGroupNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrJoinRequestNotFound),
		errors.Is(err, services.ErrMembershipNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrOnlyStudentsCreate),
		errors.Is(err, services.ErrCreatorCannotLeave):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrAlreadyRequestedToJoin),
		errors.Is(err, services.ErrJoinRequestNotPending):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
