package api

import (
	"net/http"

	"group-decision/internal/service"
	"group-decision/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GroupHandler struct {
	memberships *service.MembershipService
}

func NewGroupHandler(memberships *service.MembershipService) *GroupHandler {
	return &GroupHandler{memberships: memberships}
}

func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}

	var req service.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.L.Warn("Failed to bind CreateGroup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: name is required"})
		return
	}

	group, err := h.memberships.CreateGroup(c.Request.Context(), req.Name, userID)
	if err != nil {
		writeError(c, err, "Failed to create group")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Group created successfully",
		"group":   group,
	})
}

func (h *GroupHandler) JoinGroup(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}

	var req service.JoinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.L.Warn("Failed to bind JoinGroup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: invite_code is required"})
		return
	}

	group, err := h.memberships.JoinGroup(c.Request.Context(), req.InviteCode, userID)
	if err != nil {
		writeError(c, err, "Failed to join group")
		return
	}

	c.JSON(http.StatusOK, gin.H{"group": group})
}

func (h *GroupHandler) LeaveGroup(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}

	if err := h.memberships.LeaveGroup(c.Request.Context(), c.Param("group_id"), userID); err != nil {
		writeError(c, err, "Failed to leave group")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "You have left the group successfully"})
}

func (h *GroupHandler) GetUserGroups(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}

	groups, err := h.memberships.ListGroupsForUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err, "Failed to retrieve groups")
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

func (h *GroupHandler) GetGroupMembers(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}
	groupID := c.Param("group_id")
	ctx := c.Request.Context()

	if _, err := h.memberships.RequireMember(ctx, groupID, userID); err != nil {
		writeError(c, err, "Failed to retrieve members")
		return
	}

	members, err := h.memberships.ListMembers(ctx, groupID)
	if err != nil {
		writeError(c, err, "Failed to retrieve members")
		return
	}

	membersResponse := make([]gin.H, 0, len(members))
	for _, m := range members {
		membersResponse = append(membersResponse, gin.H{
			"user_id":   m.UserID,
			"username":  m.User.Username,
			"avatar":    m.User.Avatar,
			"role":      m.Role,
			"joined_at": m.JoinedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"members": membersResponse})
}
