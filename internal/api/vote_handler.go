package api

import (
	"net/http"

	"group-decision/internal/model"
	"group-decision/internal/service"
	"group-decision/internal/tally"
	"group-decision/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VoteHandler struct {
	memberships *service.MembershipService
	votes       *service.VoteService
}

func NewVoteHandler(memberships *service.MembershipService, votes *service.VoteService) *VoteHandler {
	return &VoteHandler{
		memberships: memberships,
		votes:       votes,
	}
}

func (h *VoteHandler) CastVote(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}

	var req service.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.L.Warn("Failed to bind CastVote request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: value is required"})
		return
	}
	value, err := service.ParseVoteValue(req.Value)
	if err != nil {
		writeError(c, err, "Failed to cast vote")
		return
	}

	gp, err := h.votes.CastVote(c.Request.Context(), c.Param("group_id"), c.Param("property_id"), userID, value)
	if err != nil {
		writeError(c, err, "Failed to cast vote")
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": gp})
}

// ListVotes returns the live vote set plus per-option counts derived from it.
func (h *VoteHandler) ListVotes(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}
	groupID := c.Param("group_id")
	ctx := c.Request.Context()

	if _, err := h.memberships.RequireMember(ctx, groupID, userID); err != nil {
		writeError(c, err, "Failed to retrieve votes")
		return
	}

	votes, err := h.votes.ListVotes(ctx, groupID, c.Param("property_id"))
	if err != nil {
		writeError(c, err, "Failed to retrieve votes")
		return
	}

	values := make([]model.VoteValue, 0, len(votes))
	votesResponse := make([]gin.H, 0, len(votes))
	for _, v := range votes {
		values = append(values, v.Value)
		votesResponse = append(votesResponse, gin.H{
			"user_id":  v.UserID,
			"username": v.User.Username,
			"avatar":   v.User.Avatar,
			"value":    v.Value,
			"cast_at":  v.CastAt,
		})
	}
	counts := tally.Count(values)

	c.JSON(http.StatusOK, gin.H{
		"votes":  votesResponse,
		"counts": counts,
		"status": counts.Status(),
	})
}
