package api

import (
	"net/http"

	"group-decision/internal/service"
	"group-decision/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PropertyHandler struct {
	memberships *service.MembershipService
	nominations *service.NominationService
}

func NewPropertyHandler(memberships *service.MembershipService, nominations *service.NominationService) *PropertyHandler {
	return &PropertyHandler{
		memberships: memberships,
		nominations: nominations,
	}
}

func (h *PropertyHandler) AddProperty(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}

	var req service.AddPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.L.Warn("Failed to bind AddProperty request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: property_id is required"})
		return
	}

	gp, err := h.nominations.AddProperty(c.Request.Context(), c.Param("group_id"), req.PropertyID, userID)
	if err != nil {
		writeError(c, err, "Failed to add property")
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": gp})
}

func (h *PropertyHandler) ListProperties(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}
	groupID := c.Param("group_id")
	ctx := c.Request.Context()

	filter, err := service.ParsePropertyFilter(c.DefaultQuery("filter", "active"))
	if err != nil {
		writeError(c, err, "Failed to retrieve properties")
		return
	}
	if _, err := h.memberships.RequireMember(ctx, groupID, userID); err != nil {
		writeError(c, err, "Failed to retrieve properties")
		return
	}

	props, err := h.nominations.ListProperties(ctx, groupID, filter)
	if err != nil {
		writeError(c, err, "Failed to retrieve properties")
		return
	}

	c.JSON(http.StatusOK, gin.H{"filter": filter, "properties": props})
}
