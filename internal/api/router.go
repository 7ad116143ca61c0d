package api

import (
	"net/http"

	"group-decision/internal/middleware"
	"group-decision/internal/repository"
	"group-decision/internal/service"

	"github.com/gin-gonic/gin"
)

type Services struct {
	Memberships *service.MembershipService
	Nominations *service.NominationService
	Votes       *service.VoteService
	Users       *repository.UserRepository
}

func NewRouter(s Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.GinZapLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	groupHandler := NewGroupHandler(s.Memberships)
	propertyHandler := NewPropertyHandler(s.Memberships, s.Nominations)
	voteHandler := NewVoteHandler(s.Memberships, s.Votes)

	protected := r.Group("/api", middleware.AuthMiddleware(s.Users))
	{
		protected.POST("/groups", groupHandler.CreateGroup)
		protected.POST("/groups/join", groupHandler.JoinGroup)
		protected.GET("/groups", groupHandler.GetUserGroups)
		protected.GET("/groups/:group_id/members", groupHandler.GetGroupMembers)
		protected.DELETE("/groups/:group_id/members/me", groupHandler.LeaveGroup)

		protected.POST("/groups/:group_id/properties", propertyHandler.AddProperty)
		protected.GET("/groups/:group_id/properties", propertyHandler.ListProperties)
		protected.PUT("/groups/:group_id/properties/:property_id/vote", voteHandler.CastVote)
		protected.GET("/groups/:group_id/properties/:property_id/votes", voteHandler.ListVotes)
	}

	return r
}
