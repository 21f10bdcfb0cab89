package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/yantrika/yantrika-backend-go/config"
	controllers "github.com/yantrika/yantrika-backend-go/controllers"
	middleware "github.com/yantrika/yantrika-backend-go/middleware"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	// liveness
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Yantrika backend is running")
	})

	api := r.Group("/api")

	team := api.Group("/team")
	{
		team.GET("", controllers.ListTeamMembers(cfg))
		team.POST("", controllers.CreateTeamMember(cfg))
		team.PUT("/:id", controllers.UpdateTeamMember(cfg))
		team.DELETE("/:id", controllers.DeleteTeamMember(cfg))
	}

	committee := api.Group("/committee")
	{
		committee.GET("", controllers.ListCommitteeMembers(cfg))
		committee.POST("", controllers.CreateCommitteeMember(cfg))
		committee.PUT("/:id", controllers.UpdateCommitteeMember(cfg))
		committee.DELETE("/:id", controllers.DeleteCommitteeMember(cfg))
	}

	api.GET("/upcoming-events", controllers.ListUpcomingEvents(cfg))
	api.POST("/upcoming-events", controllers.CreateUpcomingEvent(cfg))

	api.GET("/past-events", controllers.ListPastEvents(cfg))
	api.POST("/past-events", controllers.CreatePastEvent(cfg))

	api.POST("/contact", controllers.SubmitContact(cfg))

	// admin
	admin := middleware.AdminKey(cfg)
	api.GET("/messages", admin, controllers.ListMessages(cfg))
	api.POST("/uploads", admin, controllers.UploadMedia(cfg))
}
