package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HealthCheck is GET /api/v1/health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Job board API is running!",
		"status":  "healthy",
	})
}

// NewRouter wires every route onto a gin engine.
func NewRouter(jobs *JobHandler, sessions *SessionHandler, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	config := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)

		admin := api.Group("/admin")
		admin.GET("/jobs", jobs.ListJobs)
		admin.POST("/jobs", jobs.CreateJob)
		admin.PUT("/jobs/:id", jobs.UpdateJob)
		admin.DELETE("/jobs/:id", jobs.DeleteJob)
		admin.GET("/jobs/:id/content", jobs.GetContent)

		admin.POST("/sessions", sessions.Open)
		admin.GET("/sessions/:sid", sessions.Get)
		admin.POST("/sessions/:sid/ops", sessions.Apply)
		admin.POST("/sessions/:sid/submit", sessions.Submit)
		admin.DELETE("/sessions/:sid", sessions.Close)

		api.GET("/mobile/jobs/:id", jobs.MobileJob)
	}

	r.GET("/admin/jobs/:id/preview", jobs.Preview)
	r.GET("/jobs/:id", jobs.PublicPage)
	r.GET("/jobs/:id/pdf", jobs.PDF)

	return r
}
