package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"counsellor/internal/handler"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	taskHandler *handler.TaskHandler,
	universityHandler *handler.UniversityHandler,
	chatHandler *handler.ChatHandler,
	interviewHandler *handler.InterviewHandler,
	jwtSecret string,
) *Router {
	r := gin.Default()
	r.Use(TraceMiddleware(), MetricsMiddleware())

	// Public
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "AI Counsellor API is running"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/api/auth/signup", authHandler.Signup)
	r.POST("/api/auth/login", authHandler.Login)

	// Protected
	api := r.Group("/api")
	api.Use(AuthMiddleware(jwtSecret))
	{
		api.GET("/profile", profileHandler.Get)
		api.PUT("/profile", profileHandler.Update)

		api.GET("/profile/tasks", taskHandler.List)
		api.POST("/profile/tasks", taskHandler.Create)
		api.PUT("/profile/tasks/reorder", taskHandler.Reorder)
		api.PUT("/profile/tasks/:id/toggle", taskHandler.Toggle)

		api.GET("/universities", universityHandler.Search)
		api.POST("/universities/shortlist", universityHandler.AddToShortlist)
		api.GET("/universities/shortlist", universityHandler.ListShortlist)
		api.POST("/universities/shortlist/:id/lock", universityHandler.Lock)
		api.POST("/universities/shortlist/:id/unlock", universityHandler.Unlock)

		api.GET("/chat/history", chatHandler.History)
		api.POST("/chat", chatHandler.Chat)

		api.GET("/interview/status", interviewHandler.Status)
		api.POST("/interview/chat", interviewHandler.Chat)
		api.POST("/interview/save", interviewHandler.Save)
		api.GET("/interview/history", interviewHandler.History)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
