package resume

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	resumeGroup := r.Group("/resume")
	resumeGroup.Use(authMW)
	{
		resumeGroup.GET("/employee/:id", handler.ForEmployee)
	}

	r.GET("/auth/me/resume", authMW, handler.MyResume)
}
