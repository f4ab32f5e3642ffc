package importer

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	importGroup := r.Group("/import")
	importGroup.Use(authMW)
	{
		importGroup.POST("/upload", handler.Upload)
		importGroup.POST("/from-path", handler.FromPath)
	}
}
