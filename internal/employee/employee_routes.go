package employee

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the administrative CRUD surface. Every route sits
// behind the JWT middleware supplied by the caller.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	employees := r.Group("/employees")
	employees.Use(authMW)
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetById)
		employees.POST("", handler.Create)
		employees.PUT("/:id", handler.Update)
		employees.DELETE("/:id", handler.Delete)
	}
}
