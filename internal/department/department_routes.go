package department

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes exposes the department listing publicly: the
// self-registration form needs it before any token exists.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	departments := r.Group("/departments")
	{
		departments.GET("", handler.GetAll)
	}
}
