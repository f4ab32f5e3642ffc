package auth

import (
	"github.com/JuanDavidBarr/TalentoPlus/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public registration/login endpoints and the
// token-protected "who am I". The public pair is rate limited by IP.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register",
			middleware.RateLimitByIP(0.5, 3),
			handler.Register,
		)
		authGroup.POST("/login",
			middleware.RateLimitByIP(1, 5),
			handler.Login,
		)
		authGroup.GET("/me", authMW, handler.Me)
	}
}
