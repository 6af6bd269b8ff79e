package auth

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, authService AuthServicePort) {
	authController := &AuthController{AuthService: authService}

	r.POST("/api/signup", authController.SignUp)
	r.POST("/api/login", authController.Login)
	r.POST("/api/logout", authController.Logout)
	r.GET("/api/current_user", authController.CurrentUser)
}
