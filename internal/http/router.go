package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/you/accountsvc/internal/http/handlers"
	"github.com/you/accountsvc/internal/http/middleware"
)

// BuildRouter wires the HTTP surface. Request logging and panic recovery are
// installed here, once, at construction; nothing registers middleware as a
// module-level side effect.
func BuildRouter(ah *handlers.AccountHandlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/", func(c *gin.Context) { c.JSON(200, gin.H{"message": "Welcome to the home page"}) })

	u := r.Group("/user")
	u.POST("/signup", ah.Signup)
	u.POST("/login", ah.Login)
	u.POST("/verify-otp", ah.VerifyOTP)
	u.POST("/resend-otp", ah.ResendOTP)
	u.POST("/forgot-password", ah.ForgotPassword)
	u.POST("/reset-password", ah.ResetPassword)

	// Every CRUD route carries the access gate; collection- and id-scoped
	// variants are treated the same.
	crud := u.Group("").Use(middleware.RequireAuthHeader())
	crud.GET("", ah.ListUsers)
	crud.GET("/user/:id", ah.GetUserByID)
	crud.PUT("", ah.UpdateUser)
	crud.PUT("/user/:id", ah.UpdateUserByID)
	crud.DELETE("", ah.DeleteUser)
	crud.DELETE("/user/:id", ah.DeleteUserByID)

	return r
}
