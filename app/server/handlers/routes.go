package handlers

import (
	"article-admin-console/app/server/middlewares"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes 绑定路由。 protectUsers 控制 /users 路由组是否需要携带有效令牌，
// 原始部署里这组路由是开放的，所以默认关闭。
func (a *App) RegisterRoutes(e *echo.Echo, protectUsers bool, signatureSecretKey string) {
	e.GET("/", a.HealthCheck)

	api := e.Group("/api")
	api.POST("/register", a.Register)
	api.POST("/articles", a.ArticleList)

	users := e.Group("/users")
	if protectUsers {
		users.Use(middlewares.UserAuth(signatureSecretKey))
	}
	users.GET("", a.UserList)
	users.GET("/:id", a.UserGet)
	users.POST("", a.UserCreate)
	users.PUT("/:id", a.UserUpdate)
	users.DELETE("/:id", a.UserDelete)
}
