package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "kursusku_backend/internals/features/users/auth/controller"
	"kursusku_backend/internals/middlewares"
	authMiddleware "kursusku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	api := app.Group("/api/auth")
	api.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Post("/login/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	api.Post("/refresh", ctrl.Refresh)
	api.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
}
