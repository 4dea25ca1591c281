package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/users/auth/dto"
	"kursusku_backend/internals/features/users/auth/service"
	helper "kursusku_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	Service *service.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{Service: service.NewAuthService(db)}
}

// ➕ Register user baru
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	user, err := ctrl.Service.Register(&body)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Registrasi berhasil", fiber.Map{
		"user_id":    user.UserID,
		"user_name":  user.UserName,
		"user_email": user.UserEmail,
	})
}

// 🔑 Login email + password
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	tokens, err := ctrl.Service.Login(&body)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Login berhasil", tokens)
}

// 🔑 Login via Google ID token
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var body dto.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	tokens, err := ctrl.Service.GoogleLogin(body.IDToken)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Login Google berhasil", tokens)
}

// ♻️ Refresh access token
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var body dto.RefreshRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	tokens, err := ctrl.Service.Refresh(body.RefreshToken)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Token diperbarui", tokens)
}

// 🚪 Logout (blacklist access token)
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized - Invalid token format")
	}

	if err := ctrl.Service.Logout(fields[1]); err != nil {
		return err
	}
	return helper.JsonOK(c, "Logout berhasil", nil)
}
