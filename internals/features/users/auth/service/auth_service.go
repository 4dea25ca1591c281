package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kursusku_backend/internals/configs"
	authDTO "kursusku_backend/internals/features/users/auth/dto"
	authModel "kursusku_backend/internals/features/users/auth/model"
	userModel "kursusku_backend/internals/features/users/user/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

/* ==========================
   Register & Login
========================== */

func (s *AuthService) Register(req *authDTO.RegisterRequest) (*userModel.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(req.UserEmail))

	var count int64
	if err := s.DB.Model(&userModel.UserModel{}).
		Where("user_email = ?", email).
		Count(&count).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal cek email")
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
	}
	hashedStr := string(hashed)

	user := userModel.UserModel{
		UserName:     strings.TrimSpace(req.UserName),
		UserEmail:    email,
		UserPassword: &hashedStr,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
	}
	return &user, nil
}

func (s *AuthService) Login(req *authDTO.LoginRequest) (*authDTO.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.UserEmail))

	var user userModel.UserModel
	if err := s.DB.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal login")
	}
	if !user.UserIsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if user.UserPassword == nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Akun ini login lewat Google")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.UserPassword), []byte(req.UserPassword)); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	return s.issueTokens(&user)
}

/* ==========================
   Google Login
========================== */

// GoogleLogin memverifikasi ID token ke Google, lalu find-or-create user.
func (s *AuthService) GoogleLogin(idToken string) (*authDTO.TokenResponse, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		log.Println("[ERROR] Verifikasi Google ID token gagal:", err)
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Google ID token tidak valid")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Gagal decode Google ID token")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	if email == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Google token tanpa email")
	}

	var user userModel.UserModel
	err = s.DB.Where("user_google_id = ? OR user_email = ?", claimSet.Sub, email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		name := claimSet.Name
		if name == "" {
			name = email
		}
		sub := claimSet.Sub
		user = userModel.UserModel{
			UserName:     name,
			UserEmail:    email,
			UserGoogleID: &sub,
		}
		if err := s.DB.Create(&user).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user Google")
		}
	case err != nil:
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal query user")
	default:
		// link google id kalau user lama belum punya
		if user.UserGoogleID == nil {
			sub := claimSet.Sub
			_ = s.DB.Model(&user).Update("user_google_id", sub).Error
			user.UserGoogleID = &sub
		}
	}

	if !user.UserIsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	return s.issueTokens(&user)
}

/* ==========================
   Refresh & Logout
========================== */

func (s *AuthService) Refresh(refreshToken string) (*authDTO.TokenResponse, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(refreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	idStr, _ := claims["id"].(string)
	userID, err := uuid.Parse(strings.TrimSpace(idStr))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tanpa user id")
	}

	var user userModel.UserModel
	if err := s.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.UserIsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	return s.issueTokens(&user)
}

// Logout memasukkan access token ke blacklist sampai expired.
func (s *AuthService) Logout(tokenString string) error {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	_, _ = parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})

	expiredAt := time.Now().Add(accessTTLDefault)
	if exp, ok := claims["exp"].(float64); ok {
		expiredAt = time.Unix(int64(exp), 0)
	}

	entry := authModel.TokenBlacklist{
		TokenBlacklistToken:     tokenString,
		TokenBlacklistExpiredAt: expiredAt,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal logout")
	}
	return nil
}

/* ==========================
   Token builder
========================== */

func (s *AuthService) issueTokens(user *userModel.UserModel) (*authDTO.TokenResponse, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	refreshSecret := strings.TrimSpace(configs.JWTRefreshSecret)
	if refreshSecret == "" {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}

	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"id":        user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(secret))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat access token")
	}

	refreshClaims := jwt.MapClaims{
		"id":  user.UserID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(refreshSecret))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	return &authDTO.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		UserID:       user.UserID.String(),
		UserName:     user.UserName,
		UserRole:     user.UserRole,
	}, nil
}
