package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"user_id"`
	UserName     string    `gorm:"column:user_name;size:100;not null" json:"user_name"`
	UserEmail    string    `gorm:"column:user_email;size:255;uniqueIndex;not null" json:"user_email"`
	UserPassword *string   `gorm:"column:user_password" json:"-"` // nullable: akun Google bisa tanpa password
	UserGoogleID *string   `gorm:"column:user_google_id;uniqueIndex" json:"-"`
	UserRole     string    `gorm:"column:user_role;size:20;not null;default:'user'" json:"user_role"`
	UserIsActive bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
