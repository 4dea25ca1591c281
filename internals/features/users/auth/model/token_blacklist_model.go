package model

import (
	"time"

	"gorm.io/gorm"
)

// TokenBlacklist menampung access token yang sudah di-logout
// supaya tidak bisa dipakai lagi sebelum expired.
type TokenBlacklist struct {
	TokenBlacklistID        uint           `gorm:"column:token_blacklist_id;primaryKey" json:"token_blacklist_id"`
	TokenBlacklistToken     string         `gorm:"column:token_blacklist_token;type:text;not null;index" json:"token_blacklist_token"`
	TokenBlacklistExpiredAt time.Time      `gorm:"column:token_blacklist_expired_at;not null" json:"token_blacklist_expired_at"`
	TokenBlacklistCreatedAt time.Time      `gorm:"column:token_blacklist_created_at;autoCreateTime" json:"token_blacklist_created_at"`
	TokenBlacklistDeletedAt gorm.DeletedAt `gorm:"column:token_blacklist_deleted_at;index" json:"-"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
