package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	VoucherTypePercent = "percent"
	VoucherTypeFixed   = "fixed"
)

type VoucherModel struct {
	VoucherID   uuid.UUID `gorm:"column:voucher_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"voucher_id"`
	VoucherCode string    `gorm:"column:voucher_code;size:50;uniqueIndex;not null" json:"voucher_code"`

	// percent → VoucherValue = persen diskon (1..100)
	// fixed   → VoucherValue = potongan rupiah
	VoucherType  string `gorm:"column:voucher_type;size:10;not null" json:"voucher_type"`
	VoucherValue int    `gorm:"column:voucher_value;not null" json:"voucher_value"`

	VoucherQuota     int        `gorm:"column:voucher_quota;not null;default:0" json:"voucher_quota"`
	VoucherUsedCount int        `gorm:"column:voucher_used_count;not null;default:0" json:"voucher_used_count"`
	VoucherExpiresAt *time.Time `gorm:"column:voucher_expires_at" json:"voucher_expires_at,omitempty"`
	VoucherIsActive  bool       `gorm:"column:voucher_is_active;not null;default:true" json:"voucher_is_active"`

	VoucherCreatedAt time.Time `gorm:"column:voucher_created_at;autoCreateTime" json:"voucher_created_at"`
	VoucherUpdatedAt time.Time `gorm:"column:voucher_updated_at;autoUpdateTime" json:"voucher_updated_at"`
}

func (VoucherModel) TableName() string {
	return "vouchers"
}
