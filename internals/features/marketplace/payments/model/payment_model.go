package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusExpired  = "expired"
	PaymentStatusCanceled = "canceled"
)

type PaymentModel struct {
	PaymentID       uuid.UUID `gorm:"column:payment_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"payment_id"`
	PaymentUserID   uuid.UUID `gorm:"column:payment_user_id;type:uuid;not null;index" json:"payment_user_id"`
	PaymentCourseID uuid.UUID `gorm:"column:payment_course_id;type:uuid;not null;index" json:"payment_course_id"`

	PaymentOrderID   string  `gorm:"column:payment_order_id;size:64;uniqueIndex;not null" json:"payment_order_id"`
	PaymentAmountIDR int     `gorm:"column:payment_amount_idr;not null" json:"payment_amount_idr"`
	PaymentStatus    string  `gorm:"column:payment_status;size:20;not null;default:'pending'" json:"payment_status"`
	PaymentSnapToken *string `gorm:"column:payment_snap_token" json:"payment_snap_token,omitempty"`

	// voucher yang dipakai saat checkout (kalau ada)
	PaymentVoucherCode *string `gorm:"column:payment_voucher_code;size:50" json:"payment_voucher_code,omitempty"`

	PaymentCreatedAt time.Time  `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time  `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
	PaymentPaidAt    *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
