package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"kursusku_backend/internals/features/marketplace/vouchers/model"
)

var (
	ErrVoucherNotFound = errors.New("voucher not found")
	ErrVoucherInvalid  = errors.New("voucher is not applicable")
)

type VoucherService struct {
	DB *gorm.DB
}

func NewVoucherService(db *gorm.DB) *VoucherService {
	return &VoucherService{DB: db}
}

// ApplyDiscount menghitung harga setelah diskon. Harga tidak pernah negatif.
func ApplyDiscount(priceIDR int, voucherType string, value int) int {
	switch voucherType {
	case model.VoucherTypePercent:
		if value <= 0 {
			return priceIDR
		}
		if value >= 100 {
			return 0
		}
		return priceIDR - priceIDR*value/100
	case model.VoucherTypeFixed:
		if value <= 0 {
			return priceIDR
		}
		if value >= priceIDR {
			return 0
		}
		return priceIDR - value
	default:
		return priceIDR
	}
}

// Redeem memakai voucher secara atomik: kuota dicek dan dinaikkan dalam satu
// UPDATE bersyarat, jadi dua checkout paralel tidak bisa melewati kuota.
func (s *VoucherService) Redeem(ctx context.Context, code string) (*model.VoucherModel, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	var voucher model.VoucherModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("voucher_code = ?", code).First(&voucher).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrVoucherNotFound
			}
			return err
		}

		if !voucher.VoucherIsActive {
			return ErrVoucherInvalid
		}
		if voucher.VoucherExpiresAt != nil && voucher.VoucherExpiresAt.Before(time.Now()) {
			return ErrVoucherInvalid
		}

		res := tx.Model(&model.VoucherModel{}).
			Where("voucher_id = ? AND voucher_used_count < voucher_quota", voucher.VoucherID).
			Update("voucher_used_count", gorm.Expr("voucher_used_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVoucherInvalid
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &voucher, nil
}
