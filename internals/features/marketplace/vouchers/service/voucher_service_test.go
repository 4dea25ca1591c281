package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kursusku_backend/internals/features/marketplace/vouchers/model"
)

func TestApplyDiscount_Percent(t *testing.T) {
	assert.Equal(t, 90000, ApplyDiscount(100000, model.VoucherTypePercent, 10))
	assert.Equal(t, 50000, ApplyDiscount(100000, model.VoucherTypePercent, 50))
	assert.Equal(t, 0, ApplyDiscount(100000, model.VoucherTypePercent, 100))
	assert.Equal(t, 0, ApplyDiscount(100000, model.VoucherTypePercent, 150))
	assert.Equal(t, 100000, ApplyDiscount(100000, model.VoucherTypePercent, 0))
}

func TestApplyDiscount_Fixed(t *testing.T) {
	assert.Equal(t, 75000, ApplyDiscount(100000, model.VoucherTypeFixed, 25000))
	assert.Equal(t, 0, ApplyDiscount(100000, model.VoucherTypeFixed, 100000))
	assert.Equal(t, 0, ApplyDiscount(100000, model.VoucherTypeFixed, 200000))
	assert.Equal(t, 100000, ApplyDiscount(100000, model.VoucherTypeFixed, -5))
}

func TestApplyDiscount_UnknownTypeNoDiscount(t *testing.T) {
	assert.Equal(t, 100000, ApplyDiscount(100000, "cashback", 50))
}
