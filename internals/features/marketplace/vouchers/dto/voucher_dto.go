package dto

type CreateVoucherRequest struct {
	VoucherCode     string  `json:"voucher_code" validate:"required,min=3,max=50"`
	VoucherType     string  `json:"voucher_type" validate:"required,oneof=percent fixed"`
	VoucherValue    int     `json:"voucher_value" validate:"required,gt=0"`
	VoucherQuota    int     `json:"voucher_quota" validate:"required,gt=0"`
	VoucherExpires  *string `json:"voucher_expires_at,omitempty"`
	VoucherIsActive *bool   `json:"voucher_is_active,omitempty"`
}

type UpdateVoucherRequest struct {
	VoucherQuota    *int  `json:"voucher_quota,omitempty" validate:"omitempty,gt=0"`
	VoucherIsActive *bool `json:"voucher_is_active,omitempty"`
}
