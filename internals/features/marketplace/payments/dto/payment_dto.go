package dto

type CheckoutRequest struct {
	CourseID    string  `json:"course_id" validate:"required,uuid"`
	VoucherCode *string `json:"voucher_code,omitempty"`
}

type CheckoutResponse struct {
	OrderID   string  `json:"order_id"`
	AmountIDR int     `json:"amount_idr"`
	SnapToken *string `json:"snap_token,omitempty"`
}
