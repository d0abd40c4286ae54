package dto

type ApplyReferralRequest struct {
	Code string `json:"code" validate:"required"`
}
