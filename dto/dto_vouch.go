package dto

type VouchRequest struct {
	Note string `json:"note,omitempty"`
}
