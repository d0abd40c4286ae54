package dto

import (
	"github.com/arcuspath/backend/model"
)

// SearchResponse is the envelope the search endpoints return.
type SearchResponse struct {
	Providers []model.Provider `json:"providers"`
	Total     int              `json:"total"`
	Page      int              `json:"page"`
	PageSize  int              `json:"pageSize"`
	HasMore   bool             `json:"hasMore"`
}
