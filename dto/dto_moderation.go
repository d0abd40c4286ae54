package dto

import (
	"github.com/arcuspath/backend/model"
)

type BadgeRequest struct {
	Badge string `json:"badge" validate:"required"`
}

type VerificationRequest struct {
	Level  string `json:"level" validate:"required"`
	Method string `json:"method,omitempty"`
}

type QueueResponse struct {
	Items      []model.Provider `json:"items"`
	NextCursor string           `json:"next_cursor,omitempty"`
}
