package model

import (
	"time"
)

// ReferralCode is a shareable invite code owned by one user.
type ReferralCode struct {
	ID        string    `json:"id"        bson:"_id"`
	Code      string    `json:"code"      bson:"code"`
	OwnerID   string    `json:"ownerId"   bson:"owner_id"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// ReferralUse records one redemption of a code by a new member.
type ReferralUse struct {
	ID        string    `json:"id"        bson:"_id"`
	Code      string    `json:"code"      bson:"code"`
	RefereeID string    `json:"refereeId" bson:"referee_id"`
	Converted bool      `json:"converted" bson:"converted"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

type ReferralStats struct {
	Code      string `json:"code"`
	Total     int    `json:"total"`
	Converted int    `json:"converted"`
}
