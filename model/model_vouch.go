package model

import (
	"time"
)

// Vouch is a community member's attestation of a positive experience with a
// provider. The count of active vouches feeds the trust tie-breaking.
type Vouch struct {
	ID         string    `json:"id"         bson:"_id"`
	ProviderID string    `json:"providerId" bson:"provider_id"`
	UserID     string    `json:"userId"     bson:"user_id"`
	Note       string    `json:"note,omitempty" bson:"note,omitempty"`
	Active     bool      `json:"active"     bson:"active"`
	CreatedAt  time.Time `json:"createdAt"  bson:"created_at"`
}
