package model

import (
	"time"
)

// VerificationLevel is the ordered classification of how thoroughly a
// provider's identity and credentials were checked.
type VerificationLevel string

const (
	VerificationNone      VerificationLevel = "none"
	VerificationSelf      VerificationLevel = "self"
	VerificationCred      VerificationLevel = "credential"
	VerificationCommunity VerificationLevel = "community"
	VerificationArcus     VerificationLevel = "arcus_verified"
)

// TrustScore maps a verification level to its fixed 0-4 score.
// Unknown levels score 0.
func (v VerificationLevel) TrustScore() int {
	switch v {
	case VerificationSelf:
		return 1
	case VerificationCred:
		return 2
	case VerificationCommunity:
		return 3
	case VerificationArcus:
		return 4
	default:
		return 0
	}
}

// Valid reports whether v is one of the known levels.
func (v VerificationLevel) Valid() bool {
	switch v {
	case VerificationNone, VerificationSelf, VerificationCred, VerificationCommunity, VerificationArcus:
		return true
	}
	return false
}

type TrustBadge string

const (
	BadgeVerified  TrustBadge = "verified"
	BadgeAffirming TrustBadge = "affirming"
	BadgeOwned     TrustBadge = "owned"
	BadgeTrained   TrustBadge = "trained"
)

func (b TrustBadge) Valid() bool {
	switch b {
	case BadgeVerified, BadgeAffirming, BadgeOwned, BadgeTrained:
		return true
	}
	return false
}

// InclusiveTag is a fine-grained specialization flag, independent of category
// (e.g. trans-affirming care, HIV-informed, wheelchair-accessible).
type InclusiveTag string

const (
	TagTransAffirming  InclusiveTag = "trans_affirming"
	TagNonbinaryComp   InclusiveTag = "nonbinary_competent"
	TagHIVInformed     InclusiveTag = "hiv_informed"
	TagNeuroAffirming  InclusiveTag = "neurodivergent_affirming"
	TagAccessible      InclusiveTag = "wheelchair_accessible"
	TagSlidingScale    InclusiveTag = "sliding_scale"
	TagPolyFriendly    InclusiveTag = "poly_friendly"
	TagYouthCompetent  InclusiveTag = "youth_competent"
	TagElderCompetent  InclusiveTag = "elder_competent"
	TagImmigrantServed InclusiveTag = "immigrant_serving"
)

func (t InclusiveTag) Valid() bool {
	switch t {
	case TagTransAffirming, TagNonbinaryComp, TagHIVInformed, TagNeuroAffirming,
		TagAccessible, TagSlidingScale, TagPolyFriendly, TagYouthCompetent,
		TagElderCompetent, TagImmigrantServed:
		return true
	}
	return false
}

type ProviderStatus string

const (
	StatusDraft         ProviderStatus = "draft"
	StatusPendingReview ProviderStatus = "pending_review"
	StatusApproved      ProviderStatus = "approved"
	StatusActive        ProviderStatus = "active"
	StatusSuspended     ProviderStatus = "suspended"
)

type Location struct {
	City        string   `json:"city"        bson:"city"`
	State       string   `json:"state"       bson:"state"`
	Virtual     bool     `json:"virtual"     bson:"virtual"`
	ServiceArea []string `json:"serviceArea,omitempty" bson:"service_area,omitempty"`
}

type Verification struct {
	Level      VerificationLevel `json:"level"                bson:"level"`
	VerifiedAt *time.Time        `json:"verifiedAt,omitempty" bson:"verified_at,omitempty"`
	Method     string            `json:"method,omitempty"     bson:"method,omitempty"`
}

// TrustProfile groups everything the ranking and filtering read from a
// provider besides its descriptive fields. Badges and tags are stored as
// slices but treated as sets; write paths are responsible for keeping them
// duplicate-free.
type TrustProfile struct {
	Verification          Verification   `json:"verification"          bson:"verification"`
	Badges                []TrustBadge   `json:"trustBadges"           bson:"trust_badges"`
	InclusiveTags         []InclusiveTag `json:"inclusiveTags"         bson:"inclusive_tags"`
	LGBTQOwned            bool           `json:"lgbtqOwned"            bson:"lgbtq_owned"`
	CommunityEndorsements int            `json:"communityEndorsements" bson:"community_endorsements"`
	AffirmationStatement  string         `json:"affirmationStatement,omitempty" bson:"affirmation_statement,omitempty"`
}

// HasBadge reports set membership on the badge slice.
func (t TrustProfile) HasBadge(b TrustBadge) bool {
	for _, have := range t.Badges {
		if have == b {
			return true
		}
	}
	return false
}

func (t TrustProfile) HasTag(tag InclusiveTag) bool {
	for _, have := range t.InclusiveTags {
		if have == tag {
			return true
		}
	}
	return false
}

type Provider struct {
	ID              string         `json:"id"                     bson:"_id"`
	OwnerUserID     string         `json:"ownerUserId"            bson:"owner_user_id"`
	Name            string         `json:"name"                   bson:"name"`
	BusinessName    string         `json:"businessName,omitempty" bson:"business_name,omitempty"`
	CategoryID      string         `json:"categoryId"             bson:"category_id"`
	Subcategory     string         `json:"subcategory,omitempty"  bson:"subcategory,omitempty"`
	Description     string         `json:"description"            bson:"description"`
	ShortBio        string         `json:"shortBio,omitempty"     bson:"short_bio,omitempty"`
	Specialties     []string       `json:"specialties,omitempty"  bson:"specialties,omitempty"`
	Languages       []string       `json:"languages,omitempty"    bson:"languages,omitempty"`
	Pronouns        string         `json:"pronouns,omitempty"     bson:"pronouns,omitempty"`
	YearEstablished int            `json:"yearEstablished,omitempty" bson:"year_established,omitempty"`
	Location        Location       `json:"location"               bson:"location"`
	Trust           TrustProfile   `json:"trust"                  bson:"trust"`
	Status          ProviderStatus `json:"status"                 bson:"status"`
	Rating          float64        `json:"rating,omitempty"       bson:"rating,omitempty"`
	ReviewCount     int            `json:"reviewCount,omitempty"  bson:"review_count,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"              bson:"created_at"`
	UpdatedAt       time.Time      `json:"updatedAt"              bson:"updated_at"`
}
