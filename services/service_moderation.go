package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/arcuspath/backend/internal/repository"
	"github.com/arcuspath/backend/model"
)

// ModerationService is the admin console backend: status transitions, badge
// grants and verification-level changes. The search engine never writes any
// of this; it only observes the committed state on its next snapshot read.
type ModerationService struct {
	providers repository.ProviderRepository
	log       zerolog.Logger
}

func NewModerationService(providers repository.ProviderRepository, log zerolog.Logger) *ModerationService {
	return &ModerationService{providers: providers, log: log}
}

// allowed status transitions on the moderation path
var transitions = map[model.ProviderStatus][]model.ProviderStatus{
	model.StatusPendingReview: {model.StatusApproved, model.StatusSuspended},
	model.StatusApproved:      {model.StatusActive, model.StatusSuspended},
	model.StatusActive:        {model.StatusSuspended},
	model.StatusSuspended:     {model.StatusActive},
}

func canTransition(from, to model.ProviderStatus) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

func (s *ModerationService) Queue(ctx context.Context, limit int64, cursor string) ([]model.Provider, string, error) {
	return s.providers.ListByStatus(ctx, model.StatusPendingReview, limit, cursor)
}

// SetStatus applies one moderation transition. Unknown targets and illegal
// transitions are rejected.
func (s *ModerationService) SetStatus(ctx context.Context, providerID string, to model.ProviderStatus) (*model.Provider, error) {
	p, err := s.providers.FindByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !canTransition(p.Status, to) {
		return nil, ErrInvalidTransition
	}

	from := p.Status
	p.Status = to
	if err := s.providers.Update(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("provider_id", p.ID).
		Str("from", string(from)).
		Str("to", string(to)).
		Msg("provider status changed")
	return p, nil
}

// AwardBadge adds a badge to the provider's set. The verified badge is only
// grantable at credential-level verification or above; this is where that
// invariant is enforced, not in the search engine.
func (s *ModerationService) AwardBadge(ctx context.Context, providerID string, badge model.TrustBadge) (*model.Provider, error) {
	if !badge.Valid() {
		return nil, ErrInvalidInput
	}
	p, err := s.providers.FindByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if badge == model.BadgeVerified && p.Trust.Verification.Level.TrustScore() < model.VerificationCred.TrustScore() {
		return nil, ErrBadgeRequiresCred
	}
	if p.Trust.HasBadge(badge) {
		return p, nil
	}

	p.Trust.Badges = append(p.Trust.Badges, badge)
	if err := s.providers.Update(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info().Str("provider_id", p.ID).Str("badge", string(badge)).Msg("badge awarded")
	return p, nil
}

func (s *ModerationService) RevokeBadge(ctx context.Context, providerID string, badge model.TrustBadge) (*model.Provider, error) {
	p, err := s.providers.FindByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	kept := p.Trust.Badges[:0]
	for _, b := range p.Trust.Badges {
		if b != badge {
			kept = append(kept, b)
		}
	}
	p.Trust.Badges = kept
	if err := s.providers.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// SetVerification records the outcome of a verification review. Downgrades
// below credential level also revoke the verified badge so the badge
// invariant keeps holding.
func (s *ModerationService) SetVerification(ctx context.Context, providerID string, level model.VerificationLevel, method string) (*model.Provider, error) {
	if !level.Valid() {
		return nil, ErrInvalidInput
	}
	p, err := s.providers.FindByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	p.Trust.Verification = model.Verification{Level: level, VerifiedAt: &now, Method: method}
	if level.TrustScore() < model.VerificationCred.TrustScore() && p.Trust.HasBadge(model.BadgeVerified) {
		kept := p.Trust.Badges[:0]
		for _, b := range p.Trust.Badges {
			if b != model.BadgeVerified {
				kept = append(kept, b)
			}
		}
		p.Trust.Badges = kept
	}

	if err := s.providers.Update(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info().Str("provider_id", p.ID).Str("level", string(level)).Msg("verification level set")
	return p, nil
}
