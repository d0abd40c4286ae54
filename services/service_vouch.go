package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arcuspath/backend/internal/repository"
	"github.com/arcuspath/backend/model"
)

// VouchService records community endorsements. After every write the
// provider's communityEndorsements counter is recomputed from the vouch
// collection so the search snapshot always reflects committed state.
type VouchService struct {
	providers repository.ProviderRepository
	vouches   repository.VouchRepository
	log       zerolog.Logger
}

func NewVouchService(providers repository.ProviderRepository, vouches repository.VouchRepository, log zerolog.Logger) *VouchService {
	return &VouchService{providers: providers, vouches: vouches, log: log}
}

func (s *VouchService) Vouch(ctx context.Context, userID, providerID, note string) (*model.Vouch, error) {
	p, err := s.providers.FindByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.Status != model.StatusActive {
		return nil, ErrNotFound
	}
	if p.OwnerUserID == userID {
		return nil, ErrSelfVouch
	}
	if _, err := s.vouches.FindByProviderAndUser(ctx, providerID, userID); err == nil {
		return nil, ErrAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	v := &model.Vouch{
		ID:         uuid.NewString(),
		ProviderID: providerID,
		UserID:     userID,
		Note:       note,
		Active:     true,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.vouches.Create(ctx, v); err != nil {
		return nil, err
	}
	if err := s.syncEndorsements(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info().Str("provider_id", providerID).Str("user_id", userID).Msg("vouch recorded")
	return v, nil
}

// Retract deactivates a member's vouch and recounts.
func (s *VouchService) Retract(ctx context.Context, userID, providerID string) error {
	v, err := s.vouches.FindByProviderAndUser(ctx, providerID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.vouches.Deactivate(ctx, v.ID); err != nil {
		return err
	}
	p, err := s.providers.FindByID(ctx, providerID)
	if err != nil {
		return err
	}
	return s.syncEndorsements(ctx, p)
}

func (s *VouchService) syncEndorsements(ctx context.Context, p *model.Provider) error {
	n, err := s.vouches.CountActiveByProvider(ctx, p.ID)
	if err != nil {
		return err
	}
	p.Trust.CommunityEndorsements = n
	return s.providers.Update(ctx, p)
}
