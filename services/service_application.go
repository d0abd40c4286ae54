package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arcuspath/backend/internal/repository"
	"github.com/arcuspath/backend/internal/utils"
	"github.com/arcuspath/backend/model"
)

// ApplicationService carries the provider onboarding flow: a draft listing
// owned by the applying user, editable until it is submitted for review.
type ApplicationService struct {
	providers repository.ProviderRepository
	log       zerolog.Logger
}

func NewApplicationService(providers repository.ProviderRepository, log zerolog.Logger) *ApplicationService {
	return &ApplicationService{providers: providers, log: log}
}

// ProviderDraft is the caller-supplied portion of a new listing.
type ProviderDraft struct {
	Name            string
	BusinessName    string
	CategoryID      string
	Subcategory     string
	Description     string
	ShortBio        string
	Specialties     []string
	Languages       []string
	Pronouns        string
	YearEstablished int
	Location        model.Location
	LGBTQOwned      bool
	Affirmation     string
}

func (s *ApplicationService) CreateDraft(ctx context.Context, ownerUserID string, d ProviderDraft) (*model.Provider, error) {
	if d.Name == "" || d.CategoryID == "" {
		return nil, ErrInvalidInput
	}

	now := time.Now().UTC()
	p := &model.Provider{
		ID:              uuid.NewString(),
		OwnerUserID:     ownerUserID,
		Name:            d.Name,
		BusinessName:    d.BusinessName,
		CategoryID:      d.CategoryID,
		Subcategory:     d.Subcategory,
		Description:     d.Description,
		ShortBio:        d.ShortBio,
		Specialties:     utils.DedupeTrimmed(d.Specialties),
		Languages:       utils.DedupeTrimmed(d.Languages),
		Pronouns:        d.Pronouns,
		YearEstablished: d.YearEstablished,
		Location:        d.Location,
		Trust: model.TrustProfile{
			Verification:         model.Verification{Level: model.VerificationNone},
			LGBTQOwned:           d.LGBTQOwned,
			AffirmationStatement: d.Affirmation,
		},
		Status:    model.StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.providers.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info().Str("provider_id", p.ID).Str("owner", ownerUserID).Msg("draft created")
	return p, nil
}

// UpdateDraft replaces the descriptive fields of a draft. Only the owner may
// edit, and only while the listing is still in draft.
func (s *ApplicationService) UpdateDraft(ctx context.Context, ownerUserID, providerID string, d ProviderDraft) (*model.Provider, error) {
	p, err := s.providers.FindByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.OwnerUserID != ownerUserID {
		return nil, ErrForbidden
	}
	if p.Status != model.StatusDraft {
		return nil, ErrInvalidTransition
	}
	if d.Name == "" || d.CategoryID == "" {
		return nil, ErrInvalidInput
	}

	p.Name = d.Name
	p.BusinessName = d.BusinessName
	p.CategoryID = d.CategoryID
	p.Subcategory = d.Subcategory
	p.Description = d.Description
	p.ShortBio = d.ShortBio
	p.Specialties = utils.DedupeTrimmed(d.Specialties)
	p.Languages = utils.DedupeTrimmed(d.Languages)
	p.Pronouns = d.Pronouns
	p.YearEstablished = d.YearEstablished
	p.Location = d.Location
	p.Trust.LGBTQOwned = d.LGBTQOwned
	p.Trust.AffirmationStatement = d.Affirmation

	if err := s.providers.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Submit moves a draft into the moderation queue.
func (s *ApplicationService) Submit(ctx context.Context, ownerUserID, providerID string) (*model.Provider, error) {
	p, err := s.providers.FindByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.OwnerUserID != ownerUserID {
		return nil, ErrForbidden
	}
	if p.Status != model.StatusDraft {
		return nil, ErrInvalidTransition
	}

	p.Status = model.StatusPendingReview
	if err := s.providers.Update(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info().Str("provider_id", p.ID).Msg("application submitted for review")
	return p, nil
}

func (s *ApplicationService) ListOwn(ctx context.Context, ownerUserID string) ([]model.Provider, error) {
	return s.providers.FindByOwner(ctx, ownerUserID)
}
