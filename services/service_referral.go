package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arcuspath/backend/internal/repository"
	"github.com/arcuspath/backend/model"
)

// ReferralService implements the invite program: one shareable code per
// user, single redemption per new member, and per-code stats.
type ReferralService struct {
	referrals repository.ReferralRepository
	log       zerolog.Logger
}

func NewReferralService(referrals repository.ReferralRepository, log zerolog.Logger) *ReferralService {
	return &ReferralService{referrals: referrals, log: log}
}

// GetOrCreateCode returns the caller's referral code, minting one on first
// use. Codes are short uppercase uuid prefixes, unique-indexed in storage.
func (s *ReferralService) GetOrCreateCode(ctx context.Context, userID string) (*model.ReferralCode, error) {
	existing, err := s.referrals.FindCodeByOwner(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	c := &model.ReferralCode{
		ID:        uuid.NewString(),
		Code:      "ARC-" + raw[:8],
		OwnerID:   userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.referrals.CreateCode(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Str("code", c.Code).Msg("referral code created")
	return c, nil
}

func (s *ReferralService) Apply(ctx context.Context, refereeID, code string) (*model.ReferralUse, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrInvalidInput
	}

	rc, err := s.referrals.FindCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if rc.OwnerID == refereeID {
		return nil, ErrSelfReferral
	}
	if _, err := s.referrals.FindUseByReferee(ctx, refereeID); err == nil {
		return nil, ErrCodeAlreadyUsed
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	use := &model.ReferralUse{
		ID:        uuid.NewString(),
		Code:      code,
		RefereeID: refereeID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.referrals.RecordUse(ctx, use); err != nil {
		return nil, err
	}
	s.log.Info().Str("code", code).Str("referee", refereeID).Msg("referral applied")
	return use, nil
}

func (s *ReferralService) Stats(ctx context.Context, userID string) (*model.ReferralStats, error) {
	rc, err := s.referrals.FindCodeByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &model.ReferralStats{}, nil
		}
		return nil, err
	}
	total, converted, err := s.referrals.StatsForCode(ctx, rc.Code)
	if err != nil {
		return nil, err
	}
	return &model.ReferralStats{Code: rc.Code, Total: total, Converted: converted}, nil
}
