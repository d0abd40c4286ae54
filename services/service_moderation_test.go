package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcuspath/backend/internal/repository"
	"github.com/arcuspath/backend/model"
)

func moderationFixture(status model.ProviderStatus, level model.VerificationLevel, badges ...model.TrustBadge) *repository.MemoryProviderRepo {
	return repository.NewMemoryProviderRepo([]model.Provider{
		{
			ID:         "prov-1",
			Name:       "Test Provider",
			CategoryID: "healthcare",
			Status:     status,
			Trust: model.TrustProfile{
				Verification: model.Verification{Level: level},
				Badges:       badges,
			},
			CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	})
}

func TestSetStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    model.ProviderStatus
		to      model.ProviderStatus
		wantErr error
	}{
		{"pending to approved", model.StatusPendingReview, model.StatusApproved, nil},
		{"pending to suspended", model.StatusPendingReview, model.StatusSuspended, nil},
		{"approved to active", model.StatusApproved, model.StatusActive, nil},
		{"active to suspended", model.StatusActive, model.StatusSuspended, nil},
		{"suspended to active", model.StatusSuspended, model.StatusActive, nil},
		{"draft cannot be approved directly", model.StatusDraft, model.StatusApproved, ErrInvalidTransition},
		{"pending cannot go straight to active", model.StatusPendingReview, model.StatusActive, ErrInvalidTransition},
		{"active cannot regress to pending", model.StatusActive, model.StatusPendingReview, ErrInvalidTransition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewModerationService(moderationFixture(tc.from, model.VerificationNone), zerolog.Nop())
			p, err := svc.SetStatus(context.Background(), "prov-1", tc.to)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, p.Status)
		})
	}
}

func TestSetStatusUnknownProvider(t *testing.T) {
	svc := NewModerationService(moderationFixture(model.StatusActive, model.VerificationNone), zerolog.Nop())
	_, err := svc.SetStatus(context.Background(), "missing", model.StatusSuspended)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAwardBadgeVerifiedRequiresCredential(t *testing.T) {
	for _, level := range []model.VerificationLevel{model.VerificationNone, model.VerificationSelf} {
		svc := NewModerationService(moderationFixture(model.StatusActive, level), zerolog.Nop())
		_, err := svc.AwardBadge(context.Background(), "prov-1", model.BadgeVerified)
		assert.ErrorIs(t, err, ErrBadgeRequiresCred, "level %s must not qualify", level)
	}

	for _, level := range []model.VerificationLevel{model.VerificationCred, model.VerificationCommunity, model.VerificationArcus} {
		svc := NewModerationService(moderationFixture(model.StatusActive, level), zerolog.Nop())
		p, err := svc.AwardBadge(context.Background(), "prov-1", model.BadgeVerified)
		require.NoError(t, err, "level %s must qualify", level)
		assert.True(t, p.Trust.HasBadge(model.BadgeVerified))
	}
}

func TestAwardBadgeIdempotentAndValidated(t *testing.T) {
	repo := moderationFixture(model.StatusActive, model.VerificationNone, model.BadgeAffirming)
	svc := NewModerationService(repo, zerolog.Nop())

	p, err := svc.AwardBadge(context.Background(), "prov-1", model.BadgeAffirming)
	require.NoError(t, err)
	assert.Equal(t, []model.TrustBadge{model.BadgeAffirming}, p.Trust.Badges)

	_, err = svc.AwardBadge(context.Background(), "prov-1", model.TrustBadge("shiny"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRevokeBadge(t *testing.T) {
	repo := moderationFixture(model.StatusActive, model.VerificationCred, model.BadgeVerified, model.BadgeAffirming)
	svc := NewModerationService(repo, zerolog.Nop())

	p, err := svc.RevokeBadge(context.Background(), "prov-1", model.BadgeVerified)
	require.NoError(t, err)
	assert.False(t, p.Trust.HasBadge(model.BadgeVerified))
	assert.True(t, p.Trust.HasBadge(model.BadgeAffirming))
}

func TestSetVerificationDowngradeRevokesVerified(t *testing.T) {
	repo := moderationFixture(model.StatusActive, model.VerificationCred, model.BadgeVerified, model.BadgeOwned)
	svc := NewModerationService(repo, zerolog.Nop())

	p, err := svc.SetVerification(context.Background(), "prov-1", model.VerificationSelf, "document review")
	require.NoError(t, err)
	assert.Equal(t, model.VerificationSelf, p.Trust.Verification.Level)
	require.NotNil(t, p.Trust.Verification.VerifiedAt)
	assert.False(t, p.Trust.HasBadge(model.BadgeVerified), "downgrade below credential must revoke the verified badge")
	assert.True(t, p.Trust.HasBadge(model.BadgeOwned))
}

func TestSetVerificationUpgradeKeepsBadges(t *testing.T) {
	repo := moderationFixture(model.StatusActive, model.VerificationCred, model.BadgeVerified)
	svc := NewModerationService(repo, zerolog.Nop())

	p, err := svc.SetVerification(context.Background(), "prov-1", model.VerificationArcus, "in-person audit")
	require.NoError(t, err)
	assert.Equal(t, model.VerificationArcus, p.Trust.Verification.Level)
	assert.True(t, p.Trust.HasBadge(model.BadgeVerified))
}

func TestSetVerificationRejectsUnknownLevel(t *testing.T) {
	svc := NewModerationService(moderationFixture(model.StatusActive, model.VerificationNone), zerolog.Nop())
	_, err := svc.SetVerification(context.Background(), "prov-1", model.VerificationLevel("platinum"), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestQueueListsPendingInSubmissionOrder(t *testing.T) {
	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	repo := repository.NewMemoryProviderRepo([]model.Provider{
		{ID: "p-b", Status: model.StatusPendingReview, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "p-a", Status: model.StatusPendingReview, CreatedAt: base},
		{ID: "p-c", Status: model.StatusActive, CreatedAt: base.Add(time.Hour)},
	})
	svc := NewModerationService(repo, zerolog.Nop())

	items, next, err := svc.Queue(context.Background(), 10, "")
	require.NoError(t, err)
	assert.Empty(t, next)
	require.Len(t, items, 2)
	assert.Equal(t, "p-a", items[0].ID)
	assert.Equal(t, "p-b", items[1].ID)
}
