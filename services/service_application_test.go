package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcuspath/backend/internal/repository"
	"github.com/arcuspath/backend/model"
)

func applicationFixture() *ApplicationService {
	return NewApplicationService(repository.NewMemoryProviderRepo(nil), zerolog.Nop())
}

func validDraft() ProviderDraft {
	return ProviderDraft{
		Name:        "Dr. Sam Ortiz",
		CategoryID:  "healthcare",
		Subcategory: "therapist",
		Specialties: []string{" Trauma ", "trauma", "Anxiety"},
		Languages:   []string{"English", "English", " Spanish"},
		Location:    model.Location{City: "Portland", State: "OR"},
		LGBTQOwned:  true,
	}
}

func TestCreateDraft(t *testing.T) {
	svc := applicationFixture()
	ctx := context.Background()

	p, err := svc.CreateDraft(ctx, "user-1", validDraft())
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "user-1", p.OwnerUserID)
	assert.Equal(t, model.StatusDraft, p.Status)
	assert.Equal(t, model.VerificationNone, p.Trust.Verification.Level)
	assert.Equal(t, []string{"Trauma", "Anxiety"}, p.Specialties, "specialties are trimmed and deduped")
	assert.Equal(t, []string{"English", "Spanish"}, p.Languages)
}

func TestCreateDraftRequiresNameAndCategory(t *testing.T) {
	svc := applicationFixture()
	ctx := context.Background()

	d := validDraft()
	d.Name = ""
	_, err := svc.CreateDraft(ctx, "user-1", d)
	assert.ErrorIs(t, err, ErrInvalidInput)

	d = validDraft()
	d.CategoryID = ""
	_, err = svc.CreateDraft(ctx, "user-1", d)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateDraftOwnershipAndStatus(t *testing.T) {
	svc := applicationFixture()
	ctx := context.Background()

	p, err := svc.CreateDraft(ctx, "user-1", validDraft())
	require.NoError(t, err)

	d := validDraft()
	d.Description = "Affirming trauma-informed care."
	updated, err := svc.UpdateDraft(ctx, "user-1", p.ID, d)
	require.NoError(t, err)
	assert.Equal(t, d.Description, updated.Description)

	_, err = svc.UpdateDraft(ctx, "user-2", p.ID, d)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateDraft(ctx, "user-1", "missing", d)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Submit(ctx, "user-1", p.ID)
	require.NoError(t, err)
	_, err = svc.UpdateDraft(ctx, "user-1", p.ID, d)
	assert.ErrorIs(t, err, ErrInvalidTransition, "submitted listings are no longer editable")
}

func TestSubmit(t *testing.T) {
	svc := applicationFixture()
	ctx := context.Background()

	p, err := svc.CreateDraft(ctx, "user-1", validDraft())
	require.NoError(t, err)

	_, err = svc.Submit(ctx, "user-2", p.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	submitted, err := svc.Submit(ctx, "user-1", p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPendingReview, submitted.Status)

	_, err = svc.Submit(ctx, "user-1", p.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition, "double submission is rejected")
}

func TestListOwn(t *testing.T) {
	svc := applicationFixture()
	ctx := context.Background()

	_, err := svc.CreateDraft(ctx, "user-1", validDraft())
	require.NoError(t, err)
	_, err = svc.CreateDraft(ctx, "user-1", validDraft())
	require.NoError(t, err)
	_, err = svc.CreateDraft(ctx, "user-2", validDraft())
	require.NoError(t, err)

	own, err := svc.ListOwn(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, own, 2)
	for _, p := range own {
		assert.Equal(t, "user-1", p.OwnerUserID)
	}
}
