package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/seoward-lab/seoward/pkg/domain/interfaces"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

func runCampaignRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create and Get round trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		campaign := &model.Campaign{
			ID:             types.NewCampaignID(),
			OrganizationID: types.NewOrgID(),
			Name:           "Acme relaunch",
			Domain:         "acme.example.com",
			Status:         types.CampaignStatusActive,
			Settings: map[string]any{
				"crawler_api_key": "secret",
			},
		}

		_, err := repo.Campaign().Create(ctx, campaign)
		gt.NoError(t, err).Required()

		got, err := repo.Campaign().Get(ctx, campaign.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Domain).Equal("acme.example.com")
		gt.Value(t, got.Status).Equal(types.CampaignStatusActive)
	})

	t.Run("returned copies do not alias stored settings", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		campaign := &model.Campaign{
			ID:             types.NewCampaignID(),
			OrganizationID: types.NewOrgID(),
			Name:           "Mutation probe",
			Domain:         "probe.example.com",
			Status:         types.CampaignStatusActive,
			Settings:       map[string]any{"key": "original"},
		}
		_, err := repo.Campaign().Create(ctx, campaign)
		gt.NoError(t, err).Required()

		got, err := repo.Campaign().Get(ctx, campaign.ID)
		gt.NoError(t, err).Required()
		got.Settings["key"] = "mutated"

		again, err := repo.Campaign().Get(ctx, campaign.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, again.Settings["key"]).Equal("original")
	})

	t.Run("ListByOrganization scopes to organization", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		orgID := types.NewOrgID()

		for _, name := range []string{"one", "two"} {
			_, err := repo.Campaign().Create(ctx, &model.Campaign{
				ID: types.NewCampaignID(), OrganizationID: orgID,
				Name: name, Domain: name + ".example.com", Status: types.CampaignStatusActive,
			})
			gt.NoError(t, err).Required()
		}
		_, err := repo.Campaign().Create(ctx, &model.Campaign{
			ID: types.NewCampaignID(), OrganizationID: types.NewOrgID(),
			Name: "other", Domain: "other.example.com", Status: types.CampaignStatusActive,
		})
		gt.NoError(t, err).Required()

		campaigns, err := repo.Campaign().ListByOrganization(ctx, orgID)
		gt.NoError(t, err).Required()
		gt.Array(t, campaigns).Length(2)
	})

	t.Run("Update persists status transition", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Campaign().Create(ctx, &model.Campaign{
			ID: types.NewCampaignID(), OrganizationID: types.NewOrgID(),
			Name: "pause me", Domain: "pause.example.com", Status: types.CampaignStatusActive,
		})
		gt.NoError(t, err).Required()

		created.Status = types.CampaignStatusPaused
		updated, err := repo.Campaign().Update(ctx, created)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Status).Equal(types.CampaignStatusPaused)
	})

	t.Run("Delete removes the campaign", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Campaign().Create(ctx, &model.Campaign{
			ID: types.NewCampaignID(), OrganizationID: types.NewOrgID(),
			Name: "bye", Domain: "bye.example.com", Status: types.CampaignStatusArchived,
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Campaign().Delete(ctx, created.ID))

		_, err = repo.Campaign().Get(ctx, created.ID)
		gt.Error(t, err).Is(interfaces.ErrNotFound)
	})
}

func TestCampaignRepository_Memory(t *testing.T) {
	runCampaignRepositoryTest(t, newMemoryRepo)
}

func TestCampaignRepository_Firestore(t *testing.T) {
	runCampaignRepositoryTest(t, newFirestoreRepo)
}
