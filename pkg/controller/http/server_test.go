package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	controller "github.com/seoward-lab/seoward/pkg/controller/http"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"github.com/seoward-lab/seoward/pkg/repository/memory"
	"github.com/seoward-lab/seoward/pkg/usecase"
)

const testCrawlerSecret = "test-crawler-secret"

type testEnv struct {
	srv      *controller.Server
	repo     *memory.Memory
	uc       *usecase.UseCases
	manager  *model.Profile
	campaign *model.Campaign
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	repo := memory.New()
	uc := usecase.New(repo)

	manager, err := repo.Profile().Create(ctx, &model.Profile{
		ID:    types.NewProfileID(),
		Email: "manager@example.com",
		Role:  types.RoleCampaignManager,
	})
	gt.NoError(t, err).Required()

	_, err = uc.Organization.Create(ctx, manager.ID, "Acme SEO", "acme-seo", nil)
	gt.NoError(t, err).Required()

	manager, err = repo.Profile().Get(ctx, manager.ID)
	gt.NoError(t, err).Required()
	manager.Role = types.RoleCampaignManager
	manager, err = repo.Profile().Update(ctx, manager)
	gt.NoError(t, err).Required()

	campaign, err := uc.Campaign.Create(ctx, manager.Principal(), "Acme relaunch", "acme.example.com", nil)
	gt.NoError(t, err).Required()

	srv := controller.New(repo, uc, controller.WithCrawlerSecret(testCrawlerSecret))
	return &testEnv{srv: srv, repo: repo, uc: uc, manager: manager, campaign: campaign}
}

func (e *testEnv) do(method, path string, profileID types.ProfileID, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if profileID != "" {
		req.Header.Set("X-Auth-Profile", profileID.String())
	}
	rec := httptest.NewRecorder()
	e.srv.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) doCrawler(method, path, secret string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("X-Crawler-Secret", secret)
	rec := httptest.NewRecorder()
	e.srv.ServeHTTP(rec, req)
	return rec
}

func TestPing(t *testing.T) {
	e := newTestEnv(t)
	rec := e.do(http.MethodGet, "/ping", "", nil)
	gt.Number(t, rec.Code).Equal(http.StatusOK)
}

func TestAuthRequired(t *testing.T) {
	e := newTestEnv(t)

	t.Run("missing header is rejected", func(t *testing.T) {
		rec := e.do(http.MethodGet, "/api/campaigns", "", nil)
		gt.Number(t, rec.Code).Equal(http.StatusUnauthorized)
	})

	t.Run("unknown profile is rejected", func(t *testing.T) {
		rec := e.do(http.MethodGet, "/api/campaigns", types.NewProfileID(), nil)
		gt.Number(t, rec.Code).Equal(http.StatusUnauthorized)
	})
}

func TestTaskEndpoints(t *testing.T) {
	e := newTestEnv(t)

	t.Run("manager creates a task", func(t *testing.T) {
		rec := e.do(http.MethodPost, "/api/tasks", e.manager.ID, map[string]any{
			"campaign_id":   e.campaign.ID.String(),
			"type":          "technical",
			"title":         "Fix canonical tags",
			"priority":      "high",
			"assigned_role": "optimization_specialist",
		})
		gt.Number(t, rec.Code).Equal(http.StatusCreated)

		var task model.Task
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task)).Required()
		gt.Value(t, task.Status).Equal(types.TaskStatusPending)
		gt.Value(t, task.CreatedBy).Equal(e.manager.ID)
	})

	t.Run("viewer cannot create a task", func(t *testing.T) {
		ctx := context.Background()
		viewer, err := e.repo.Profile().Create(ctx, &model.Profile{
			ID:             types.NewProfileID(),
			Email:          "viewer@example.com",
			Role:           types.RoleViewer,
			OrganizationID: e.manager.OrganizationID,
		})
		gt.NoError(t, err).Required()

		rec := e.do(http.MethodPost, "/api/tasks", viewer.ID, map[string]any{
			"campaign_id":   e.campaign.ID.String(),
			"type":          "technical",
			"title":         "Should not exist",
			"priority":      "low",
			"assigned_role": "optimization_specialist",
		})
		gt.Number(t, rec.Code).Equal(http.StatusForbidden)
	})

	t.Run("unknown task returns 404", func(t *testing.T) {
		rec := e.do(http.MethodGet, "/api/tasks/"+types.NewTaskID().String(), e.manager.ID, nil)
		gt.Number(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestCrawlerHooks(t *testing.T) {
	e := newTestEnv(t)

	rec := e.do(http.MethodPost, "/api/campaigns/"+e.campaign.ID.String()+"/audits", e.manager.ID, map[string]any{
		"type":             "technical",
		"external_task_id": "crawl-42",
	})
	gt.Number(t, rec.Code).Equal(http.StatusCreated)

	var audit model.Audit
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &audit)).Required()

	t.Run("wrong secret is rejected", func(t *testing.T) {
		rec := e.doCrawler(http.MethodPost, "/hooks/crawler/audits/"+audit.ID.String()+"/begin", "wrong", map[string]any{})
		gt.Number(t, rec.Code).Equal(http.StatusUnauthorized)
	})

	t.Run("begin and ingest drive the audit to completion", func(t *testing.T) {
		rec := e.doCrawler(http.MethodPost, "/hooks/crawler/audits/"+audit.ID.String()+"/begin", testCrawlerSecret, map[string]any{})
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		rec = e.doCrawler(http.MethodPost, "/hooks/crawler/audits/"+audit.ID.String()+"/ingest", testCrawlerSecret, map[string]any{
			"pages": []map[string]any{
				{"url": "https://acme.example.com/", "issues": []string{"is_broken"}},
				{"url": "https://acme.example.com/about", "issues": []string{"is_broken"}},
			},
			"summary": map[string]any{"crawled": 2},
		})
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var report struct {
			Created []*model.Task `json:"created"`
			Merged  []*model.Task `json:"merged"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report)).Required()
		gt.Array(t, report.Created).Length(1)
		gt.Array(t, report.Created[0].Checklist).Length(2)

		rec = e.do(http.MethodGet, "/api/audits/"+audit.ID.String(), e.manager.ID, nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var got model.Audit
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got)).Required()
		gt.Value(t, got.Status).Equal(types.AuditStatusCompleted)
	})

	t.Run("double ingest conflicts", func(t *testing.T) {
		rec := e.doCrawler(http.MethodPost, "/hooks/crawler/audits/"+audit.ID.String()+"/ingest", testCrawlerSecret, map[string]any{
			"pages": []map[string]any{},
		})
		gt.Number(t, rec.Code).Equal(http.StatusConflict)
	})
}
