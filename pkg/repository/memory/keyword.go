package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

type keywordRepository struct {
	mu       sync.RWMutex
	keywords map[types.KeywordID]*model.Keyword
}

func newKeywordRepository() *keywordRepository {
	return &keywordRepository{
		keywords: make(map[types.KeywordID]*model.Keyword),
	}
}

// copyKeyword creates a deep copy of a keyword
func copyKeyword(k *model.Keyword) *model.Keyword {
	copied := *k
	return &copied
}

func (r *keywordRepository) Create(ctx context.Context, keyword *model.Keyword) (*model.Keyword, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyKeyword(keyword)
	created.CreatedAt = now
	created.UpdatedAt = now

	r.keywords[created.ID] = created
	return copyKeyword(created), nil
}

func (r *keywordRepository) Get(ctx context.Context, id types.KeywordID) (*model.Keyword, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k, exists := r.keywords[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "keyword not found", goerr.V("id", id))
	}
	return copyKeyword(k), nil
}

func (r *keywordRepository) ListByCampaign(ctx context.Context, campaignID types.CampaignID) ([]*model.Keyword, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keywords := []*model.Keyword{}
	for _, k := range r.keywords {
		if k.CampaignID == campaignID {
			keywords = append(keywords, copyKeyword(k))
		}
	}
	return keywords, nil
}

func (r *keywordRepository) Update(ctx context.Context, keyword *model.Keyword) (*model.Keyword, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.keywords[keyword.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "keyword not found", goerr.V("id", keyword.ID))
	}

	updated := copyKeyword(keyword)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.keywords[updated.ID] = updated
	return copyKeyword(updated), nil
}

func (r *keywordRepository) DeleteByCampaign(ctx context.Context, campaignID types.CampaignID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, k := range r.keywords {
		if k.CampaignID == campaignID {
			delete(r.keywords, id)
		}
	}
	return nil
}
