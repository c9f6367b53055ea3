package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

type contentRepository struct {
	mu       sync.RWMutex
	contents map[types.ContentID]*model.Content
}

func newContentRepository() *contentRepository {
	return &contentRepository{
		contents: make(map[types.ContentID]*model.Content),
	}
}

// copyContent creates a deep copy of a content piece
func copyContent(c *model.Content) *model.Content {
	keywords := make([]string, len(c.TargetKeywords))
	copy(keywords, c.TargetKeywords)

	copied := &model.Content{
		ID:             c.ID,
		CampaignID:     c.CampaignID,
		Title:          c.Title,
		Status:         c.Status,
		Brief:          copyMap(c.Brief),
		Body:           c.Body,
		TargetKeywords: keywords,
		WordCount:      c.WordCount,
		AssignedTo:     c.AssignedTo,
		PublishedURL:   c.PublishedURL,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if c.PublishedAt != nil {
		t := *c.PublishedAt
		copied.PublishedAt = &t
	}
	return copied
}

func (r *contentRepository) Create(ctx context.Context, content *model.Content) (*model.Content, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyContent(content)
	created.CreatedAt = now
	created.UpdatedAt = now

	r.contents[created.ID] = created
	return copyContent(created), nil
}

func (r *contentRepository) Get(ctx context.Context, id types.ContentID) (*model.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.contents[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "content not found", goerr.V("id", id))
	}
	return copyContent(c), nil
}

func (r *contentRepository) ListByCampaign(ctx context.Context, campaignID types.CampaignID) ([]*model.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contents := []*model.Content{}
	for _, c := range r.contents {
		if c.CampaignID == campaignID {
			contents = append(contents, copyContent(c))
		}
	}
	return contents, nil
}

func (r *contentRepository) Update(ctx context.Context, content *model.Content) (*model.Content, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.contents[content.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "content not found", goerr.V("id", content.ID))
	}

	updated := copyContent(content)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.contents[updated.ID] = updated
	return copyContent(updated), nil
}

func (r *contentRepository) DetachProfile(ctx context.Context, profileID types.ProfileID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.contents {
		if c.AssignedTo == profileID {
			c.AssignedTo = ""
		}
	}
	return nil
}

func (r *contentRepository) DeleteByCampaign(ctx context.Context, campaignID types.CampaignID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, c := range r.contents {
		if c.CampaignID == campaignID {
			delete(r.contents, id)
		}
	}
	return nil
}
