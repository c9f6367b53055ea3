package firestore

import "github.com/seoward-lab/seoward/pkg/domain/interfaces"

var (
	ErrNotFound  = interfaces.ErrNotFound
	ErrSlugTaken = interfaces.ErrSlugTaken
)
