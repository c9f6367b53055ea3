package usecase

import (
	"github.com/seoward-lab/seoward/pkg/domain/interfaces"
	"github.com/seoward-lab/seoward/pkg/service/triage"
)

type UseCases struct {
	repo interfaces.Repository
	sop  triage.SOPLibrary

	Organization *OrganizationUseCase
	Profile      *ProfileUseCase
	Campaign     *CampaignUseCase
	Audit        *AuditUseCase
	Task         *TaskUseCase
	Keyword      *KeywordUseCase
	Content      *ContentUseCase
	Activity     *ActivityUseCase
}

type Option func(*UseCases)

// WithSOPLibrary overlays custom procedure texts on the built-in ones
func WithSOPLibrary(sop triage.SOPLibrary) Option {
	return func(uc *UseCases) {
		uc.sop = uc.sop.Merge(sop)
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
		sop:  triage.DefaultSOPLibrary(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	activity := NewActivityUseCase(repo)
	uc.Activity = activity
	uc.Organization = NewOrganizationUseCase(repo, activity)
	uc.Profile = NewProfileUseCase(repo, activity)
	uc.Campaign = NewCampaignUseCase(repo, activity)
	uc.Audit = NewAuditUseCase(repo, activity, uc.sop)
	uc.Task = NewTaskUseCase(repo, activity)
	uc.Keyword = NewKeywordUseCase(repo)
	uc.Content = NewContentUseCase(repo, activity)

	return uc
}
