package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Organization() OrganizationRepository
	Profile() ProfileRepository
	Campaign() CampaignRepository
	Audit() AuditRepository
	Task() TaskRepository
	Keyword() KeywordRepository
	Content() ContentRepository
	Activity() ActivityRepository

	Close() error
}
