package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

// Profile is the per-user record, 1:1 with an external identity.
// OrganizationID is empty until the user is onboarded.
type Profile struct {
	ID             types.ProfileID `json:"id"`
	Email          string          `json:"email"`
	FullName       string          `json:"full_name"`
	Role           types.Role      `json:"role"`
	OrganizationID types.OrgID     `json:"organization_id"`
	Settings       map[string]any  `json:"settings,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Validate rejects profiles with roles outside the closed enumeration
func (p *Profile) Validate() error {
	if p.Email == "" {
		return goerr.New("profile email is required")
	}
	if !p.Role.IsValid() {
		return goerr.Wrap(types.ErrInvalidRole, "profile role is not recognized",
			goerr.V("role", p.Role), goerr.V("profile_id", p.ID))
	}
	return nil
}

// Principal returns the acting identity derived from this profile,
// as handed to the access control evaluator.
func (p *Profile) Principal() Principal {
	return Principal{
		ID:             p.ID,
		Role:           p.Role,
		OrganizationID: p.OrganizationID,
	}
}

// Principal is the identity an authorization decision is made against:
// user, role and organization. It is supplied by the identity caller
// once per request.
type Principal struct {
	ID             types.ProfileID
	Role           types.Role
	OrganizationID types.OrgID
}
