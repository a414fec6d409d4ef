package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/orgmind/assessment-engine/internal/domain/entities"
)

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	// FindByID retrieves an organization by ID; returns (nil, nil) when absent
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Organization, error)

	// IsMember reports whether the user belongs to the organization
	IsMember(ctx context.Context, userID, orgID uuid.UUID) (bool, error)
}
