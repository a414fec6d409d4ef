package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/orgmind/assessment-engine/internal/domain/entities"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// FindByID finds an active user by ID; returns (nil, nil) when absent
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
}
