package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/orgmind/assessment-engine/errors"
	"github.com/orgmind/assessment-engine/internal/domain/entities"
	"github.com/orgmind/assessment-engine/internal/domain/repositories"
	"github.com/orgmind/assessment-engine/internal/infrastructure/cache"
	"github.com/orgmind/assessment-engine/pkg/jwt"
)

// AccessService resolves caller identity from bearer tokens and answers
// organization read-access questions. Access decisions are cached in the
// injected store for cacheTTL; a cache failure falls through to the
// membership query rather than denying access.
type AccessService struct {
	userRepo   repositories.UserRepository
	orgRepo    repositories.OrganizationRepository
	jwtManager *jwt.Manager
	store      cache.Store
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewAccessService creates a new access service
func NewAccessService(
	userRepo repositories.UserRepository,
	orgRepo repositories.OrganizationRepository,
	jwtManager *jwt.Manager,
	store cache.Store,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *AccessService {
	return &AccessService{
		userRepo:   userRepo,
		orgRepo:    orgRepo,
		jwtManager: jwtManager,
		store:      store,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// ValidateToken resolves a bearer token to its active user.
func (s *AccessService) ValidateToken(ctx context.Context, token string) (*entities.User, error) {
	claims, err := s.jwtManager.ValidateAccessToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpired) {
			return nil, apperrors.ErrTokenExpired()
		}
		return nil, apperrors.ErrInvalidToken()
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrFetchFailed("user", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound()
	}
	return user, nil
}

// CanAccessOrganization reports whether the user may read the organization's
// analytics: platform admins always, members of the organization otherwise.
func (s *AccessService) CanAccessOrganization(ctx context.Context, user *entities.User, orgID uuid.UUID) (bool, error) {
	if user.IsPlatformAdmin() {
		return true, nil
	}

	key := accessCacheKey(user.ID, orgID)
	if cached, hit, err := s.store.Get(ctx, key); err == nil && hit {
		return cached == "1", nil
	} else if err != nil {
		s.logger.Warn("auth.access_cache.get_failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}

	allowed := user.OrganizationID != nil && *user.OrganizationID == orgID
	if !allowed {
		var err error
		allowed, err = s.orgRepo.IsMember(ctx, user.ID, orgID)
		if err != nil {
			return false, apperrors.ErrFetchFailed("organization membership", err)
		}
	}

	value := "0"
	if allowed {
		value = "1"
	}
	if err := s.store.Set(ctx, key, value, s.cacheTTL); err != nil {
		s.logger.Warn("auth.access_cache.set_failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}

	return allowed, nil
}

func accessCacheKey(userID, orgID uuid.UUID) string {
	return fmt.Sprintf("orgaccess:%s:%s", userID, orgID)
}
