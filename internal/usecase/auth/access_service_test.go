package auth

import (
	"context"
	stdErrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/orgmind/assessment-engine/errors"
	"github.com/orgmind/assessment-engine/internal/domain/entities"
	"github.com/orgmind/assessment-engine/internal/infrastructure/cache"
	"github.com/orgmind/assessment-engine/pkg/jwt"
)

type stubUserRepo struct {
	user *entities.User
}

func (s *stubUserRepo) FindByID(_ context.Context, _ uuid.UUID) (*entities.User, error) {
	return s.user, nil
}

type stubOrgRepo struct {
	member        bool
	isMemberCalls int
}

func (s *stubOrgRepo) FindByID(_ context.Context, _ uuid.UUID) (*entities.Organization, error) {
	return nil, nil
}

func (s *stubOrgRepo) IsMember(_ context.Context, _, _ uuid.UUID) (bool, error) {
	s.isMemberCalls++
	return s.member, nil
}

func newTestService(userRepo *stubUserRepo, orgRepo *stubOrgRepo, manager *jwt.Manager) *AccessService {
	return NewAccessService(userRepo, orgRepo, manager, cache.NewMemoryStore(), time.Minute, zap.NewNop())
}

func appCodeOf(t *testing.T, err error) apperrors.ErrorCode {
	t.Helper()
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func TestValidateToken(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	user := &entities.User{ID: uuid.New(), Email: "dana@example.com", Role: entities.RoleMember, IsActive: true}
	svc := newTestService(&stubUserRepo{user: user}, &stubOrgRepo{}, manager)

	token, err := manager.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	got, err := svc.ValidateToken(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("unexpected user %s", got.ID)
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	svc := newTestService(&stubUserRepo{}, &stubOrgRepo{}, manager)

	other := jwt.NewManager("other-secret", time.Hour)
	token, _ := other.GenerateAccessToken(uuid.New(), "x@example.com", "member")

	_, err := svc.ValidateToken(context.Background(), token)
	if code := appCodeOf(t, err); code != apperrors.ErrorCode_AUTH_INVALID_TOKEN {
		t.Fatalf("expected AUTH_INVALID_TOKEN, got %v", code)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	manager := jwt.NewManager("test-secret", -time.Minute)
	svc := newTestService(&stubUserRepo{}, &stubOrgRepo{}, manager)

	token, err := manager.GenerateAccessToken(uuid.New(), "x@example.com", "member")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = svc.ValidateToken(context.Background(), token)
	if code := appCodeOf(t, err); code != apperrors.ErrorCode_AUTH_TOKEN_EXPIRED {
		t.Fatalf("expected AUTH_TOKEN_EXPIRED, got %v", code)
	}
}

func TestValidateTokenUserGone(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	svc := newTestService(&stubUserRepo{}, &stubOrgRepo{}, manager)

	token, _ := manager.GenerateAccessToken(uuid.New(), "x@example.com", "member")
	_, err := svc.ValidateToken(context.Background(), token)
	if code := appCodeOf(t, err); code != apperrors.ErrorCode_AUTH_USER_NOT_FOUND {
		t.Fatalf("expected AUTH_USER_NOT_FOUND, got %v", code)
	}
}

func TestCanAccessOrganizationPlatformAdmin(t *testing.T) {
	orgRepo := &stubOrgRepo{}
	svc := newTestService(&stubUserRepo{}, orgRepo, jwt.NewManager("s", time.Hour))

	admin := &entities.User{ID: uuid.New(), Role: entities.RoleAdmin}
	allowed, err := svc.CanAccessOrganization(context.Background(), admin, uuid.New())
	if err != nil || !allowed {
		t.Fatalf("platform admin must always have access: %v %v", allowed, err)
	}
	if orgRepo.isMemberCalls != 0 {
		t.Fatalf("admin check must not hit the membership query")
	}
}

func TestCanAccessOrganizationOwnOrg(t *testing.T) {
	orgRepo := &stubOrgRepo{}
	svc := newTestService(&stubUserRepo{}, orgRepo, jwt.NewManager("s", time.Hour))

	orgID := uuid.New()
	user := &entities.User{ID: uuid.New(), Role: entities.RoleMember, OrganizationID: &orgID}

	allowed, err := svc.CanAccessOrganization(context.Background(), user, orgID)
	if err != nil || !allowed {
		t.Fatalf("expected access to own organization: %v %v", allowed, err)
	}
	if orgRepo.isMemberCalls != 0 {
		t.Fatalf("direct organization match must not hit the membership query")
	}
}

func TestCanAccessOrganizationMembershipCached(t *testing.T) {
	orgRepo := &stubOrgRepo{member: true}
	svc := newTestService(&stubUserRepo{}, orgRepo, jwt.NewManager("s", time.Hour))

	user := &entities.User{ID: uuid.New(), Role: entities.RoleMember}
	orgID := uuid.New()

	for i := 0; i < 3; i++ {
		allowed, err := svc.CanAccessOrganization(context.Background(), user, orgID)
		if err != nil || !allowed {
			t.Fatalf("call %d: expected access, got %v %v", i, allowed, err)
		}
	}
	if orgRepo.isMemberCalls != 1 {
		t.Fatalf("expected the membership query once, got %d calls", orgRepo.isMemberCalls)
	}
}

func TestCanAccessOrganizationDenied(t *testing.T) {
	orgRepo := &stubOrgRepo{member: false}
	svc := newTestService(&stubUserRepo{}, orgRepo, jwt.NewManager("s", time.Hour))

	user := &entities.User{ID: uuid.New(), Role: entities.RoleMember}
	allowed, err := svc.CanAccessOrganization(context.Background(), user, uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Fatalf("expected access denied")
	}
}
