package identity

import (
	"context"
	"strings"

	"github.com/myflixlabs/myflix-backend/pkg/enums"
	pkgerrors "github.com/myflixlabs/myflix-backend/pkg/errors"
)

// Service defines account management operations used by the admin
// console and self-service profile updates.
type Service interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, uid string) (*User, error)
	SetRole(ctx context.Context, uid string, role enums.Role) (*User, error)
	SetPlan(ctx context.Context, uid string, plan enums.PlanStatus, expiryDate string) (*User, error)
	SetAvatar(ctx context.Context, uid string, avatarURL string) (*User, error)
	ToggleRole(ctx context.Context, uid string) (*User, error)
	TogglePlan(ctx context.Context, uid string) (*User, error)
}

type service struct {
	repo Repository
}

// NewService wires identity dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "identity repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, uid string) (*User, error) {
	if strings.TrimSpace(uid) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "uid required")
	}
	user, found, err := s.repo.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	return user, nil
}

func (s *service) SetRole(ctx context.Context, uid string, role enums.Role) (*User, error) {
	if !role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}
	return s.mutate(ctx, uid, func(user *User) {
		user.Role = role
	})
}

func (s *service) SetPlan(ctx context.Context, uid string, plan enums.PlanStatus, expiryDate string) (*User, error) {
	if !plan.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid plan status")
	}
	return s.mutate(ctx, uid, func(user *User) {
		user.PlanStatus = plan
		if expiryDate != "" {
			user.ExpiryDate = expiryDate
		}
	})
}

// ToggleRole flips an account between the standard role and the full
// admin role, the one-click action the admin console exposes.
func (s *service) ToggleRole(ctx context.Context, uid string) (*User, error) {
	return s.mutate(ctx, uid, func(user *User) {
		if user.Role == enums.RoleUser {
			user.Role = enums.RoleSuperAdmin
		} else {
			user.Role = enums.RoleUser
		}
	})
}

// TogglePlan flips between free and premium, leaving the expiry date
// untouched.
func (s *service) TogglePlan(ctx context.Context, uid string) (*User, error) {
	return s.mutate(ctx, uid, func(user *User) {
		if user.PlanStatus == enums.PlanStatusFree {
			user.PlanStatus = enums.PlanStatusPremium
		} else {
			user.PlanStatus = enums.PlanStatusFree
		}
	})
}

func (s *service) SetAvatar(ctx context.Context, uid string, avatarURL string) (*User, error) {
	if strings.TrimSpace(avatarURL) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "avatar url required")
	}
	return s.mutate(ctx, uid, func(user *User) {
		user.Avatar = avatarURL
	})
}

func (s *service) mutate(ctx context.Context, uid string, apply func(*User)) (*User, error) {
	user, err := s.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	apply(user)
	if err := s.repo.Update(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}
