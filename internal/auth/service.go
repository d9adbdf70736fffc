package auth

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/myflixlabs/myflix-backend/internal/identity"
	pkgauth "github.com/myflixlabs/myflix-backend/pkg/auth"
	"github.com/myflixlabs/myflix-backend/pkg/auth/session"
	"github.com/myflixlabs/myflix-backend/pkg/config"
	"github.com/myflixlabs/myflix-backend/pkg/enums"
	pkgerrors "github.com/myflixlabs/myflix-backend/pkg/errors"
	"github.com/myflixlabs/myflix-backend/pkg/sim"
)

const provisionedPlanDays = 30

// Service drives the Anonymous -> Authenticated -> Anonymous state
// machine. Login is by email only; unknown emails are provisioned as
// standard free accounts.
type Service interface {
	Login(ctx context.Context, email string) (*SessionResult, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*identity.User, error)
}

type service struct {
	users      identity.Repository
	sessions   *session.Manager
	jwtCfg     config.JWTConfig
	loginDelay sim.Delay
	now        func() time.Time
	avatarSeed func() string
}

// NewService wires auth dependencies.
func NewService(users identity.Repository, sessions *session.Manager, jwtCfg config.JWTConfig, simCfg config.SimConfig) (Service, error) {
	if users == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "identity repository required")
	}
	if sessions == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "session manager required")
	}
	return &service{
		users:      users,
		sessions:   sessions,
		jwtCfg:     jwtCfg,
		loginDelay: sim.Delay(simCfg.LoginDelay),
		now:        time.Now,
		avatarSeed: func() string { return strconv.FormatFloat(rand.Float64(), 'f', -1, 64) },
	}, nil
}

// Login looks up an account by exact email, provisioning one when the
// email is unseen, then establishes the durable session.
func (s *service) Login(ctx context.Context, email string) (*SessionResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email required")
	}

	if err := s.loginDelay.Wait(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "login interrupted")
	}

	user, found, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !found {
		user, err = s.provision(ctx, email)
		if err != nil {
			return nil, err
		}
	}

	accessID := session.NewAccessID()
	token, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), pkgauth.AccessTokenPayload{
		UserID: user.UID,
		Email:  user.Email,
		Role:   user.Role,
		JTI:    accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting access token")
	}

	if err := s.sessions.Save(ctx, session.Record{
		AccessID:    accessID,
		UserID:      user.UID,
		Email:       user.Email,
		Role:        user.Role.String(),
		Plan:        user.PlanStatus.String(),
		PlanExpires: user.ExpiryDate,
		AvatarURL:   user.Avatar,
	}); err != nil {
		return nil, err
	}

	return &SessionResult{User: *user, Token: token}, nil
}

func (s *service) provision(ctx context.Context, email string) (*identity.User, error) {
	now := s.now()
	user := identity.User{
		UID:        strconv.FormatInt(now.UnixMilli(), 10),
		Email:      email,
		Role:       enums.RoleUser,
		PlanStatus: enums.PlanStatusFree,
		ExpiryDate: now.Add(provisionedPlanDays * 24 * time.Hour).UTC().Format(time.RFC3339),
		Avatar:     fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", s.avatarSeed()),
	}
	if err := s.users.Append(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the session; account records are untouched.
func (s *service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// Restore re-establishes the authenticated state from the durable
// session without a fresh login.
func (s *service) Restore(ctx context.Context) (*identity.User, error) {
	rec, found, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session")
	}

	user, found, err := s.users.FindByUID(ctx, rec.UserID)
	if err != nil {
		return nil, err
	}
	if !found {
		// Session points at an account that no longer resolves; treat
		// it as signed out.
		if err := s.sessions.Clear(ctx); err != nil {
			return nil, err
		}
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session")
	}
	return user, nil
}
