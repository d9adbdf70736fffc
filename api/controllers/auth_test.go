package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myflixlabs/myflix-backend/internal/auth"
	"github.com/myflixlabs/myflix-backend/internal/identity"
	"github.com/myflixlabs/myflix-backend/pkg/enums"
	pkgerrors "github.com/myflixlabs/myflix-backend/pkg/errors"
)

type stubAuthService struct {
	loginFn   func(ctx context.Context, email string) (*auth.SessionResult, error)
	logoutFn  func(ctx context.Context) error
	restoreFn func(ctx context.Context) (*identity.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, email string) (*auth.SessionResult, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, email)
	}
	return nil, pkgerrors.New(pkgerrors.CodeInternal, "not wired")
}

func (s *stubAuthService) Logout(ctx context.Context) error {
	if s.logoutFn != nil {
		return s.logoutFn(ctx)
	}
	return nil
}

func (s *stubAuthService) Restore(ctx context.Context) (*identity.User, error) {
	if s.restoreFn != nil {
		return s.restoreFn(ctx)
	}
	return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session")
}

func TestLoginRejectsInvalidEmail(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"not-an-email"}`))

	Login(&stubAuthService{}, testControllerLogger())(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginReturnsUserAndToken(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(_ context.Context, email string) (*auth.SessionResult, error) {
			return &auth.SessionResult{
				User:  identity.User{UID: "user123", Email: email, Role: enums.RoleUser},
				Token: "signed-token",
			}, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"user@myflix.com"}`))
	Login(svc, testControllerLogger())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data struct {
			User  identity.User `json:"user"`
			Token string        `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "user123", envelope.Data.User.UID)
	assert.Equal(t, "signed-token", envelope.Data.Token)
}

func TestSessionUnauthorizedWithoutSession(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)

	Session(&stubAuthService{}, testControllerLogger())(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
