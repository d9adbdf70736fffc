package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myflixlabs/myflix-backend/internal/analytics"
	"github.com/myflixlabs/myflix-backend/internal/auth"
	"github.com/myflixlabs/myflix-backend/internal/catalog"
	"github.com/myflixlabs/myflix-backend/internal/identity"
	"github.com/myflixlabs/myflix-backend/internal/notifications"
	"github.com/myflixlabs/myflix-backend/internal/player"
	"github.com/myflixlabs/myflix-backend/internal/settings"
	"github.com/myflixlabs/myflix-backend/pkg/auth/session"
	"github.com/myflixlabs/myflix-backend/pkg/config"
	"github.com/myflixlabs/myflix-backend/pkg/db"
	"github.com/myflixlabs/myflix-backend/pkg/kvstore"
	"github.com/myflixlabs/myflix-backend/pkg/logger"
)

var routerDBCounter int

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	routerDBCounter++
	dbCfg := config.DBConfig{
		Driver: config.DBDriverSQLite,
		DSN:    fmt.Sprintf("file:router_test_%d?mode=memory&cache=shared", routerDBCounter),
	}
	client, err := db.New(context.Background(), dbCfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.DB().AutoMigrate(&kvstore.StoreRecord{}))

	kv := kvstore.New(client)
	movies := catalog.NewRepository(kv)
	users := identity.NewRepository(kv)
	settingsRepo := settings.NewRepository(kv)
	notificationsRepo := notifications.NewRepository(kv)
	sessions, err := session.NewManager(kv)
	require.NoError(t, err)

	cfg := &config.Config{
		App: config.AppConfig{Env: "dev", Port: "8080"},
		JWT: config.JWTConfig{Secret: "router-test-secret", Issuer: "myflix-test", ExpirationMinutes: 60},
	}

	noDelay := config.SimConfig{}
	catalogSvc, err := catalog.NewService(movies, noDelay)
	require.NoError(t, err)
	identitySvc, err := identity.NewService(users)
	require.NoError(t, err)
	settingsSvc, err := settings.NewService(settingsRepo, noDelay)
	require.NoError(t, err)
	notificationsSvc, err := notifications.NewService(notificationsRepo)
	require.NoError(t, err)
	authSvc, err := auth.NewService(users, sessions, cfg.JWT, noDelay)
	require.NoError(t, err)
	playerMgr, err := player.NewManager(settingsSvc)
	require.NoError(t, err)
	analyticsSvc, err := analytics.NewService(movies, users)
	require.NoError(t, err)

	logg := logger.New(logger.Options{ServiceName: "router-test", Output: io.Discard})

	return NewRouter(Deps{
		Config:        cfg,
		Logger:        logg,
		DB:            client,
		Sessions:      sessions,
		Auth:          authSvc,
		Catalog:       catalogSvc,
		Identity:      identitySvc,
		Settings:      settingsSvc,
		Notifications: notificationsSvc,
		Player:        playerMgr,
		Analytics:     analyticsSvc,
	})
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func loginToken(t *testing.T, handler http.Handler, email string) string {
	t.Helper()

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": email})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.Token)
	return envelope.Data.Token
}

func TestHealthLive(t *testing.T) {
	handler := newTestRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dev", rec.Header().Get("X-MyFlix-Env"))
}

func TestMoviesRequireAuth(t *testing.T) {
	handler := newTestRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/movies", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginAndListMovies(t *testing.T) {
	handler := newTestRouter(t)
	token := loginToken(t, handler, "user@myflix.com")

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/movies", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data struct {
			Movies []catalog.Movie `json:"movies"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data.Movies, 11)
}

func TestAdminRoutesRejectViewerRole(t *testing.T) {
	handler := newTestRouter(t)
	token := loginToken(t, handler, "user@myflix.com")

	rec := doJSON(t, handler, http.MethodGet, "/api/admin/v1/users", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())
}

func TestAdminRoutesAllowElevatedRole(t *testing.T) {
	handler := newTestRouter(t)
	token := loginToken(t, handler, "admin@myflix.com")

	rec := doJSON(t, handler, http.MethodGet, "/api/admin/v1/users", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data struct {
			Users []identity.User `json:"users"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data.Users, 2)
}

func TestAdminToggleRoleAndPlan(t *testing.T) {
	handler := newTestRouter(t)
	token := loginToken(t, handler, "admin@myflix.com")

	rec := doJSON(t, handler, http.MethodPost, "/api/admin/v1/users/user123/toggle-role", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data identity.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "super_admin", string(envelope.Data.Role))

	rec = doJSON(t, handler, http.MethodPost, "/api/admin/v1/users/user123/toggle-plan", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "premium", string(envelope.Data.PlanStatus))
}

func TestLogoutInvalidatesToken(t *testing.T) {
	handler := newTestRouter(t)
	token := loginToken(t, handler, "user@myflix.com")

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/movies", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSecondLoginInvalidatesFirstToken(t *testing.T) {
	handler := newTestRouter(t)
	first := loginToken(t, handler, "user@myflix.com")
	second := loginToken(t, handler, "user@myflix.com")

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/movies", first, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/movies", second, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMaintenanceGateBlocksViewers(t *testing.T) {
	handler := newTestRouter(t)
	adminToken := loginToken(t, handler, "admin@myflix.com")

	rec := doJSON(t, handler, http.MethodGet, "/api/admin/v1/settings", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data settings.Settings `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	envelope.Data.ActiveMaintenance = true

	rec = doJSON(t, handler, http.MethodPut, "/api/admin/v1/settings", adminToken, envelope.Data)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	viewerToken := loginToken(t, handler, "user@myflix.com")
	rec = doJSON(t, handler, http.MethodGet, "/api/v1/movies", viewerToken, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	adminToken = loginToken(t, handler, "admin@myflix.com")
	rec = doJSON(t, handler, http.MethodGet, "/api/v1/movies", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestPlayerLifecycleOverHTTP(t *testing.T) {
	handler := newTestRouter(t)
	token := loginToken(t, handler, "admin@myflix.com")

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/player", token, map[string]int{"movieId": 2})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var envelope struct {
		Data player.Snapshot `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 2, envelope.Data.MovieID)
	assert.Equal(t, "playing", string(envelope.Data.State))
	assert.False(t, envelope.Data.ShowAds)

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/player/pause", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	paused := envelope.Data.Position

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/player/skip-back", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, paused-10, envelope.Data.Position)

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/player/skip-forward", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, paused, envelope.Data.Position)

	rec = doJSON(t, handler, http.MethodDelete, "/api/v1/player", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/player", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPremiumTitleForbiddenForFreeViewer(t *testing.T) {
	handler := newTestRouter(t)
	token := loginToken(t, handler, "someone.new@myflix.com")

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/player", token, map[string]int{"movieId": 1})
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

	// non-premium titles play for free viewers, with ads
	rec = doJSON(t, handler, http.MethodPost, "/api/v1/player", token, map[string]int{"movieId": 2})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var envelope struct {
		Data player.Snapshot `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.ShowAds)
}

func TestNotificationFlowOverHTTP(t *testing.T) {
	handler := newTestRouter(t)
	adminToken := loginToken(t, handler, "admin@myflix.com")

	rec := doJSON(t, handler, http.MethodPost, "/api/admin/v1/notifications", adminToken, map[string]string{
		"title":   "Maintenance tonight",
		"message": "Streaming pauses at midnight",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Data notifications.Notification `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/notifications", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		Data struct {
			Notifications []notifications.Notification `json:"notifications"`
			Unread        int                          `json:"unread"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.Data.Notifications, 1)
	assert.Equal(t, 1, listed.Data.Unread)

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/notifications/"+created.Data.ID+"/read", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/notifications", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Equal(t, 0, listed.Data.Unread)
}

func TestAnalyticsOverview(t *testing.T) {
	handler := newTestRouter(t)
	token := loginToken(t, handler, "admin@myflix.com")

	rec := doJSON(t, handler, http.MethodGet, "/api/admin/v1/analytics/overview", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data analytics.Overview `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 11, envelope.Data.TotalMovies)
	assert.Equal(t, 2, envelope.Data.TotalUsers)
}
