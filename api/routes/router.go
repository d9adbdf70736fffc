package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/myflixlabs/myflix-backend/api/controllers"
	"github.com/myflixlabs/myflix-backend/api/middleware"
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
	"github.com/myflixlabs/myflix-backend/pkg/logger"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Config        *config.Config
	Logger        *logger.Logger
	DB            db.Pinger
	Sessions      session.AccessSessionChecker
	Auth          auth.Service
	Catalog       catalog.Service
	Identity      identity.Service
	Settings      settings.Service
	Notifications notifications.Service
	Player        *player.Manager
	Analytics     analytics.Service
	Metrics       prometheus.Gatherer
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, logg))
	})

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.Login(deps.Auth, logg))
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))
			r.Post("/logout", controllers.Logout(deps.Auth, logg))
			r.Get("/session", controllers.Session(deps.Auth, logg))
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))
		r.Use(middleware.Maintenance(deps.Settings, logg))

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", controllers.ListMovies(deps.Catalog, logg))
			r.Get("/search", controllers.SearchMovies(deps.Catalog, logg))
			r.Get("/{movieID}", controllers.GetMovie(deps.Catalog, logg))
			r.Get("/{movieID}/source", controllers.MovieSource(deps.Settings, deps.Catalog, deps.Identity, logg))
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", controllers.Profile(deps.Identity, logg))
			r.Put("/avatar", controllers.SetProfileAvatar(deps.Identity, logg))
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", controllers.ListNotifications(deps.Notifications, logg))
			r.Get("/unread-count", controllers.UnreadNotificationCount(deps.Notifications, logg))
			r.Post("/{notificationID}/read", controllers.MarkNotificationRead(deps.Notifications, logg))
		})

		r.Route("/player", func(r chi.Router) {
			r.Post("/", controllers.StartPlayback(deps.Player, deps.Catalog, deps.Identity, logg))
			r.Get("/", controllers.PlaybackState(deps.Player, logg))
			r.Delete("/", controllers.StopPlayback(deps.Player, logg))
			r.Post("/play", controllers.ResumePlayback(deps.Player, logg))
			r.Post("/pause", controllers.PausePlayback(deps.Player, logg))
			r.Post("/seek", controllers.SeekPlayback(deps.Player, logg))
			r.Post("/skip-back", controllers.SkipPlaybackBack(deps.Player, logg))
			r.Post("/skip-forward", controllers.SkipPlaybackForward(deps.Player, logg))
			r.Post("/volume", controllers.SetPlaybackVolume(deps.Player, logg))
			r.Post("/mute", controllers.TogglePlaybackMute(deps.Player, logg))
			r.Post("/rate", controllers.SetPlaybackRate(deps.Player, logg))
			r.Post("/subtitle", controllers.SetPlaybackSubtitle(deps.Player, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))
		r.Use(middleware.RequireElevated(logg))

		r.Route("/movies", func(r chi.Router) {
			r.Post("/", controllers.AddMovie(deps.Catalog, logg))
			r.Post("/import", controllers.ImportMovie(deps.Catalog, logg))
			r.Put("/{movieID}", controllers.UpdateMovie(deps.Catalog, logg))
			r.Delete("/{movieID}", controllers.RemoveMovie(deps.Catalog, logg))
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.ListUsers(deps.Identity, logg))
			r.Put("/{userID}/role", controllers.SetUserRole(deps.Identity, logg))
			r.Put("/{userID}/plan", controllers.SetUserPlan(deps.Identity, logg))
			r.Post("/{userID}/toggle-role", controllers.ToggleUserRole(deps.Identity, logg))
			r.Post("/{userID}/toggle-plan", controllers.ToggleUserPlan(deps.Identity, logg))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", controllers.GetSettings(deps.Settings, logg))
			r.Put("/", controllers.SaveSettings(deps.Settings, logg))
		})

		r.Post("/notifications", controllers.SendNotification(deps.Notifications, logg))

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/traffic", controllers.WeeklyTraffic(deps.Analytics, logg))
			r.Get("/overview", controllers.DashboardOverview(deps.Analytics, logg))
		})
	})

	return r
}
