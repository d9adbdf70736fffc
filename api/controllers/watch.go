package controllers

import (
	"net/http"

	"github.com/myflixlabs/myflix-backend/api/middleware"
	"github.com/myflixlabs/myflix-backend/api/responses"
	"github.com/myflixlabs/myflix-backend/internal/catalog"
	"github.com/myflixlabs/myflix-backend/internal/identity"
	"github.com/myflixlabs/myflix-backend/internal/player"
	"github.com/myflixlabs/myflix-backend/internal/settings"
	pkgerrors "github.com/myflixlabs/myflix-backend/pkg/errors"
	"github.com/myflixlabs/myflix-backend/pkg/logger"
)

// MovieSource resolves the embed URL for a title, enforcing the premium
// gate before handing it out.
func MovieSource(cfg settings.Service, movies catalog.Service, users identity.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if cfg == nil || movies == nil || users == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := movieIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		movie, err := movies.Get(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		user, err := users.Get(ctx, middleware.UserIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if !player.CanWatch(*movie, *user) {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "premium plan required for this title"))
			return
		}

		source, err := cfg.ResolveSource(ctx, movie.ID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"movieId": movie.ID,
			"source":  source,
		})
	}
}
