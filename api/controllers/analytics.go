package controllers

import (
	"net/http"

	"github.com/myflixlabs/myflix-backend/api/responses"
	"github.com/myflixlabs/myflix-backend/internal/analytics"
	pkgerrors "github.com/myflixlabs/myflix-backend/pkg/errors"
	"github.com/myflixlabs/myflix-backend/pkg/logger"
)

// WeeklyTraffic returns the Monday-to-Sunday traffic series for the
// admin dashboard chart.
func WeeklyTraffic(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}

		points, err := svc.WeeklyTraffic(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"traffic": points})
	}
}

// DashboardOverview returns catalog, account, and traffic totals.
func DashboardOverview(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}

		overview, err := svc.Overview(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, overview)
	}
}
