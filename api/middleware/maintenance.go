package middleware

import (
	"context"
	"net/http"

	"github.com/myflixlabs/myflix-backend/api/responses"
	"github.com/myflixlabs/myflix-backend/pkg/enums"
	pkgerrors "github.com/myflixlabs/myflix-backend/pkg/errors"
	"github.com/myflixlabs/myflix-backend/pkg/logger"
)

type maintenanceChecker interface {
	MaintenanceActive(ctx context.Context) (bool, error)
}

// Maintenance returns 503 on viewer traffic while the maintenance flag
// is set. Elevated roles pass through so admins can turn it back off.
func Maintenance(checker maintenanceChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			active, err := checker.MaintenanceActive(r.Context())
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			if active {
				role, parseErr := enums.ParseRole(RoleFromContext(r.Context()))
				if parseErr != nil || !role.IsElevated() {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeMaintenance, "platform is under maintenance"))
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
