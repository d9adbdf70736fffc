package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/myflixlabs/myflix-backend/api/middleware"
	"github.com/myflixlabs/myflix-backend/api/responses"
	"github.com/myflixlabs/myflix-backend/api/validators"
	"github.com/myflixlabs/myflix-backend/internal/notifications"
	pkgerrors "github.com/myflixlabs/myflix-backend/pkg/errors"
	"github.com/myflixlabs/myflix-backend/pkg/logger"
)

type sendNotificationPayload struct {
	Title      string `json:"title" validate:"required"`
	Message    string `json:"message" validate:"required"`
	TargetUser string `json:"targetUser"`
}

// ListNotifications returns notifications visible to the signed-in viewer.
func ListNotifications(svc notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notification service unavailable"))
			return
		}

		uid := middleware.UserIDFromContext(ctx)
		items, err := svc.ListFor(ctx, uid)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		unread, err := svc.UnreadCount(ctx, uid)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"notifications": items,
			"unread":        unread,
		})
	}
}

// UnreadNotificationCount returns how many visible notifications are
// still unread, the number the header badge polls for.
func UnreadNotificationCount(svc notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notification service unavailable"))
			return
		}

		unread, err := svc.UnreadCount(ctx, middleware.UserIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]int{"unread": unread})
	}
}

// MarkNotificationRead flips a notification to read. Already-read ids
// are a no-op.
func MarkNotificationRead(svc notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notification service unavailable"))
			return
		}

		id := chi.URLParam(r, "notificationID")
		if id == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "notification id required"))
			return
		}

		if err := svc.MarkRead(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"id": id, "status": "read"})
	}
}

// SendNotification publishes a broadcast or user-targeted notification.
func SendNotification(svc notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notification service unavailable"))
			return
		}

		var payload sendNotificationPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.Send(ctx, payload.Title, payload.Message, payload.TargetUser)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}
