package controllers

import (
	"net/http"

	"github.com/myflixlabs/myflix-backend/api/middleware"
	"github.com/myflixlabs/myflix-backend/api/responses"
	"github.com/myflixlabs/myflix-backend/api/validators"
	"github.com/myflixlabs/myflix-backend/internal/catalog"
	"github.com/myflixlabs/myflix-backend/internal/identity"
	"github.com/myflixlabs/myflix-backend/internal/player"
	pkgerrors "github.com/myflixlabs/myflix-backend/pkg/errors"
	"github.com/myflixlabs/myflix-backend/pkg/logger"
)

type startPlaybackPayload struct {
	MovieID int `json:"movieId" validate:"required,min=1"`
}

type seekPayload struct {
	Position int `json:"position" validate:"min=0"`
}

type volumePayload struct {
	Volume int `json:"volume" validate:"min=0,max=100"`
}

type ratePayload struct {
	Rate float64 `json:"rate" validate:"required"`
}

type subtitlePayload struct {
	Track string `json:"track" validate:"required"`
}

// StartPlayback opens a playback session for a title, replacing any
// session already running.
func StartPlayback(mgr *player.Manager, movies catalog.Service, users identity.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if mgr == nil || movies == nil || users == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "player unavailable"))
			return
		}

		var payload startPlaybackPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		uid := middleware.UserIDFromContext(ctx)
		user, err := users.Get(ctx, uid)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		movie, err := movies.Get(ctx, payload.MovieID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		snapshot, err := mgr.Start(ctx, *movie, *user)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, snapshot)
	}
}

// PlaybackState returns the live snapshot of the current session.
func PlaybackState(mgr *player.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(mgr, logg, w, r, func(s *player.Session) (player.Snapshot, error) {
			return s.Snapshot(), nil
		})
	}
}

// ResumePlayback transitions a paused session back to playing.
func ResumePlayback(mgr *player.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(mgr, logg, w, r, func(s *player.Session) (player.Snapshot, error) {
			return s.Play(), nil
		})
	}
}

// PausePlayback halts the ticking session.
func PausePlayback(mgr *player.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(mgr, logg, w, r, func(s *player.Session) (player.Snapshot, error) {
			return s.Pause(), nil
		})
	}
}

// SeekPlayback jumps the playhead, clamping to the title's duration.
func SeekPlayback(mgr *player.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload seekPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		withSession(mgr, logg, w, r, func(s *player.Session) (player.Snapshot, error) {
			return s.Seek(payload.Position), nil
		})
	}
}

// SkipPlaybackBack rewinds the playhead ten seconds.
func SkipPlaybackBack(mgr *player.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(mgr, logg, w, r, func(s *player.Session) (player.Snapshot, error) {
			return s.SkipBack(), nil
		})
	}
}

// SkipPlaybackForward jumps the playhead ahead ten seconds.
func SkipPlaybackForward(mgr *player.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(mgr, logg, w, r, func(s *player.Session) (player.Snapshot, error) {
			return s.SkipForward(), nil
		})
	}
}

// SetPlaybackVolume adjusts the session volume.
func SetPlaybackVolume(mgr *player.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload volumePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		withSession(mgr, logg, w, r, func(s *player.Session) (player.Snapshot, error) {
			return s.SetVolume(payload.Volume)
		})
	}
}

// TogglePlaybackMute mutes or restores the previous volume.
func TogglePlaybackMute(mgr *player.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(mgr, logg, w, r, func(s *player.Session) (player.Snapshot, error) {
			return s.ToggleMute(), nil
		})
	}
}

// SetPlaybackRate changes the playback speed.
func SetPlaybackRate(mgr *player.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload ratePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		withSession(mgr, logg, w, r, func(s *player.Session) (player.Snapshot, error) {
			return s.SetRate(payload.Rate)
		})
	}
}

// SetPlaybackSubtitle switches the active subtitle track.
func SetPlaybackSubtitle(mgr *player.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload subtitlePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		withSession(mgr, logg, w, r, func(s *player.Session) (player.Snapshot, error) {
			return s.SetSubtitle(payload.Track)
		})
	}
}

// StopPlayback tears down the current session.
func StopPlayback(mgr *player.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if mgr == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "player unavailable"))
			return
		}
		mgr.Stop()
		responses.WriteSuccess(w, map[string]string{"status": "stopped"})
	}
}

func withSession(mgr *player.Manager, logg *logger.Logger, w http.ResponseWriter, r *http.Request, op func(*player.Session) (player.Snapshot, error)) {
	ctx := r.Context()
	if mgr == nil {
		responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "player unavailable"))
		return
	}

	session, err := mgr.Current()
	if err != nil {
		responses.WriteError(ctx, logg, w, err)
		return
	}

	snapshot, err := op(session)
	if err != nil {
		responses.WriteError(ctx, logg, w, err)
		return
	}

	responses.WriteSuccess(w, snapshot)
}
