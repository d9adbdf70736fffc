package settings

import (
	"context"
	"strconv"
	"strings"

	"github.com/myflixlabs/myflix-backend/pkg/config"
	pkgerrors "github.com/myflixlabs/myflix-backend/pkg/errors"
	"github.com/myflixlabs/myflix-backend/pkg/sim"
)

// Service defines platform settings operations.
type Service interface {
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, settings Settings) error
	ResolveSource(ctx context.Context, movieID int) (string, error)
	MaintenanceActive(ctx context.Context) (bool, error)
}

type service struct {
	repo      Repository
	saveDelay sim.Delay
}

// NewService wires settings dependencies.
func NewService(repo Repository, simCfg config.SimConfig) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "settings repository required")
	}
	return &service{repo: repo, saveDelay: sim.Delay(simCfg.SettingsSaveDelay)}, nil
}

func (s *service) Get(ctx context.Context) (Settings, error) {
	return s.repo.Get(ctx)
}

// Save overwrites the singleton after a simulated acknowledgement delay.
func (s *service) Save(ctx context.Context, settings Settings) error {
	if strings.TrimSpace(settings.VideoSourcePattern) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "video source pattern required")
	}
	if err := s.saveDelay.Wait(ctx); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save interrupted")
	}
	return s.repo.Put(ctx, settings)
}

// ResolveSource renders the configured video URL template for a movie.
// The pattern carries a single {id} placeholder; the result is display
// text only, never fetched.
func (s *service) ResolveSource(ctx context.Context, movieID int) (string, error) {
	if movieID <= 0 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "movie id must be positive")
	}
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(settings.VideoSourcePattern, "{id}", strconv.Itoa(movieID)), nil
}

func (s *service) MaintenanceActive(ctx context.Context) (bool, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return false, err
	}
	return settings.ActiveMaintenance, nil
}
