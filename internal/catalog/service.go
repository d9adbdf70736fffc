package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/myflixlabs/myflix-backend/pkg/config"
	pkgerrors "github.com/myflixlabs/myflix-backend/pkg/errors"
	"github.com/myflixlabs/myflix-backend/pkg/sim"
)

// Service defines catalog browse and admin operations.
type Service interface {
	List(ctx context.Context) ([]Movie, error)
	Get(ctx context.Context, id int) (*Movie, error)
	Search(ctx context.Context, query string) ([]Movie, error)
	Add(ctx context.Context, movie Movie) error
	Update(ctx context.Context, movie Movie) error
	Remove(ctx context.Context, id int) error
	Import(ctx context.Context, externalID int) (*Movie, error)
}

type service struct {
	repo        Repository
	importDelay sim.Delay
}

// NewService wires catalog dependencies.
func NewService(repo Repository, simCfg config.SimConfig) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "catalog repository required")
	}
	return &service{repo: repo, importDelay: sim.Delay(simCfg.ImportDelay)}, nil
}

func (s *service) List(ctx context.Context) ([]Movie, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id int) (*Movie, error) {
	movies, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, movie := range movies {
		if movie.ID == id {
			return &movie, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "movie not found")
}

// Search matches the query case-insensitively against titles and genres.
func (s *service) Search(ctx context.Context, query string) ([]Movie, error) {
	movies, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return []Movie{}, nil
	}
	matches := []Movie{}
	for _, movie := range movies {
		if strings.Contains(strings.ToLower(movie.Title), needle) {
			matches = append(matches, movie)
			continue
		}
		for _, genre := range movie.Genres {
			if strings.Contains(strings.ToLower(genre), needle) {
				matches = append(matches, movie)
				break
			}
		}
	}
	return matches, nil
}

func (s *service) Add(ctx context.Context, movie Movie) error {
	if movie.ID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "movie id must be positive")
	}
	if strings.TrimSpace(movie.Title) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "movie title required")
	}
	return s.repo.Add(ctx, movie)
}

func (s *service) Update(ctx context.Context, movie Movie) error {
	if movie.ID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "movie id must be positive")
	}
	return s.repo.Update(ctx, movie)
}

func (s *service) Remove(ctx context.Context, id int) error {
	if id <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "movie id must be positive")
	}
	return s.repo.Remove(ctx, id)
}

// Import fabricates a record for the supplied external catalog id after
// a simulated fetch, then inserts it. Importing an id already in the
// catalog leaves the existing record in place.
func (s *service) Import(ctx context.Context, externalID int) (*Movie, error) {
	if externalID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "external id must be positive")
	}
	if err := s.importDelay.Wait(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "import interrupted")
	}

	movie := Movie{
		ID:           externalID,
		Title:        fmt.Sprintf("Imported Movie (%d)", externalID),
		Description:  "This is a simulated import from TMDB. In a real app, this would be fetched from the API.",
		PosterPath:   fmt.Sprintf("https://picsum.photos/300/450?random=%d", externalID),
		BackdropPath: fmt.Sprintf("https://picsum.photos/1200/600?random=%d", externalID),
		Genres:       []string{"Action", "Thriller"},
		Rating:       7.5,
		IsPremium:    false,
		Year:         2024,
		TrailerURL:   "https://www.youtube.com/embed/dQw4w9WgXcQ",
	}
	if err := s.repo.Add(ctx, movie); err != nil {
		return nil, err
	}
	return &movie, nil
}
