package analytics

import (
	"context"

	"github.com/myflixlabs/myflix-backend/internal/catalog"
	"github.com/myflixlabs/myflix-backend/internal/identity"
	"github.com/myflixlabs/myflix-backend/pkg/enums"
	pkgerrors "github.com/myflixlabs/myflix-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// TrafficPoint is one day of simulated viewing traffic.
type TrafficPoint struct {
	Name    string          `json:"name"`
	Views   int             `json:"views"`
	Revenue decimal.Decimal `json:"revenue"`
}

// Overview aggregates the dashboard headline numbers.
type Overview struct {
	TotalMovies   int             `json:"totalMovies"`
	PremiumMovies int             `json:"premiumMovies"`
	TotalUsers    int             `json:"totalUsers"`
	PremiumUsers  int             `json:"premiumUsers"`
	WeeklyViews   int             `json:"weeklyViews"`
	WeeklyRevenue decimal.Decimal `json:"weeklyRevenue"`
}

// Service exposes the admin dashboard data. Traffic is a fixed series;
// the counts come from live collections.
type Service interface {
	WeeklyTraffic(ctx context.Context) ([]TrafficPoint, error)
	Overview(ctx context.Context) (*Overview, error)
}

type service struct {
	movies catalog.Repository
	users  identity.Repository
}

// NewService wires analytics dependencies.
func NewService(movies catalog.Repository, users identity.Repository) (Service, error) {
	if movies == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "catalog repository required")
	}
	if users == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "identity repository required")
	}
	return &service{movies: movies, users: users}, nil
}

func weeklyTraffic() []TrafficPoint {
	return []TrafficPoint{
		{Name: "Mon", Views: 4000, Revenue: decimal.NewFromInt(2400)},
		{Name: "Tue", Views: 3000, Revenue: decimal.NewFromInt(1398)},
		{Name: "Wed", Views: 2000, Revenue: decimal.NewFromInt(9800)},
		{Name: "Thu", Views: 2780, Revenue: decimal.NewFromInt(3908)},
		{Name: "Fri", Views: 1890, Revenue: decimal.NewFromInt(4800)},
		{Name: "Sat", Views: 2390, Revenue: decimal.NewFromInt(3800)},
		{Name: "Sun", Views: 3490, Revenue: decimal.NewFromInt(4300)},
	}
}

func (s *service) WeeklyTraffic(ctx context.Context) ([]TrafficPoint, error) {
	return weeklyTraffic(), nil
}

func (s *service) Overview(ctx context.Context) (*Overview, error) {
	movies, err := s.movies.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		TotalMovies:   len(movies),
		TotalUsers:    len(users),
		WeeklyRevenue: decimal.Zero,
	}
	for _, movie := range movies {
		if movie.IsPremium {
			overview.PremiumMovies++
		}
	}
	for _, user := range users {
		if user.PlanStatus == enums.PlanStatusPremium {
			overview.PremiumUsers++
		}
	}
	for _, point := range weeklyTraffic() {
		overview.WeeklyViews += point.Views
		overview.WeeklyRevenue = overview.WeeklyRevenue.Add(point.Revenue)
	}
	return overview, nil
}
