package rankings

//go:generate mockgen -destination=mock/mock_service.go -package=mockrankings -source=service.go

import (
	"context"
	"sort"

	"github.com/KirkDiggler/vgc-companion/internal/clients/vgcapi"
	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
	"github.com/KirkDiggler/vgc-companion/internal/notify/discord"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Service browses monthly usage rankings
type Service interface {
	// Months lists available months, newest first
	Months(ctx context.Context) ([]string, error)
	Formats(ctx context.Context, month string) ([]string, error)

	// FormatsByMonth fetches formats for several months at once
	FormatsByMonth(ctx context.Context, months ...string) (map[string][]string, error)

	// Rankings fetches a rankings page. An empty month means the newest one and
	// an empty format means that month's first format.
	Rankings(ctx context.Context, query *vgcapi.RankingsQuery) (*Page, error)

	Games(ctx context.Context) ([]*vgcapi.Game, error)
	GameFormats(ctx context.Context) ([]*vgcapi.GameFormat, error)

	// Share posts a rankings page to Discord
	Share(ctx context.Context, page *Page) error
}

// Page is a resolved rankings query and its results
type Page struct {
	Month    string
	Format   string
	Rankings []*vgcapi.Ranking
}

type service struct {
	client   vgcapi.Client
	notifier discord.Notifier
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Client   vgcapi.Client
	Notifier discord.Notifier // Optional
}

// NewService creates a new rankings service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("vgcapi client is required")
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = discord.Nop{}
	}

	return &service{
		client:   cfg.Client,
		notifier: notifier,
	}
}

func (s *service) Months(ctx context.Context) ([]string, error) {
	months, err := s.client.ListMonths(ctx)
	if err != nil {
		return nil, vgcerr.Wrap(err, "failed to list months")
	}

	sorted := make([]string, len(months))
	copy(sorted, months)
	// months are YYYY-MM so lexical order is chronological
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))
	return sorted, nil
}

func (s *service) Formats(ctx context.Context, month string) ([]string, error) {
	if month == "" {
		return nil, vgcerr.InvalidArgument("month is required")
	}

	formats, err := s.client.ListFormats(ctx, month)
	if err != nil {
		return nil, vgcerr.Wrapf(err, "failed to list formats for %s", month)
	}
	return formats, nil
}

func (s *service) FormatsByMonth(ctx context.Context, months ...string) (map[string][]string, error) {
	results := make([][]string, len(months))

	g, ctx := errgroup.WithContext(ctx)
	for i, month := range months {
		g.Go(func() error {
			formats, err := s.Formats(ctx, month)
			if err != nil {
				return err
			}
			results[i] = formats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string][]string, len(months))
	for i, month := range months {
		out[month] = results[i]
	}
	return out, nil
}

func (s *service) Rankings(ctx context.Context, query *vgcapi.RankingsQuery) (*Page, error) {
	q := vgcapi.RankingsQuery{}
	if query != nil {
		q = *query
	}
	if q.Rating < 0 || q.Limit < 0 {
		return nil, vgcerr.InvalidArgument("rating and limit cannot be negative")
	}

	if q.Month == "" {
		months, err := s.Months(ctx)
		if err != nil {
			return nil, err
		}
		if len(months) == 0 {
			return nil, vgcerr.NotFound("No ranking data is available yet.")
		}
		q.Month = months[0]
	}

	if q.Format == "" {
		formats, err := s.Formats(ctx, q.Month)
		if err != nil {
			return nil, err
		}
		if len(formats) == 0 {
			return nil, vgcerr.NotFoundf("No formats are available for %s.", q.Month).
				WithMeta("month", q.Month)
		}
		q.Format = formats[0]
	}

	rankings, err := s.client.GetRankings(ctx, &q)
	if err != nil {
		return nil, vgcerr.Wrap(err, "failed to get rankings")
	}

	log.Debug().
		Str("month", q.Month).
		Str("format", q.Format).
		Int("count", len(rankings)).
		Msg("Loaded rankings")

	return &Page{
		Month:    q.Month,
		Format:   q.Format,
		Rankings: rankings,
	}, nil
}

func (s *service) Games(ctx context.Context) ([]*vgcapi.Game, error) {
	games, err := s.client.ListGames(ctx)
	if err != nil {
		return nil, vgcerr.Wrap(err, "failed to list games")
	}
	return games, nil
}

func (s *service) GameFormats(ctx context.Context) ([]*vgcapi.GameFormat, error) {
	formats, err := s.client.ListGameFormats(ctx)
	if err != nil {
		return nil, vgcerr.Wrap(err, "failed to list game formats")
	}
	return formats, nil
}

func (s *service) Share(ctx context.Context, page *Page) error {
	if page == nil {
		return vgcerr.InvalidArgument("rankings page is required")
	}
	return s.notifier.ShareRankings(ctx, &discord.RankingsShare{
		Month:    page.Month,
		Format:   page.Format,
		Rankings: page.Rankings,
	})
}
