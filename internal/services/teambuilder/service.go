package teambuilder

//go:generate mockgen -destination=mock/mock_service.go -package=mockteambuilder -source=service.go

import (
	"context"
	"strings"

	"github.com/KirkDiggler/vgc-companion/internal/clients/vgcapi"
	"github.com/KirkDiggler/vgc-companion/internal/domain/pokemon"
	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
)

const (
	msgFormatRequired = "Please select a format."
	msgTeamTooLarge   = "A team can have at most 6 Pokémon."
	msgTeamEmpty      = "Add at least one Pokémon to your team first."
)

// Service drives the team builder
type Service interface {
	AvailablePokemon(ctx context.Context, format string) ([]string, error)

	// Suggest recommends additions; Pokémon already on the team are filtered out
	Suggest(ctx context.Context, input *vgcapi.TeamRequest) ([]*vgcapi.Suggestion, error)

	Optimize(ctx context.Context, input *vgcapi.TeamRequest) (*vgcapi.OptimizedTeam, error)
}

type service struct {
	client vgcapi.Client
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Client vgcapi.Client // Required
}

// NewService creates a new team builder service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Client == nil {
		panic("vgcapi client is required")
	}

	return &service{client: cfg.Client}
}

func (s *service) AvailablePokemon(ctx context.Context, format string) ([]string, error) {
	names, err := s.client.AvailablePokemon(ctx, strings.TrimSpace(format))
	if err != nil {
		return nil, vgcerr.Wrap(err, "failed to list available pokemon")
	}
	return names, nil
}

func (s *service) Suggest(ctx context.Context, input *vgcapi.TeamRequest) ([]*vgcapi.Suggestion, error) {
	req, err := normalize(input, false)
	if err != nil {
		return nil, err
	}
	if len(req.Team) >= pokemon.TeamSize {
		return []*vgcapi.Suggestion{}, nil
	}

	suggestions, err := s.client.SuggestPokemon(ctx, req)
	if err != nil {
		return nil, vgcerr.Wrap(err, "failed to get suggestions")
	}

	onTeam := make(map[string]struct{}, len(req.Team))
	for _, name := range req.Team {
		onTeam[pokemon.Fold(name)] = struct{}{}
	}

	out := make([]*vgcapi.Suggestion, 0, len(suggestions))
	for _, sug := range suggestions {
		if _, ok := onTeam[pokemon.Fold(sug.Name)]; ok {
			continue
		}
		out = append(out, sug)
	}
	return out, nil
}

func (s *service) Optimize(ctx context.Context, input *vgcapi.TeamRequest) (*vgcapi.OptimizedTeam, error) {
	req, err := normalize(input, true)
	if err != nil {
		return nil, err
	}

	team, err := s.client.OptimizeTeam(ctx, req)
	if err != nil {
		return nil, vgcerr.Wrap(err, "failed to optimize team")
	}
	return team, nil
}

// normalize trims names, drops blanks and enforces size and uniqueness
func normalize(input *vgcapi.TeamRequest, requireMembers bool) (*vgcapi.TeamRequest, error) {
	if input == nil || strings.TrimSpace(input.Format) == "" {
		return nil, vgcerr.Validation(msgFormatRequired)
	}

	req := &vgcapi.TeamRequest{
		Format: strings.TrimSpace(input.Format),
		Team:   make([]string, 0, len(input.Team)),
	}

	seen := make(map[string]struct{}, len(input.Team))
	for _, name := range input.Team {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := pokemon.Fold(name)
		if _, ok := seen[key]; ok {
			return nil, vgcerr.Validationf("%s is already on your team.", name).
				WithMeta("pokemon", name)
		}
		seen[key] = struct{}{}
		req.Team = append(req.Team, name)
	}

	if len(req.Team) > pokemon.TeamSize {
		return nil, vgcerr.Validation(msgTeamTooLarge).WithMeta("size", len(req.Team))
	}
	if requireMembers && len(req.Team) == 0 {
		return nil, vgcerr.Validation(msgTeamEmpty)
	}
	return req, nil
}
