package pokedex

//go:generate mockgen -destination=mock/mock_service.go -package=mockpokedex -source=service.go

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/KirkDiggler/vgc-companion/internal/clients/vgcapi"
	"github.com/KirkDiggler/vgc-companion/internal/domain/pokemon"
	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
)

// Service is a read-only view of Pokémon reference data
type Service interface {
	ListPokemon(ctx context.Context) ([]*vgcapi.Pokemon, error)
	GetPokemon(ctx context.Context, id string) (*vgcapi.Pokemon, error)
	GetSpecies(ctx context.Context, id string) (*vgcapi.PokemonSpecies, error)

	ListItems(ctx context.Context) ([]*vgcapi.Item, error)
	ListAbilities(ctx context.Context) ([]*vgcapi.Ability, error)
	ListMoves(ctx context.Context) ([]*vgcapi.Move, error)

	// Search matches names by case-insensitive substring, prefix matches first
	Search(ctx context.Context, query string) ([]*vgcapi.Pokemon, error)
}

type service struct {
	client vgcapi.Client

	mu sync.Mutex
	// Cache of the full Pokémon list and individual entries by id
	list []*vgcapi.Pokemon
	byID map[string]*vgcapi.Pokemon
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Client vgcapi.Client // Required
}

// NewService creates a new pokedex service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Client == nil {
		panic("vgcapi client is required")
	}

	return &service{
		client: cfg.Client,
		byID:   make(map[string]*vgcapi.Pokemon),
	}
}

func (s *service) ListPokemon(ctx context.Context) ([]*vgcapi.Pokemon, error) {
	s.mu.Lock()
	cached := s.list
	s.mu.Unlock()
	if cached != nil {
		return copyList(cached), nil
	}

	list, err := s.client.ListPokemon(ctx)
	if err != nil {
		return nil, vgcerr.Wrap(err, "failed to list pokemon")
	}
	if list == nil {
		list = []*vgcapi.Pokemon{}
	}

	s.mu.Lock()
	s.list = list
	s.mu.Unlock()

	return copyList(list), nil
}

func (s *service) GetPokemon(ctx context.Context, id string) (*vgcapi.Pokemon, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return nil, vgcerr.InvalidArgument("pokemon id is required")
	}

	s.mu.Lock()
	cached, ok := s.byID[id]
	s.mu.Unlock()
	if ok {
		return copyPokemon(cached), nil
	}

	p, err := s.client.GetPokemon(ctx, id)
	if err != nil {
		return nil, vgcerr.Wrapf(err, "failed to get pokemon '%s'", id)
	}

	s.mu.Lock()
	s.byID[id] = p
	s.mu.Unlock()

	return copyPokemon(p), nil
}

func (s *service) GetSpecies(ctx context.Context, id string) (*vgcapi.PokemonSpecies, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return nil, vgcerr.InvalidArgument("species id is required")
	}

	species, err := s.client.GetPokemonSpecies(ctx, id)
	if err != nil {
		return nil, vgcerr.Wrapf(err, "failed to get species '%s'", id)
	}
	return species, nil
}

func (s *service) ListItems(ctx context.Context) ([]*vgcapi.Item, error) {
	items, err := s.client.ListItems(ctx)
	if err != nil {
		return nil, vgcerr.Wrap(err, "failed to list items")
	}
	return items, nil
}

func (s *service) ListAbilities(ctx context.Context) ([]*vgcapi.Ability, error) {
	abilities, err := s.client.ListAbilities(ctx)
	if err != nil {
		return nil, vgcerr.Wrap(err, "failed to list abilities")
	}
	return abilities, nil
}

func (s *service) ListMoves(ctx context.Context) ([]*vgcapi.Move, error) {
	moves, err := s.client.ListMoves(ctx)
	if err != nil {
		return nil, vgcerr.Wrap(err, "failed to list moves")
	}
	return moves, nil
}

func (s *service) Search(ctx context.Context, query string) ([]*vgcapi.Pokemon, error) {
	want := pokemon.Fold(query)
	if want == "" {
		return nil, vgcerr.InvalidArgument("search query is required")
	}

	all, err := s.ListPokemon(ctx)
	if err != nil {
		return nil, err
	}

	type match struct {
		p      *vgcapi.Pokemon
		prefix bool
	}
	var matches []match
	for _, p := range all {
		name := pokemon.Fold(p.Name)
		if strings.Contains(name, want) {
			matches = append(matches, match{p: p, prefix: strings.HasPrefix(name, want)})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].prefix && !matches[j].prefix
	})

	out := make([]*vgcapi.Pokemon, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.p)
	}
	return out, nil
}

// cached entries are shared, so callers get their own copies
func copyList(list []*vgcapi.Pokemon) []*vgcapi.Pokemon {
	out := make([]*vgcapi.Pokemon, len(list))
	for i, p := range list {
		out[i] = copyPokemon(p)
	}
	return out
}

func copyPokemon(p *vgcapi.Pokemon) *vgcapi.Pokemon {
	if p == nil {
		return nil
	}
	out := *p
	out.Types = append([]string(nil), p.Types...)
	if p.Stats != nil {
		out.Stats = make(map[string]int, len(p.Stats))
		for k, v := range p.Stats {
			out.Stats[k] = v
		}
	}
	return &out
}
