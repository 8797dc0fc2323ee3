package replays

//go:generate mockgen -destination=mock/mock_service.go -package=mockreplays -source=service.go

import (
	"context"
	"strings"
	"sync"

	"github.com/KirkDiggler/vgc-companion/internal/clients/vgcapi"
	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
	"github.com/KirkDiggler/vgc-companion/internal/repositories/localstore"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	msgEmptySelection = "Select at least one replay to analyze."
	msgEmptyReplay    = "Please enter a replay ID or URL."
)

// Service manages a user's saved replays and the set picked for analytics
type Service interface {
	ListSaved(ctx context.Context, uid string) ([]*vgcapi.SavedReplay, error)
	GetSaved(ctx context.Context, uid, id string) (*vgcapi.SavedReplay, error)
	Save(ctx context.Context, uid string, input *vgcapi.SaveReplayInput) (*vgcapi.SavedReplay, error)

	// Delete removes a saved replay and drops it from the analytics selection
	Delete(ctx context.Context, uid, id string) error

	// Load reads the analytics selection from the local store
	Load(ctx context.Context) error

	// Selection returns the saved replay IDs picked for analytics, in pick order
	Selection() []string

	// Select adds id to the selection; selecting twice is a no-op
	Select(ctx context.Context, id string) error
	Deselect(ctx context.Context, id string) error
	Clear(ctx context.Context) error

	// SelectedDetails fetches every selected replay concurrently
	SelectedDetails(ctx context.Context, uid string) ([]*vgcapi.SavedReplay, error)

	// RunAnalytics aggregates usage across the selected replays
	RunAnalytics(ctx context.Context, uid, format string) (*vgcapi.MultiStatsResult, error)
}

type service struct {
	client vgcapi.Client
	store  localstore.Repository

	mu       sync.RWMutex
	selected []string
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Client vgcapi.Client
	Store  localstore.Repository
}

// NewService creates a new replays service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("vgcapi client is required")
	}
	if cfg.Store == nil {
		panic("local store is required")
	}

	return &service{
		client: cfg.Client,
		store:  cfg.Store,
	}
}

func (s *service) ListSaved(ctx context.Context, uid string) ([]*vgcapi.SavedReplay, error) {
	replays, err := s.client.ListSavedReplays(ctx, uid)
	if err != nil {
		return nil, vgcerr.Wrap(err, "failed to list saved replays")
	}
	return replays, nil
}

func (s *service) GetSaved(ctx context.Context, uid, id string) (*vgcapi.SavedReplay, error) {
	replay, err := s.client.GetSavedReplay(ctx, uid, id)
	if err != nil {
		return nil, vgcerr.Wrapf(err, "failed to get saved replay %s", id)
	}
	return replay, nil
}

func (s *service) Save(ctx context.Context, uid string, input *vgcapi.SaveReplayInput) (*vgcapi.SavedReplay, error) {
	if input == nil {
		return nil, vgcerr.Validation(msgEmptyReplay)
	}

	in := *input
	in.ReplayID = ReplayIDFromURL(in.ReplayID)
	if in.ReplayID == "" {
		return nil, vgcerr.Validation(msgEmptyReplay).WithMeta("input", input.ReplayID)
	}
	if in.URL == "" && strings.HasPrefix(strings.TrimSpace(input.ReplayID), "http") {
		in.URL = strings.TrimSpace(input.ReplayID)
	}

	replay, err := s.client.SaveReplay(ctx, uid, &in)
	if err != nil {
		return nil, vgcerr.Wrap(err, "failed to save replay")
	}

	log.Info().Str("uid", uid).Str("replayId", replay.ReplayID).Msg("Saved replay")
	return replay, nil
}

func (s *service) Delete(ctx context.Context, uid, id string) error {
	if err := s.client.DeleteSavedReplay(ctx, uid, id); err != nil {
		return vgcerr.Wrapf(err, "failed to delete saved replay %s", id)
	}

	if s.isSelected(strings.TrimSpace(id)) {
		return s.Deselect(ctx, id)
	}
	return nil
}

func (s *service) Load(ctx context.Context) error {
	var ids []string
	if _, err := localstore.GetJSON(ctx, s.store, localstore.KeyAnalyticsReplays, &ids); err != nil {
		return vgcerr.Wrap(err, "failed to load analytics selection")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = dedupe(ids)
	return nil
}

func (s *service) Selection() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

func (s *service) Select(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return vgcerr.InvalidArgument("replay id is required")
	}

	return s.update(ctx, func(ids []string) []string {
		for _, existing := range ids {
			if existing == id {
				return ids
			}
		}
		return append(ids, id)
	})
}

func (s *service) Deselect(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	return s.update(ctx, func(ids []string) []string {
		out := ids[:0]
		for _, existing := range ids {
			if existing != id {
				out = append(out, existing)
			}
		}
		return out
	})
}

func (s *service) Clear(ctx context.Context) error {
	return s.update(ctx, func([]string) []string {
		return []string{}
	})
}

// update applies fn and mirrors the result to the store before publishing it
func (s *service) update(ctx context.Context, fn func([]string) []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := make([]string, len(s.selected))
	copy(working, s.selected)
	next := fn(working)

	if err := localstore.SetJSON(ctx, s.store, localstore.KeyAnalyticsReplays, next, 0); err != nil {
		return vgcerr.Wrap(err, "failed to save analytics selection")
	}

	s.selected = next
	return nil
}

func (s *service) isSelected(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, existing := range s.selected {
		if existing == id {
			return true
		}
	}
	return false
}

func (s *service) SelectedDetails(ctx context.Context, uid string) ([]*vgcapi.SavedReplay, error) {
	ids := s.Selection()
	details := make([]*vgcapi.SavedReplay, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			replay, err := s.client.GetSavedReplay(ctx, uid, id)
			if err != nil {
				return vgcerr.Wrapf(err, "failed to get saved replay %s", id).WithMeta("replay_id", id)
			}
			details[i] = replay
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return details, nil
}

func (s *service) RunAnalytics(ctx context.Context, uid, format string) (*vgcapi.MultiStatsResult, error) {
	if len(s.Selection()) == 0 {
		return nil, vgcerr.Validation(msgEmptySelection)
	}

	details, err := s.SelectedDetails(ctx, uid)
	if err != nil {
		return nil, err
	}

	replayIDs := make([]string, 0, len(details))
	for _, d := range details {
		replayIDs = append(replayIDs, d.ReplayID)
	}

	result, err := s.client.MultiStats(ctx, &vgcapi.MultiStatsRequest{
		ReplayIDs: replayIDs,
		Format:    format,
	})
	if err != nil {
		return nil, vgcerr.Wrap(err, "failed to run replay analytics")
	}

	log.Debug().Int("replays", len(replayIDs)).Int("battles", result.TotalBattles).Msg("Replay analytics complete")
	return result, nil
}

// ReplayIDFromURL accepts a bare replay ID or a replay page URL
// (https://replay.pokemonshowdown.com/gen9vgc2024regg-2087123456.json?p2 and similar)
func ReplayIDFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.TrimRight(raw, "/")
	if i := strings.LastIndex(raw, "/"); i >= 0 {
		raw = raw[i+1:]
	}
	raw = strings.TrimSuffix(raw, ".json")
	raw = strings.TrimSuffix(raw, ".log")
	return raw
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
