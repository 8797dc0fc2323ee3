package vgcapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/vgc-companion/internal/auth"
	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
	"github.com/KirkDiggler/vgc-companion/internal/logger"
	"github.com/KirkDiggler/vgc-companion/internal/uuid"
)

const (
	defaultTimeout = 30 * time.Second
	maxLoggedBody  = 512
	maxErrorBody   = 64 << 10
)

type client struct {
	baseURL string
	http    *http.Client
	ids     uuid.Generator
}

type Config struct {
	BaseURL    string
	HTTPClient *http.Client

	// UUIDGenerator mints X-Request-ID values when the context has none
	UUIDGenerator uuid.Generator
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, vgcerr.InvalidArgument("vgcapi config is required")
	}

	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, vgcerr.InvalidArgumentf("invalid API base URL '%s'", cfg.BaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	ids := cfg.UUIDGenerator
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}

	return &client{
		baseURL: base,
		http:    httpClient,
		ids:     ids,
	}, nil
}

func (c *client) ListPokemon(ctx context.Context) ([]*Pokemon, error) {
	var out []*Pokemon
	if err := c.get(ctx, "/api/pokemon", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetPokemon(ctx context.Context, id string) (*Pokemon, error) {
	if id == "" {
		return nil, vgcerr.InvalidArgument("pokemon id is required")
	}

	var out Pokemon
	if err := c.get(ctx, "/api/pokemon/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) GetPokemonSpecies(ctx context.Context, id string) (*PokemonSpecies, error) {
	if id == "" {
		return nil, vgcerr.InvalidArgument("species id is required")
	}

	var out PokemonSpecies
	if err := c.get(ctx, "/api/pokemon-species/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) ListGames(ctx context.Context) ([]*Game, error) {
	var out []*Game
	if err := c.get(ctx, "/api/games", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) ListGameFormats(ctx context.Context) ([]*GameFormat, error) {
	var out []*GameFormat
	if err := c.get(ctx, "/api/games/formats", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) MultiStats(ctx context.Context, input *MultiStatsRequest) (*MultiStatsResult, error) {
	if input == nil {
		return nil, vgcerr.InvalidArgument("multistats request is required")
	}

	var out MultiStatsResult
	if err := c.do(ctx, http.MethodPost, "/api/multistats", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func savedReplaysPath(uid string) string {
	return "/api/users/" + url.PathEscape(uid) + "/saved-replays"
}

func (c *client) ListSavedReplays(ctx context.Context, uid string) ([]*SavedReplay, error) {
	if uid == "" {
		return nil, vgcerr.InvalidArgument("user id is required")
	}

	var out []*SavedReplay
	if err := c.get(ctx, savedReplaysPath(uid), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetSavedReplay(ctx context.Context, uid, id string) (*SavedReplay, error) {
	if uid == "" || id == "" {
		return nil, vgcerr.InvalidArgument("user id and replay id are required")
	}

	var out SavedReplay
	if err := c.get(ctx, savedReplaysPath(uid)+"/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) SaveReplay(ctx context.Context, uid string, input *SaveReplayInput) (*SavedReplay, error) {
	if uid == "" {
		return nil, vgcerr.InvalidArgument("user id is required")
	}
	if input == nil {
		return nil, vgcerr.InvalidArgument("replay is required")
	}

	var out SavedReplay
	if err := c.do(ctx, http.MethodPost, savedReplaysPath(uid), nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) DeleteSavedReplay(ctx context.Context, uid, id string) error {
	if uid == "" || id == "" {
		return vgcerr.InvalidArgument("user id and replay id are required")
	}
	return c.do(ctx, http.MethodDelete, savedReplaysPath(uid)+"/"+url.PathEscape(id), nil, nil, nil)
}

func (c *client) ListForumTopics(ctx context.Context) ([]*ForumTopic, error) {
	var out []*ForumTopic
	if err := c.get(ctx, "/api/forum/topics", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetForumTopic(ctx context.Context, id string) (*ForumTopic, error) {
	if id == "" {
		return nil, vgcerr.InvalidArgument("topic id is required")
	}

	var out ForumTopic
	if err := c.get(ctx, "/api/forum/topics/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) PostForumMessage(ctx context.Context, topicID string, input *PostMessageInput) (*ForumMessage, error) {
	if topicID == "" {
		return nil, vgcerr.InvalidArgument("topic id is required")
	}
	if input == nil {
		return nil, vgcerr.InvalidArgument("message is required")
	}

	var out ForumMessage
	path := "/api/forum/topics/" + url.PathEscape(topicID) + "/messages"
	if err := c.do(ctx, http.MethodPost, path, nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) ListMonths(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.get(ctx, "/api/months", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) ListFormats(ctx context.Context, month string) ([]string, error) {
	if month == "" {
		return nil, vgcerr.InvalidArgument("month is required")
	}

	var out []string
	if err := c.get(ctx, "/api/formats/"+url.PathEscape(month), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetRankings(ctx context.Context, query *RankingsQuery) ([]*Ranking, error) {
	q := url.Values{}
	if query != nil {
		if query.Month != "" {
			q.Set("month", query.Month)
		}
		if query.Format != "" {
			q.Set("format", query.Format)
		}
		if query.Rating > 0 {
			q.Set("rating", strconv.Itoa(query.Rating))
		}
		if query.Limit > 0 {
			q.Set("limit", strconv.Itoa(query.Limit))
		}
	}

	var out []*Ranking
	if err := c.get(ctx, "/api/rankings", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) Analyze(ctx context.Context, input *AnalyzeRequest) (*AnalyzeResult, error) {
	if input == nil {
		return nil, vgcerr.InvalidArgument("analyze request is required")
	}

	var out AnalyzeResult
	if err := c.do(ctx, http.MethodPost, "/api/turn-assistant/analyze", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) AvailablePokemon(ctx context.Context, format string) ([]string, error) {
	q := url.Values{}
	if format != "" {
		q.Set("format", format)
	}

	var out []string
	if err := c.get(ctx, "/api/team-builder/available-pokemon", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) SuggestPokemon(ctx context.Context, input *TeamRequest) ([]*Suggestion, error) {
	if input == nil {
		return nil, vgcerr.InvalidArgument("team request is required")
	}

	var out []*Suggestion
	if err := c.do(ctx, http.MethodPost, "/api/team-builder/suggest-pokemon", nil, input, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) OptimizeTeam(ctx context.Context, input *TeamRequest) (*OptimizedTeam, error) {
	if input == nil {
		return nil, vgcerr.InvalidArgument("team request is required")
	}

	var out OptimizedTeam
	if err := c.do(ctx, http.MethodPost, "/api/team-builder/optimize-team", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) ListItems(ctx context.Context) ([]*Item, error) {
	var out []*Item
	if err := c.get(ctx, "/api/items", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) ListAbilities(ctx context.Context) ([]*Ability, error) {
	var out []*Ability
	if err := c.get(ctx, "/api/abilities", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) ListMoves(ctx context.Context) ([]*Move, error) {
	var out []*Move
	if err := c.get(ctx, "/api/moves", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// do sends one request. Transport failures become unavailable errors carrying
// the generic network message; error statuses carry the server's message.
func (c *client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqID := logger.RequestIDFromContext(ctx)
	if reqID == "" {
		reqID = c.ids.New()
		ctx = logger.WithRequestID(ctx, reqID)
	}
	log := logger.ForRequest(ctx)

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return vgcerr.WrapWithCode(err, vgcerr.CodeInternal, "failed to encode request").
				WithMeta("path", path)
		}
		if e := log.Debug(); e.Enabled() {
			logged, truncated := logger.Truncate(data, maxLoggedBody)
			e.Str("method", method).Str("path", path).Str("body", logged).Bool("truncated", truncated).Msg("API request")
		}
		reader = bytes.NewReader(data)
	} else {
		log.Debug().Str("method", method).Str("path", path).Msg("API request")
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return vgcerr.WrapWithCode(err, vgcerr.CodeInternal, "failed to build request").
			WithMeta("path", path)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s, ok := auth.FromContext(ctx); ok && s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return vgcerr.WrapWithCode(err, vgcerr.CodeUnavailable, "request cancelled").
				WithMeta("path", path)
		}
		log.Warn().Err(err).Str("method", method).Str("path", path).Msg("API request failed")
		return vgcerr.WrapWithCode(err, vgcerr.CodeUnavailable, vgcerr.GenericNetworkMessage).
			WithMeta("path", path)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("API response")

	if resp.StatusCode >= http.StatusBadRequest {
		return c.statusError(resp, path)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return vgcerr.WrapWithCode(err, vgcerr.CodeInternal, "failed to decode response").
			WithMeta("path", path).
			WithMeta("status", resp.StatusCode)
	}
	return nil
}

func (c *client) statusError(resp *http.Response, path string) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var eb errorBody
	msg := ""
	if json.Unmarshal(data, &eb) == nil {
		msg = strings.TrimSpace(eb.Error)
		if msg == "" {
			msg = strings.TrimSpace(eb.Message)
		}
	}

	return vgcerr.FromStatus(resp.StatusCode, msg).WithMeta("path", path)
}
