package vgcapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KirkDiggler/vgc-companion/internal/auth"
	"github.com/KirkDiggler/vgc-companion/internal/clients/vgcapi"
	"github.com/KirkDiggler/vgc-companion/internal/domain/battle"
	"github.com/KirkDiggler/vgc-companion/internal/domain/pokemon"
	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
	"github.com/KirkDiggler/vgc-companion/internal/logger"
	"github.com/KirkDiggler/vgc-companion/internal/uuid/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ClientTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	ids    *mocks.MockGenerator
	mux    *http.ServeMux
	server *httptest.Server
	client vgcapi.Client
	ctx    context.Context
}

func (s *ClientTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ids = mocks.NewMockGenerator(s.ctrl)
	s.ids.EXPECT().New().Return("req-1").AnyTimes()
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.ctx = context.Background()

	var err error
	s.client, err = vgcapi.New(&vgcapi.Config{
		BaseURL:       s.server.URL + "/",
		HTTPClient:    s.server.Client(),
		UUIDGenerator: s.ids,
	})
	s.Require().NoError(err)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *ClientTestSuite) TestNewRejectsBadConfig() {
	_, err := vgcapi.New(nil)
	s.True(vgcerr.IsInvalidArgument(err))

	_, err = vgcapi.New(&vgcapi.Config{BaseURL: "not a url"})
	s.True(vgcerr.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestGetPokemon() {
	s.mux.HandleFunc("/api/pokemon/25", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodGet, r.Method)
		s.Equal("req-1", r.Header.Get("X-Request-ID"))
		s.Empty(r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{"id": 25, "name": "pikachu", "types": []string{"electric"}})
	})

	p, err := s.client.GetPokemon(s.ctx, "25")
	s.Require().NoError(err)
	s.Equal(25, p.ID)
	s.Equal("pikachu", p.Name)
	s.Equal([]string{"electric"}, p.Types)
}

func (s *ClientTestSuite) TestRequestIDFromContext() {
	s.mux.HandleFunc("/api/months", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("ctx-req", r.Header.Get("X-Request-ID"))
		writeJSON(w, http.StatusOK, []string{"2024-01", "2024-02"})
	})

	months, err := s.client.ListMonths(logger.WithRequestID(s.ctx, "ctx-req"))
	s.Require().NoError(err)
	s.Equal([]string{"2024-01", "2024-02"}, months)
}

func (s *ClientTestSuite) TestBearerTokenFromSession() {
	s.mux.HandleFunc("/api/users/uid-1/saved-replays", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("Bearer tok", r.Header.Get("Authorization"))
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, []map[string]any{{"id": "s1", "replayId": "gen9vgc2024-1"}})
		case http.MethodPost:
			var in vgcapi.SaveReplayInput
			s.Require().NoError(json.NewDecoder(r.Body).Decode(&in))
			writeJSON(w, http.StatusCreated, map[string]any{"id": "s2", "replayId": in.ReplayID})
		}
	})

	ctx := auth.WithSession(s.ctx, &auth.Session{UID: "uid-1", Token: "tok"})

	list, err := s.client.ListSavedReplays(ctx, "uid-1")
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("gen9vgc2024-1", list[0].ReplayID)

	saved, err := s.client.SaveReplay(ctx, "uid-1", &vgcapi.SaveReplayInput{ReplayID: "gen9vgc2024-2"})
	s.Require().NoError(err)
	s.Equal("s2", saved.ID)
}

func (s *ClientTestSuite) TestDeleteNoContent() {
	s.mux.HandleFunc("/api/users/uid-1/saved-replays/s1", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	s.NoError(s.client.DeleteSavedReplay(s.ctx, "uid-1", "s1"))
}

func (s *ClientTestSuite) TestRankingsQuery() {
	s.mux.HandleFunc("/api/rankings", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		s.Equal("2024-05", q.Get("month"))
		s.Equal("gen9vgc2024regg", q.Get("format"))
		s.Equal("1760", q.Get("rating"))
		s.False(q.Has("limit"))
		writeJSON(w, http.StatusOK, []map[string]any{{"rank": 1, "name": "Incineroar", "usage": 0.52}})
	})

	rankings, err := s.client.GetRankings(s.ctx, &vgcapi.RankingsQuery{
		Month:  "2024-05",
		Format: "gen9vgc2024regg",
		Rating: 1760,
	})
	s.Require().NoError(err)
	s.Require().Len(rankings, 1)
	s.Equal("Incineroar", rankings[0].Name)
}

func (s *ClientTestSuite) TestAnalyzeWireShape() {
	s.mux.HandleFunc("/api/turn-assistant/analyze", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		s.Require().NoError(err)

		var payload map[string]json.RawMessage
		s.Require().NoError(json.Unmarshal(body, &payload))
		s.Contains(payload, "pokemonData")
		s.Contains(payload, "battleConditions")
		s.Contains(payload, "yourTeam")
		s.Contains(payload, "opponentTeam")

		var conditions map[string]any
		s.Require().NoError(json.Unmarshal(payload["battleConditions"], &conditions))
		s.Equal(battle.RainDance, conditions["weather"])
		s.EqualValues(5, conditions["weatherDuration"])

		writeJSON(w, http.StatusOK, map[string]any{
			"matchingScenarios": 12,
			"data": map[string]any{
				"winRate":         0.58,
				"allMoveOptions":  []any{},
				"topCombinations": []any{},
			},
		})
	})

	conds := battle.New()
	s.Require().NoError(conds.SetCondition(battle.KindWeather, battle.RainDance))

	result, err := s.client.Analyze(s.ctx, &vgcapi.AnalyzeRequest{
		PokemonData: pokemon.Selection{
			TopLeft:     &pokemon.Slot{Name: "Pelipper"},
			TopRight:    &pokemon.Slot{Name: "Archaludon"},
			BottomLeft:  &pokemon.Slot{Name: "Incineroar"},
			BottomRight: &pokemon.Slot{Name: "Rillaboom"},
		},
		BattleConditions: conds,
	})
	s.Require().NoError(err)
	s.Equal(12, result.MatchingScenarios)
	s.InDelta(0.58, result.Data.WinRate, 1e-9)
}

func (s *ClientTestSuite) TestServerErrorMessage() {
	s.mux.HandleFunc("/api/turn-assistant/analyze", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No matching scenarios found"})
	})
	s.mux.HandleFunc("/api/forum/topics/t1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Topic not found"})
	})
	s.mux.HandleFunc("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>oops</html>"))
	})

	_, err := s.client.Analyze(s.ctx, &vgcapi.AnalyzeRequest{})
	s.Require().Error(err)
	s.True(vgcerr.IsInvalidArgument(err))
	s.Equal("No matching scenarios found", vgcerr.UserMessage(err))
	s.Equal(http.StatusBadRequest, vgcerr.GetMeta(err)["status"])

	_, err = s.client.GetForumTopic(s.ctx, "t1")
	s.True(vgcerr.IsNotFound(err))
	s.Equal("Topic not found", vgcerr.UserMessage(err))

	_, err = s.client.ListItems(s.ctx)
	s.True(vgcerr.IsUnavailable(err))
	s.Equal(vgcerr.GenericNetworkMessage, vgcerr.UserMessage(err))
}

func (s *ClientTestSuite) TestTransportFailure() {
	s.server.Close()

	_, err := s.client.ListPokemon(s.ctx)
	s.Require().Error(err)
	s.True(vgcerr.IsUnavailable(err))
	s.Equal(vgcerr.GenericNetworkMessage, vgcerr.UserMessage(err))
}

func (s *ClientTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.client.ListMoves(ctx)
	s.Require().Error(err)
	s.True(vgcerr.IsUnavailable(err))
}

func (s *ClientTestSuite) TestArgumentValidation() {
	_, err := s.client.GetPokemon(s.ctx, "")
	s.True(vgcerr.IsInvalidArgument(err))

	_, err = s.client.ListSavedReplays(s.ctx, "")
	s.True(vgcerr.IsInvalidArgument(err))

	_, err = s.client.PostForumMessage(s.ctx, "t1", nil)
	s.True(vgcerr.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestTeamBuilder() {
	s.mux.HandleFunc("/api/team-builder/available-pokemon", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("gen9vgc2024regh", r.URL.Query().Get("format"))
		writeJSON(w, http.StatusOK, []string{"Incineroar", "Amoonguss"})
	})
	s.mux.HandleFunc("/api/team-builder/suggest-pokemon", func(w http.ResponseWriter, r *http.Request) {
		var in vgcapi.TeamRequest
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&in))
		s.Equal([]string{"Incineroar"}, in.Team)
		writeJSON(w, http.StatusOK, []map[string]any{{"name": "Amoonguss", "score": 0.9}})
	})

	names, err := s.client.AvailablePokemon(s.ctx, "gen9vgc2024regh")
	s.Require().NoError(err)
	s.Equal([]string{"Incineroar", "Amoonguss"}, names)

	suggestions, err := s.client.SuggestPokemon(s.ctx, &vgcapi.TeamRequest{Format: "gen9vgc2024regh", Team: []string{"Incineroar"}})
	s.Require().NoError(err)
	s.Require().Len(suggestions, 1)
	s.Equal("Amoonguss", suggestions[0].Name)
}
