package replays_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/vgc-companion/internal/clients/vgcapi"
	mockvgcapi "github.com/KirkDiggler/vgc-companion/internal/clients/vgcapi/mock"
	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
	"github.com/KirkDiggler/vgc-companion/internal/repositories/localstore"
	mocklocalstore "github.com/KirkDiggler/vgc-companion/internal/repositories/localstore/mock"
	"github.com/KirkDiggler/vgc-companion/internal/services/replays"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	client *mockvgcapi.MockClient
	store  *localstore.InMemoryRepository
	svc    replays.Service
	ctx    context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.client = mockvgcapi.NewMockClient(s.ctrl)
	s.store = localstore.NewInMemoryRepository()
	s.svc = replays.NewService(&replays.ServiceConfig{
		Client: s.client,
		Store:  s.store,
	})
	s.ctx = context.Background()
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestSelectionPersistsAcrossReload() {
	s.Require().NoError(s.svc.Load(s.ctx))
	s.Empty(s.svc.Selection())

	s.Require().NoError(s.svc.Select(s.ctx, "s1"))
	s.Require().NoError(s.svc.Select(s.ctx, "s2"))
	s.Require().NoError(s.svc.Select(s.ctx, "s1"))
	s.Equal([]string{"s1", "s2"}, s.svc.Selection())

	reloaded := replays.NewService(&replays.ServiceConfig{Client: s.client, Store: s.store})
	s.Require().NoError(reloaded.Load(s.ctx))
	s.Equal([]string{"s1", "s2"}, reloaded.Selection())

	s.Require().NoError(reloaded.Deselect(s.ctx, "s1"))
	s.Equal([]string{"s2"}, reloaded.Selection())

	s.Require().NoError(reloaded.Clear(s.ctx))
	s.Empty(reloaded.Selection())

	var stored []string
	found, err := localstore.GetJSON(s.ctx, s.store, localstore.KeyAnalyticsReplays, &stored)
	s.Require().NoError(err)
	s.True(found)
	s.Empty(stored)
}

func (s *ServiceTestSuite) TestSelectionUnchangedWhenStoreFails() {
	store := mocklocalstore.NewMockRepository(s.ctrl)
	svc := replays.NewService(&replays.ServiceConfig{Client: s.client, Store: store})

	store.EXPECT().
		Set(s.ctx, localstore.KeyAnalyticsReplays, []byte(`["s1"]`), gomock.Any()).
		Return(errors.New("disk full"))

	s.Error(svc.Select(s.ctx, "s1"))
	s.Empty(svc.Selection())
}

func (s *ServiceTestSuite) TestSelectionCopy() {
	s.Require().NoError(s.svc.Select(s.ctx, "s1"))
	sel := s.svc.Selection()
	sel[0] = "changed"
	s.Equal([]string{"s1"}, s.svc.Selection())
}

func (s *ServiceTestSuite) TestDeleteDropsFromSelection() {
	s.Require().NoError(s.svc.Select(s.ctx, "s1"))
	s.client.EXPECT().DeleteSavedReplay(s.ctx, "uid", "s1").Return(nil)

	s.Require().NoError(s.svc.Delete(s.ctx, "uid", "s1"))
	s.Empty(s.svc.Selection())
}

func (s *ServiceTestSuite) TestSaveNormalizesURL() {
	s.client.EXPECT().
		SaveReplay(s.ctx, "uid", &vgcapi.SaveReplayInput{
			ReplayID: "gen9vgc2024regg-2087123456",
			URL:      "https://replay.pokemonshowdown.com/gen9vgc2024regg-2087123456?p2",
		}).
		Return(&vgcapi.SavedReplay{ID: "s9", ReplayID: "gen9vgc2024regg-2087123456"}, nil)

	saved, err := s.svc.Save(s.ctx, "uid", &vgcapi.SaveReplayInput{
		ReplayID: "https://replay.pokemonshowdown.com/gen9vgc2024regg-2087123456?p2",
	})
	s.Require().NoError(err)
	s.Equal("s9", saved.ID)

	_, err = s.svc.Save(s.ctx, "uid", &vgcapi.SaveReplayInput{ReplayID: "  "})
	s.True(vgcerr.IsValidation(err))
}

func (s *ServiceTestSuite) TestSaveRejectsInputWithoutReplayID() {
	// no SaveReplay expectation: nothing may reach the client
	for _, raw := range []string{"?p2", "/", "#top", ".json"} {
		_, err := s.svc.Save(s.ctx, "uid", &vgcapi.SaveReplayInput{ReplayID: raw})
		s.True(vgcerr.IsValidation(err), raw)
		s.Equal("Please enter a replay ID or URL.", vgcerr.UserMessage(err), raw)
	}

	_, err := s.svc.Save(s.ctx, "uid", nil)
	s.True(vgcerr.IsValidation(err))
}

func (s *ServiceTestSuite) TestDeselectTrimsID() {
	s.Require().NoError(s.svc.Select(s.ctx, "abc"))
	s.Require().NoError(s.svc.Select(s.ctx, "def"))

	s.Require().NoError(s.svc.Deselect(s.ctx, " abc "))
	s.Equal([]string{"def"}, s.svc.Selection())

	s.client.EXPECT().DeleteSavedReplay(s.ctx, "uid", " def").Return(nil)
	s.Require().NoError(s.svc.Delete(s.ctx, "uid", " def"))
	s.Empty(s.svc.Selection())
}

func (s *ServiceTestSuite) TestSelectedDetailsKeepsOrder() {
	s.Require().NoError(s.svc.Select(s.ctx, "s1"))
	s.Require().NoError(s.svc.Select(s.ctx, "s2"))

	s.client.EXPECT().GetSavedReplay(gomock.Any(), "uid", "s1").Return(&vgcapi.SavedReplay{ID: "s1", ReplayID: "r1"}, nil)
	s.client.EXPECT().GetSavedReplay(gomock.Any(), "uid", "s2").Return(&vgcapi.SavedReplay{ID: "s2", ReplayID: "r2"}, nil)

	details, err := s.svc.SelectedDetails(s.ctx, "uid")
	s.Require().NoError(err)
	s.Require().Len(details, 2)
	s.Equal("s1", details[0].ID)
	s.Equal("s2", details[1].ID)
}

func (s *ServiceTestSuite) TestSelectedDetailsError() {
	s.Require().NoError(s.svc.Select(s.ctx, "gone"))
	s.client.EXPECT().GetSavedReplay(gomock.Any(), "uid", "gone").Return(nil, vgcerr.NotFound("Replay not found"))

	_, err := s.svc.SelectedDetails(s.ctx, "uid")
	s.True(vgcerr.IsNotFound(err))
	s.Equal("gone", vgcerr.GetMeta(err)["replay_id"])
}

func (s *ServiceTestSuite) TestRunAnalytics() {
	_, err := s.svc.RunAnalytics(s.ctx, "uid", "")
	s.True(vgcerr.IsValidation(err))

	s.Require().NoError(s.svc.Select(s.ctx, "s1"))
	s.client.EXPECT().GetSavedReplay(gomock.Any(), "uid", "s1").Return(&vgcapi.SavedReplay{ID: "s1", ReplayID: "r1"}, nil)
	s.client.EXPECT().
		MultiStats(s.ctx, &vgcapi.MultiStatsRequest{ReplayIDs: []string{"r1"}, Format: "gen9vgc2024regg"}).
		Return(&vgcapi.MultiStatsResult{TotalBattles: 1}, nil)

	result, err := s.svc.RunAnalytics(s.ctx, "uid", "gen9vgc2024regg")
	s.Require().NoError(err)
	s.Equal(1, result.TotalBattles)
}

func TestReplayIDFromURL(t *testing.T) {
	tests := map[string]string{
		"gen9vgc2024regg-1": "gen9vgc2024regg-1",
		"https://replay.pokemonshowdown.com/gen9vgc2024regg-1":      "gen9vgc2024regg-1",
		"https://replay.pokemonshowdown.com/gen9vgc2024regg-1.json": "gen9vgc2024regg-1",
		"https://replay.pokemonshowdown.com/gen9vgc2024regg-1/":     "gen9vgc2024regg-1",
		" https://replay.pokemonshowdown.com/gen9vgc2024regg-1?p2 ": "gen9vgc2024regg-1",
	}
	for in, want := range tests {
		assert.Equal(t, want, replays.ReplayIDFromURL(in), in)
	}
}
