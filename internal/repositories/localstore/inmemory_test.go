package localstore_test

import (
	"context"
	"testing"
	"time"

	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
	"github.com/KirkDiggler/vgc-companion/internal/repositories/localstore"
	mocklocalstore "github.com/KirkDiggler/vgc-companion/internal/repositories/localstore/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	clock *mocklocalstore.MockTimeProvider
	repo  *localstore.InMemoryRepository
	ctx   context.Context
	now   time.Time
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.clock = mocklocalstore.NewMockTimeProvider(s.ctrl)
	s.repo = localstore.NewInMemoryRepositoryWithClock(s.clock)
	s.ctx = context.Background()
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *InMemoryRepositoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestInMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) TestSetAndGet() {
	s.clock.EXPECT().Now().Return(s.now).AnyTimes()

	s.Require().NoError(s.repo.Set(s.ctx, "k", []byte("v1"), 0))

	got, err := s.repo.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal([]byte("v1"), got)

	// returned slices are copies
	got[0] = 'x'
	again, err := s.repo.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal([]byte("v1"), again)
}

func (s *InMemoryRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, "missing")
	s.Error(err)
	s.True(vgcerr.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestExpiry() {
	gomock.InOrder(
		s.clock.EXPECT().Now().Return(s.now),
		s.clock.EXPECT().Now().Return(s.now.Add(59*time.Second)),
		s.clock.EXPECT().Now().Return(s.now.Add(time.Minute)),
	)

	s.Require().NoError(s.repo.Set(s.ctx, "k", []byte("v"), time.Minute))

	_, err := s.repo.Get(s.ctx, "k")
	s.NoError(err)

	_, err = s.repo.Get(s.ctx, "k")
	s.True(vgcerr.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestDelete() {
	s.clock.EXPECT().Now().Return(s.now).AnyTimes()

	s.Require().NoError(s.repo.Set(s.ctx, "k", []byte("v"), 0))
	s.Require().NoError(s.repo.Delete(s.ctx, "k"))
	s.NoError(s.repo.Delete(s.ctx, "k"))

	_, err := s.repo.Get(s.ctx, "k")
	s.True(vgcerr.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestEmptyKey() {
	_, err := s.repo.Get(s.ctx, "")
	s.True(vgcerr.IsInvalidArgument(err))
	s.True(vgcerr.IsInvalidArgument(s.repo.Set(s.ctx, "", nil, 0)))
	s.True(vgcerr.IsInvalidArgument(s.repo.Delete(s.ctx, "")))
}

func (s *InMemoryRepositoryTestSuite) TestJSONHelpers() {
	s.clock.EXPECT().Now().Return(s.now).AnyTimes()

	var ids []string
	found, err := localstore.GetJSON(s.ctx, s.repo, localstore.KeyAnalyticsReplays, &ids)
	s.NoError(err)
	s.False(found)

	s.Require().NoError(localstore.SetJSON(s.ctx, s.repo, localstore.KeyAnalyticsReplays, []string{"a", "b"}, 0))

	found, err = localstore.GetJSON(s.ctx, s.repo, localstore.KeyAnalyticsReplays, &ids)
	s.NoError(err)
	s.True(found)
	s.Equal([]string{"a", "b"}, ids)

	s.Require().NoError(s.repo.Set(s.ctx, "bad", []byte("{not json"), 0))
	_, err = localstore.GetJSON(s.ctx, s.repo, "bad", &ids)
	s.Error(err)
	s.Equal(vgcerr.CodeInternal, vgcerr.GetCode(err))
}
