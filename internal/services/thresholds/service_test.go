package thresholds

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	backendMocks "github.com/duelcore/rankhound/internal/backend/mocks"
	"github.com/duelcore/rankhound/internal/models"
)

type ThresholdsServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockBackend *backendMocks.MockClient
	svc         Service
	ctx         context.Context
}

func (s *ThresholdsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBackend = backendMocks.NewMockClient(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := New(&Config{
		Backend: s.mockBackend,
		Logger:  zerolog.Nop(),
	})
	s.Require().NoError(err)
	s.svc = svc
}

func TestThresholdsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ThresholdsServiceTestSuite))
}

func (s *ThresholdsServiceTestSuite) TestDefaultsBeforeFirstRefresh() {
	cfg := s.svc.Current()

	s.Equal(10, cfg.MinGamesForRank)
	s.Equal(500, cfg.RatingFloor)
	s.Equal(40, cfg.TierKValues.Tier1)
}

func (s *ThresholdsServiceTestSuite) TestRefreshReplacesWholesale() {
	s.mockBackend.EXPECT().GetThresholds(s.ctx).Return(&models.ThresholdConfig{
		MinGamesForRank:  5,
		MinGamesForTier2: 20,
		TierKValues:      models.TierKValues{Tier1: 48, Tier2: 32, Tier3: 16},
		RatingFloor:      800,
	}, nil)

	s.Require().NoError(s.svc.Refresh(s.ctx))

	cfg := s.svc.Current()
	s.Equal(5, cfg.MinGamesForRank)
	s.Equal(20, cfg.MinGamesForTier2)
	s.Equal(32, cfg.TierKValues.Tier2)
	s.Equal(800, cfg.RatingFloor)
}

func (s *ThresholdsServiceTestSuite) TestFailedRefreshKeepsPreviousValue() {
	s.mockBackend.EXPECT().GetThresholds(s.ctx).Return(&models.ThresholdConfig{
		MinGamesForRank:  7,
		MinGamesForTier2: 25,
		TierKValues:      models.TierKValues{Tier1: 50, Tier2: 30, Tier3: 15},
		RatingFloor:      600,
	}, nil)
	s.Require().NoError(s.svc.Refresh(s.ctx))

	s.mockBackend.EXPECT().GetThresholds(s.ctx).Return(nil, errors.New("backend unreachable"))
	s.Error(s.svc.Refresh(s.ctx))

	// Last known good config survives the failure.
	cfg := s.svc.Current()
	s.Equal(7, cfg.MinGamesForRank)
	s.Equal(600, cfg.RatingFloor)
}

func (s *ThresholdsServiceTestSuite) TestCurrentIsSafeUnderConcurrentRefresh() {
	s.mockBackend.EXPECT().GetThresholds(gomock.Any()).Return(&models.ThresholdConfig{
		MinGamesForRank:  5,
		MinGamesForTier2: 20,
		TierKValues:      models.TierKValues{Tier1: 48, Tier2: 32, Tier3: 16},
		RatingFloor:      800,
	}, nil).AnyTimes()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = s.svc.Refresh(s.ctx)
		}
	}()

	for i := 0; i < 100; i++ {
		cfg := s.svc.Current()
		// Readers must never observe a partially-updated config.
		s.True(cfg.MinGamesForRank == 10 || cfg.MinGamesForRank == 5)
		s.True(cfg.RatingFloor == 500 || cfg.RatingFloor == 800)
	}
	<-done
}
