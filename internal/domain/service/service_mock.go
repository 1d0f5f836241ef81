package service

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/event"
	"github.com/diegoclair/slack-birthday-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// testToday is 8 June 2023.
var testToday = time.Date(2023, time.June, 8, 9, 0, 0, 0, time.UTC)

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockUserRepo       *mocks.MockUserRepo
	mockChannelRepo    *mocks.MockChannelRepo
	mockPitchingInRepo *mocks.MockPitchingInRepo
	mockChat           *mocks.MockChat
	mockDirectory      *mocks.MockDirectory
	mockImageProvider  *mocks.MockImageProvider
	clock              event.Clock
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	userRepo := mocks.NewMockUserRepo(ctrl)
	dm.EXPECT().User().Return(userRepo).AnyTimes()

	channelRepo := mocks.NewMockChannelRepo(ctrl)
	dm.EXPECT().Channel().Return(channelRepo).AnyTimes()

	pitchingInRepo := mocks.NewMockPitchingInRepo(ctrl)
	dm.EXPECT().PitchingIn().Return(pitchingInRepo).AnyTimes()

	m = allMocks{
		mockDataManager:    dm,
		mockUserRepo:       userRepo,
		mockChannelRepo:    channelRepo,
		mockPitchingInRepo: pitchingInRepo,
		mockChat:           mocks.NewMockChat(ctrl),
		mockDirectory:      mocks.NewMockDirectory(ctrl),
		mockImageProvider:  mocks.NewMockImageProvider(ctrl),
		clock:              fixedClock{now: testToday},
	}

	// validate service creation
	instance := NewInstance(m.dependencies(), Settings{})
	require.NotNil(t, instance.Birthday)
	require.NotNil(t, instance.Celebration)
	require.NotNil(t, instance.Scheduler)

	return
}

func (m allMocks) dependencies() Dependencies {
	return Dependencies{
		DataManager: m.mockDataManager,
		Chat:        m.mockChat,
		Directory:   m.mockDirectory,
		Images:      m.mockImageProvider,
		Clock:       m.clock,
	}
}
