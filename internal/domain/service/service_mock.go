package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/studyping/slack-study-bot/mocks"
)

type allMocks struct {
	mockDataManager     *mocks.MockDataManager
	mockChannelPrefRepo *mocks.MockChannelPrefRepo
	mockSlackClient     *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	channelPrefRepo := mocks.NewMockChannelPrefRepo(ctrl)
	dm.EXPECT().ChannelPref().Return(channelPrefRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager:     dm,
		mockChannelPrefRepo: channelPrefRepo,
		mockSlackClient:     slackClient,
	}

	// validate composer creation
	composer := newComposer(slackClient)
	require.NotNil(t, composer)

	return
}
