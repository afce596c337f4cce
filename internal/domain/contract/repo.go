package contract

import (
	"github.com/studyping/slack-study-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	ChannelPref() ChannelPrefRepo
}

// ChannelPrefRepo defines the contract for the channel preference repository
type ChannelPrefRepo interface {
	Set(pref *entity.ChannelPref) error
	GetByTeamID(slackTeamID string) (*entity.ChannelPref, error)
}
