package contract

import (
	"github.com/studyping/slack-study-bot/internal/domain/entity"
)

type ScheduleService interface {
	CreateSchedule(teamID, creatorID, creatorName, timeText, dateText string) (string, error)
	OptIn(messageID, userID string)
	OptOut(messageID, userID string)
	SetPreferredChannel(teamID, channelID, channelName string) error
	GetPreferredChannel(teamID string) (*entity.ChannelPref, error)
}
