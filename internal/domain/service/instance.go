package service

import (
	"time"

	"github.com/studyping/slack-study-bot/internal/domain/contract"
)

type Instance struct {
	Schedule contract.ScheduleService
	Sweeper  *sweeper
}

func NewInstance(dm contract.DataManager, store contract.ScheduleStore, slackClient contract.SlackClient, loc *time.Location, sweepInterval time.Duration) *Instance {
	composer := newComposer(slackClient)

	return &Instance{
		Schedule: newScheduleService(dm, store, slackClient, composer, loc),
		Sweeper:  newSweeper(store, slackClient, composer, sweepInterval),
	}
}
