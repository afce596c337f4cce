package service

import (
	"fmt"
	"log"
	"time"

	"github.com/slack-go/slack"

	"github.com/studyping/slack-study-bot/internal/domain"
	"github.com/studyping/slack-study-bot/internal/domain/contract"
	"github.com/studyping/slack-study-bot/internal/domain/entity"
	"github.com/studyping/slack-study-bot/internal/timeparse"
)

const noChannelMessage = "No default channel configured. Use `/study channel #channel` first."

type scheduleService struct {
	dm          contract.DataManager
	store       contract.ScheduleStore
	slackClient contract.SlackClient
	composer    *composer
	loc         *time.Location
	now         func() time.Time
}

func newScheduleService(dm contract.DataManager, store contract.ScheduleStore, slackClient contract.SlackClient, composer *composer, loc *time.Location) *scheduleService {
	return &scheduleService{
		dm:          dm,
		store:       store,
		slackClient: slackClient,
		composer:    composer,
		loc:         loc,
		now:         time.Now,
	}
}

// CreateSchedule validates the requested time, posts the announcement to
// the team's preferred channel and seeds the pending schedule with the
// creator as its first audience member. Any failure before the store
// insert leaves no state behind.
func (s *scheduleService) CreateSchedule(teamID, creatorID, creatorName, timeText, dateText string) (string, error) {
	fireAt, err := timeparse.Parse(timeText, dateText, s.loc, s.now())
	if err != nil {
		return "", err
	}

	pref, err := s.dm.ChannelPref().GetByTeamID(teamID)
	if err != nil {
		return "", fmt.Errorf("failed to get channel preference: %w", err)
	}
	if pref == nil {
		return "", domain.NewError(domain.KindNoDestinationConfigured, noChannelMessage, nil)
	}

	announcement := s.composer.renderAnnouncement(creatorName, fireAt)

	_, messageID, err := s.slackClient.PostMessage(
		pref.SlackChannelID,
		slack.MsgOptionAttachments(announcement),
	)
	if err != nil {
		return "", fmt.Errorf("failed to post announcement: %w", err)
	}

	origin := entity.Origin{
		SlackTeamID:    teamID,
		SlackChannelID: pref.SlackChannelID,
	}
	if err := s.store.Create(messageID, creatorID, fireAt, origin); err != nil {
		// Message IDs come from Slack and are unique per channel, so a
		// collision here is an internal invariant violation.
		return "", fmt.Errorf("failed to create schedule: %w", err)
	}

	log.Printf("Schedule %s created by %s, fires at %s", messageID, creatorID, fireAt.Format(time.RFC3339))

	return fmt.Sprintf("Hi *%s*, ping scheduled for %s", creatorName, fireAt.Format(time.ANSIC)), nil
}

// OptIn adds userID to the audience of the schedule announced by
// messageID. Reactions on unrelated messages are ignored.
func (s *scheduleService) OptIn(messageID, userID string) {
	s.store.AddParticipant(messageID, userID)
}

// OptOut removes userID from the audience. Ignored for unrelated messages
// and non-members.
func (s *scheduleService) OptOut(messageID, userID string) {
	s.store.RemoveParticipant(messageID, userID)
}

// SetPreferredChannel stores where announcements and roll calls for the
// team should be posted.
func (s *scheduleService) SetPreferredChannel(teamID, channelID, channelName string) error {
	pref := &entity.ChannelPref{
		SlackTeamID:      teamID,
		SlackChannelID:   channelID,
		SlackChannelName: channelName,
	}

	if err := s.dm.ChannelPref().Set(pref); err != nil {
		return fmt.Errorf("failed to set channel preference: %w", err)
	}

	return nil
}

// GetPreferredChannel returns the team's configured channel, or nil when
// none is set.
func (s *scheduleService) GetPreferredChannel(teamID string) (*entity.ChannelPref, error) {
	pref, err := s.dm.ChannelPref().GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel preference: %w", err)
	}
	return pref, nil
}
