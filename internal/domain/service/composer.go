package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/slack-go/slack"

	"github.com/studyping/slack-study-bot/internal/domain/contract"
)

const (
	announcementTitle = "Study Call"
	rollCallBanner    = "Its time to study:"

	// Shown in place of a mention when the member can no longer be
	// resolved in the workspace. One missing member must not fail the
	// whole firing.
	formerMemberPlaceholder = "_(a former member)_"
)

// composer renders the outward-facing message content: the announcement
// posted at creation time and the mention roll call posted at fire time.
type composer struct {
	slackClient contract.SlackClient
}

func newComposer(slackClient contract.SlackClient) *composer {
	return &composer{slackClient: slackClient}
}

// renderAnnouncement builds the announcement attachment for a new
// schedule. Pure: no Slack calls, deterministic for a given input.
func (c *composer) renderAnnouncement(creatorName string, fireAt time.Time) slack.Attachment {
	timeField := fireAt.Format("15:04")
	dateField := fireAt.Format("01/02/06")

	return slack.Attachment{
		Title:      announcementTitle,
		AuthorName: creatorName,
		Text: fmt.Sprintf("Study call scheduled for *%s* on *%s*. React to this message if you would like to be pinged then.",
			timeField, dateField),
		Fields: []slack.AttachmentField{
			{Title: "Time", Value: timeField, Short: true},
			{Title: "Date", Value: dateField, Short: true},
		},
	}
}

// renderRollCall builds the newline-joined mention list for a firing. Each
// member is resolved against the workspace; members who have left get a
// neutral placeholder. An empty audience yields just the banner line.
func (c *composer) renderRollCall(audience []string) string {
	lines := make([]string, 0, len(audience)+1)
	lines = append(lines, rollCallBanner)

	for _, userID := range audience {
		user, err := c.slackClient.GetUserInfo(userID)
		if err != nil || user == nil || user.Deleted {
			lines = append(lines, formerMemberPlaceholder)
			continue
		}
		lines = append(lines, fmt.Sprintf("<@%s>", user.ID))
	}

	return strings.Join(lines, "\n")
}
