package entity

import (
	"sort"
	"time"
)

// Origin is the external scope a schedule belongs to: the workspace it was
// created in and the channel its announcement and roll call are posted to.
// It is a back-reference only; the schedule never owns the channel.
type Origin struct {
	SlackTeamID    string
	SlackChannelID string
}

// Schedule is a pending study ping: who to mention, where, and when.
type Schedule struct {
	// MessageID is the timestamp of the announcement message posted to
	// Slack. Slack assigns it; it is unique per channel and doubles as the
	// key reaction events arrive under.
	MessageID string
	CreatorID string
	FireAt    time.Time
	// Audience is the set of user IDs to mention when the schedule fires.
	// Starts with the creator; reactions add and remove members.
	Audience map[string]struct{}
	Origin   Origin
}

// Members returns the audience as a sorted slice. Sorting keeps roll-call
// output deterministic; the set itself has no meaningful order.
func (s *Schedule) Members() []string {
	members := make([]string, 0, len(s.Audience))
	for id := range s.Audience {
		members = append(members, id)
	}
	sort.Strings(members)
	return members
}

// ChannelPref is a workspace's chosen output channel for announcements and
// roll calls. One per team.
type ChannelPref struct {
	ID               int64     `json:"id" db:"id"`
	SlackTeamID      string    `json:"slack_team_id" db:"slack_team_id"`
	SlackChannelID   string    `json:"slack_channel_id" db:"slack_channel_id"`
	SlackChannelName string    `json:"slack_channel_name" db:"slack_channel_name"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}
