package database

import (
	"database/sql"
	"fmt"

	"github.com/studyping/slack-study-bot/internal/domain/contract"
	"github.com/studyping/slack-study-bot/internal/domain/entity"
)

type channelPrefRepo struct {
	db dbConn
}

func newChannelPrefRepo(db dbConn) contract.ChannelPrefRepo {
	return &channelPrefRepo{db: db}
}

// Set stores the preferred channel for a team, replacing any previous
// choice. One preference per team.
func (r *channelPrefRepo) Set(pref *entity.ChannelPref) error {
	query := `
		INSERT INTO channel_prefs (slack_team_id, slack_channel_id, slack_channel_name)
		VALUES (?, ?, ?)
		ON CONFLICT(slack_team_id) DO UPDATE SET
			slack_channel_id = excluded.slack_channel_id,
			slack_channel_name = excluded.slack_channel_name,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.Exec(query,
		pref.SlackTeamID,
		pref.SlackChannelID,
		pref.SlackChannelName,
	)
	if err != nil {
		return fmt.Errorf("failed to set channel preference: %w", err)
	}

	stored, err := r.GetByTeamID(pref.SlackTeamID)
	if err != nil {
		return err
	}
	pref.ID = stored.ID
	return nil
}

// GetByTeamID returns the team's preferred channel, or nil when none is
// configured yet.
func (r *channelPrefRepo) GetByTeamID(slackTeamID string) (*entity.ChannelPref, error) {
	pref := &entity.ChannelPref{}
	query := `
		SELECT id, slack_team_id, slack_channel_id, slack_channel_name,
			created_at, updated_at
		FROM channel_prefs
		WHERE slack_team_id = ?
	`

	err := r.db.QueryRow(query, slackTeamID).Scan(
		&pref.ID,
		&pref.SlackTeamID,
		&pref.SlackChannelID,
		&pref.SlackChannelName,
		&pref.CreatedAt,
		&pref.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel preference: %w", err)
	}

	return pref, nil
}
