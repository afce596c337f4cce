package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyping/slack-study-bot/internal/domain/entity"
)

func TestChannelPrefRepo_Set(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newChannelPrefRepo(db.conn)

	pref := &entity.ChannelPref{
		SlackTeamID:      "T123456789",
		SlackChannelID:   "C123456789",
		SlackChannelName: "study-hall",
	}

	err := repo.Set(pref)
	require.NoError(t, err, "Failed to set channel preference")

	assert.NotZero(t, pref.ID, "Expected preference ID to be set after insert")
}

func TestChannelPrefRepo_Set_ReplacesPrevious(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newChannelPrefRepo(db.conn)

	first := &entity.ChannelPref{
		SlackTeamID:      "T123456789",
		SlackChannelID:   "C111111111",
		SlackChannelName: "general",
	}
	require.NoError(t, repo.Set(first))

	second := &entity.ChannelPref{
		SlackTeamID:      "T123456789",
		SlackChannelID:   "C222222222",
		SlackChannelName: "study-hall",
	}
	require.NoError(t, repo.Set(second))

	found, err := repo.GetByTeamID("T123456789")
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, "C222222222", found.SlackChannelID)
	assert.Equal(t, "study-hall", found.SlackChannelName)
	assert.Equal(t, first.ID, found.ID, "upsert should keep a single row per team")
}

func TestChannelPrefRepo_GetByTeamID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newChannelPrefRepo(db.conn)

	original := &entity.ChannelPref{
		SlackTeamID:      "T123456789",
		SlackChannelID:   "C123456789",
		SlackChannelName: "study-hall",
	}
	require.NoError(t, repo.Set(original))

	// Test successful retrieval
	found, err := repo.GetByTeamID("T123456789")
	require.NoError(t, err, "Failed to get channel preference by team ID")
	require.NotNil(t, found, "Expected to find channel preference")

	assert.Equal(t, original.SlackTeamID, found.SlackTeamID)
	assert.Equal(t, original.SlackChannelID, found.SlackChannelID)
	assert.Equal(t, original.SlackChannelName, found.SlackChannelName)
	assert.False(t, found.CreatedAt.IsZero())

	// Test not found
	notFound, err := repo.GetByTeamID("TNONEXISTENT")
	require.NoError(t, err, "Unexpected error when preference not found")
	assert.Nil(t, notFound, "Expected nil when preference not found")
}
