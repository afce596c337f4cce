package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyping/slack-study-bot/internal/domain"
	"github.com/studyping/slack-study-bot/internal/domain/entity"
)

var testOrigin = entity.Origin{SlackTeamID: "T123", SlackChannelID: "C123"}

func TestStore_Create(t *testing.T) {
	s := New()
	fireAt := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)

	err := s.Create("42", "U7", fireAt, testOrigin)
	require.NoError(t, err)

	sched := s.Get("42")
	require.NotNil(t, sched)
	assert.Equal(t, "U7", sched.CreatorID)
	assert.True(t, fireAt.Equal(sched.FireAt))
	assert.Equal(t, testOrigin, sched.Origin)
	assert.Equal(t, []string{"U7"}, sched.Members(), "audience should start with the creator")
}

func TestStore_Create_DuplicateID(t *testing.T) {
	s := New()
	fireAt := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)

	require.NoError(t, s.Create("42", "U7", fireAt, testOrigin))

	err := s.Create("42", "U9", fireAt, testOrigin)
	require.Error(t, err)
	assert.Equal(t, domain.KindDuplicateID, domain.KindOf(err))

	// Original entry must be untouched
	assert.Equal(t, "U7", s.Get("42").CreatorID)
}

func TestStore_ParticipantMembership(t *testing.T) {
	s := New()
	fireAt := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	require.NoError(t, s.Create("42", "U7", fireAt, testOrigin))

	s.AddParticipant("42", "U9")
	assert.Equal(t, []string{"U7", "U9"}, s.Get("42").Members())

	// Re-adding a member changes nothing
	s.AddParticipant("42", "U9")
	assert.Equal(t, []string{"U7", "U9"}, s.Get("42").Members())

	// The creator can opt out like anyone else
	s.RemoveParticipant("42", "U7")
	assert.Equal(t, []string{"U9"}, s.Get("42").Members())

	// Removing a non-member is a no-op
	s.RemoveParticipant("42", "U999")
	assert.Equal(t, []string{"U9"}, s.Get("42").Members())

	// Audience may drain to empty; the entry still exists
	s.RemoveParticipant("42", "U9")
	sched := s.Get("42")
	require.NotNil(t, sched)
	assert.Empty(t, sched.Members())
}

func TestStore_AddParticipant_UnknownID(t *testing.T) {
	s := New()

	// Reaction on a message that is not an announcement: ignored, and no
	// entry appears as a side effect.
	s.AddParticipant("999", "U1")
	assert.Nil(t, s.Get("999"))

	s.RemoveParticipant("999", "U1")
	assert.Nil(t, s.Get("999"))
}

func TestStore_DueEntries(t *testing.T) {
	s := New()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Create("past", "U1", now.Add(-time.Minute), testOrigin))
	require.NoError(t, s.Create("exact", "U2", now, testOrigin))
	require.NoError(t, s.Create("future", "U3", now.Add(time.Minute), testOrigin))

	due := s.DueEntries(now)
	require.Len(t, due, 2)

	ids := []string{due[0].MessageID, due[1].MessageID}
	assert.ElementsMatch(t, []string{"past", "exact"}, ids)

	// The scan is read-only
	assert.NotNil(t, s.Get("past"))
	assert.NotNil(t, s.Get("exact"))
}

func TestStore_DueEntries_SnapshotsAudience(t *testing.T) {
	s := New()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Create("42", "U7", now, testOrigin))

	due := s.DueEntries(now)
	require.Len(t, due, 1)

	// A late opt-out must not mutate the snapshot already handed out.
	s.RemoveParticipant("42", "U7")
	assert.Equal(t, []string{"U7"}, due[0].Members())
	assert.Empty(t, s.Get("42").Members())
}

func TestStore_Remove_Idempotent(t *testing.T) {
	s := New()
	fireAt := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	require.NoError(t, s.Create("42", "U7", fireAt, testOrigin))

	s.Remove("42")
	assert.Nil(t, s.Get("42"))

	// Second removal is a no-op, not a panic or error
	s.Remove("42")
	assert.Nil(t, s.Get("42"))
}
