package contract

import (
	"time"

	"github.com/studyping/slack-study-bot/internal/domain/entity"
)

// ScheduleStore defines the contract for the pending-schedule store.
// Callers never touch raw storage, so the in-memory map can later be
// swapped for a durable backend without changing the services.
type ScheduleStore interface {
	// Create inserts a schedule whose audience starts as {creatorID}.
	// Fails when id is already present.
	Create(id, creatorID string, fireAt time.Time, origin entity.Origin) error

	// AddParticipant opts userID into the schedule keyed by id. A no-op
	// when id is unknown (reactions can target unrelated messages) or the
	// user is already a member.
	AddParticipant(id, userID string)

	// RemoveParticipant opts userID out. A no-op when id is unknown or the
	// user is not a member.
	RemoveParticipant(id, userID string)

	// DueEntries returns copies of all schedules with FireAt <= now,
	// without removing them. The copies carry an audience snapshot.
	DueEntries(now time.Time) []*entity.Schedule

	// Remove deletes the schedule. Idempotent: removing an absent id is a
	// no-op.
	Remove(id string)

	// Get returns a copy of the schedule, or nil when absent.
	Get(id string) *entity.Schedule
}
