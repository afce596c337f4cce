// Package store holds pending schedules in memory. Entries live only for
// the lifetime of the process; a restart drops them (known limitation,
// matching the reference behavior). Channel preferences, by contrast, are
// persisted in the database package.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/studyping/slack-study-bot/internal/domain"
	"github.com/studyping/slack-study-bot/internal/domain/contract"
	"github.com/studyping/slack-study-bot/internal/domain/entity"
)

// Store is a mutex-guarded map from announcement message ID to its pending
// schedule. RSVP events and the sweeper run on different goroutines, so
// every access takes the lock.
type Store struct {
	mu        sync.Mutex
	schedules map[string]*entity.Schedule
}

func New() *Store {
	return &Store{
		schedules: make(map[string]*entity.Schedule),
	}
}

var _ contract.ScheduleStore = (*Store)(nil)

// Create inserts a schedule whose audience starts as {creatorID}.
func (s *Store) Create(id, creatorID string, fireAt time.Time, origin entity.Origin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.schedules[id]; exists {
		return domain.NewError(domain.KindDuplicateID, "",
			fmt.Errorf("schedule %s already exists", id))
	}

	s.schedules[id] = &entity.Schedule{
		MessageID: id,
		CreatorID: creatorID,
		FireAt:    fireAt,
		Audience:  map[string]struct{}{creatorID: {}},
		Origin:    origin,
	}
	return nil
}

// AddParticipant opts userID into the schedule keyed by id. Reactions can
// land on any message in the workspace, so an unknown id is ignored rather
// than treated as an error.
func (s *Store) AddParticipant(id, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sched, ok := s.schedules[id]
	if !ok {
		return
	}
	sched.Audience[userID] = struct{}{}
}

// RemoveParticipant opts userID out. Unknown id or non-member: no-op.
func (s *Store) RemoveParticipant(id, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sched, ok := s.schedules[id]
	if !ok {
		return
	}
	delete(sched.Audience, userID)
}

// DueEntries returns copies of all schedules with FireAt <= now. The copies
// carry an audience snapshot: membership changes that land after this call
// do not affect a firing already in flight.
func (s *Store) DueEntries(now time.Time) []*entity.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []*entity.Schedule
	for _, sched := range s.schedules {
		if !sched.FireAt.After(now) {
			due = append(due, copySchedule(sched))
		}
	}
	return due
}

// Remove deletes the schedule. Idempotent so the sweeper can retry after a
// partial failure.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.schedules, id)
}

// Get returns a copy of the schedule, or nil when absent.
func (s *Store) Get(id string) *entity.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	sched, ok := s.schedules[id]
	if !ok {
		return nil
	}
	return copySchedule(sched)
}

func copySchedule(sched *entity.Schedule) *entity.Schedule {
	audience := make(map[string]struct{}, len(sched.Audience))
	for id := range sched.Audience {
		audience[id] = struct{}{}
	}
	return &entity.Schedule{
		MessageID: sched.MessageID,
		CreatorID: sched.CreatorID,
		FireAt:    sched.FireAt,
		Audience:  audience,
		Origin:    sched.Origin,
	}
}
