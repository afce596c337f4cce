package service

import (
	"log"
	"time"

	"github.com/slack-go/slack"

	"github.com/studyping/slack-study-bot/internal/domain"
	"github.com/studyping/slack-study-bot/internal/domain/contract"
	"github.com/studyping/slack-study-bot/internal/domain/entity"
)

// sweeper periodically scans the schedule store, fires due roll calls and
// reclaims their entries. An entry is removed only after its roll call was
// delivered, so a failed delivery is retried on the next tick
// (at-least-once, never silently dropped).
type sweeper struct {
	store       contract.ScheduleStore
	slackClient contract.SlackClient
	composer    *composer
	interval    time.Duration
	now         func() time.Time
	stopChan    chan struct{}
	running     bool
}

func newSweeper(store contract.ScheduleStore, slackClient contract.SlackClient, composer *composer, interval time.Duration) *sweeper {
	return &sweeper{
		store:       store,
		slackClient: slackClient,
		composer:    composer,
		interval:    interval,
		now:         time.Now,
		stopChan:    make(chan struct{}),
	}
}

// Start launches the sweep loop. Ticking begins only once ready is closed:
// the sweeper must not fire before the Slack session is confirmed valid.
func (s *sweeper) Start(ready <-chan struct{}) {
	if s.running {
		return
	}
	s.running = true
	go s.run(ready)
}

func (s *sweeper) Stop() {
	if !s.running {
		return
	}
	log.Println("Sweeper stopping...")
	close(s.stopChan)
	s.running = false
}

func (s *sweeper) run(ready <-chan struct{}) {
	select {
	case <-ready:
	case <-s.stopChan:
		return
	}

	log.Printf("Sweeper started, checking every %s", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopChan:
			return
		}
	}
}

// sweep fires every due schedule once. The audience is snapshotted by
// DueEntries before delivery, so an opt-out racing with an in-flight
// delivery is not honored for that firing.
func (s *sweeper) sweep() {
	due := s.store.DueEntries(s.now())

	for _, sched := range due {
		if err := s.deliver(sched); err != nil {
			log.Printf("Failed to deliver roll call for schedule %s: %v (will retry next sweep)", sched.MessageID, err)
			continue
		}
		s.store.Remove(sched.MessageID)
		log.Printf("Schedule %s fired with %d participants", sched.MessageID, len(sched.Audience))
	}
}

func (s *sweeper) deliver(sched *entity.Schedule) error {
	text := s.composer.renderRollCall(sched.Members())

	_, _, err := s.slackClient.PostMessage(
		sched.Origin.SlackChannelID,
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		return domain.NewError(domain.KindDeliveryFailure, "", err)
	}
	return nil
}
