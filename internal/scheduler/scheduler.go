package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler drives the daily check-in message.
type Scheduler struct {
	cron        *cron.Cron
	ctx         context.Context
	cancel      context.CancelFunc
	checkinFunc func(ctx context.Context) error
}

func New(loc *time.Location) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetCheckinFunction sets the function invoked on each cron trigger.
func (s *Scheduler) SetCheckinFunction(f func(ctx context.Context) error) {
	s.checkinFunc = f
}

// Start registers the cron spec and launches the scheduler.
func (s *Scheduler) Start(spec string) error {
	if s.checkinFunc == nil {
		log.Println("check-in function not set, scheduler will not run")
		return nil
	}

	_, err := s.cron.AddFunc(spec, func() {
		log.Printf("triggered daily check-in (%s)", spec)
		if err := s.checkinFunc(s.ctx); err != nil {
			log.Printf("daily check-in failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("scheduler started, daily check-in at %q", spec)
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	log.Println("scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
