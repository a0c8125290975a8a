package reminder

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the reminder tick on a fixed daily schedule. The cron
// expression comes from configuration; time-of-day is not user-controllable.
type Scheduler struct {
	cron            *cron.Cron
	reminderService ReminderService
	spec            string
}

func NewScheduler(reminderService ReminderService, spec string) *Scheduler {
	return &Scheduler{
		cron:            cron.New(),
		reminderService: reminderService,
		spec:            spec,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if err := s.reminderService.RunTick(context.Background()); err != nil {
			log.Printf("reminder tick failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("reminder scheduler started with schedule %q", s.spec)
	return nil
}

// Stop halts the schedule and waits for an in-flight tick to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("reminder scheduler stopped")
}
