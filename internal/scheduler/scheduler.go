package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/rajasthanwx/weather-monitor/internal/view"
)

// Scheduler periodically re-runs the dashboard refresh cycle. The refresh is
// a blind retry of the whole cycle regardless of the prior outcome.
type Scheduler struct {
	scheduler  *gocron.Scheduler
	controller *view.Controller
	interval   time.Duration
	timeout    time.Duration
}

// New creates a new Scheduler.
func New(controller *view.Controller, interval, timeout time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler:  s,
		controller: controller,
		interval:   interval,
		timeout:    timeout,
	}
}

// Start schedules the periodic refresh and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 10
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: running dashboard refresh")

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		s.controller.Refresh(ctx)
		log.Println("scheduler: completed dashboard refresh")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
