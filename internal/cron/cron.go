package cron

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type syncer interface {
	SyncSeasons(ctx context.Context) int
}

type Scheduler struct {
	cron     *cron.Cron
	worker   syncer
	schedule string
	logger   *zap.Logger
	initial  sync.WaitGroup
}

func NewScheduler(logger *zap.Logger, w syncer, schedule string) *Scheduler {
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cronLogger{logger.Sugar()}))
	return &Scheduler{
		cron:     c,
		worker:   w,
		schedule: schedule,
		logger:   logger,
	}
}

// Start runs one sync right away and then on the configured schedule. A tick
// that arrives while a sync is still running, the first one included, is
// skipped.
func (s *Scheduler) Start(ctx context.Context) error {
	job := cron.NewChain(cron.SkipIfStillRunning(cronLogger{s.logger.Sugar()})).Then(cron.FuncJob(func() {
		s.worker.SyncSeasons(ctx)
	}))

	if _, err := s.cron.AddJob(s.schedule, job); err != nil {
		return fmt.Errorf("invalid sync schedule %q: %w", s.schedule, err)
	}

	s.logger.Info("Initial season sync")
	s.initial.Add(1)
	go func() {
		defer s.initial.Done()
		job.Run()
	}()

	s.cron.Start()
	s.logger.Info("Cron scheduler started", zap.String("schedule", s.schedule))
	return nil
}

// Stop halts scheduling and waits for any running sync to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.initial.Wait()
	s.logger.Info("Cron scheduler stopped")
}

// cronLogger routes robfig/cron's logging through zap.
type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, append([]interface{}{zap.Error(err)}, keysAndValues...)...)
}
