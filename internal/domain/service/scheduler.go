package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/event"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

type rosterSyncer interface {
	SyncRoster(ctx context.Context) error
}

type notifier interface {
	CongratulateToday(ctx context.Context) error
	RemindUpcoming(ctx context.Context, window event.Window, withChannels bool) error
	SweepExpiredChannels(ctx context.Context) error
	DetectBirthdayless(ctx context.Context) error
}

type scheduler struct {
	roster   rosterSyncer
	notifier notifier
	settings Settings

	cron    *cron.Cron
	ctx     context.Context
	cancel  context.CancelFunc
	running bool
}

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func newScheduler(roster rosterSyncer, notifier notifier, settings Settings) *scheduler {
	loc := settings.Location
	if loc == nil {
		loc = time.Local
	}

	logger := cronLogger{}

	return &scheduler{
		roster:   roster,
		notifier: notifier,
		settings: settings,
		cron: cron.New(
			cron.WithParser(cronParser),
			cron.WithLocation(loc),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
	}
}

// ValidateSchedule reports whether expr is an accepted cron expression.
func ValidateSchedule(expr string) error {
	if _, err := cronParser.Parse(strings.TrimSpace(expr)); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	return nil
}

// Start registers the jobs and starts the cron loop. Jobs run with ctx,
// which is also cancelled by Stop.
func (s *scheduler) Start(ctx context.Context) error {
	if s.running {
		return nil
	}

	s.ctx, s.cancel = context.WithCancel(ctx)

	if err := s.register(); err != nil {
		s.cancel()
		return err
	}

	s.cron.Start()
	s.running = true

	log.Info().
		Str("happy_schedule", s.settings.HappySchedule).
		Str("advance_schedule", s.settings.AdvanceSchedule).
		Msg("scheduler started")

	return nil
}

// Stop halts the cron loop and waits for running jobs to return.
func (s *scheduler) Stop() {
	if !s.running {
		return
	}

	log.Info().Msg("scheduler stopping")
	s.cancel()
	<-s.cron.Stop().Done()
	s.running = false
}

func (s *scheduler) register() error {
	happy := strings.TrimSpace(s.settings.HappySchedule)
	advance := strings.TrimSpace(s.settings.AdvanceSchedule)

	if happy == advance {
		if _, err := s.cron.AddFunc(happy, func() { s.RunAll(s.ctx) }); err != nil {
			return fmt.Errorf("failed to schedule reminders %q: %w", happy, err)
		}
		return nil
	}

	if _, err := s.cron.AddFunc(happy, func() { s.RunHappy(s.ctx) }); err != nil {
		return fmt.Errorf("failed to schedule congratulations %q: %w", happy, err)
	}
	if _, err := s.cron.AddFunc(advance, func() { s.RunAdvance(s.ctx) }); err != nil {
		return fmt.Errorf("failed to schedule advance reminders %q: %w", advance, err)
	}

	return nil
}

// RunAll runs every step of a notification cycle in order.
func (s *scheduler) RunAll(ctx context.Context) {
	s.RunHappy(ctx)
	s.RunAdvance(ctx)
}

// RunHappy congratulates today's birthdays and anniversaries.
func (s *scheduler) RunHappy(ctx context.Context) {
	if err := s.notifier.CongratulateToday(ctx); err != nil {
		log.Error().Err(err).Msg("congratulation step failed")
	}
}

// RunAdvance syncs the roster, sends both reminders, sweeps expired
// birthday channels and nags users without a birth date.
func (s *scheduler) RunAdvance(ctx context.Context) {
	if err := s.roster.SyncRoster(ctx); err != nil {
		log.Error().Err(err).Msg("roster sync failed")
	}

	if err := s.notifier.RemindUpcoming(ctx, s.settings.Window, true); err != nil {
		log.Error().Err(err).Msg("advance reminder step failed")
	}

	if s.settings.Window.Days() != tomorrow.Days() {
		if err := s.notifier.RemindUpcoming(ctx, tomorrow, false); err != nil {
			log.Error().Err(err).Msg("tomorrow reminder step failed")
		}
	}

	if err := s.notifier.SweepExpiredChannels(ctx); err != nil {
		log.Error().Err(err).Msg("channel sweep failed")
	}

	if err := s.notifier.DetectBirthdayless(ctx); err != nil {
		log.Error().Err(err).Msg("birthdayless detection failed")
	}
}

// cronLogger routes cron's own logging through zerolog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
