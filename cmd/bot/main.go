package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/calendar"
	"github.com/diegoclair/slack-birthday-bot/internal/chat"
	"github.com/diegoclair/slack-birthday-bot/internal/config"
	"github.com/diegoclair/slack-birthday-bot/internal/database"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/event"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/service"
	"github.com/diegoclair/slack-birthday-bot/internal/handlers"
	"github.com/diegoclair/slack-birthday-bot/internal/i18n"
	"github.com/diegoclair/slack-birthday-bot/internal/logger"
	"github.com/diegoclair/slack-birthday-bot/internal/retry"
	"github.com/diegoclair/slack-birthday-bot/internal/tenor"
	"github.com/diegoclair/slack-birthday-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

const serviceName = "slack-birthday-bot"

func main() {
	envErr := godotenv.Load()

	logger.New(serviceName, os.Getenv("LOG_LEVEL"))
	if envErr != nil {
		log.Warn().Msg(".env file not found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	err = errors.Join(
		cfg.Validate(),
		service.ValidateSchedule(cfg.HappyReminderSchedule),
		service.ValidateSchedule(cfg.AdvanceReminderSchedule),
	)
	if err != nil {
		serveDegraded(ctx, cfg.Port, err)
		return
	}

	log.Info().
		Str("language", cfg.Language).
		Bool("single_reminder_job", cfg.SameSchedule()).
		Bool("birthday_channels", cfg.CreateBirthdayChannels).
		Msg("configuration loaded")

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	api := slack.New(cfg.SlackBotToken)
	if _, err := api.AuthTestContext(ctx); err != nil {
		serveDegraded(ctx, cfg.Port, fmt.Errorf("SLACK_BOT_TOKEN was rejected: %w", err))
		return
	}

	slackChat := chat.New(api)

	inRoom, err := slackChat.IsBotInRoom(ctx, cfg.LoggingChannel)
	if err != nil {
		serveDegraded(ctx, cfg.Port, fmt.Errorf("failed to check BIRTHDAY_LOGGING_CHANNEL: %w", err))
		return
	}
	if !inRoom {
		serveDegraded(ctx, cfg.Port, fmt.Errorf("the bot is not a member of #%s, invite it or change BIRTHDAY_LOGGING_CHANNEL", cfg.LoggingChannel))
		return
	}

	translator, err := i18n.New(cfg.Language)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load translations")
	}

	// Validate has already checked both
	window, _ := cfg.ReminderWindow()
	loc, _ := cfg.Location()
	clock := event.RealClock{Location: loc}

	images := tenor.New(tenor.Config{
		APIKey:      cfg.TenorAPIKey,
		BaseURL:     cfg.TenorBaseURL,
		SearchTerms: cfg.TenorSearchTerms(),
		Blacklist:   cfg.TenorBlacklist,
		Limit:       cfg.TenorImgLimit,
		Retry: retry.Policy{
			MaxAttempts: cfg.TenorRetryAttempts,
			Delay:       cfg.TenorRetryDelay,
		},
	})

	services := service.NewInstance(
		service.Dependencies{
			DataManager: database.NewInstance(db),
			Chat:        slackChat,
			Directory:   slackChat,
			Images:      images,
			Clock:       clock,
		},
		service.Settings{
			CompanyName:             cfg.CompanyName,
			GeneralChannel:          cfg.GeneralChannel,
			LoggingChannel:          cfg.LoggingChannel,
			Window:                  window,
			CreateBirthdayChannels:  cfg.CreateBirthdayChannels,
			CreatePitchingInSurveys: cfg.CreatePitchingInSurveys,
			ChannelTemplates:        cfg.ChannelTemplates(),
			ChannelBlacklist:        cfg.ChannelBlacklist,
			ChannelTTLDays:          cfg.ChannelTTLDays,
			HappySchedule:           cfg.HappyReminderSchedule,
			AdvanceSchedule:         cfg.AdvanceReminderSchedule,
			Location:                loc,
		},
	)

	if err := services.Birthday.SyncRoster(ctx); err != nil {
		log.Error().Err(err).Msg("initial roster sync failed")
	}

	if err := services.Scheduler.Start(ctx); err != nil {
		serveDegraded(ctx, cfg.Port, err)
		return
	}
	defer services.Scheduler.Stop()

	var calendarHandler *handlers.CalendarHandler
	if cfg.CalendarToken != "" {
		calendarHandler = handlers.NewCalendar(services.Birthday, &calendar.Generator{Clock: clock}, cfg.CalendarToken)
	}

	router := handlers.NewRouter(
		handlers.New(services.Birthday, translator, cfg.SlackSigningSecret),
		calendarHandler,
	)

	serve(ctx, cfg.Port, router)
}

// serveDegraded keeps health and metrics up so the misconfiguration is
// visible, without touching Slack.
func serveDegraded(ctx context.Context, port string, cause error) {
	log.Error().Err(cause).Msg("bot is misconfigured, serving health and metrics only")
	serve(ctx, port, handlers.NewRouter(nil, nil))
}

func serve(ctx context.Context, port string, handler http.Handler) {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shut down server")
		}
	}()

	log.Info().Str("port", port).Msg("server starting")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("failed to start server")
	}
	log.Info().Msg("server stopped")
}
