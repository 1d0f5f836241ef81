package service

import (
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/event"
)

// Dependencies are the adapters the services talk through.
type Dependencies struct {
	DataManager contract.DataManager
	Chat        contract.Chat
	Directory   contract.Directory
	Images      contract.ImageProvider
	Clock       event.Clock
}

// Settings tune the notification cycle.
type Settings struct {
	CompanyName    string
	GeneralChannel string
	LoggingChannel string

	Window event.Window

	CreateBirthdayChannels  bool
	CreatePitchingInSurveys bool
	ChannelTemplates        []string
	ChannelBlacklist        []string
	ChannelTTLDays          int

	HappySchedule   string
	AdvanceSchedule string
	Location        *time.Location
}

type Instance struct {
	Birthday    *birthdayService
	Celebration *celebrationService
	Scheduler   *scheduler
}

func NewInstance(deps Dependencies, settings Settings) *Instance {
	if deps.Clock == nil {
		deps.Clock = event.RealClock{Location: settings.Location}
	}

	birthdayService := newBirthday(deps.DataManager, deps.Directory, deps.Clock)
	celebrationService := newCelebration(deps, settings)

	return &Instance{
		Birthday:    birthdayService,
		Celebration: celebrationService,
		Scheduler:   newScheduler(birthdayService, celebrationService, settings),
	}
}
