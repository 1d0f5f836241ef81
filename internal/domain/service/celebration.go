package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/event"
	"github.com/diegoclair/slack-birthday-bot/internal/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// tomorrow is the second, channel-free reminder sent the day before a birthday.
var tomorrow = event.Window{Amount: 1, Unit: event.UnitDays}

type celebrationService struct {
	dm        contract.DataManager
	chat      contract.Chat
	directory contract.Directory
	images    contract.ImageProvider
	clock     event.Clock
	settings  Settings

	birthdayQuotes    *event.Pool
	anniversaryQuotes *event.Pool
	channelTemplates  *event.Pool
	roomSuffix        func() string
}

func newCelebration(deps Dependencies, settings Settings) *celebrationService {
	return &celebrationService{
		dm:                deps.DataManager,
		chat:              deps.Chat,
		directory:         deps.Directory,
		images:            deps.Images,
		clock:             deps.Clock,
		settings:          settings,
		birthdayQuotes:    event.BirthdayQuotes(nil),
		anniversaryQuotes: event.AnniversaryQuotes(nil),
		channelTemplates:  event.NewPool(settings.ChannelTemplates, nil),
		roomSuffix:        func() string { return uuid.NewString()[:8] },
	}
}

// CongratulateToday greets today's birthday people and work anniversaries in
// the general room.
func (s *celebrationService) CongratulateToday(ctx context.Context) error {
	today := event.Today(s.clock)

	users, err := s.dm.User().List()
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	active, err := s.activeMembers(ctx)
	if err != nil {
		return err
	}

	if birthdays := filterActive(event.FindUsersForEvent(event.Birthday, today, users), active); len(birthdays) > 0 {
		s.congratulate(ctx, birthdays)
	}

	anniversaries := filterActive(event.FindUsersForEvent(event.WorkAnniversary, today, users), active)
	if len(anniversaries) == 0 {
		return nil
	}

	text := event.FormAnniversaryMessage(anniversaries, today)
	if text == "" {
		return nil
	}
	if quote := s.anniversaryQuotes.Next(); quote != "" {
		text += "\n" + quote
	}

	if err := s.chat.SendToRoom(ctx, s.settings.GeneralChannel, text); err != nil {
		log.Error().Err(err).Str("room", s.settings.GeneralChannel).Msg("failed to send anniversary message")
		return nil
	}
	metrics.MessageSent(metrics.KindAnniversary)

	return nil
}

func (s *celebrationService) congratulate(ctx context.Context, users []*entity.User) {
	text := event.FormCongratulationMessage(users, s.birthdayQuotes.Random())

	image, err := s.images.FetchImage(ctx)
	switch {
	case err != nil:
		metrics.ImageFetchFailed()
		log.Warn().Err(err).Msg("failed to fetch birthday image, sending text only")
	case image != "":
		text = image + "\n" + text
	}

	if err := s.chat.SendToRoom(ctx, s.settings.GeneralChannel, text); err != nil {
		log.Error().Err(err).Str("room", s.settings.GeneralChannel).Msg("failed to send congratulation")
		return
	}
	metrics.MessageSent(metrics.KindCongratulation)

	log.Info().Str("users", event.FormUserList(users)).Msg("birthday congratulation sent")
}

// RemindUpcoming tells every active member about the birthdays window ahead,
// leaving each birthday person out of their own reminder. With withChannels
// set and channels enabled, a private room is opened for every birthday person.
func (s *celebrationService) RemindUpcoming(ctx context.Context, window event.Window, withChannels bool) error {
	target := window.Target(event.Today(s.clock))

	users, err := s.dm.User().List()
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	active, err := s.activeMembers(ctx)
	if err != nil {
		return err
	}

	birthdayPeople := filterActive(event.FindUsersForEvent(event.Birthday, target, users), active)
	if len(birthdayPeople) == 0 {
		log.Debug().Str("target", target.String()).Msg("no upcoming birthdays")
		return nil
	}

	if withChannels && s.settings.CreateBirthdayChannels {
		for _, person := range birthdayPeople {
			if err := s.ensureChannel(ctx, person, target, users, active); err != nil {
				log.Error().Err(err).Str("user", person.Name).Msg("failed to prepare birthday channel")
			}
		}
	}

	for _, recipient := range filterActive(users, active) {
		others := excludeUser(birthdayPeople, recipient)
		if len(others) == 0 {
			continue
		}

		text := event.FormReminderMessage(others, target, window.Days())
		if err := s.chat.SendDirect(ctx, recipient.SlackUserID, text); err != nil {
			log.Error().Err(err).Str("user", recipient.Name).Msg("failed to send birthday reminder")
			continue
		}
		metrics.MessageSent(metrics.KindReminder)
	}

	return nil
}

// ensureChannel opens the birthday channel of person unless one exists.
func (s *celebrationService) ensureChannel(ctx context.Context, person *entity.User, target event.Date, users []*entity.User, active map[string]bool) error {
	existing, err := s.dm.Channel().GetByUserID(person.ID)
	if err != nil {
		return fmt.Errorf("failed to get birthday channel: %w", err)
	}
	if existing != nil {
		log.Debug().Str("user", person.Name).Str("room", existing.RoomName).Msg("birthday channel already exists")
		return nil
	}

	name := roomName(person, target, s.roomSuffix())

	roomID, err := s.chat.CreateRoom(ctx, name, s.invitees(person, users, active))
	if roomID == "" {
		return err
	}
	if err != nil {
		log.Warn().Err(err).Str("room", name).Msg("birthday channel created with missing members")
	}
	metrics.RoomCreated()

	channel := &entity.BirthdayChannel{
		UserID:    person.ID,
		RoomID:    roomID,
		RoomName:  name,
		EventDate: target.Time(time.UTC),
	}
	if err := s.dm.Channel().Create(channel); err != nil {
		return fmt.Errorf("failed to save birthday channel %s: %w", name, err)
	}

	if err := s.chat.SendToRoom(ctx, roomID, event.FormChannelMessage(s.channelTemplates.Next(), person)); err != nil {
		log.Error().Err(err).Str("room", name).Msg("failed to post birthday channel message")
	} else {
		metrics.MessageSent(metrics.KindChannel)
	}

	if s.settings.CreatePitchingInSurveys {
		if err := s.chat.SendToRoom(ctx, roomID, event.FormSurveyMessage(person)); err != nil {
			log.Error().Err(err).Str("room", name).Msg("failed to post pitching-in survey")
		} else {
			metrics.MessageSent(metrics.KindSurvey)
		}
	}

	log.Info().Str("user", person.Name).Str("room", name).Msg("birthday channel created")
	return nil
}

// invitees are the active roster users other than person and the blacklisted names.
func (s *celebrationService) invitees(person *entity.User, users []*entity.User, active map[string]bool) []string {
	blacklist := make(map[string]bool, len(s.settings.ChannelBlacklist))
	for _, name := range s.settings.ChannelBlacklist {
		blacklist[strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "@"))] = true
	}

	var ids []string
	for _, user := range filterActive(users, active) {
		if user.SlackUserID == person.SlackUserID || blacklist[strings.ToLower(user.Name)] {
			continue
		}
		ids = append(ids, user.SlackUserID)
	}
	return ids
}

// SweepExpiredChannels removes birthday channels older than the configured TTL.
func (s *celebrationService) SweepExpiredChannels(ctx context.Context) error {
	cutoff := event.Today(s.clock).AddDays(-s.settings.ChannelTTLDays)

	channels, err := s.dm.Channel().ListEventsOnOrBefore(cutoff.Time(time.UTC))
	if err != nil {
		return fmt.Errorf("failed to list expired birthday channels: %w", err)
	}

	for _, channel := range channels {
		if err := s.chat.DeleteRoom(ctx, channel.RoomID); err != nil {
			log.Error().Err(err).Str("room", channel.RoomName).Msg("failed to delete birthday channel")
			continue
		}

		err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			if err := tx.PitchingIn().DeleteByChannel(channel.ID); err != nil {
				return fmt.Errorf("failed to delete survey answers: %w", err)
			}
			if err := tx.Channel().Delete(channel.ID); err != nil {
				return fmt.Errorf("failed to delete birthday channel: %w", err)
			}
			return nil
		})
		if err != nil {
			log.Error().Err(err).Str("room", channel.RoomName).Msg("failed to forget birthday channel")
			continue
		}
		metrics.RoomDeleted()

		log.Info().Str("room", channel.RoomName).Msg("birthday channel removed")
	}

	return nil
}

// DetectBirthdayless asks the active users without a birth date to set one
// and reports them to the logging room.
func (s *celebrationService) DetectBirthdayless(ctx context.Context) error {
	users, err := s.dm.User().List()
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	var confirmed []*entity.User
	for _, user := range event.UsersWithoutDate(event.Birthday, users) {
		active, err := s.directory.IsUserActive(ctx, user.SlackUserID)
		if err != nil {
			log.Warn().Err(err).Str("user", user.Name).Msg("failed to check user status")
			continue
		}
		if !active {
			continue
		}
		confirmed = append(confirmed, user)

		if err := s.chat.SendDirect(ctx, user.SlackUserID, event.FormBirthdaylessReminder(s.settings.CompanyName)); err != nil {
			log.Error().Err(err).Str("user", user.Name).Msg("failed to remind about missing birth date")
			continue
		}
		metrics.MessageSent(metrics.KindBirthdayless)
	}

	if len(confirmed) == 0 {
		return nil
	}

	if err := s.chat.SendToRoom(ctx, s.settings.LoggingChannel, event.FormBirthdaylessSummary(confirmed)); err != nil {
		log.Error().Err(err).Str("room", s.settings.LoggingChannel).Msg("failed to report users without birth date")
	}

	return nil
}

// activeMembers returns the Slack IDs of the workspace's active humans.
func (s *celebrationService) activeMembers(ctx context.Context) (map[string]bool, error) {
	members, err := s.directory.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspace members: %w", err)
	}

	active := make(map[string]bool, len(members))
	for _, member := range members {
		active[member.SlackUserID] = true
	}
	return active, nil
}

func filterActive(users []*entity.User, active map[string]bool) []*entity.User {
	var result []*entity.User
	for _, user := range users {
		if active[user.SlackUserID] {
			result = append(result, user)
		}
	}
	return result
}

func excludeUser(users []*entity.User, excluded *entity.User) []*entity.User {
	result := make([]*entity.User, 0, len(users))
	for _, user := range users {
		if user.SlackUserID != excluded.SlackUserID {
			result = append(result, user)
		}
	}
	return result
}

var invalidRoomChars = regexp.MustCompile(`[^a-z0-9_-]+`)

// roomName builds "<name>-birthday-channel-DD-MM-<suffix>" within Slack's
// naming rules, shortening the name part when needed.
func roomName(person *entity.User, target event.Date, suffix string) string {
	tail := sanitizeRoomName(fmt.Sprintf("-birthday-channel-%s-%s", target.Format("02-01"), suffix))
	head := sanitizeRoomName(person.Name)

	if room := domain.ChannelNameMaxLen - len(tail); len(head) > room {
		head = head[:max(room, 0)]
	}
	return head + tail
}

func sanitizeRoomName(raw string) string {
	return invalidRoomChars.ReplaceAllString(strings.ToLower(raw), "-")
}
