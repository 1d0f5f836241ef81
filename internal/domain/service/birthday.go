package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/slack-birthday-bot/internal/domain"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/event"
	slackcmd "github.com/diegoclair/slack-birthday-bot/internal/domain/slack"
	"github.com/rs/zerolog/log"
)

type birthdayService struct {
	dm        contract.DataManager
	directory contract.Directory
	clock     event.Clock
}

func newBirthday(dm contract.DataManager, directory contract.Directory, clock event.Clock) *birthdayService {
	return &birthdayService{
		dm:        dm,
		directory: directory,
		clock:     clock,
	}
}

// EnsureUser registers the caller of a command, refreshing a changed name.
func (s *birthdayService) EnsureUser(ctx context.Context, slackUserID, name string) (*entity.User, error) {
	user, err := s.dm.User().GetBySlackID(slackUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user != nil && (name == "" || user.Name == name) {
		return user, nil
	}

	if user == nil {
		user = &entity.User{SlackUserID: slackUserID}
	}
	user.Name = name

	if err := s.dm.User().Upsert(user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	log.Info().Str("slack_user_id", slackUserID).Str("name", name).Msg("user registered")
	return user, nil
}

func (s *birthdayService) SetDate(ctx context.Context, callerID string, kind event.Kind, target, rawDate string) (*entity.User, error) {
	user, err := s.resolveUser(ctx, callerID, target)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, callerID, user); err != nil {
		return nil, err
	}

	rawDate = strings.TrimSpace(rawDate)
	if !event.IsValidDate(rawDate) {
		return nil, domain.ErrInvalidDate
	}

	if err := s.setDate(kind, user.ID, rawDate); err != nil {
		return nil, err
	}

	setKindValue(kind, user, rawDate)
	log.Info().
		Str("caller", callerID).
		Str("user", user.Name).
		Str("kind", kind.String()).
		Str("date", rawDate).
		Msg("date saved")

	return user, nil
}

// DeleteDate clears a date. Clearing an empty date reports ErrNoDateSpecified.
func (s *birthdayService) DeleteDate(ctx context.Context, callerID string, kind event.Kind, target string) (*entity.User, error) {
	user, err := s.resolveUser(ctx, callerID, target)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, callerID, user); err != nil {
		return nil, err
	}

	if kind.Value(user) == "" {
		return user, domain.ErrNoDateSpecified
	}

	if err := s.setDate(kind, user.ID, ""); err != nil {
		return nil, err
	}

	setKindValue(kind, user, "")
	log.Info().
		Str("caller", callerID).
		Str("user", user.Name).
		Str("kind", kind.String()).
		Msg("date removed")

	return user, nil
}

// UsersOn looks up who celebrates on a day. Only privileged members may ask.
func (s *birthdayService) UsersOn(ctx context.Context, callerID string, kind event.Kind, rawDate string) ([]*entity.User, error) {
	if !s.isPrivileged(ctx, callerID) {
		return nil, domain.ErrPermissionDenied
	}

	date, err := event.ParseDate(strings.TrimSpace(rawDate))
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	users, err := s.dm.User().List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return event.FindUsersForEvent(kind, date, users), nil
}

// List returns everyone holding a date of kind, soonest occurrence first.
func (s *birthdayService) List(ctx context.Context, kind event.Kind) ([]event.Entry, error) {
	users, err := s.dm.User().List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return event.Chronological(kind, users, event.Today(s.clock)), nil
}

func (s *birthdayService) Users(ctx context.Context) ([]*entity.User, error) {
	users, err := s.dm.User().List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// RecordPitchingIn stores an answer to the survey of the birthday channel
// roomID and returns the updated tally.
func (s *birthdayService) RecordPitchingIn(ctx context.Context, roomID, respondentID string, answer bool) (*entity.PitchingInTally, error) {
	channel, err := s.dm.Channel().GetByRoomID(roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get birthday channel: %w", err)
	}
	if channel == nil {
		return nil, domain.ErrNotBirthdayChannel
	}

	tally := &entity.PitchingInTally{}

	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		response := &entity.PitchingInResponse{
			ChannelID:   channel.ID,
			SlackUserID: respondentID,
			Answer:      answer,
		}
		if err := tx.PitchingIn().Save(response); err != nil {
			return fmt.Errorf("failed to save answer: %w", err)
		}

		responses, err := tx.PitchingIn().ListByChannel(channel.ID)
		if err != nil {
			return fmt.Errorf("failed to list answers: %w", err)
		}

		for _, r := range responses {
			if r.Answer {
				tally.Yes++
			} else {
				tally.No++
			}
		}

		tally.Owner, err = tx.User().GetByID(channel.UserID)
		if err != nil {
			return fmt.Errorf("failed to get channel owner: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return tally, nil
}

// SyncRoster upserts every active member of the workspace.
func (s *birthdayService) SyncRoster(ctx context.Context) error {
	members, err := s.directory.ListMembers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list workspace members: %w", err)
	}

	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		for _, member := range members {
			user := &entity.User{
				SlackUserID: member.SlackUserID,
				Name:        member.Name,
				DisplayName: member.DisplayName,
			}
			if err := tx.User().Upsert(user); err != nil {
				return fmt.Errorf("failed to sync %s: %w", member.SlackUserID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Int("members", len(members)).Msg("roster synchronized")
	return nil
}

// resolveUser finds the roster entry a command refers to.
func (s *birthdayService) resolveUser(ctx context.Context, callerID, raw string) (*entity.User, error) {
	raw = strings.TrimSpace(raw)

	if strings.EqualFold(raw, domain.SelfReference) {
		user, err := s.dm.User().GetBySlackID(callerID)
		if err != nil {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		if user == nil {
			return nil, &domain.UserNotFoundError{Query: raw}
		}
		return user, nil
	}

	ref := slackcmd.ParseUserRef(raw)

	if ref.SlackUserID != "" {
		user, err := s.dm.User().GetBySlackID(ref.SlackUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		if user != nil {
			return user, nil
		}
		if ref.Name == "" {
			return nil, &domain.UserNotFoundError{Query: raw}
		}
	}

	if ref.Name == "" {
		return nil, &domain.UserNotFoundError{Query: raw}
	}

	user, err := s.dm.User().GetByName(ref.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	users, err := s.dm.User().FindByFuzzyName(ref.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	switch len(users) {
	case 0:
		return nil, &domain.UserNotFoundError{Query: ref.Name}
	case 1:
		return users[0], nil
	default:
		names := make([]string, 0, len(users))
		for _, u := range users {
			names = append(names, u.Name)
		}
		return nil, &domain.AmbiguousUserError{Query: ref.Name, Names: names}
	}
}

// authorize lets anyone edit their own dates and privileged members edit anybody's.
func (s *birthdayService) authorize(ctx context.Context, callerID string, target *entity.User) error {
	if target.SlackUserID == callerID {
		return nil
	}

	if !s.isPrivileged(ctx, callerID) {
		return domain.ErrPermissionDenied
	}

	return nil
}

func (s *birthdayService) isPrivileged(ctx context.Context, slackUserID string) bool {
	privileged, err := s.directory.IsPrivileged(ctx, slackUserID)
	if err != nil {
		log.Error().Err(err).Str("slack_user_id", slackUserID).Msg("failed to check privileges, denying")
		return false
	}
	return privileged
}

func (s *birthdayService) setDate(kind event.Kind, userID int64, value string) error {
	var err error
	if kind == event.WorkAnniversary {
		err = s.dm.User().SetDateOfFwd(userID, value)
	} else {
		err = s.dm.User().SetDateOfBirth(userID, value)
	}
	if err != nil {
		return fmt.Errorf("failed to save %s date: %w", kind, err)
	}
	return nil
}

func setKindValue(kind event.Kind, user *entity.User, value string) {
	if kind == event.WorkAnniversary {
		user.DateOfFwd = value
		return
	}
	user.DateOfBirth = value
}
