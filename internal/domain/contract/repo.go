package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	User() UserRepo
	Channel() ChannelRepo
	PitchingIn() PitchingInRepo
}

// UserRepo defines the contract for the roster store
type UserRepo interface {
	// Upsert inserts the user or refreshes its names, keeping stored dates.
	Upsert(user *entity.User) error
	List() ([]*entity.User, error)
	GetByID(id int64) (*entity.User, error)
	GetBySlackID(slackUserID string) (*entity.User, error)
	GetByName(name string) (*entity.User, error)
	FindByFuzzyName(name string) ([]*entity.User, error)
	SetDateOfBirth(userID int64, date string) error
	SetDateOfFwd(userID int64, date string) error
}

// ChannelRepo defines the contract for temporary birthday channels
type ChannelRepo interface {
	Create(channel *entity.BirthdayChannel) error
	GetByUserID(userID int64) (*entity.BirthdayChannel, error)
	GetByRoomID(roomID string) (*entity.BirthdayChannel, error)
	ListEventsOnOrBefore(date time.Time) ([]*entity.BirthdayChannel, error)
	Delete(id int64) error
}

// PitchingInRepo defines the contract for pitching-in survey answers
type PitchingInRepo interface {
	Save(response *entity.PitchingInResponse) error
	ListByChannel(channelID int64) ([]*entity.PitchingInResponse, error)
	DeleteByChannel(channelID int64) error
}
