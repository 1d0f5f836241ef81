package contract

import (
	"context"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/event"
)

type BirthdayService interface {
	EnsureUser(ctx context.Context, slackUserID, name string) (*entity.User, error)
	SetDate(ctx context.Context, callerID string, kind event.Kind, target, rawDate string) (*entity.User, error)
	DeleteDate(ctx context.Context, callerID string, kind event.Kind, target string) (*entity.User, error)
	UsersOn(ctx context.Context, callerID string, kind event.Kind, rawDate string) ([]*entity.User, error)
	List(ctx context.Context, kind event.Kind) ([]event.Entry, error)
	Users(ctx context.Context) ([]*entity.User, error)
	RecordPitchingIn(ctx context.Context, roomID, respondentID string, answer bool) (*entity.PitchingInTally, error)
}
