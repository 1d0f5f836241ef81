package contract

import (
	"context"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
)

// Chat delivers messages and manages temporary rooms.
// This allows mocking in tests while keeping the real implementation simple
type Chat interface {
	// SendDirect sends a direct message to a user.
	SendDirect(ctx context.Context, slackUserID, text string) error

	// SendToRoom posts a message to a room given by name or ID.
	SendToRoom(ctx context.Context, room, text string) error

	// CreateRoom creates a private room with the given members and returns its ID.
	CreateRoom(ctx context.Context, name string, memberIDs []string) (string, error)

	// DeleteRoom removes a room created by CreateRoom.
	DeleteRoom(ctx context.Context, roomID string) error
}

// Directory answers questions about workspace members.
type Directory interface {
	IsPrivileged(ctx context.Context, slackUserID string) (bool, error)
	IsUserActive(ctx context.Context, slackUserID string) (bool, error)
	ListMembers(ctx context.Context) ([]entity.Member, error)
	IsBotInRoom(ctx context.Context, room string) (bool, error)
}

// ImageProvider returns a decoration image URL. An empty URL means none was found.
type ImageProvider interface {
	FetchImage(ctx context.Context) (string, error)
}
