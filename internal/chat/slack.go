// Package chat adapts the Slack Web API to the bot's Chat and Directory contracts.
package chat

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

// Slack accepts at most this many users per conversations.invite call.
const inviteBatchSize = 1000

// Room names are lowercase, so this never matches a name.
var conversationID = regexp.MustCompile(`^[CGD][A-Z0-9]{8,}$`)

// Slack implements contract.Chat and contract.Directory.
type Slack struct {
	api contract.SlackClient

	mu    sync.Mutex
	rooms map[string]string
}

func New(api contract.SlackClient) *Slack {
	return &Slack{
		api:   api,
		rooms: make(map[string]string),
	}
}

func (s *Slack) SendDirect(ctx context.Context, slackUserID, text string) error {
	channel, _, _, err := s.api.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{slackUserID},
	})
	if err != nil {
		return fmt.Errorf("failed to open direct conversation with %s: %w", slackUserID, err)
	}

	return s.post(ctx, channel.ID, text)
}

// SendToRoom posts to a room given by name ("general", "#general") or ID.
func (s *Slack) SendToRoom(ctx context.Context, room, text string) error {
	roomID, err := s.resolveRoom(ctx, room)
	if err != nil {
		return err
	}

	return s.post(ctx, roomID, text)
}

func (s *Slack) post(ctx context.Context, channelID, text string) error {
	_, _, err := s.api.PostMessageContext(ctx, channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(false),
		slack.MsgOptionLinkNames(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to %s: %w", channelID, err)
	}

	return nil
}

// CreateRoom creates a private conversation and invites memberIDs into it.
func (s *Slack) CreateRoom(ctx context.Context, name string, memberIDs []string) (string, error) {
	channel, err := s.api.CreateConversationContext(ctx, slack.CreateConversationParams{
		ChannelName: name,
		IsPrivate:   true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create conversation %s: %w", name, err)
	}

	s.mu.Lock()
	s.rooms[channel.Name] = channel.ID
	s.mu.Unlock()

	for start := 0; start < len(memberIDs); start += inviteBatchSize {
		end := min(start+inviteBatchSize, len(memberIDs))

		_, err := s.api.InviteUsersToConversationContext(ctx, channel.ID, memberIDs[start:end]...)
		if err != nil {
			return channel.ID, fmt.Errorf("failed to invite users to %s: %w", name, err)
		}
	}

	return channel.ID, nil
}

func (s *Slack) DeleteRoom(ctx context.Context, roomID string) error {
	err := s.api.ArchiveConversationContext(ctx, roomID)
	if err != nil && !isSlackError(err, "already_archived") {
		return fmt.Errorf("failed to archive conversation %s: %w", roomID, err)
	}

	s.mu.Lock()
	for name, id := range s.rooms {
		if id == roomID {
			delete(s.rooms, name)
		}
	}
	s.mu.Unlock()

	return nil
}

func (s *Slack) IsPrivileged(ctx context.Context, slackUserID string) (bool, error) {
	user, err := s.api.GetUserInfoContext(ctx, slackUserID)
	if err != nil {
		return false, fmt.Errorf("failed to get user info for %s: %w", slackUserID, err)
	}

	return user.IsAdmin || user.IsOwner || user.IsPrimaryOwner, nil
}

// IsUserActive reports false for deactivated and unknown users.
func (s *Slack) IsUserActive(ctx context.Context, slackUserID string) (bool, error) {
	user, err := s.api.GetUserInfoContext(ctx, slackUserID)
	if isSlackError(err, "user_not_found") {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get user info for %s: %w", slackUserID, err)
	}

	return !user.Deleted, nil
}

// ListMembers returns the active humans of the workspace.
func (s *Slack) ListMembers(ctx context.Context) ([]entity.Member, error) {
	users, err := s.api.GetUsersContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspace users: %w", err)
	}

	members := make([]entity.Member, 0, len(users))
	for _, user := range users {
		if user.Deleted || user.IsBot || user.ID == "USLACKBOT" {
			continue
		}

		displayName := user.Profile.DisplayName
		if displayName == "" {
			displayName = user.RealName
		}

		members = append(members, entity.Member{
			SlackUserID: user.ID,
			Name:        user.Name,
			DisplayName: displayName,
		})
	}

	return members, nil
}

// IsBotInRoom reports whether the bot has joined room. Unknown rooms report false.
func (s *Slack) IsBotInRoom(ctx context.Context, room string) (bool, error) {
	roomID, err := s.resolveRoom(ctx, room)
	if err != nil {
		return false, err
	}

	channel, err := s.api.GetConversationInfoContext(ctx, &slack.GetConversationInfoInput{ChannelID: roomID})
	if isSlackError(err, "channel_not_found") {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get conversation info for %s: %w", room, err)
	}

	return channel.IsMember, nil
}

// resolveRoom maps a room name to its ID, loading the workspace conversations
// on a cache miss. Conversation IDs are returned as is, and names that match
// nothing are assumed to be IDs already.
func (s *Slack) resolveRoom(ctx context.Context, room string) (string, error) {
	name := strings.TrimPrefix(strings.TrimSpace(room), "#")
	if conversationID.MatchString(name) {
		return name, nil
	}

	s.mu.Lock()
	id, ok := s.rooms[name]
	s.mu.Unlock()
	if ok {
		return id, nil
	}

	if err := s.loadRooms(ctx); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.rooms[name]; ok {
		return id, nil
	}

	log.Debug().Str("room", room).Msg("room name not found, using it as an ID")
	return name, nil
}

func (s *Slack) loadRooms(ctx context.Context) error {
	params := &slack.GetConversationsParameters{
		ExcludeArchived: true,
		Limit:           200,
		Types:           []string{"public_channel", "private_channel"},
	}

	rooms := make(map[string]string)
	for {
		channels, cursor, err := s.api.GetConversationsContext(ctx, params)
		if err != nil {
			return fmt.Errorf("failed to list conversations: %w", err)
		}

		for _, channel := range channels {
			rooms[channel.Name] = channel.ID
		}

		if cursor == "" {
			break
		}
		params.Cursor = cursor
	}

	s.mu.Lock()
	for name, id := range rooms {
		s.rooms[name] = id
	}
	s.mu.Unlock()

	return nil
}

func isSlackError(err error, code string) bool {
	if err == nil {
		return false
	}

	var slackErr slack.SlackErrorResponse
	if errors.As(err, &slackErr) {
		return slackErr.Err == code
	}

	return err.Error() == code
}
