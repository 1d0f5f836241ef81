package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diegoclair/slack-birthday-bot/internal/domain"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/event"
	slackcmd "github.com/diegoclair/slack-birthday-bot/internal/domain/slack"
	"github.com/diegoclair/slack-birthday-bot/internal/i18n"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	birthdayService contract.BirthdayService
	translator      *i18n.Translator
	signingSecret   string
}

func New(birthdayService contract.BirthdayService, translator *i18n.Translator, signingSecret string) *SlackHandler {
	return &SlackHandler{
		birthdayService: birthdayService,
		translator:      translator,
		signingSecret:   signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		log.Warn().Err(err).Msg("rejected unsigned slash command")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.Debug().
		Str("user_id", s.UserID).
		Str("channel_id", s.ChannelID).
		Str("text", s.Text).
		Msg("slash command received")

	h.respond(w, h.handle(r.Context(), &s))
}

func (h *SlackHandler) handle(ctx context.Context, s *slack.SlashCommand) *slack.Msg {
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		return h.parseErrorResponse(err)
	}

	if _, err := h.birthdayService.EnsureUser(ctx, s.UserID, s.UserName); err != nil {
		return h.errorResponse(err)
	}

	switch cmd.Type {
	case slackcmd.CmdSet:
		return h.handleSet(ctx, cmd, s)
	case slackcmd.CmdDelete:
		return h.handleDelete(ctx, cmd, s)
	case slackcmd.CmdOn:
		return h.handleOn(ctx, cmd, s)
	case slackcmd.CmdList:
		return h.handleList(ctx, cmd)
	case slackcmd.CmdPitchIn:
		return h.handlePitchIn(ctx, cmd, s)
	default:
		return h.reply(h.translator.T(i18n.MsgHelp, nil))
	}
}

func (h *SlackHandler) handleSet(ctx context.Context, cmd *slackcmd.Command, s *slack.SlashCommand) *slack.Msg {
	user, err := h.birthdayService.SetDate(ctx, s.UserID, cmd.Kind, cmd.Args[0], cmd.Args[1])
	if err != nil {
		return h.errorResponse(err)
	}

	id := i18n.MsgBirthdaySaved
	if cmd.Kind == event.WorkAnniversary {
		id = i18n.MsgFwdSaved
	}
	return h.reply(h.translator.T(id, map[string]interface{}{"Name": user.Name}))
}

func (h *SlackHandler) handleDelete(ctx context.Context, cmd *slackcmd.Command, s *slack.SlashCommand) *slack.Msg {
	user, err := h.birthdayService.DeleteDate(ctx, s.UserID, cmd.Kind, cmd.Args[0])
	if errors.Is(err, domain.ErrNoDateSpecified) && user != nil {
		return h.reply(h.translator.T(i18n.MsgNoDateSpecified, map[string]interface{}{"Name": user.Name}))
	}
	if err != nil {
		return h.errorResponse(err)
	}

	id := i18n.MsgBirthdayRemoved
	if cmd.Kind == event.WorkAnniversary {
		id = i18n.MsgFwdRemoved
	}
	return h.reply(h.translator.T(id, map[string]interface{}{"Name": user.Name}))
}

func (h *SlackHandler) handleOn(ctx context.Context, cmd *slackcmd.Command, s *slack.SlashCommand) *slack.Msg {
	users, err := h.birthdayService.UsersOn(ctx, s.UserID, cmd.Kind, cmd.Args[0])
	if err != nil {
		return h.errorResponse(err)
	}

	if len(users) == 0 {
		id := i18n.MsgNoBirthdaysOnDate
		if cmd.Kind == event.WorkAnniversary {
			id = i18n.MsgNoFwdOnDate
		}
		return h.reply(h.translator.T(id, nil))
	}

	return h.reply(event.FormUserList(users))
}

func (h *SlackHandler) handleList(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	entries, err := h.birthdayService.List(ctx, cmd.Kind)
	if err != nil {
		return h.errorResponse(err)
	}

	if len(entries) == 0 {
		return h.reply(h.translator.T(i18n.MsgNoResults, nil))
	}

	return h.reply(event.FormListing(cmd.Kind, entries))
}

func (h *SlackHandler) handlePitchIn(ctx context.Context, cmd *slackcmd.Command, s *slack.SlashCommand) *slack.Msg {
	tally, err := h.birthdayService.RecordPitchingIn(ctx, s.ChannelID, s.UserID, cmd.Args[0] == "yes")
	if err != nil {
		return h.errorResponse(err)
	}

	name := ""
	if tally.Owner != nil {
		name = event.Mention(tally.Owner)
	}

	return h.reply(h.translator.T(i18n.MsgPitchingInRecorded, map[string]interface{}{
		"Yes":  tally.Yes,
		"No":   tally.No,
		"Name": name,
	}))
}

func (h *SlackHandler) parseErrorResponse(err error) *slack.Msg {
	var usageErr *slackcmd.UsageError
	if errors.As(err, &usageErr) {
		return h.createErrorResponse(h.translator.T(i18n.MsgUsage, map[string]interface{}{"Usage": usageErr.Usage}))
	}

	var unknownErr *slackcmd.UnknownCommandError
	if errors.As(err, &unknownErr) {
		return h.createErrorResponse(h.translator.T(i18n.MsgUnknownCommand, map[string]interface{}{"Command": unknownErr.Command}))
	}

	return h.errorResponse(err)
}

// errorResponse maps domain errors to their localized reply.
func (h *SlackHandler) errorResponse(err error) *slack.Msg {
	var ambiguous *domain.AmbiguousUserError
	var notFound *domain.UserNotFoundError

	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		return h.createErrorResponse(h.translator.T(i18n.MsgPermissionDenied, nil))
	case errors.Is(err, domain.ErrInvalidDate):
		return h.createErrorResponse(h.translator.T(i18n.MsgInvalidDate, nil))
	case errors.Is(err, domain.ErrNotBirthdayChannel):
		return h.createErrorResponse(h.translator.T(i18n.MsgNotBirthdayChannel, nil))
	case errors.As(err, &ambiguous):
		return h.createErrorResponse(h.translator.T(i18n.MsgAmbiguousUser, map[string]interface{}{
			"Count": len(ambiguous.Names),
			"Names": strings.Join(ambiguous.Names, ", "),
		}))
	case errors.As(err, &notFound):
		return h.createErrorResponse(h.translator.T(i18n.MsgUserNotFound, map[string]interface{}{"Name": notFound.Query}))
	default:
		log.Error().Err(err).Msg("failed to handle slash command")
		return h.createErrorResponse(h.translator.T(i18n.MsgInternalError, nil))
	}
}

func (h *SlackHandler) reply(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error().Err(err).Msg("failed to encode slash command response")
	}
}
