package slack

import (
	"testing"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantKind event.Kind
		wantArgs []string
	}{
		{name: "empty text shows help", text: "  ", wantType: CmdHelp},
		{name: "set birthday", text: "set <@U1|alice> 1.3.2000", wantType: CmdSet, wantKind: event.Birthday, wantArgs: []string{"<@U1|alice>", "1.3.2000"}},
		{name: "set first working day", text: "fwd set @alice 01.09.2019", wantType: CmdSet, wantKind: event.WorkAnniversary, wantArgs: []string{"@alice", "01.09.2019"}},
		{name: "delete alias", text: "rm me", wantType: CmdDelete, wantArgs: []string{"me"}},
		{name: "on date", text: "on 15.6.1995", wantType: CmdOn, wantArgs: []string{"15.6.1995"}},
		{name: "case insensitive", text: "FWD LIST", wantType: CmdList, wantKind: event.WorkAnniversary},
		{name: "list ignores extra words", text: "list please", wantType: CmdList},
		{name: "pitch in yes", text: "pitchin Y", wantType: CmdPitchIn, wantArgs: []string{"yes"}},
		{name: "pitch in no", text: "pitchin no", wantType: CmdPitchIn, wantArgs: []string{"no"}},
		{name: "help", text: "help", wantType: CmdHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantKind, cmd.Kind)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantUsage string
	}{
		{name: "set without date", text: "set alice", wantUsage: "set <user> <D.M.YYYY>"},
		{name: "fwd set without date", text: "fwd set alice", wantUsage: "fwd set <user> <D.M.YYYY>"},
		{name: "delete without user", text: "delete", wantUsage: "delete <user>"},
		{name: "on with two dates", text: "on 1.1.2000 2.2.2000", wantUsage: "on <D.M.YYYY>"},
		{name: "pitch in with a bad answer", text: "pitchin maybe", wantUsage: "pitchin yes|no"},
		{name: "bare fwd", text: "fwd", wantUsage: "fwd list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)

			assert.Nil(t, cmd)
			var usageErr *UsageError
			require.ErrorAs(t, err, &usageErr)
			assert.Equal(t, tt.wantUsage, usageErr.Usage)
		})
	}

	t.Run("unknown command", func(t *testing.T) {
		_, err := ParseCommand("dance")

		var unknownErr *UnknownCommandError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, "dance", unknownErr.Command)
	})

	t.Run("pitch in is birthday only", func(t *testing.T) {
		_, err := ParseCommand("fwd pitchin yes")

		var unknownErr *UnknownCommandError
		assert.ErrorAs(t, err, &unknownErr)
	})
}

func TestParseUserRef(t *testing.T) {
	tests := []struct {
		raw      string
		expected UserRef
	}{
		{raw: "<@U123|alice>", expected: UserRef{SlackUserID: "U123", Name: "alice"}},
		{raw: "<@U123>", expected: UserRef{SlackUserID: "U123"}},
		{raw: "@alice", expected: UserRef{Name: "alice"}},
		{raw: "ali", expected: UserRef{Name: "ali"}},
		{raw: "me", expected: UserRef{Name: "me"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseUserRef(tt.raw))
		})
	}
}
