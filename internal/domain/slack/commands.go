package slack

import (
	"regexp"
	"strings"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/event"
)

type CommandType string

const (
	CmdSet     CommandType = "set"
	CmdDelete  CommandType = "delete"
	CmdOn      CommandType = "on"
	CmdList    CommandType = "list"
	CmdPitchIn CommandType = "pitchin"
	CmdHelp    CommandType = "help"
)

// fwdPrefix switches a command from birthdays to first working days.
const fwdPrefix = "fwd"

type Command struct {
	Type CommandType
	Kind event.Kind
	Args []string
}

// UsageError is returned when a known command gets the wrong arguments.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "usage: " + e.Usage
}

type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	return "unknown command: " + e.Command
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{Kind: event.Birthday}

	if strings.EqualFold(parts[0], fwdPrefix) {
		cmd.Kind = event.WorkAnniversary
		parts = parts[1:]
		if len(parts) == 0 {
			return nil, &UsageError{Usage: Usage(CmdList, cmd.Kind)}
		}
	}

	name := strings.ToLower(parts[0])
	args := parts[1:]

	switch name {
	case "set":
		cmd.Type = CmdSet
		if len(args) != 2 {
			return nil, &UsageError{Usage: Usage(CmdSet, cmd.Kind)}
		}
	case "delete", "remove", "rm":
		cmd.Type = CmdDelete
		if len(args) != 1 {
			return nil, &UsageError{Usage: Usage(CmdDelete, cmd.Kind)}
		}
	case "on":
		cmd.Type = CmdOn
		if len(args) != 1 {
			return nil, &UsageError{Usage: Usage(CmdOn, cmd.Kind)}
		}
	case "list", "ls":
		cmd.Type = CmdList
		args = nil
	case "pitchin":
		if cmd.Kind != event.Birthday {
			return nil, &UnknownCommandError{Command: fwdPrefix + " " + parts[0]}
		}
		cmd.Type = CmdPitchIn
		if len(args) != 1 {
			return nil, &UsageError{Usage: Usage(CmdPitchIn, cmd.Kind)}
		}
		answer, ok := parseAnswer(args[0])
		if !ok {
			return nil, &UsageError{Usage: Usage(CmdPitchIn, cmd.Kind)}
		}
		args = []string{answer}
	case "help":
		cmd.Type = CmdHelp
		args = nil
	default:
		return nil, &UnknownCommandError{Command: parts[0]}
	}

	cmd.Args = args
	return cmd, nil
}

func parseAnswer(raw string) (string, bool) {
	switch strings.ToLower(raw) {
	case "yes", "y", "+":
		return "yes", true
	case "no", "n", "-":
		return "no", true
	default:
		return "", false
	}
}

// Usage returns the syntax of a command for the given event kind.
func Usage(cmdType CommandType, kind event.Kind) string {
	prefix := ""
	if kind == event.WorkAnniversary {
		prefix = fwdPrefix + " "
	}

	switch cmdType {
	case CmdSet:
		return prefix + "set <user> <D.M.YYYY>"
	case CmdDelete:
		return prefix + "delete <user>"
	case CmdOn:
		return prefix + "on <D.M.YYYY>"
	case CmdPitchIn:
		return "pitchin yes|no"
	case CmdList:
		return prefix + "list"
	default:
		return "help"
	}
}

// UserRef is a user as typed in a command: an escaped mention carries the
// Slack ID, anything else only a name.
type UserRef struct {
	SlackUserID string
	Name        string
}

var mentionPattern = regexp.MustCompile(`^<@([A-Z0-9]+)(?:\|([^>]*))?>$`)

// ParseUserRef understands "<@U123|name>", "<@U123>", "@name" and "name".
func ParseUserRef(raw string) UserRef {
	raw = strings.TrimSpace(raw)

	if match := mentionPattern.FindStringSubmatch(raw); match != nil {
		return UserRef{SlackUserID: match[1], Name: match[2]}
	}

	return UserRef{Name: strings.TrimPrefix(raw, "@")}
}
