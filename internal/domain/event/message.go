package event

import (
	"fmt"
	"strings"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
)

// UsernamePlaceholder is substituted in birthday channel templates.
const UsernamePlaceholder = "%username%"

// Mention renders a user the way Slack links names.
func Mention(u *entity.User) string {
	return "@" + u.Name
}

func mentions(users []*entity.User) []string {
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, Mention(u))
	}
	return names
}

// FormReminderMessage announces upcoming birthdays. amount is the distance to
// target in days; a distance of exactly one day reads "tomorrow".
func FormReminderMessage(users []*entity.User, target Date, amount int) string {
	toBe := "is"
	if len(users) > 1 {
		toBe = "are"
	}

	when := "on " + target.Format(OutputShortLayout)
	if amount == 1 {
		when = "tomorrow"
	}

	return fmt.Sprintf("%s %s having a birthday %s.", strings.Join(mentions(users), ", "), toBe, when)
}

// FormCongratulationMessage is the public birthday greeting.
func FormCongratulationMessage(users []*entity.User, quote string) string {
	msg := fmt.Sprintf("Today is birthday of %s!", strings.Join(mentions(users), " and "))
	if quote != "" {
		msg += "\n" + quote
	}
	return msg
}

// FormAnniversaryMessage describes how long each user has been with the
// company as of today. Users completing zero years are left out; the result
// is empty when nobody qualifies and must not be sent.
func FormAnniversaryMessage(users []*entity.User, today Date) string {
	var sentences []string

	for _, u := range users {
		start, err := ParseDate(u.DateOfFwd)
		if err != nil {
			continue
		}

		years := start.YearsSince(today)
		if years <= 0 {
			continue
		}

		unit := "years"
		if years == 1 {
			unit = "year"
		}
		sentences = append(sentences, fmt.Sprintf("%s has been working with us for %d %s", Mention(u), years, unit))
	}

	if len(sentences) == 0 {
		return ""
	}

	return strings.Join(sentences, " and ") + "!"
}

// FormChannelMessage fills a birthday channel template.
func FormChannelMessage(template string, u *entity.User) string {
	return strings.ReplaceAll(template, UsernamePlaceholder, u.Name)
}

// FormListing renders a chronological listing, one entry per line.
func FormListing(kind Kind, entries []Entry) string {
	verb := "was born on"
	if kind == WorkAnniversary {
		verb = "joined us on"
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s %s %s", Mention(e.User), verb, e.Date.Format(OutputLayout)))
	}
	return strings.Join(lines, "\n")
}

// FormUserList joins mentions with commas.
func FormUserList(users []*entity.User) string {
	return strings.Join(mentions(users), ", ")
}

// FormBirthdaylessSummary reports the users who did not set a birth date.
func FormBirthdaylessSummary(users []*entity.User) string {
	switch len(users) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("%s did not set the date of birth.", Mention(users[0]))
	default:
		return "There are the users who did not set the date of birth:\n" + strings.Join(mentions(users), "\n")
	}
}

// FormBirthdaylessReminder asks a user to set their own date of birth.
func FormBirthdaylessReminder(companyName string) string {
	return fmt.Sprintf("Hmm...\nIt looks like you forgot to set the date of birth.\n"+
		"Please enter it (DD.MM.YYYY) so everyone at %s can congratulate you: `/birthday set me DD.MM.YYYY`", companyName)
}

// FormSurveyMessage opens the pitching-in survey of a birthday channel.
func FormSurveyMessage(u *entity.User) string {
	return fmt.Sprintf("Are you pitching in for %s's present? Answer with `/birthday pitchin yes` or `/birthday pitchin no`.", Mention(u))
}
