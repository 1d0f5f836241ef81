// Package calendar exports the roster as an iCalendar feed with one yearly
// event per birthday and work anniversary.
package calendar

import (
	"bytes"
	"fmt"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/event"
	"github.com/emersion/go-ical"
)

const (
	prodID    = "-//Slack Birthday Bot//Calendar//EN"
	calName   = "Birthdays"
	uidDomain = "slack-birthday-bot"

	propVersion  = "VERSION"
	propProdID   = "PRODID"
	propCalName  = "X-WR-CALNAME"
	propCalScale = "CALSCALE"
	propUID      = "UID"
	propSummary  = "SUMMARY"
	propDTStart  = "DTSTART"
	propDTStamp  = "DTSTAMP"
	propRRule    = "RRULE"

	yearly = "FREQ=YEARLY"

	// birthYear replaces the real year of birth. It is a leap year so that
	// 29 February stays a valid start.
	birthYear = 2000
)

// emptyCalendar is served when nobody has a date; the encoder rejects
// calendars without components.
const emptyCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + prodID + "\r\nEND:VCALENDAR\r\n"

// SummaryFunc names an event, e.g. "Birthday of @alice".
type SummaryFunc func(kind event.Kind, user *entity.User) string

type Generator struct {
	Clock         event.Clock
	FormatSummary SummaryFunc
}

func DefaultSummary(kind event.Kind, user *entity.User) string {
	if kind == event.WorkAnniversary {
		return "Work anniversary of " + event.Mention(user)
	}
	return "Birthday of " + event.Mention(user)
}

// Generate encodes users' valid dates. Invalid or missing dates are skipped
// and birthdays never reveal the year.
func (g *Generator) Generate(users []*entity.User) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(propVersion, "2.0")
	cal.Props.SetText(propProdID, prodID)
	cal.Props.SetText(propCalName, calName)
	cal.Props.SetText(propCalScale, "GREGORIAN")

	stamp := ical.NewProp(propDTStamp)
	stamp.SetDateTime(g.Clock.Now().UTC())

	summary := g.FormatSummary
	if summary == nil {
		summary = DefaultSummary
	}

	for _, kind := range []event.Kind{event.Birthday, event.WorkAnniversary} {
		for _, user := range users {
			date, err := event.ParseDate(kind.Value(user))
			if err != nil {
				continue
			}

			e := ical.NewEvent()
			e.Props.SetText(propUID, fmt.Sprintf("%s-%s@%s", kind, user.SlackUserID, uidDomain))
			e.Props.SetText(propSummary, summary(kind, user))
			e.Props.Set(stamp)

			if kind == event.Birthday {
				date.Year = birthYear
			}

			start := ical.NewProp(propDTStart)
			start.SetDate(date.Time(time.UTC))
			e.Props.Set(start)

			// set raw to keep the rule unescaped
			rrule := ical.NewProp(propRRule)
			rrule.Value = yearly
			e.Props.Set(rrule)

			cal.Children = append(cal.Children, e.Component)
		}
	}

	if len(cal.Children) == 0 {
		return []byte(emptyCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("failed to encode calendar: %w", err)
	}

	return buf.Bytes(), nil
}
