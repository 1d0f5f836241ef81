package event

import (
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
)

// Kind is the type of a recurring annual event.
type Kind int

const (
	Birthday Kind = iota
	WorkAnniversary
)

func (k Kind) String() string {
	switch k {
	case Birthday:
		return "birthday"
	case WorkAnniversary:
		return "work_anniversary"
	default:
		return "unknown"
	}
}

// Value returns the raw date attribute of u bound to the kind.
func (k Kind) Value(u *entity.User) string {
	if u == nil {
		return ""
	}
	if k == WorkAnniversary {
		return u.DateOfFwd
	}
	return u.DateOfBirth
}

// FindUsersForEvent returns, in roster order, the users whose date of the
// given kind is valid and falls on date's month and day.
func FindUsersForEvent(kind Kind, date Date, users []*entity.User) []*entity.User {
	var matches []*entity.User

	for _, user := range users {
		d, err := ParseDate(kind.Value(user))
		if err != nil {
			continue
		}
		if IsEqualMonthDay(date, d) {
			matches = append(matches, user)
		}
	}

	return matches
}

// UsersWithoutDate returns the users whose date of the given kind is absent or invalid.
func UsersWithoutDate(kind Kind, users []*entity.User) []*entity.User {
	var result []*entity.User
	for _, user := range users {
		if !IsValidDate(kind.Value(user)) {
			result = append(result, user)
		}
	}
	return result
}
