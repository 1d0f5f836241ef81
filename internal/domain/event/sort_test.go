package event

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func entryNames(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.User.Name)
	}
	return out
}

func TestChronological(t *testing.T) {
	tests := []struct {
		name  string
		users []*entity.User
		today Date
		want  []string
	}{
		{
			name: "Should start with the next upcoming date and wrap around",
			users: []*entity.User{
				{Name: "march", DateOfBirth: "1.3.2000"},
				{Name: "june", DateOfBirth: "15.6.1995"},
				{Name: "october", DateOfBirth: "20.10.1990"},
			},
			today: Date{Year: 2023, Month: time.May, Day: 1},
			want:  []string{"june", "october", "march"},
		},
		{
			name: "Should keep roster order for the same day",
			users: []*entity.User{
				{Name: "first", DateOfBirth: "10.7.2000"},
				{Name: "early", DateOfBirth: "1.2.1990"},
				{Name: "second", DateOfBirth: "10.07.1985"},
				{Name: "third", DateOfBirth: "10.7.1999"},
			},
			today: Date{Year: 2023, Month: time.July, Day: 1},
			want:  []string{"first", "second", "third", "early"},
		},
		{
			name: "Should put users celebrating today last",
			users: []*entity.User{
				{Name: "today1", DateOfBirth: "8.6.2000"},
				{Name: "tomorrow", DateOfBirth: "9.6.2000"},
				{Name: "yesterday", DateOfBirth: "7.6.2000"},
				{Name: "today2", DateOfBirth: "8.6.1980"},
			},
			today: Date{Year: 2023, Month: time.June, Day: 8},
			want:  []string{"tomorrow", "yesterday", "today1", "today2"},
		},
		{
			name: "Should wrap across the year end",
			users: []*entity.User{
				{Name: "jan", DateOfBirth: "2.1.2000"},
				{Name: "dec", DateOfBirth: "31.12.2000"},
				{Name: "nov", DateOfBirth: "30.11.2000"},
			},
			today: Date{Year: 2023, Month: time.December, Day: 1},
			want:  []string{"dec", "jan", "nov"},
		},
		{
			name: "Should skip users without a valid date",
			users: []*entity.User{
				{Name: "none"},
				{Name: "bad", DateOfBirth: "31.2.2000"},
				{Name: "ok", DateOfBirth: "5.5.2000"},
			},
			today: Date{Year: 2023, Month: time.January, Day: 1},
			want:  []string{"ok"},
		},
		{
			name:  "Should return nothing when nobody has a date",
			users: []*entity.User{{Name: "none"}},
			today: Date{Year: 2023, Month: time.January, Day: 1},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Chronological(Birthday, tt.users, tt.today)
			assert.Equal(t, tt.want, entryNames(got))
		})
	}
}

func TestChronological_NoDuplicates(t *testing.T) {
	users := testRoster()
	today := Date{Year: 2023, Month: time.March, Day: 1}

	got := Chronological(Birthday, users, today)

	seen := map[*entity.User]bool{}
	for _, e := range got {
		assert.False(t, seen[e.User], "user %s listed twice", e.User.Name)
		seen[e.User] = true
	}
	assert.Len(t, got, 3)
}

func TestChronological_WorkAnniversary(t *testing.T) {
	got := Chronological(WorkAnniversary, testRoster(), Date{Year: 2023, Month: time.April, Day: 1})

	assert.Equal(t, []string{"E", "A"}, entryNames(got))
	assert.Equal(t, Date{Year: 2020, Month: time.June, Day: 15}, got[0].Date)
}

func TestMergeSort_Stable(t *testing.T) {
	type pair struct {
		key, seq int
	}
	input := []pair{{3, 0}, {1, 1}, {3, 2}, {2, 3}, {1, 4}, {3, 5}, {0, 6}}

	got := mergeSort(input, func(a, b pair) bool { return a.key < b.key })

	assert.Equal(t, []pair{{0, 6}, {1, 1}, {1, 4}, {2, 3}, {3, 0}, {3, 2}, {3, 5}}, got)
	assert.Equal(t, pair{3, 0}, input[0], "input must not be modified")
}
