package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Date
		wantErr bool
	}{
		{name: "Should parse short day and month", raw: "1.3.2000", want: Date{Year: 2000, Month: time.March, Day: 1}},
		{name: "Should parse zero padded date", raw: "01.03.2000", want: Date{Year: 2000, Month: time.March, Day: 1}},
		{name: "Should parse leap day", raw: "29.2.2020", want: Date{Year: 2020, Month: time.February, Day: 29}},
		{name: "Should reject empty string", raw: "", wantErr: true},
		{name: "Should reject impossible day", raw: "30.2.2001", wantErr: true},
		{name: "Should reject leap day in common year", raw: "29.2.2021", wantErr: true},
		{name: "Should reject month out of range", raw: "1.13.2000", wantErr: true},
		{name: "Should reject two digit year", raw: "1.3.00", wantErr: true},
		{name: "Should reject missing year", raw: "1.3", wantErr: true},
		{name: "Should reject other separators", raw: "1/3/2000", wantErr: true},
		{name: "Should reject trailing text", raw: "1.3.2000 ", wantErr: true},
		{name: "Should reject ISO format", raw: "2000-03-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, IsValidDate(tt.raw))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsValidDate(tt.raw))
		})
	}
}

func TestIsEqualMonthDay(t *testing.T) {
	dates := []Date{
		{Year: 2000, Month: time.March, Day: 1},
		{Year: 1995, Month: time.March, Day: 1},
		{Year: 2000, Month: time.March, Day: 2},
		{Year: 2000, Month: time.April, Day: 1},
		{Year: 2024, Month: time.February, Day: 29},
	}

	for _, a := range dates {
		for _, b := range dates {
			assert.Equal(t, IsEqualMonthDay(a, b), IsEqualMonthDay(b, a), "symmetry for %v and %v", a, b)
		}
	}

	assert.True(t, IsEqualMonthDay(dates[0], dates[1]), "year must be ignored")
	assert.False(t, IsEqualMonthDay(dates[0], dates[2]))
	assert.False(t, IsEqualMonthDay(dates[0], dates[3]))
}

func TestDate_AddDays(t *testing.T) {
	d := Date{Year: 2023, Month: time.December, Day: 28}

	assert.Equal(t, Date{Year: 2024, Month: time.January, Day: 4}, d.AddDays(7))
	assert.Equal(t, Date{Year: 2023, Month: time.December, Day: 21}, d.AddDays(-7))
	assert.Equal(t, Date{Year: 2024, Month: time.March, Day: 1}, Date{Year: 2024, Month: time.February, Day: 29}.AddDays(1))
}

func TestDate_YearsSince(t *testing.T) {
	start := Date{Year: 2020, Month: time.June, Day: 15}

	assert.Equal(t, 3, start.YearsSince(Date{Year: 2023, Month: time.June, Day: 15}))
	assert.Equal(t, 2, start.YearsSince(Date{Year: 2023, Month: time.June, Day: 14}))
	assert.Equal(t, 0, start.YearsSince(Date{Year: 2020, Month: time.June, Day: 15}))
	assert.Equal(t, 0, start.YearsSince(Date{Year: 2021, Month: time.January, Day: 1}))
}

func TestDate_Format(t *testing.T) {
	d := Date{Year: 2023, Month: time.June, Day: 8}

	assert.Equal(t, "08.06", d.Format(OutputShortLayout))
	assert.Equal(t, "08.06.2023", d.String())
}

func TestWindow(t *testing.T) {
	today := Date{Year: 2023, Month: time.June, Day: 8}

	assert.Equal(t, Date{Year: 2023, Month: time.June, Day: 15}, Window{Amount: 7, Unit: UnitDays}.Target(today))
	assert.Equal(t, Date{Year: 2023, Month: time.June, Day: 22}, Window{Amount: 2, Unit: UnitWeeks}.Target(today))
	assert.Equal(t, 14, Window{Amount: 2, Unit: UnitWeeks}.Days())
}

func TestParseUnit(t *testing.T) {
	for _, raw := range []string{"day", "days", "Days", " d "} {
		u, err := ParseUnit(raw)
		require.NoError(t, err)
		assert.Equal(t, UnitDays, u)
	}

	u, err := ParseUnit("weeks")
	require.NoError(t, err)
	assert.Equal(t, UnitWeeks, u)

	_, err = ParseUnit("months")
	assert.Error(t, err)
}

func TestRealClock_Location(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	now := RealClock{Location: loc}.Now()

	assert.Equal(t, loc, now.Location())
}
