package event

import (
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
)

// Entry is one line of a chronological listing.
type Entry struct {
	User *entity.User
	Date Date
}

type sortItem struct {
	month int
	day   int
	today bool
	entry Entry
}

func lessMonthDay(a, b sortItem) bool {
	if a.month != b.month {
		return a.month < b.month
	}
	return a.day < b.day
}

// Chronological orders the users holding a valid date of the given kind by
// their next occurrence after today. The listing starts with the soonest
// occurrence strictly after today, wraps around the year end, and ends with
// the users whose date falls on today itself, in roster order.
func Chronological(kind Kind, users []*entity.User, today Date) []Entry {
	items := make([]sortItem, 0, len(users)+1)
	for _, user := range users {
		d, err := ParseDate(kind.Value(user))
		if err != nil {
			continue
		}
		items = append(items, sortItem{
			month: int(d.Month),
			day:   d.Day,
			entry: Entry{User: user, Date: d},
		})
	}

	if len(items) == 0 {
		return nil
	}

	// appended last so that same-day users stay in front of it after a stable sort
	items = append(items, sortItem{month: int(today.Month), day: today.Day, today: true})

	sorted := mergeSort(items, lessMonthDay)

	pivot := 0
	for i, item := range sorted {
		if item.today {
			pivot = i
			break
		}
	}

	result := make([]Entry, 0, len(sorted)-1)
	for _, item := range sorted[pivot+1:] {
		result = append(result, item.entry)
	}
	for _, item := range sorted[:pivot] {
		result = append(result, item.entry)
	}

	return result
}

// mergeSort returns a sorted copy of items. Equal elements keep their input order.
func mergeSort[T any](items []T, less func(a, b T) bool) []T {
	if len(items) <= 1 {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	mid := len(items) / 2
	left := mergeSort(items[:mid], less)
	right := mergeSort(items[mid:], less)

	merged := make([]T, 0, len(items))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		// take from the right only when strictly smaller
		if less(right[j], left[i]) {
			merged = append(merged, right[j])
			j++
			continue
		}
		merged = append(merged, left[i])
		i++
	}
	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)

	return merged
}
