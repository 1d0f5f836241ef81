package entity

import "time"

// User is a roster record. Dates are kept in their raw D.M.YYYY form and are
// empty when unknown.
type User struct {
	ID          int64
	SlackUserID string
	Name        string
	DisplayName string
	DateOfBirth string
	DateOfFwd   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Member is a person as reported by the chat directory.
type Member struct {
	SlackUserID string
	Name        string
	DisplayName string
}
