package entity

import "time"

// BirthdayChannel is a temporary private room created ahead of someone's
// birthday so the others can discuss a present.
type BirthdayChannel struct {
	ID        int64
	UserID    int64
	RoomID    string
	RoomName  string
	EventDate time.Time
	CreatedAt time.Time
}

// PitchingInResponse is one answer to the pitching-in survey of a birthday channel.
type PitchingInResponse struct {
	ID          int64
	ChannelID   int64
	SlackUserID string
	Answer      bool
	CreatedAt   time.Time
}

// PitchingInTally summarises the survey of one birthday channel.
type PitchingInTally struct {
	Owner *User
	Yes   int
	No    int
}
