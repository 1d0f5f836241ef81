package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
)

const eventDateLayout = "2006-01-02"

const channelColumns = `id, user_id, room_id, room_name, event_date, created_at`

type channelRepo struct {
	db dbConn
}

func newChannelRepo(db dbConn) contract.ChannelRepo {
	return &channelRepo{db: db}
}

func scanChannel(row rowScanner) (*entity.BirthdayChannel, error) {
	channel := &entity.BirthdayChannel{}
	var eventDate string

	err := row.Scan(
		&channel.ID,
		&channel.UserID,
		&channel.RoomID,
		&channel.RoomName,
		&eventDate,
		&channel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	channel.EventDate, err = time.Parse(eventDateLayout, eventDate)
	if err != nil {
		return nil, fmt.Errorf("invalid event date %q: %w", eventDate, err)
	}

	return channel, nil
}

func (r *channelRepo) Create(channel *entity.BirthdayChannel) error {
	query := `
		INSERT INTO birthday_channels (user_id, room_id, room_name, event_date)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		channel.UserID,
		channel.RoomID,
		channel.RoomName,
		channel.EventDate.Format(eventDateLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create birthday channel: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	channel.ID = id
	return nil
}

func (r *channelRepo) GetByUserID(userID int64) (*entity.BirthdayChannel, error) {
	return r.queryOne(`SELECT `+channelColumns+` FROM birthday_channels WHERE user_id = ?`, userID)
}

func (r *channelRepo) GetByRoomID(roomID string) (*entity.BirthdayChannel, error) {
	return r.queryOne(`SELECT `+channelColumns+` FROM birthday_channels WHERE room_id = ?`, roomID)
}

// ListEventsOnOrBefore returns the channels whose birthday is on date or earlier.
func (r *channelRepo) ListEventsOnOrBefore(date time.Time) ([]*entity.BirthdayChannel, error) {
	query := `
		SELECT ` + channelColumns + `
		FROM birthday_channels
		WHERE event_date <= ?
		ORDER BY event_date ASC, id ASC
	`

	rows, err := r.db.Query(query, date.Format(eventDateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to get birthday channels: %w", err)
	}
	defer rows.Close()

	var channels []*entity.BirthdayChannel
	for rows.Next() {
		channel, err := scanChannel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan birthday channel: %w", err)
		}
		channels = append(channels, channel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate birthday channels: %w", err)
	}

	return channels, nil
}

func (r *channelRepo) Delete(id int64) error {
	query := `DELETE FROM birthday_channels WHERE id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete birthday channel: %w", err)
	}

	return nil
}

func (r *channelRepo) queryOne(query string, args ...interface{}) (*entity.BirthdayChannel, error) {
	channel, err := scanChannel(r.db.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get birthday channel: %w", err)
	}

	return channel, nil
}
