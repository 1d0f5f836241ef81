package database

import (
	"fmt"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
)

type pitchingInRepo struct {
	db dbConn
}

func newPitchingInRepo(db dbConn) contract.PitchingInRepo {
	return &pitchingInRepo{db: db}
}

// Save records an answer; answering again replaces the previous one.
func (r *pitchingInRepo) Save(response *entity.PitchingInResponse) error {
	query := `
		INSERT INTO pitching_in_responses (channel_id, slack_user_id, answer)
		VALUES (?, ?, ?)
		ON CONFLICT (channel_id, slack_user_id) DO UPDATE SET answer = excluded.answer
	`

	_, err := r.db.Exec(query, response.ChannelID, response.SlackUserID, response.Answer)
	if err != nil {
		return fmt.Errorf("failed to save pitching-in response: %w", err)
	}

	err = r.db.QueryRow(
		`SELECT id, created_at FROM pitching_in_responses WHERE channel_id = ? AND slack_user_id = ?`,
		response.ChannelID, response.SlackUserID,
	).Scan(&response.ID, &response.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to read pitching-in response: %w", err)
	}

	return nil
}

func (r *pitchingInRepo) ListByChannel(channelID int64) ([]*entity.PitchingInResponse, error) {
	query := `
		SELECT id, channel_id, slack_user_id, answer, created_at
		FROM pitching_in_responses
		WHERE channel_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pitching-in responses: %w", err)
	}
	defer rows.Close()

	var responses []*entity.PitchingInResponse
	for rows.Next() {
		response := &entity.PitchingInResponse{}
		err := rows.Scan(
			&response.ID,
			&response.ChannelID,
			&response.SlackUserID,
			&response.Answer,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pitching-in response: %w", err)
		}
		responses = append(responses, response)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pitching-in responses: %w", err)
	}

	return responses, nil
}

func (r *pitchingInRepo) DeleteByChannel(channelID int64) error {
	query := `DELETE FROM pitching_in_responses WHERE channel_id = ?`

	_, err := r.db.Exec(query, channelID)
	if err != nil {
		return fmt.Errorf("failed to delete pitching-in responses: %w", err)
	}

	return nil
}
