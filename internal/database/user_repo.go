package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
)

const userColumns = `id, slack_user_id, name, display_name, date_of_birth, date_of_fwd, created_at, updated_at`

type userRepo struct {
	db dbConn
}

func newUserRepo(db dbConn) contract.UserRepo {
	return &userRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*entity.User, error) {
	user := &entity.User{}
	var dateOfBirth, dateOfFwd sql.NullString

	err := row.Scan(
		&user.ID,
		&user.SlackUserID,
		&user.Name,
		&user.DisplayName,
		&dateOfBirth,
		&dateOfFwd,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.DateOfBirth = dateOfBirth.String
	user.DateOfFwd = dateOfFwd.String
	return user, nil
}

func nullable(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func (r *userRepo) Upsert(user *entity.User) error {
	query := `
		INSERT INTO users (slack_user_id, name, display_name, date_of_birth, date_of_fwd)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (slack_user_id) DO UPDATE SET
			name = excluded.name,
			display_name = excluded.display_name,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.Exec(query,
		user.SlackUserID,
		user.Name,
		user.DisplayName,
		nullable(user.DateOfBirth),
		nullable(user.DateOfFwd),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	// LastInsertId is unreliable for the update branch
	stored, err := r.GetBySlackID(user.SlackUserID)
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("user %s vanished after upsert", user.SlackUserID)
	}

	*user = *stored
	return nil
}

func (r *userRepo) List() ([]*entity.User, error) {
	return r.queryUsers(`SELECT `+userColumns+` FROM users ORDER BY id ASC`)
}

func (r *userRepo) GetByID(id int64) (*entity.User, error) {
	return r.queryUser(`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

func (r *userRepo) GetBySlackID(slackUserID string) (*entity.User, error) {
	return r.queryUser(`SELECT `+userColumns+` FROM users WHERE slack_user_id = ?`, slackUserID)
}

// GetByName matches the stored name exactly, case included.
func (r *userRepo) GetByName(name string) (*entity.User, error) {
	return r.queryUser(`SELECT `+userColumns+` FROM users WHERE name = ? ORDER BY id ASC LIMIT 1`, name)
}

// FindByFuzzyName returns the users whose name starts with name, case
// insensitive. An exact match wins over prefix matches.
// SQLite only folds ASCII case, so matching happens here.
func (r *userRepo) FindByFuzzyName(name string) ([]*entity.User, error) {
	users, err := r.List()
	if err != nil {
		return nil, err
	}

	prefix := strings.ToLower(name)

	var matches []*entity.User
	for _, user := range users {
		if strings.EqualFold(user.Name, name) {
			return []*entity.User{user}, nil
		}
		if strings.HasPrefix(strings.ToLower(user.Name), prefix) {
			matches = append(matches, user)
		}
	}

	return matches, nil
}

func (r *userRepo) SetDateOfBirth(userID int64, date string) error {
	return r.setDate("date_of_birth", userID, date)
}

func (r *userRepo) SetDateOfFwd(userID int64, date string) error {
	return r.setDate("date_of_fwd", userID, date)
}

func (r *userRepo) setDate(column string, userID int64, date string) error {
	query := fmt.Sprintf(`UPDATE users SET %s = ?, updated_at = ? WHERE id = ?`, column)

	_, err := r.db.Exec(query, nullable(date), time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", column, err)
	}

	return nil
}

func (r *userRepo) queryUser(query string, args ...interface{}) (*entity.User, error) {
	user, err := scanUser(r.db.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *userRepo) queryUsers(query string, args ...interface{}) ([]*entity.User, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}
