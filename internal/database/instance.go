package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db             *DB
	userRepo       contract.UserRepo
	channelRepo    contract.ChannelRepo
	pitchingInRepo contract.PitchingInRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.userRepo = newUserRepo(i.db.conn)
	i.channelRepo = newChannelRepo(i.db.conn)
	i.pitchingInRepo = newPitchingInRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		userRepo:       newUserRepo(db),
		channelRepo:    newChannelRepo(db),
		pitchingInRepo: newPitchingInRepo(db),
	}
}

// User returns the user repository
func (i *instance) User() contract.UserRepo {
	return i.userRepo
}

// Channel returns the birthday channel repository
func (i *instance) Channel() contract.ChannelRepo {
	return i.channelRepo
}

// PitchingIn returns the pitching-in survey repository
func (i *instance) PitchingIn() contract.PitchingInRepo {
	return i.pitchingInRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
