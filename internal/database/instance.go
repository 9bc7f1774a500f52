package database

import (
	"context"
	"fmt"

	"github.com/mathcamp/daily-problem-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	problemRepo  contract.ProblemRepo
	settingsRepo contract.SettingsRepo
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
	i.problemRepo = newProblemRepo(i.db.conn)
	i.settingsRepo = newSettingsRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		problemRepo:  newProblemRepo(db),
		settingsRepo: newSettingsRepo(db),
	}
}

// Problem returns the problem repository
func (i *instance) Problem() contract.ProblemRepo {
	return i.problemRepo
}

// Settings returns the settings repository
func (i *instance) Settings() contract.SettingsRepo {
	return i.settingsRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
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
