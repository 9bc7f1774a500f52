package database

import (
	"database/sql"
	"fmt"

	"github.com/mathcamp/daily-problem-bot/internal/domain/contract"
)

const skipOffsetKey = "skip_offset"

type settingsRepo struct {
	db dbConn
}

func newSettingsRepo(db dbConn) contract.SettingsRepo {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) GetSkipOffset() (int64, error) {
	query := `SELECT value FROM settings WHERE key = ?`

	var value int64
	err := r.db.QueryRow(query, skipOffsetKey).Scan(&value)
	if err == sql.ErrNoRows {
		// Row is seeded by migrations, but a fresh value is still well-defined
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get skip offset: %w", err)
	}

	return value, nil
}

func (r *settingsRepo) SetSkipOffset(value int64) error {
	query := `
		INSERT INTO settings (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`

	_, err := r.db.Exec(query, skipOffsetKey, value)
	if err != nil {
		return fmt.Errorf("failed to set skip offset: %w", err)
	}

	return nil
}
