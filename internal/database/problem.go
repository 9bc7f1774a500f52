package database

import (
	"database/sql"
	"fmt"

	"github.com/mathcamp/daily-problem-bot/internal/domain/contract"
	"github.com/mathcamp/daily-problem-bot/internal/domain/entity"
)

type problemRepo struct {
	db dbConn
}

func newProblemRepo(db dbConn) contract.ProblemRepo {
	return &problemRepo{db: db}
}

func (r *problemRepo) Create(problem *entity.Problem) error {
	query := `
		INSERT INTO problems (body, source, used)
		VALUES (?, ?, ?)
	`

	result, err := r.db.Exec(query,
		problem.Body,
		problem.Source,
		problem.Used,
	)
	if err != nil {
		return fmt.Errorf("failed to create problem: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	problem.ID = id
	return nil
}

func (r *problemRepo) GetByBodyAndSource(body, source string) (*entity.Problem, error) {
	problem := &entity.Problem{}
	query := `
		SELECT id, body, source, used, added_at
		FROM problems
		WHERE body = ? AND source = ?
	`

	err := r.db.QueryRow(query, body, source).Scan(
		&problem.ID,
		&problem.Body,
		&problem.Source,
		&problem.Used,
		&problem.AddedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}

	return problem, nil
}

func (r *problemRepo) GetFirstUnused() (*entity.Problem, error) {
	problem := &entity.Problem{}
	query := `
		SELECT id, body, source, used, added_at
		FROM problems
		WHERE used = 0
		ORDER BY id ASC
		LIMIT 1
	`

	err := r.db.QueryRow(query).Scan(
		&problem.ID,
		&problem.Body,
		&problem.Source,
		&problem.Used,
		&problem.AddedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get first unused problem: %w", err)
	}

	return problem, nil
}

// GetByPosition returns the problem at the given 1-based position in id
// order, regardless of the used flag. It never mutates the row.
func (r *problemRepo) GetByPosition(position int64) (*entity.Problem, error) {
	if position <= 0 {
		return nil, nil
	}

	problem := &entity.Problem{}
	query := `
		SELECT id, body, source, used, added_at
		FROM problems
		ORDER BY id ASC
		LIMIT 1 OFFSET ?
	`

	err := r.db.QueryRow(query, position-1).Scan(
		&problem.ID,
		&problem.Body,
		&problem.Source,
		&problem.Used,
		&problem.AddedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get problem by position: %w", err)
	}

	return problem, nil
}

func (r *problemRepo) MarkUsed(id int64) error {
	query := `UPDATE problems SET used = 1 WHERE id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to mark problem as used: %w", err)
	}

	return nil
}

func (r *problemRepo) CountTotal() (int64, error) {
	return r.count(`SELECT COUNT(*) FROM problems`)
}

func (r *problemRepo) CountUsed() (int64, error) {
	return r.count(`SELECT COUNT(*) FROM problems WHERE used = 1`)
}

func (r *problemRepo) CountUnused() (int64, error) {
	return r.count(`SELECT COUNT(*) FROM problems WHERE used = 0`)
}

func (r *problemRepo) count(query string) (int64, error) {
	var n int64
	if err := r.db.QueryRow(query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count problems: %w", err)
	}
	return n, nil
}
