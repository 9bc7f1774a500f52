package contract

import (
	"context"

	"github.com/mathcamp/daily-problem-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Problem() ProblemRepo
	Settings() SettingsRepo
}

// ProblemRepo defines the contract for the problem repository
type ProblemRepo interface {
	Create(problem *entity.Problem) error
	GetByBodyAndSource(body, source string) (*entity.Problem, error)
	GetFirstUnused() (*entity.Problem, error)
	GetByPosition(position int64) (*entity.Problem, error)
	MarkUsed(id int64) error
	CountTotal() (int64, error)
	CountUsed() (int64, error)
	CountUnused() (int64, error)
}

// SettingsRepo defines the contract for the single-row settings repository
type SettingsRepo interface {
	GetSkipOffset() (int64, error)
	SetSkipOffset(value int64) error
}
