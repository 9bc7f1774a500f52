package contract

import (
	"context"

	"github.com/mathcamp/daily-problem-bot/internal/domain/entity"
)

type ProblemService interface {
	// ImportFromFile loads a JSON list of problems, skipping pairs that are
	// already stored. A missing or malformed file counts as empty input.
	ImportFromFile(path string) (int64, error)
	Import(items []entity.ProblemInput) (int64, error)

	// NextUnused returns the lowest-id unused problem, marks it used, and
	// reports its visible number (the used count after marking).
	NextUnused(ctx context.Context) (*entity.Problem, int64, error)

	// PickScheduled selects today's problem according to the configured
	// selection mode and marks it used. The returned number is the visible
	// number for the post.
	PickScheduled(ctx context.Context) (*entity.Problem, int64, error)

	// GetByPosition is a read-only lookup by 1-based position in id order.
	GetByPosition(position int64) (*entity.Problem, error)

	// SkipTo repoints the next scheduled delivery at position n and returns
	// the persisted offset. Only meaningful in offset mode.
	SkipTo(n int64) (int64, error)

	Stats() (*entity.Stats, error)
}
