package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mathcamp/daily-problem-bot/internal/domain"
	"github.com/mathcamp/daily-problem-bot/internal/domain/contract"
	"github.com/mathcamp/daily-problem-bot/internal/domain/entity"
)

type problemService struct {
	dm   contract.DataManager
	mode string
}

func newProblem(dm contract.DataManager, mode string) *problemService {
	return &problemService{
		dm:   dm,
		mode: mode,
	}
}

// ImportFromFile reads a JSON list of problems and stores the ones not seen
// before. Input problems are never fatal: a missing or unreadable file is
// logged and treated as an empty list.
func (s *problemService) ImportFromFile(path string) (int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Problems file %s not readable, skipping import: %v", path, err)
		return 0, nil
	}

	var items []entity.ProblemInput
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("Failed to parse %s, skipping import: %v", path, err)
		return 0, nil
	}

	if len(items) == 0 {
		log.Printf("Problems file %s is empty, nothing to import", path)
		return 0, nil
	}

	return s.Import(items)
}

// Import inserts each entry unless an identical (body, source) pair already
// exists, so re-running an import never duplicates problems.
func (s *problemService) Import(items []entity.ProblemInput) (int64, error) {
	var added int64
	for _, item := range items {
		body := strings.TrimSpace(item.Body)
		source := strings.TrimSpace(item.Source)
		if body == "" {
			continue
		}

		existing, err := s.dm.Problem().GetByBodyAndSource(body, source)
		if err != nil {
			return added, fmt.Errorf("failed to check existing problem: %w", err)
		}
		if existing != nil {
			continue
		}

		problem := &entity.Problem{
			Body:   body,
			Source: source,
		}
		if err := s.dm.Problem().Create(problem); err != nil {
			return added, fmt.Errorf("failed to create problem: %w", err)
		}
		added++
	}

	return added, nil
}

// NextUnused returns the lowest-id unused problem and marks it used. The
// read and the mark run in one transaction so overlapping callers cannot
// deliver the same problem twice.
func (s *problemService) NextUnused(ctx context.Context) (*entity.Problem, int64, error) {
	var picked *entity.Problem
	var number int64

	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		problem, err := dm.Problem().GetFirstUnused()
		if err != nil {
			return fmt.Errorf("failed to get first unused problem: %w", err)
		}
		if problem == nil {
			return domain.ErrNoProblemAvailable
		}

		if err := dm.Problem().MarkUsed(problem.ID); err != nil {
			return err
		}
		problem.Used = true

		used, err := dm.Problem().CountUsed()
		if err != nil {
			return err
		}

		picked = problem
		number = used
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return picked, number, nil
}

// PickScheduled selects today's problem. Plain mode takes the next unused
// problem; offset mode reads the row at logical index used+1+offset and
// marks it used directly, leaving the offset in place for the next day.
func (s *problemService) PickScheduled(ctx context.Context) (*entity.Problem, int64, error) {
	if s.mode != domain.ModeOffset {
		return s.NextUnused(ctx)
	}

	var picked *entity.Problem
	var logicalIndex int64

	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		used, err := dm.Problem().CountUsed()
		if err != nil {
			return err
		}

		offset, err := dm.Settings().GetSkipOffset()
		if err != nil {
			return err
		}

		total, err := dm.Problem().CountTotal()
		if err != nil {
			return err
		}

		logicalIndex = used + 1 + offset
		if logicalIndex > total {
			return domain.ErrNoProblemAvailable
		}

		problem, err := dm.Problem().GetByPosition(logicalIndex)
		if err != nil {
			return err
		}
		if problem == nil {
			return domain.ErrNoProblemAvailable
		}

		if err := dm.Problem().MarkUsed(problem.ID); err != nil {
			return err
		}
		problem.Used = true

		picked = problem
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return picked, logicalIndex, nil
}

func (s *problemService) GetByPosition(position int64) (*entity.Problem, error) {
	total, err := s.dm.Problem().CountTotal()
	if err != nil {
		return nil, err
	}

	if position < 1 || position > total {
		return nil, domain.ErrPositionOutOfRange
	}

	problem, err := s.dm.Problem().GetByPosition(position)
	if err != nil {
		return nil, err
	}
	if problem == nil {
		return nil, domain.ErrPositionOutOfRange
	}

	return problem, nil
}

// SkipTo persists an offset such that the next scheduled pick lands on the
// 1-based position n. Targets at or behind the delivered count are rejected.
func (s *problemService) SkipTo(n int64) (int64, error) {
	total, err := s.dm.Problem().CountTotal()
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, domain.ErrNoProblemAvailable
	}

	if n < 1 || n > total {
		return 0, domain.ErrPositionOutOfRange
	}

	used, err := s.dm.Problem().CountUsed()
	if err != nil {
		return 0, err
	}

	// used + 1 + offset = n
	offset := n - (used + 1)
	if offset < 0 {
		return 0, domain.ErrBehindProgress
	}

	if err := s.dm.Settings().SetSkipOffset(offset); err != nil {
		return 0, err
	}

	return offset, nil
}

func (s *problemService) Stats() (*entity.Stats, error) {
	total, err := s.dm.Problem().CountTotal()
	if err != nil {
		return nil, err
	}

	used, err := s.dm.Problem().CountUsed()
	if err != nil {
		return nil, err
	}

	remaining, err := s.dm.Problem().CountUnused()
	if err != nil {
		return nil, err
	}

	offset, err := s.dm.Settings().GetSkipOffset()
	if err != nil {
		return nil, err
	}

	return &entity.Stats{
		Total:            total,
		Used:             used,
		Remaining:        remaining,
		SkipOffset:       offset,
		NextLogicalIndex: used + 1 + offset,
	}, nil
}
