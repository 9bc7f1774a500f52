package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mathcamp/daily-problem-bot/internal/database"
	"github.com/mathcamp/daily-problem-bot/internal/domain"
	"github.com/mathcamp/daily-problem-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProblemService(t *testing.T, mode string) *problemService {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() {
		database.CleanupTestDB(t, db)
	})

	return newProblem(database.NewInstance(db), mode)
}

func testProblems(n int) []entity.ProblemInput {
	items := make([]entity.ProblemInput, 0, n)
	bodies := []string{
		"Prove that the sum of two odd numbers is even.",
		"Show that there are infinitely many primes.",
		"Find the smallest positive integer divisible by all of 1..10.",
		"Prove that sqrt(2) is irrational.",
		"How many subsets does a set of n elements have?",
	}
	for i := 0; i < n; i++ {
		items = append(items, entity.ProblemInput{
			Body:   bodies[i%len(bodies)],
			Source: "Test set",
		})
	}
	return items
}

func Test_problemService_Import_Idempotent(t *testing.T) {
	svc := setupProblemService(t, domain.ModePlain)

	added, err := svc.Import(testProblems(3))
	require.NoError(t, err)
	assert.Equal(t, int64(3), added)

	// Re-importing the same list must not add anything
	added, err = svc.Import(testProblems(3))
	require.NoError(t, err)
	assert.Zero(t, added)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
}

func Test_problemService_Import_SkipsBlankBodies(t *testing.T) {
	svc := setupProblemService(t, domain.ModePlain)

	added, err := svc.Import([]entity.ProblemInput{
		{Body: "  ", Source: "whitespace only"},
		{Body: "real problem"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), added)
}

func Test_problemService_ImportFromFile(t *testing.T) {
	svc := setupProblemService(t, domain.ModePlain)

	// Missing file is a no-op, not an error
	added, err := svc.ImportFromFile(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Zero(t, added)

	// Malformed file is a no-op, not an error
	malformed := filepath.Join(t.TempDir(), "problems.json")
	require.NoError(t, os.WriteFile(malformed, []byte("{not json"), 0o644))

	added, err = svc.ImportFromFile(malformed)
	require.NoError(t, err)
	assert.Zero(t, added)

	// Valid file imports once
	valid := filepath.Join(t.TempDir(), "problems.json")
	content := `[{"body": "first problem", "source": "book"}, {"body": "second problem"}]`
	require.NoError(t, os.WriteFile(valid, []byte(content), 0o644))

	added, err = svc.ImportFromFile(valid)
	require.NoError(t, err)
	assert.Equal(t, int64(2), added)

	added, err = svc.ImportFromFile(valid)
	require.NoError(t, err)
	assert.Zero(t, added, "Second import of the same file must add nothing")
}

func Test_problemService_NextUnused_Sequence(t *testing.T) {
	svc := setupProblemService(t, domain.ModePlain)
	ctx := context.Background()

	_, err := svc.Import(testProblems(3))
	require.NoError(t, err)

	var lastID int64
	for i := int64(1); i <= 3; i++ {
		problem, number, err := svc.NextUnused(ctx)
		require.NoError(t, err)
		require.NotNil(t, problem)

		assert.Equal(t, i, number, "Visible number must be the running used count")
		assert.Greater(t, problem.ID, lastID, "Problems must come back in ascending id order")
		lastID = problem.ID
	}

	// Queue exhausted
	_, _, err = svc.NextUnused(ctx)
	assert.ErrorIs(t, err, domain.ErrNoProblemAvailable)
}

func Test_problemService_NextUnused_Empty(t *testing.T) {
	svc := setupProblemService(t, domain.ModePlain)

	_, _, err := svc.NextUnused(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoProblemAvailable)
}

// Worked example: three problems, plain-mode delivery of #1, then a skip to
// #3, then an offset-mode delivery of #3.
func Test_problemService_SkipThenPick(t *testing.T) {
	svc := setupProblemService(t, domain.ModeOffset)
	ctx := context.Background()

	_, err := svc.Import(testProblems(3))
	require.NoError(t, err)

	first, number, err := svc.NextUnused(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), number)
	firstID := first.ID

	offset, err := svc.SkipTo(3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), offset, "used=1 and target=3 should give offset 1")

	picked, logicalIndex, err := svc.PickScheduled(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), logicalIndex)
	assert.Equal(t, firstID+2, picked.ID, "Expected the third problem by position")

	// The offset is a standing redirection: it stays at 1 after delivery
	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.SkipOffset)
	assert.Equal(t, int64(2), stats.Used)
	assert.Equal(t, stats.Used+1+stats.SkipOffset, stats.NextLogicalIndex)
}

func Test_problemService_PickScheduled_OffsetPastEnd(t *testing.T) {
	svc := setupProblemService(t, domain.ModeOffset)
	ctx := context.Background()

	_, err := svc.Import(testProblems(2))
	require.NoError(t, err)

	// used=0, offset=1 -> logical index 2, deliverable
	_, err = svc.SkipTo(2)
	require.NoError(t, err)

	_, logicalIndex, err := svc.PickScheduled(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), logicalIndex)

	// used=1, offset=1 -> logical index 3 > total, nothing to deliver
	_, _, err = svc.PickScheduled(ctx)
	assert.ErrorIs(t, err, domain.ErrNoProblemAvailable)
}

func Test_problemService_PickScheduled_PlainMode(t *testing.T) {
	svc := setupProblemService(t, domain.ModePlain)
	ctx := context.Background()

	_, err := svc.Import(testProblems(2))
	require.NoError(t, err)

	problem, number, err := svc.PickScheduled(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), number)
	assert.True(t, problem.Used)
}

func Test_problemService_SkipTo_Validation(t *testing.T) {
	svc := setupProblemService(t, domain.ModeOffset)
	ctx := context.Background()

	// Empty store
	_, err := svc.SkipTo(1)
	assert.ErrorIs(t, err, domain.ErrNoProblemAvailable)

	_, err = svc.Import(testProblems(3))
	require.NoError(t, err)

	// Out of range
	_, err = svc.SkipTo(0)
	assert.ErrorIs(t, err, domain.ErrPositionOutOfRange)

	_, err = svc.SkipTo(4)
	assert.ErrorIs(t, err, domain.ErrPositionOutOfRange)

	// Deliver two, then targets 1 and 2 are behind progress
	_, _, err = svc.NextUnused(ctx)
	require.NoError(t, err)
	_, _, err = svc.NextUnused(ctx)
	require.NoError(t, err)

	_, err = svc.SkipTo(2)
	assert.ErrorIs(t, err, domain.ErrBehindProgress)

	// Target equal to used+1 resets the offset to zero
	offset, err := svc.SkipTo(3)
	require.NoError(t, err)
	assert.Zero(t, offset)
}

func Test_problemService_GetByPosition(t *testing.T) {
	svc := setupProblemService(t, domain.ModePlain)

	_, err := svc.Import(testProblems(2))
	require.NoError(t, err)

	problem, err := svc.GetByPosition(2)
	require.NoError(t, err)
	require.NotNil(t, problem)

	_, err = svc.GetByPosition(3)
	assert.ErrorIs(t, err, domain.ErrPositionOutOfRange)

	_, err = svc.GetByPosition(0)
	assert.ErrorIs(t, err, domain.ErrPositionOutOfRange)

	// Repeated reads never mark anything used
	for i := 0; i < 3; i++ {
		_, err = svc.GetByPosition(1)
		require.NoError(t, err)
	}

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.Used)
	assert.Equal(t, int64(2), stats.Remaining)
}
