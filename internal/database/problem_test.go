package database

import (
	"testing"

	"github.com/mathcamp/daily-problem-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblemRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newProblemRepo(db.conn)

	problem := &entity.Problem{
		Body:   "Prove that sqrt(2) is irrational.",
		Source: "Classic",
	}

	err := repo.Create(problem)
	require.NoError(t, err, "Failed to create problem")

	assert.NotZero(t, problem.ID, "Expected problem ID to be set after creation")
}

func TestProblemRepository_GetByBodyAndSource(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newProblemRepo(db.conn)

	original := &entity.Problem{
		Body:   "Find all primes p such that p+2 is also prime... or prove you cannot.",
		Source: "Number theory seminar",
	}

	err := repo.Create(original)
	require.NoError(t, err, "Failed to create test problem")

	// Test successful retrieval
	found, err := repo.GetByBodyAndSource(original.Body, original.Source)
	require.NoError(t, err, "Failed to get problem by body and source")
	require.NotNil(t, found, "Expected to find problem")

	assert.Equal(t, original.ID, found.ID)
	assert.Equal(t, original.Body, found.Body)
	assert.Equal(t, original.Source, found.Source)
	assert.False(t, found.Used)

	// Same body with a different source is a different problem
	notFound, err := repo.GetByBodyAndSource(original.Body, "another source")
	require.NoError(t, err, "Unexpected error when problem not found")
	assert.Nil(t, notFound, "Expected nil when problem not found")
}

func TestProblemRepository_GetFirstUnused(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newProblemRepo(db.conn)

	// Empty store
	none, err := repo.GetFirstUnused()
	require.NoError(t, err)
	assert.Nil(t, none, "Expected nil on empty store")

	first := &entity.Problem{Body: "problem one"}
	second := &entity.Problem{Body: "problem two"}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	found, err := repo.GetFirstUnused()
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, first.ID, found.ID, "Expected lowest-id unused problem")

	// Marking the first as used moves the cursor to the second
	require.NoError(t, repo.MarkUsed(first.ID))

	found, err = repo.GetFirstUnused()
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, second.ID, found.ID)

	// All used
	require.NoError(t, repo.MarkUsed(second.ID))

	none, err = repo.GetFirstUnused()
	require.NoError(t, err)
	assert.Nil(t, none, "Expected nil when all problems are used")
}

func TestProblemRepository_GetByPosition(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newProblemRepo(db.conn)

	bodies := []string{"alpha", "beta", "gamma"}
	for _, body := range bodies {
		require.NoError(t, repo.Create(&entity.Problem{Body: body}))
	}

	for i, body := range bodies {
		found, err := repo.GetByPosition(int64(i + 1))
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, body, found.Body)
	}

	// Position lookups ignore the used flag
	require.NoError(t, repo.MarkUsed(1))

	found, err := repo.GetByPosition(1)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "alpha", found.Body)
	assert.True(t, found.Used)

	// Out of range
	none, err := repo.GetByPosition(4)
	require.NoError(t, err)
	assert.Nil(t, none)

	none, err = repo.GetByPosition(0)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestProblemRepository_GetByPosition_ReadOnly(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newProblemRepo(db.conn)

	require.NoError(t, repo.Create(&entity.Problem{Body: "stay unused"}))

	for i := 0; i < 5; i++ {
		found, err := repo.GetByPosition(1)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.False(t, found.Used, "GetByPosition must never flip the used flag")
	}

	used, err := repo.CountUsed()
	require.NoError(t, err)
	assert.Zero(t, used)
}

func TestProblemRepository_Counts(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newProblemRepo(db.conn)

	for i, body := range []string{"one", "two", "three"} {
		p := &entity.Problem{Body: body}
		require.NoError(t, repo.Create(p))
		if i == 0 {
			require.NoError(t, repo.MarkUsed(p.ID))
		}
	}

	total, err := repo.CountTotal()
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	used, err := repo.CountUsed()
	require.NoError(t, err)
	assert.Equal(t, int64(1), used)

	unused, err := repo.CountUnused()
	require.NoError(t, err)
	assert.Equal(t, int64(2), unused)
}

func TestProblemRepository_DuplicatePairRejected(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newProblemRepo(db.conn)

	require.NoError(t, repo.Create(&entity.Problem{Body: "same", Source: "same"}))

	err := repo.Create(&entity.Problem{Body: "same", Source: "same"})
	assert.Error(t, err, "Expected unique constraint violation on duplicate (body, source)")
}
