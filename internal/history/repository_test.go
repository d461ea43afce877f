package history

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electa-app/electa/internal/contracts"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database tests")
	}

	pool, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestRecordFromResults(t *testing.T) {
	results := []contracts.ScoreResult{
		{Date: "2026-03-10", Score: 82, Level: contracts.Excellent},
		{Date: "2026-03-11", Score: 64, Level: contracts.Good},
		{Date: "2026-03-09", Unratable: true, Error: "ephemeris unavailable"},
	}

	rec := RecordFromResults("panaderia", contracts.ProjectNegocio,
		"2026-03-09", "2026-03-11", "abc123", results)

	assert.Equal(t, "2026-03-10", rec.BestDate)
	assert.Equal(t, 82, rec.BestScore)
	assert.Equal(t, "negocio", rec.ProjectType)
	assert.Len(t, rec.Results, 3)
}

func TestRecordFromResultsAllUnratable(t *testing.T) {
	results := []contracts.ScoreResult{
		{Date: "2026-03-09", Unratable: true},
	}

	rec := RecordFromResults("x", contracts.ProjectOtro,
		"2026-03-09", "2026-03-09", "h", results)

	assert.Empty(t, rec.BestDate)
	assert.Zero(t, rec.BestScore)
}

func TestSaveAndListScans(t *testing.T) {
	pool := testPool(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.EnsureSchema(ctx))

	rec := RecordFromResults("panaderia", contracts.ProjectTienda,
		"2026-03-01", "2026-03-07", "deadbeef",
		[]contracts.ScoreResult{{Date: "2026-03-04", Score: 77, Level: contracts.Good}})
	require.NoError(t, repo.SaveScan(ctx, rec))
	assert.NotZero(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	records, err := repo.RecentScans(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, records)

	latest := records[0]
	assert.Equal(t, "panaderia", latest.ProjectName)
	assert.Equal(t, "2026-03-04", latest.BestDate)
	assert.Equal(t, 77, latest.BestScore)
	assert.Len(t, latest.Results, 1)

	// Cleanup path: nothing older than a long-past cutoff.
	n, err := repo.DeleteOlderThan(ctx, time.Now().AddDate(-1, 0, 0))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(0))
}
