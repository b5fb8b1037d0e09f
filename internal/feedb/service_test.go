package feedb

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/permitdesk/permit-cli/internal/model"
)

func TestSnapshotTTL(t *testing.T) {
	t.Parallel()

	clock := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(DefaultTables(), "",
		WithTTL(time.Minute),
		WithClock(func() time.Time { return clock }))

	first := svc.Snapshot()
	require.NotNil(t, first)

	// Inside the TTL window the same snapshot is served.
	clock = clock.Add(30 * time.Second)
	assert.Same(t, first, svc.Snapshot())

	// Past the window a rebuild produces a fresh snapshot.
	clock = clock.Add(31 * time.Second)
	second := svc.Snapshot()
	assert.NotSame(t, first, second)
	assert.Equal(t, clock, second.MergedAt)
}

func TestClearCacheForcesRebuild(t *testing.T) {
	t.Parallel()

	svc := NewService(DefaultTables(), "")
	first := svc.Snapshot()
	assert.Same(t, first, svc.Snapshot())

	svc.ClearCache()
	assert.NotSame(t, first, svc.Snapshot())
}

func TestRefreshPicksUpHistoryChanges(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")
	svc := NewService(DefaultTables(), path)

	baseline := svc.Snapshot()
	fp := baseline.Profiles["Houston, TX"].Fees[model.FeeElectrical]
	assert.Equal(t, 95.0, *fp.BaseFee)

	// 98 is within 10% of the curated 95 and overlays on refresh.
	raw := `{"Houston, TX": {"scrapedAt": "2026-08-01", "source": "scraper", "trades": {"electrical": {"baseFee": 98}}}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	merged := svc.Refresh()
	fp = merged.Profiles["Houston, TX"].Fees[model.FeeElectrical]
	assert.Equal(t, 98.0, *fp.BaseFee)
	assert.Equal(t, "scraper", merged.Quality["Houston, TX"].Source)
}

func TestSnapshotProfileFallback(t *testing.T) {
	t.Parallel()

	svc := NewService(DefaultTables(), "")
	snap := svc.Snapshot()

	profile, quality := snap.Profile("Not A Key")
	want, _ := snap.Profile(model.KeyDefault)
	assert.Equal(t, want, profile)
	assert.True(t, quality.Estimated())
}

func TestSnapshotDoesNotMutateBaseline(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")
	raw := `{"Houston, TX": {"trades": {"electrical": {"baseFee": 98}}}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	tables := DefaultTables()
	svc := NewService(tables, path)
	svc.Snapshot()

	// The curated baseline keeps its value after the overlay merge.
	assert.Equal(t, 95.0, *tables.Profiles["Houston, TX"].Fees[model.FeeElectrical].BaseFee)
}
