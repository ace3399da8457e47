package runlog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := Init(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func TestRecordAndRecent(t *testing.T) {
	d := initTestDB(t)

	id, err := d.Record(Run{
		Source:    "survey_gamma.csv",
		Format:    "csv",
		Inline:    -0.5,
		Lateral:   -1.5,
		Edge:      "nan",
		Points:    120,
		Undefined: 2,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = d.Record(Run{
		ID:        "fixed-id",
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Source:    "log.nmea",
		Format:    "nmea",
		Points:    30,
	})
	require.NoError(t, err)

	runs, err := d.Recent(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first: the auto-timestamped run sorts after 2026-08-01.
	assert.Equal(t, id, runs[0].ID)
	assert.Equal(t, "survey_gamma.csv", runs[0].Source)
	assert.Equal(t, -1.5, runs[0].Lateral)
	assert.Equal(t, 2, runs[0].Undefined)
	assert.Equal(t, "fixed-id", runs[1].ID)
	assert.Equal(t, 30, runs[1].Points)
}

func TestRecentLimit(t *testing.T) {
	d := initTestDB(t)
	for i := 0; i < 5; i++ {
		_, err := d.Record(Run{Source: "t.csv", Format: "csv", Points: i})
		require.NoError(t, err)
	}

	runs, err := d.Recent(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestRecentEmpty(t *testing.T) {
	d := initTestDB(t)
	runs, err := d.Recent(0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
