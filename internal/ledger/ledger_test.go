package ledger_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heterolattice/internal/ledger"
)

func TestLedger_RecordAndBest(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sweep.db")
	l, err := ledger.Open(path)
	require.NoError(t, err)
	defer l.Close()

	ctx := context.Background()
	require.NoError(t, l.Record(ctx, ledger.SweepPoint{RunID: "run-1", Tolerance: 0.1, Nmin: 0, Nmax: 5, InterfacesFound: 2, ElapsedSeconds: 0.5}))
	require.NoError(t, l.Record(ctx, ledger.SweepPoint{RunID: "run-1", Tolerance: 0.2, Nmin: 0, Nmax: 8, InterfacesFound: 5, ElapsedSeconds: 1.2}))
	require.NoError(t, l.Record(ctx, ledger.SweepPoint{RunID: "run-2", Tolerance: 0.1, Nmin: 0, Nmax: 5, InterfacesFound: 9, ElapsedSeconds: 0.9}))

	best, err := l.Best(ctx, "run-1")
	require.NoError(t, err)
	require.Equal(t, 5, best.InterfacesFound)
	require.Equal(t, int64(8), best.Nmax)
}

func TestLedger_BestOnEmptyRunFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sweep.db")
	l, err := ledger.Open(path)
	require.NoError(t, err)
	defer l.Close()

	_, err = l.Best(context.Background(), "nonexistent")
	require.ErrorIs(t, err, ledger.ErrLedgerUnavailable)
}

func TestOpenTrace_WritesGzipJSONLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trace.jsonl.gz")
	tw, err := ledger.OpenTrace(path)
	require.NoError(t, err)

	require.NoError(t, tw.Write(ledger.SweepPoint{RunID: "run-1", Tolerance: 0.1, InterfacesFound: 3}))
	require.NoError(t, tw.Write(ledger.SweepPoint{RunID: "run-1", Tolerance: 0.2, InterfacesFound: 4}))
	require.NoError(t, tw.Close())
}
