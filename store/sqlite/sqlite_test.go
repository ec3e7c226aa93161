package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/ledger-engine/ledger"
	"github.com/warp/ledger-engine/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_LedgerLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	l := ledger.Ledger{ID: "led-1", Name: "Unit 4B", CreatedAt: time.Now().UTC()}
	require.NoError(t, store.CreateLedger(ctx, l))

	got, err := store.GetLedger(ctx, "led-1")
	require.NoError(t, err)
	assert.Equal(t, "Unit 4B", got.Name)

	_, err = store.GetLedger(ctx, "nope")
	assert.ErrorIs(t, err, ledger.ErrLedgerNotFound)

	all, err := store.ListLedgers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_EntriesRoundTrip_PreservesInsertionOrderAndValues(t *testing.T) {
	// GIVEN: Entries appended in a known order, with same-date rows
	// WHEN: Loading them back
	// THEN: Order and exact decimal values survive

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateLedger(ctx, ledger.Ledger{ID: "led-1", Name: "Unit 4B", CreatedAt: time.Now()}))

	d := ledger.NewDate(2024, time.June, 1)
	batch := []ledger.Entry{
		{Date: d, Description: "first", Charge: decimal.RequireFromString("566.6666666666666667")},
		{Date: d, Description: "second", Payment: decimal.RequireFromString("-950")},
	}
	require.NoError(t, store.AppendEntries(ctx, "led-1", batch))
	require.NoError(t, store.AppendEntries(ctx, "led-1", []ledger.Entry{
		{Date: ledger.NewDate(2024, time.May, 1), Description: "third", Charge: decimal.NewFromInt(10)},
	}))

	got, err := store.Entries(ctx, "led-1")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "first", got[0].Description)
	assert.Equal(t, "second", got[1].Description)
	assert.Equal(t, "third", got[2].Description)
	assert.True(t, got[0].Charge.Equal(batch[0].Charge), "exact decimal survives")
	assert.Equal(t, "-950.00", ledger.FormatMoney(got[1].Payment))
	assert.Equal(t, "2024-06-01", got[0].Date.String())
}

func TestStore_ClearEntries(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateLedger(ctx, ledger.Ledger{ID: "led-1", Name: "n", CreatedAt: time.Now()}))
	require.NoError(t, store.AppendEntries(ctx, "led-1", []ledger.Entry{
		{Date: ledger.NewDate(2024, time.June, 1), Description: "x", Charge: decimal.NewFromInt(1)},
	}))

	require.NoError(t, store.ClearEntries(ctx, "led-1"))
	got, err := store.Entries(ctx, "led-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_UnknownLedger(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.AppendEntries(ctx, "ghost", []ledger.Entry{{}})
	assert.ErrorIs(t, err, ledger.ErrLedgerNotFound)

	_, err = store.Entries(ctx, "ghost")
	assert.ErrorIs(t, err, ledger.ErrLedgerNotFound)

	assert.ErrorIs(t, store.ClearEntries(ctx, "ghost"), ledger.ErrLedgerNotFound)
}
