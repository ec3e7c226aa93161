package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/ledger-engine/ledger"
)

func charge(d ledger.Date, desc string, amount float64) ledger.Entry {
	return ledger.Entry{Date: d, Description: desc, Charge: money(amount)}
}

func payment(d ledger.Date, desc string, amount float64) ledger.Entry {
	return ledger.Entry{Date: d, Description: desc, Payment: money(amount).Neg()}
}

// =============================================================================
// ORDERING
// =============================================================================

func TestReconcile_SortsByDate(t *testing.T) {
	entries := []ledger.Entry{
		charge(date(2024, time.March, 1), "Rent", 1000),
		payment(date(2024, time.January, 5), "Deposit", 500),
		charge(date(2024, time.February, 1), "Rent", 1000),
	}

	out := ledger.Reconcile(entries)
	require.Len(t, out, 3)
	assert.Equal(t, "Deposit", out[0].Description)
	assert.Equal(t, "Rent", out[1].Description)
	assert.Equal(t, date(2024, time.March, 1), out[2].Date)
}

func TestReconcile_StableOnEqualDates(t *testing.T) {
	// Two entries on the same date keep their insertion order.
	d := date(2024, time.June, 1)
	entries := []ledger.Entry{
		charge(d, "first", 10),
		charge(d, "second", 20),
		charge(date(2024, time.May, 1), "earlier", 5),
		charge(d, "third", 30),
	}

	out := ledger.Reconcile(entries)
	require.Len(t, out, 4)
	assert.Equal(t, "earlier", out[0].Description)
	assert.Equal(t, "first", out[1].Description)
	assert.Equal(t, "second", out[2].Description)
	assert.Equal(t, "third", out[3].Description)
}

func TestReconcile_ZeroDateSortsFirst(t *testing.T) {
	// An unset date is the defined fallback minimum, not an error.
	entries := []ledger.Entry{
		charge(date(2024, time.January, 1), "dated", 100),
		{Description: "undated", Charge: money(50)},
	}

	out := ledger.Reconcile(entries)
	require.Len(t, out, 2)
	assert.Equal(t, "undated", out[0].Description)
	assert.Equal(t, "50.00", ledger.FormatMoney(out[0].RunningBalance))
	assert.Equal(t, "150.00", ledger.FormatMoney(out[1].RunningBalance))
}

// =============================================================================
// RUNNING BALANCE
// =============================================================================

func TestReconcile_RunningBalance(t *testing.T) {
	// GIVEN: A 500 charge on Jan 1 and a 500 payment on Jan 15
	// WHEN: Reconciling
	// THEN: Balances are 500.00 then 0.00

	entries := []ledger.Entry{
		payment(date(2024, time.January, 15), "Payment", 500),
		charge(date(2024, time.January, 1), "Rent", 500),
	}

	out := ledger.Reconcile(entries)
	require.Len(t, out, 2)
	assert.Equal(t, "500.00", ledger.FormatMoney(out[0].RunningBalance))
	assert.Equal(t, "0.00", ledger.FormatMoney(out[1].RunningBalance))
}

func TestReconcile_LastBalanceEqualsNet(t *testing.T) {
	entries := []ledger.Entry{
		charge(date(2024, time.January, 1), "Rent", 1200),
		payment(date(2024, time.January, 3), "Partial", 700),
		charge(date(2024, time.February, 1), "Rent", 1200),
		payment(date(2024, time.February, 10), "Partial", 900),
	}

	out := ledger.Reconcile(entries)
	last := out[len(out)-1].RunningBalance
	assert.True(t, last.Equal(ledger.Balance(entries)), "last balance equals net of all entries")
	assert.Equal(t, "800.00", ledger.FormatMoney(last))
}

func TestReconcile_Idempotent(t *testing.T) {
	entries := []ledger.Entry{
		charge(date(2024, time.March, 1), "Rent", 1000),
		payment(date(2024, time.March, 5), "Payment", 1000),
		charge(date(2024, time.March, 5), "Late fee", 50),
	}

	once := ledger.Reconcile(entries)
	twice := ledger.Reconcile(once)
	assert.Equal(t, once, twice)
}

func TestReconcile_DoesNotMutateInput(t *testing.T) {
	entries := []ledger.Entry{
		charge(date(2024, time.March, 1), "b", 10),
		charge(date(2024, time.February, 1), "a", 20),
	}

	_ = ledger.Reconcile(entries)
	assert.Equal(t, "b", entries[0].Description, "input order untouched")
	assert.True(t, entries[0].RunningBalance.IsZero(), "input balances untouched")
}

func TestReconcile_Empty(t *testing.T) {
	assert.Empty(t, ledger.Reconcile(nil))
	assert.True(t, ledger.Balance(nil).IsZero())
}

// =============================================================================
// END TO END - Generated schedule plus manual entries
// =============================================================================

func TestReconcile_ScheduleWithInterleavedPayments(t *testing.T) {
	entries, err := ledger.GenerateSchedule(money(1000), date(2024, time.January, 15), date(2024, time.March, 15))
	require.NoError(t, err)

	pay, err := ledger.BuildTransaction(date(2024, time.February, 1), "Feb rent payment", money(950), ledger.KindPayment)
	require.NoError(t, err)
	entries = append(entries, pay)

	out := ledger.Reconcile(entries)
	require.Len(t, out, 4)

	// Payment lands between the January proration and the February charge.
	assert.Equal(t, ledger.DescriptionProRateRent, out[0].Description)
	assert.Equal(t, "Feb rent payment", out[1].Description)
	assert.Equal(t, ledger.DescriptionRent, out[2].Description)

	assert.Equal(t, "566.67", ledger.FormatMoney(out[0].RunningBalance))
	assert.Equal(t, "-383.33", ledger.FormatMoney(out[1].RunningBalance))
	assert.Equal(t, "616.67", ledger.FormatMoney(out[2].RunningBalance))
	assert.Equal(t, "1616.67", ledger.FormatMoney(out[3].RunningBalance))
}
