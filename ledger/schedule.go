/*
schedule.go - Scheduled rent-charge generation

PURPOSE:
  Produces the rent charges owed over a lease period. Leases that start
  mid-month are pro-rated for the first month; every later month is a
  full charge.

PRORATION:
  Pro-rated charges always use a fixed 30-day month denominator, NOT the
  actual days in the month:

    prorated = rent * days_rented / 30

  A lease starting Jan 15 rents 17 days of January (15th through 31st),
  so the first charge is rent * 17/30. This 30-day convention is the
  business rule, including for 28- and 31-day months.

CHARGE DATES:
  The first charge lands on the start date. Full charges then land on
  the same day-of-month in each following month, advancing with the
  clamped rollover in date.go, until the date passes the lease end.
  The month after the start month is always the first full-charge
  month, even when the lease started on the 1st with a full charge.

EXAMPLE:
  GenerateSchedule(1000, 2024-01-15, 2024-03-15):
    2024-01-15  566.67   Pro-Rate Rent   (17 days)
    2024-02-15  1000.00  Rent
    2024-03-15  1000.00  Rent

SEE ALSO:
  - date.go: NextMonth rollover and month arithmetic
  - reconcile.go: Ordering and running balance over the full ledger
*/
package ledger

import (
	"github.com/shopspring/decimal"
)

var thirtyDayMonth = decimal.NewFromInt(30)

// GenerateSchedule produces the ordered rent charges for a lease
// running from start through end inclusive, at the given monthly rent.
//
// Entries come back in date order with Payment zero and RunningBalance
// unset; callers append them to their collection and Reconcile.
func GenerateSchedule(rent decimal.Decimal, start, end Date) ([]Entry, error) {
	if !rent.IsPositive() {
		return nil, &ValidationError{Field: "rent_amount", Value: rent.String(), Err: ErrInvalidAmount}
	}
	if start.After(end) {
		return nil, &ValidationError{Field: "start_date", Value: start.String(), Err: ErrInvalidRange}
	}

	// Lease contained in a single month: one pro-rated charge covering
	// start through end, even when that happens to be the whole month.
	if start.SameMonth(end) {
		days := end.Day() - start.Day() + 1
		return []Entry{{
			Date:        start,
			Charge:      prorate(rent, days),
			Description: DescriptionProRateRent,
		}}, nil
	}

	var entries []Entry

	// First month: pro-rated to the end of the month unless the lease
	// starts on the 1st, which earns a full charge.
	if start.Day() != 1 {
		days := DaysInMonth(start.Year(), start.Month()) - start.Day() + 1
		entries = append(entries, Entry{
			Date:        start,
			Charge:      prorate(rent, days),
			Description: DescriptionProRateRent,
		})
	} else {
		entries = append(entries, Entry{
			Date:        start,
			Charge:      rent,
			Description: DescriptionRent,
		})
	}

	// Full charges from the month after the start, stopping as soon as
	// the rollover passes the lease end.
	for date := start.NextMonth(); date.BeforeOrEqual(end); date = date.NextMonth() {
		entries = append(entries, Entry{
			Date:        date,
			Charge:      rent,
			Description: DescriptionRent,
		})
	}
	return entries, nil
}

// prorate computes rent * days / 30.
func prorate(rent decimal.Decimal, days int) decimal.Decimal {
	return rent.Mul(decimal.NewFromInt(int64(days))).Div(thirtyDayMonth)
}
