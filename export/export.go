/*
Package export writes a reconciled ledger to tab-separated text.

PURPOSE:
  Renders the final ledger in the fixed interchange format: a header
  line, then one line per entry with date, charge, description, payment
  and running balance separated by tabs. Monetary values always carry
  exactly two fractional digits, dates are YYYY-MM-DD.

FORMAT:
  Date\tCharge\tDescription\tPayment\tRunning Balance
  2024-01-15\t566.67\tPro-Rate Rent\t0.00\t566.67
  ...

KNOWN LIMITATION:
  Descriptions are written verbatim. Embedded tabs or newlines are not
  escaped and will break the column structure of the file.

SEE ALSO:
  - ledger/reconcile.go: Produces the ordered, balanced entries
*/
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/warp/ledger-engine/ledger"
)

// Header is the fixed first line of every export.
const Header = "Date\tCharge\tDescription\tPayment\tRunning Balance"

// Error reports a failed export with its underlying cause. In-memory
// state is never affected by a failed write.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("export failed: %v", e.Err)
	}
	return fmt.Sprintf("export to %s failed: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Write renders the entries to w. Entries are written in the order
// given; callers reconcile first.
func Write(w io.Writer, entries []ledger.Entry) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(Header + "\n"); err != nil {
		return &Error{Err: err}
	}
	for _, e := range entries {
		if _, err := bw.WriteString(Line(e) + "\n"); err != nil {
			return &Error{Err: err}
		}
	}
	if err := bw.Flush(); err != nil {
		return &Error{Err: err}
	}
	return nil
}

// WriteFile renders the entries to a file, creating or truncating it.
func WriteFile(path string, entries []ledger.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return &Error{Path: path, Err: err}
	}

	if err := Write(f, entries); err != nil {
		f.Close()
		if exp, ok := err.(*Error); ok {
			exp.Path = path
			return exp
		}
		return &Error{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &Error{Path: path, Err: err}
	}
	return nil
}

// Line renders a single entry as one tab-separated row.
func Line(e ledger.Entry) string {
	return strings.Join([]string{
		e.Date.String(),
		ledger.FormatMoney(e.Charge),
		e.Description,
		ledger.FormatMoney(e.Payment),
		ledger.FormatMoney(e.RunningBalance),
	}, "\t")
}
