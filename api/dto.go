/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for the HTTP surface. These decouple the ledger
  domain types from the wire contract; monetary fields go out
  pre-formatted with two fractional digits, dates as YYYY-MM-DD, the
  same rendering the file export uses.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Raw strings are passed to the ledger package's parsers; DTOs carry no
  validation of their own.

SEE ALSO:
  - handlers.go: Uses these types
  - ledger/: ParseAmount, ParseDate, ParseKind
*/
package api

import (
	"time"

	"github.com/warp/ledger-engine/ledger"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// CreateLedgerRequest creates a named ledger.
type CreateLedgerRequest struct {
	Name string `json:"name"`
}

// GenerateScheduleRequest generates scheduled rent charges. All fields
// arrive as raw form strings; the engine validates them.
type GenerateScheduleRequest struct {
	RentAmount string `json:"rent_amount"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// AddTransactionRequest records one manual charge or payment.
type AddTransactionRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// LedgerDTO is a ledger summary.
type LedgerDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// EntryDTO is one reconciled ledger row, money pre-formatted to two
// decimal places.
type EntryDTO struct {
	Date           string `json:"date"`
	Charge         string `json:"charge"`
	Description    string `json:"description"`
	Payment        string `json:"payment"`
	RunningBalance string `json:"running_balance"`
}

// LedgerDetailDTO is a ledger with its reconciled entries.
type LedgerDetailDTO struct {
	LedgerDTO
	Entries []EntryDTO `json:"entries"`
	Balance string     `json:"balance"`
}

// ErrorResponse is the JSON error shape for all failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toLedgerDTO(l ledger.Ledger) LedgerDTO {
	return LedgerDTO{
		ID:        l.ID,
		Name:      l.Name,
		CreatedAt: l.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toEntryDTO(e ledger.Entry) EntryDTO {
	return EntryDTO{
		Date:           e.Date.String(),
		Charge:         ledger.FormatMoney(e.Charge),
		Description:    e.Description,
		Payment:        ledger.FormatMoney(e.Payment),
		RunningBalance: ledger.FormatMoney(e.RunningBalance),
	}
}

func toDetailDTO(l ledger.Ledger, reconciled []ledger.Entry) LedgerDetailDTO {
	dtos := make([]EntryDTO, len(reconciled))
	for i, e := range reconciled {
		dtos[i] = toEntryDTO(e)
	}
	balance := "0.00"
	if len(reconciled) > 0 {
		balance = ledger.FormatMoney(reconciled[len(reconciled)-1].RunningBalance)
	}
	return LedgerDetailDTO{
		LedgerDTO: toLedgerDTO(l),
		Entries:   dtos,
		Balance:   balance,
	}
}
