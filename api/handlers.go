/*
handlers.go - HTTP handlers for the rent ledger

PURPOSE:
  Exposes the ledger engine over REST. This layer plays the role the
  entry form played in the desktop version: it collects primitive field
  values, hands them to the engine, and reconciles after every
  mutation.

ENDPOINTS:
  POST   /api/ledgers                      Create a named ledger
  GET    /api/ledgers                      List ledgers
  GET    /api/ledgers/{id}                 Reconciled ledger rows
  POST   /api/ledgers/{id}/schedule        Generate scheduled rent charges
  POST   /api/ledgers/{id}/transactions    Add a manual charge/payment
  DELETE /api/ledgers/{id}/entries         Clear all rows
  GET    /api/ledgers/{id}/export          Tab-separated file download

ERROR HANDLING:
  Validation failures map to 400 and name the offending field; unknown
  ledger IDs map to 404; storage failures map to 500. No row is written
  when validation fails.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - ledger/: The engine itself
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/warp/ledger-engine/export"
	"github.com/warp/ledger-engine/ledger"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store ledger.Store
}

// NewHandler creates a handler backed by the given store.
func NewHandler(store ledger.Store) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// LEDGER HANDLERS
// =============================================================================

// CreateLedger creates a new empty ledger.
func (h *Handler) CreateLedger(w http.ResponseWriter, r *http.Request) {
	var req CreateLedgerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: "Validation failed", Field: "name", Details: "name cannot be empty",
		})
		return
	}

	l := ledger.Ledger{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Store.CreateLedger(r.Context(), l); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create ledger", err)
		return
	}
	writeJSON(w, http.StatusCreated, toLedgerDTO(l))
}

// ListLedgers returns all ledgers.
func (h *Handler) ListLedgers(w http.ResponseWriter, r *http.Request) {
	ledgers, err := h.Store.ListLedgers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list ledgers", err)
		return
	}

	dtos := make([]LedgerDTO, len(ledgers))
	for i, l := range ledgers {
		dtos[i] = toLedgerDTO(l)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetLedger returns the reconciled ledger: rows in date order with the
// running balance populated.
func (h *Handler) GetLedger(w http.ResponseWriter, r *http.Request) {
	l, entries, ok := h.loadLedger(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toDetailDTO(l, ledger.Reconcile(entries)))
}

// =============================================================================
// MUTATION HANDLERS
// =============================================================================

// GenerateSchedule generates scheduled rent charges and appends them to
// the ledger.
func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	l, existing, ok := h.loadLedger(w, r)
	if !ok {
		return
	}

	var req GenerateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rent, err := ledger.ParseAmount(req.RentAmount)
	if err != nil {
		writeValidation(w, err)
		return
	}
	start, err := ledger.ParseDate(req.StartDate)
	if err != nil {
		writeValidation(w, err)
		return
	}
	end, err := ledger.ParseDate(req.EndDate)
	if err != nil {
		writeValidation(w, err)
		return
	}

	generated, err := ledger.GenerateSchedule(rent, start, end)
	if err != nil {
		writeValidation(w, err)
		return
	}

	if err := h.Store.AppendEntries(r.Context(), l.ID, generated); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save entries", err)
		return
	}
	writeJSON(w, http.StatusOK, toDetailDTO(l, ledger.Reconcile(append(existing, generated...))))
}

// AddTransaction appends one manual charge or payment.
func (h *Handler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	l, existing, ok := h.loadLedger(w, r)
	if !ok {
		return
	}

	var req AddTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	date, err := ledger.ParseDate(req.Date)
	if err != nil {
		writeValidation(w, err)
		return
	}
	amount, err := ledger.ParseAmount(req.Amount)
	if err != nil {
		writeValidation(w, err)
		return
	}
	kind, err := ledger.ParseKind(req.Type)
	if err != nil {
		writeValidation(w, err)
		return
	}

	entry, err := ledger.BuildTransaction(date, req.Description, amount, kind)
	if err != nil {
		writeValidation(w, err)
		return
	}

	if err := h.Store.AppendEntries(r.Context(), l.ID, []ledger.Entry{entry}); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save entry", err)
		return
	}
	writeJSON(w, http.StatusOK, toDetailDTO(l, ledger.Reconcile(append(existing, entry))))
}

// ClearEntries removes every row from the ledger.
func (h *Handler) ClearEntries(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.ClearEntries(r.Context(), id); err != nil {
		if errors.Is(err, ledger.ErrLedgerNotFound) {
			writeError(w, http.StatusNotFound, "Ledger not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to clear entries", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// EXPORT
// =============================================================================

// ExportLedger downloads the reconciled ledger as tab-separated text.
func (h *Handler) ExportLedger(w http.ResponseWriter, r *http.Request) {
	l, entries, ok := h.loadLedger(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/tab-separated-values; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", l.Name+".txt"))
	if err := export.Write(w, ledger.Reconcile(entries)); err != nil {
		// Headers are gone; nothing left to do but log via middleware.
		return
	}
}

// =============================================================================
// HELPERS
// =============================================================================

// loadLedger resolves the {id} route param and loads the ledger with
// its entries, writing the error response itself on failure.
func (h *Handler) loadLedger(w http.ResponseWriter, r *http.Request) (ledger.Ledger, []ledger.Entry, bool) {
	id := chi.URLParam(r, "id")

	l, err := h.Store.GetLedger(r.Context(), id)
	if err != nil {
		if errors.Is(err, ledger.ErrLedgerNotFound) {
			writeError(w, http.StatusNotFound, "Ledger not found", nil)
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to load ledger", err)
		}
		return ledger.Ledger{}, nil, false
	}

	entries, err := h.Store.Entries(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load entries", err)
		return ledger.Ledger{}, nil, false
	}
	return l, entries, true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeValidation maps an engine validation error to a 400 naming the
// offending field.
func writeValidation(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Error: "Validation failed", Details: err.Error()}
	var verr *ledger.ValidationError
	if errors.As(err, &verr) {
		resp.Field = verr.Field
	}
	writeJSON(w, http.StatusBadRequest, resp)
}
