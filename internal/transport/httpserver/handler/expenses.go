package handler

import (
	"errors"
	"net/http"
	"time"

	ledgerdomain "family-ledger-go/internal/domain/ledger"
)

type recordEntryRequest struct {
	Amount         float64 `json:"amount"`
	Type           string  `json:"type"`
	Date           string  `json:"date"`
	CategoryID     string  `json:"categoryId"`
	CustomCategory string  `json:"customCategory"`
	Note           string  `json:"note"`
	ReceiptURL     string  `json:"receiptUrl"`
}

type entryResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Amount         float64   `json:"amount"`
	Type           string    `json:"type"`
	Date           time.Time `json:"date"`
	CategoryID     *string   `json:"categoryId"`
	CustomCategory *string   `json:"customCategory"`
	Note           *string   `json:"note"`
	ReceiptURL     *string   `json:"receiptUrl"`
}

func toEntryResponse(e ledgerdomain.Entry) entryResponse {
	return entryResponse{
		ID:             e.ID,
		UserID:         e.UserID,
		Amount:         e.Amount,
		Type:           e.Type,
		Date:           e.Date,
		CategoryID:     e.CategoryID,
		CustomCategory: e.CustomCategory,
		Note:           e.Note,
		ReceiptURL:     e.ReceiptURL,
	}
}

func (h *Handlers) RecordExpense(w http.ResponseWriter, r *http.Request) {
	approved, ok := h.requireApproved(w, r, "expense.record")
	if !ok {
		return
	}

	var req recordEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	date, err := parseDateParam(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date")
		return
	}

	entry, err := h.Ledger.Record(r.Context(), ledgerdomain.RecordInput{
		UserID:         approved.ID,
		OrganizationID: *approved.OrganizationID,
		Amount:         req.Amount,
		Type:           req.Type,
		Date:           date,
		CategoryID:     req.CategoryID,
		CustomCategory: req.CustomCategory,
		Note:           req.Note,
		ReceiptURL:     req.ReceiptURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, ledgerdomain.ErrInvalidAmount):
			writeError(w, http.StatusBadRequest, "invalid_request", "amount must be positive")
		case errors.Is(err, ledgerdomain.ErrInvalidType):
			writeError(w, http.StatusBadRequest, "invalid_request", "type must be INCOME or EXPENSE")
		case errors.Is(err, ledgerdomain.ErrCategoryNotFound):
			h.log.BusinessError("expense.record: category not found", err, "user_id", approved.ID)
			writeError(w, http.StatusNotFound, "category_not_found", "category not found")
		default:
			h.log.InternalError("expense.record: create failed", err, "user_id", approved.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(*entry))
}

// ListOwnExpenses returns the caller's own entries and only needs a valid
// token, not an approved membership.
func (h *Handlers) ListOwnExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	entries, err := h.Ledger.ListOwn(r.Context(), userID)
	if err != nil {
		h.log.InternalError("expense.my: list failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	result := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, toEntryResponse(e))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": result})
}
