package handler

import (
	"errors"
	"net/http"
	"time"

	reportsdomain "family-ledger-go/internal/domain/reports"
	userdomain "family-ledger-go/internal/domain/user"
)

type reportEntryResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	UserName       string    `json:"userName"`
	Amount         float64   `json:"amount"`
	Type           string    `json:"type"`
	Date           time.Time `json:"date"`
	CategoryName   *string   `json:"categoryName"`
	CustomCategory *string   `json:"customCategory"`
	Note           *string   `json:"note"`
	ReceiptURL     *string   `json:"receiptUrl"`
}

// requireOrganization loads the authenticated user and rejects the request
// unless they belong to an organization. Unlike requireApproved it admits
// pending members, so a freshly joined user can already see household totals.
func (h *Handlers) requireOrganization(w http.ResponseWriter, r *http.Request, op string) (*userdomain.User, bool) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return nil, false
	}

	found, err := h.Users.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			h.log.BusinessError(op+": user not found", err, "user_id", userID)
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
			return nil, false
		}
		h.log.InternalError(op+": load user failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return nil, false
	}
	if found.OrganizationID == nil {
		h.log.BusinessError(op+": no organization", userdomain.ErrNoOrganization, "user_id", userID)
		writeError(w, http.StatusForbidden, "forbidden", "no organization")
		return nil, false
	}
	return found, true
}

func (h *Handlers) monthYearParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	query := r.URL.Query()
	month, year, err := parseMonthYear(query.Get("month"), query.Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return 0, 0, false
	}
	return month, year, true
}

func (h *Handlers) DashboardOverview(w http.ResponseWriter, r *http.Request) {
	approved, ok := h.requireApproved(w, r, "dashboard.overview")
	if !ok {
		return
	}

	month, year, ok := h.monthYearParams(w, r)
	if !ok {
		return
	}

	overview, err := h.Reports.MonthlyOverview(r.Context(), *approved.OrganizationID, month, year)
	if err != nil {
		if errors.Is(err, reportsdomain.ErrInvalidPeriod) {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid month or year")
			return
		}
		h.log.InternalError("dashboard.overview: failed", err, "organization_id", *approved.OrganizationID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

func (h *Handlers) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	member, ok := h.requireOrganization(w, r, "dashboard.summary")
	if !ok {
		return
	}

	month, year, ok := h.monthYearParams(w, r)
	if !ok {
		return
	}

	summary, err := h.Reports.MonthlySummary(r.Context(), *member.OrganizationID, month, year)
	if err != nil {
		if errors.Is(err, reportsdomain.ErrInvalidPeriod) {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid month or year")
			return
		}
		h.log.InternalError("dashboard.summary: failed", err, "organization_id", *member.OrganizationID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *Handlers) DashboardComparison(w http.ResponseWriter, r *http.Request) {
	member, ok := h.requireOrganization(w, r, "dashboard.comparison")
	if !ok {
		return
	}

	month, year, ok := h.monthYearParams(w, r)
	if !ok {
		return
	}

	comparison, err := h.Reports.Comparison(r.Context(), *member.OrganizationID, month, year)
	if err != nil {
		if errors.Is(err, reportsdomain.ErrInvalidPeriod) {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid month or year")
			return
		}
		h.log.InternalError("dashboard.comparison: failed", err, "organization_id", *member.OrganizationID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"month":   month,
		"year":    year,
		"members": comparison,
	})
}

// DashboardReport lists one month's entries with category and author names.
func (h *Handlers) DashboardReport(w http.ResponseWriter, r *http.Request) {
	member, ok := h.requireOrganization(w, r, "dashboard.report")
	if !ok {
		return
	}

	month, year, ok := h.monthYearParams(w, r)
	if !ok {
		return
	}

	from, to, err := reportsdomain.MonthWindow(month, year)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid month or year")
		return
	}

	entries, err := h.Ledger.ListDetailed(r.Context(), *member.OrganizationID, from, to)
	if err != nil {
		h.log.InternalError("dashboard.report: failed", err, "organization_id", *member.OrganizationID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	result := make([]reportEntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, reportEntryResponse{
			ID:             e.ID,
			UserID:         e.UserID,
			UserName:       e.UserName,
			Amount:         e.Amount,
			Type:           e.Type,
			Date:           e.Date,
			CategoryName:   e.CategoryName,
			CustomCategory: e.CustomCategory,
			Note:           e.Note,
			ReceiptURL:     e.ReceiptURL,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"month":   month,
		"year":    year,
		"entries": result,
	})
}
