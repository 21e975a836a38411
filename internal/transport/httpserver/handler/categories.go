package handler

import (
	"errors"
	"net/http"

	ledgerdomain "family-ledger-go/internal/domain/ledger"
	userdomain "family-ledger-go/internal/domain/user"
)

type createCategoryRequest struct {
	Name string `json:"name"`
}

type categoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
}

func toCategoryResponses(categories []ledgerdomain.Category) []categoryResponse {
	result := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, categoryResponse{ID: c.ID, Name: c.Name, IsDefault: c.IsDefault})
	}
	return result
}

// requireApproved loads the authenticated user and rejects the request
// unless they are an approved member of an organization.
func (h *Handlers) requireApproved(w http.ResponseWriter, r *http.Request, op string) (*userdomain.User, bool) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return nil, false
	}

	approved, err := h.Users.RequireApproved(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, userdomain.ErrNotApproved):
			h.log.BusinessError(op+": not approved", err, "user_id", userID)
			writeError(w, http.StatusForbidden, "forbidden", "membership not approved")
		case errors.Is(err, userdomain.ErrNoOrganization):
			h.log.BusinessError(op+": no organization", err, "user_id", userID)
			writeError(w, http.StatusForbidden, "forbidden", "no organization")
		case errors.Is(err, userdomain.ErrUserNotFound):
			h.log.BusinessError(op+": user not found", err, "user_id", userID)
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
		default:
			h.log.InternalError(op+": load user failed", err, "user_id", userID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return nil, false
	}
	return approved, true
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	approved, ok := h.requireApproved(w, r, "categories.list")
	if !ok {
		return
	}

	categories, err := h.Ledger.ListCategories(r.Context(), *approved.OrganizationID)
	if err != nil {
		h.log.InternalError("categories.list: failed", err, "organization_id", *approved.OrganizationID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": toCategoryResponses(categories)})
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	approved, ok := h.requireApproved(w, r, "categories.create")
	if !ok {
		return
	}

	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	category, err := h.Ledger.CreateCategory(r.Context(), *approved.OrganizationID, req.Name)
	if err != nil {
		h.log.BusinessError("categories.create: rejected", err, "user_id", approved.ID)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, categoryResponse{ID: category.ID, Name: category.Name, IsDefault: category.IsDefault})
}
