package handler

import (
	"errors"
	"net/http"

	orgdomain "family-ledger-go/internal/domain/organization"
	userdomain "family-ledger-go/internal/domain/user"
	"family-ledger-go/internal/transport/httpserver/middleware"
)

type createOrganizationRequest struct {
	Name string `json:"name"`
}

type joinOrganizationRequest struct {
	ReferralCode string `json:"referralCode"`
}

type approveMemberRequest struct {
	MemberID string `json:"memberId"`
}

type adminApproveRequest struct {
	UserID string `json:"userId"`
}

type organizationResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ReferralCode string `json:"referralCode"`
}

func currentUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return "", false
	}
	return userID, true
}

// requireParent loads the authenticated user and rejects the request unless
// they hold the parent role in an organization.
func (h *Handlers) requireParent(w http.ResponseWriter, r *http.Request, op string) (*userdomain.User, bool) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return nil, false
	}

	parent, err := h.Users.RequireParent(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, userdomain.ErrNotParent):
			h.log.BusinessError(op+": not a parent", err, "user_id", userID)
			writeError(w, http.StatusForbidden, "forbidden", "parent role required")
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
	return parent, true
}

func (h *Handlers) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req createOrganizationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	org, err := h.Organizations.Create(r.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, orgdomain.ErrCodeGenerationFailed) {
			h.log.InternalError("organization.create: code generation failed", err, "user_id", userID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
			return
		}
		h.log.BusinessError("organization.create: rejected", err, "user_id", userID)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, organizationResponse{
		ID:           org.ID,
		Name:         org.Name,
		ReferralCode: org.ReferralCode,
	})
}

func (h *Handlers) JoinOrganization(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req joinOrganizationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	org, err := h.Organizations.JoinByCode(r.Context(), userID, req.ReferralCode)
	if err != nil {
		if errors.Is(err, orgdomain.ErrCodeNotFound) {
			h.log.BusinessError("organization.join: code not found", err, "user_id", userID)
			writeError(w, http.StatusNotFound, "code_not_found", "referral code not found")
			return
		}
		h.log.BusinessError("organization.join: rejected", err, "user_id", userID)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"organizationId": org.ID,
		"name":           org.Name,
		"status":         "PENDING",
	})
}

func (h *Handlers) ListPendingMembers(w http.ResponseWriter, r *http.Request) {
	parent, ok := h.requireParent(w, r, "organization.pending")
	if !ok {
		return
	}

	members, err := h.Organizations.ListPending(r.Context(), *parent.OrganizationID)
	if err != nil {
		h.log.InternalError("organization.pending: list failed", err, "organization_id", *parent.OrganizationID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"members": members})
}

func (h *Handlers) ApproveMember(w http.ResponseWriter, r *http.Request) {
	parent, ok := h.requireParent(w, r, "organization.approve")
	if !ok {
		return
	}

	var req approveMemberRequest
	if err := decodeJSON(r, &req); err != nil || req.MemberID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "memberId is required")
		return
	}

	h.approve(w, r, *parent.OrganizationID, req.MemberID, "organization.approve")
}

func (h *Handlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	parent, ok := h.requireParent(w, r, "admin.members")
	if !ok {
		return
	}

	members, err := h.Organizations.ListMembers(r.Context(), *parent.OrganizationID)
	if err != nil {
		h.log.InternalError("admin.members: list failed", err, "organization_id", *parent.OrganizationID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"members": members})
}

// AdminApprove mirrors ApproveMember under the admin prefix; its body names
// the target as userId.
func (h *Handlers) AdminApprove(w http.ResponseWriter, r *http.Request) {
	parent, ok := h.requireParent(w, r, "admin.approve")
	if !ok {
		return
	}

	var req adminApproveRequest
	if err := decodeJSON(r, &req); err != nil || req.UserID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "userId is required")
		return
	}

	h.approve(w, r, *parent.OrganizationID, req.UserID, "admin.approve")
}

func (h *Handlers) approve(w http.ResponseWriter, r *http.Request, orgID, memberID, op string) {
	err := h.Organizations.ApproveMember(r.Context(), orgID, memberID)
	if err != nil {
		switch {
		case errors.Is(err, orgdomain.ErrMemberNotFound):
			h.log.BusinessError(op+": member not found", err, "member_id", memberID)
			writeError(w, http.StatusNotFound, "member_not_found", "member not found")
		case errors.Is(err, orgdomain.ErrNotInOrganization):
			h.log.BusinessError(op+": member outside organization", err, "member_id", memberID)
			writeError(w, http.StatusBadRequest, "invalid_request", "member is not in your organization")
		default:
			h.log.InternalError(op+": update failed", err, "member_id", memberID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"memberId": memberID, "status": "APPROVED"})
}

func (h *Handlers) RegenerateReferral(w http.ResponseWriter, r *http.Request) {
	parent, ok := h.requireParent(w, r, "admin.regenerate")
	if !ok {
		return
	}

	code, err := h.Organizations.RegenerateCode(r.Context(), *parent.OrganizationID)
	if err != nil {
		if errors.Is(err, orgdomain.ErrOrganizationNotFound) {
			h.log.BusinessError("admin.regenerate: organization not found", err, "organization_id", *parent.OrganizationID)
			writeError(w, http.StatusNotFound, "organization_not_found", "organization not found")
			return
		}
		h.log.InternalError("admin.regenerate: failed", err, "organization_id", *parent.OrganizationID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"referralCode": code})
}
