package http

import (
	"net/http"

	"github.com/pmguardian/guardian/internal/rbac/service"
	"github.com/pmguardian/guardian/pkg/httpx"
	"github.com/pmguardian/guardian/pkg/rbacsdk"
)

// UserRolesHandler handles user→role grant endpoints. User ids are opaque
// strings owned by the caller's identity system.
type UserRolesHandler struct {
	Service *service.UserRolesService
}

// HandleAssign handles POST /user-roles
//
//	@Summary		Assign Role to User
//	@Description	Grants a role to a user. An omitted company_id inherits the
//	@Description	role's own company scoping; re-assigning updates the company.
//	@Tags			UserRoles
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rbacsdk.AssignRoleRequest	true	"Grant to record"
//	@Success		201		{object}	rbacsdk.UserRole			"Recorded grant"
//	@Failure		400		{object}	rbacsdk.ErrorResponse		"error"
//	@Failure		404		{object}	rbacsdk.ErrorResponse		"error - role not found"
//	@Failure		500		{object}	rbacsdk.ErrorResponse		"error"
//	@Router			/user-roles [post].
func (h *UserRolesHandler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	var req rbacsdk.AssignRoleRequest
	if !decodeValid(w, r, &req) {
		return
	}

	grant, err := h.Service.Assign(r.Context(), req.UserID, req.RoleID, req.CompanyID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toWireUserRole(grant))
}

// HandleList handles GET /user-roles?user_id=...
//
//	@Summary		List a User's Role Grants
//	@Tags			UserRoles
//	@Produce		json
//	@Param			user_id	query		string							true	"User ID"
//	@Success		200		{object}	rbacsdk.ListUserRolesResponse	"Grants ordered by role id"
//	@Failure		400		{object}	rbacsdk.ErrorResponse			"error - missing user_id"
//	@Failure		500		{object}	rbacsdk.ErrorResponse			"error"
//	@Router			/user-roles [get].
func (h *UserRolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "user_id query parameter is required")
		return
	}

	grants, err := h.Service.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := rbacsdk.ListUserRolesResponse{UserRoles: make([]rbacsdk.UserRole, len(grants))}
	for i, g := range grants {
		out.UserRoles[i] = toWireUserRole(g)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUnassign handles DELETE /user-roles?user_id=...&role_id=...
//
//	@Summary		Revoke a User's Role Grant
//	@Tags			UserRoles
//	@Param			user_id	query	string	true	"User ID"
//	@Param			role_id	query	string	true	"Role ID (ULID)"
//	@Success		204		"Grant revoked"
//	@Failure		400		{object}	rbacsdk.ErrorResponse	"error - missing parameters"
//	@Failure		404		{object}	rbacsdk.ErrorResponse	"error - grant not found"
//	@Failure		500		{object}	rbacsdk.ErrorResponse	"error"
//	@Router			/user-roles [delete].
func (h *UserRolesHandler) HandleUnassign(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	roleID := r.URL.Query().Get("role_id")
	if userID == "" || roleID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "user_id and role_id query parameters are required")
		return
	}

	if err := h.Service.Unassign(r.Context(), userID, roleID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
