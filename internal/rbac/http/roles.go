package http

import (
	"net/http"

	"github.com/pmguardian/guardian/internal/rbac/service"
	"github.com/pmguardian/guardian/pkg/httpx"
	"github.com/pmguardian/guardian/pkg/rbacsdk"
)

// RolesHandler handles the role CRUD endpoints plus role↔policy assignment.
type RolesHandler struct {
	Service *service.RolesService
}

// HandleCreate handles POST /roles
//
//	@Summary		Create Role
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rbacsdk.CreateRoleRequest	true	"Role to create"
//	@Success		201		{object}	rbacsdk.Role				"Created role"
//	@Failure		400		{object}	rbacsdk.ErrorResponse		"error"
//	@Failure		500		{object}	rbacsdk.ErrorResponse		"error"
//	@Router			/roles [post].
func (h *RolesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req rbacsdk.CreateRoleRequest
	if !decodeValid(w, r, &req) {
		return
	}

	role, err := h.Service.Create(r.Context(), req.Name, req.CompanyID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toWireRole(role))
}

// HandleList handles GET /roles
//
//	@Summary		List Roles
//	@Tags			Roles
//	@Produce		json
//	@Success		200	{object}	rbacsdk.ListRolesResponse	"All roles ordered by id"
//	@Failure		500	{object}	rbacsdk.ErrorResponse		"error"
//	@Router			/roles [get].
func (h *RolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	roles, err := h.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := rbacsdk.ListRolesResponse{Roles: make([]rbacsdk.Role, len(roles))}
	for i, role := range roles {
		out.Roles[i] = toWireRole(role)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /roles/{id}
//
//	@Summary		Get Role
//	@Tags			Roles
//	@Produce		json
//	@Param			id	path		string					true	"Role ID (ULID)"
//	@Success		200	{object}	rbacsdk.Role			"Role"
//	@Failure		404	{object}	rbacsdk.ErrorResponse	"error"
//	@Failure		500	{object}	rbacsdk.ErrorResponse	"error"
//	@Router			/roles/{id} [get].
func (h *RolesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	role, err := h.Service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toWireRole(role))
}

// HandlePut handles PUT /roles/{id}
//
//	@Summary		Replace Role
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Role ID (ULID)"
//	@Param			request	body		rbacsdk.CreateRoleRequest	true	"Full replacement"
//	@Success		200		{object}	rbacsdk.Role				"Updated role"
//	@Failure		400		{object}	rbacsdk.ErrorResponse		"error"
//	@Failure		404		{object}	rbacsdk.ErrorResponse		"error"
//	@Failure		500		{object}	rbacsdk.ErrorResponse		"error"
//	@Router			/roles/{id} [put].
func (h *RolesHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	var req rbacsdk.CreateRoleRequest
	if !decodeValid(w, r, &req) {
		return
	}

	role, err := h.Service.Update(r.Context(), r.PathValue("id"), req.Name, req.CompanyID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toWireRole(role))
}

// HandlePatch handles PATCH /roles/{id}
//
//	@Summary		Patch Role
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Role ID (ULID)"
//	@Param			request	body		rbacsdk.PatchRoleRequest	true	"Fields to update"
//	@Success		200		{object}	rbacsdk.Role			"Updated role"
//	@Failure		400		{object}	rbacsdk.ErrorResponse	"error"
//	@Failure		404		{object}	rbacsdk.ErrorResponse	"error"
//	@Failure		500		{object}	rbacsdk.ErrorResponse	"error"
//	@Router			/roles/{id} [patch].
func (h *RolesHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	var req rbacsdk.PatchRoleRequest
	if !decodeValid(w, r, &req) {
		return
	}

	role, err := h.Service.Patch(r.Context(), r.PathValue("id"), req.Name, req.CompanyID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toWireRole(role))
}

// HandleDelete handles DELETE /roles/{id}
//
//	@Summary		Delete Role
//	@Tags			Roles
//	@Param			id	path	string	true	"Role ID (ULID)"
//	@Success		204	"Role deleted"
//	@Failure		404	{object}	rbacsdk.ErrorResponse	"error"
//	@Failure		500	{object}	rbacsdk.ErrorResponse	"error"
//	@Router			/roles/{id} [delete].
func (h *RolesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAssignPolicy handles POST /roles/{id}/policies
//
//	@Summary		Assign Policy to Role
//	@Description	Attaches a policy to a role. Both must exist; assigning an
//	@Description	already-assigned pair succeeds without duplicating it.
//	@Tags			Roles
//	@Accept			json
//	@Param			id		path	string						true	"Role ID (ULID)"
//	@Param			request	body	rbacsdk.AssignPolicyRequest	true	"Policy to assign"
//	@Success		201		"Policy assigned"
//	@Failure		400		{object}	rbacsdk.ErrorResponse	"error"
//	@Failure		404		{object}	rbacsdk.ErrorResponse	"error - role or policy not found"
//	@Failure		500		{object}	rbacsdk.ErrorResponse	"error"
//	@Router			/roles/{id}/policies [post].
func (h *RolesHandler) HandleAssignPolicy(w http.ResponseWriter, r *http.Request) {
	var req rbacsdk.AssignPolicyRequest
	if !decodeValid(w, r, &req) {
		return
	}

	if err := h.Service.AssignPolicy(r.Context(), r.PathValue("id"), req.PolicyID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// HandleListPolicies handles GET /roles/{id}/policies
//
//	@Summary		List Policies of a Role
//	@Description	Returns the policies currently assigned to the role, ordered by
//	@Description	policy id. Assignments whose policy has been deleted are omitted.
//	@Tags			Roles
//	@Produce		json
//	@Param			id	path		string							true	"Role ID (ULID)"
//	@Success		200	{object}	rbacsdk.ListPoliciesResponse	"Assigned policies"
//	@Failure		404	{object}	rbacsdk.ErrorResponse			"error"
//	@Failure		500	{object}	rbacsdk.ErrorResponse			"error"
//	@Router			/roles/{id}/policies [get].
func (h *RolesHandler) HandleListPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.Service.ListPolicies(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := rbacsdk.ListPoliciesResponse{Policies: make([]rbacsdk.Policy, len(policies))}
	for i, p := range policies {
		out.Policies[i] = toWirePolicy(p)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUnassignPolicy handles DELETE /roles/{id}/policies?policy_id=...
//
//	@Summary		Unassign Policy from Role
//	@Tags			Roles
//	@Param			id			path	string	true	"Role ID (ULID)"
//	@Param			policy_id	query	string	true	"Policy ID (ULID)"
//	@Success		204			"Policy unassigned"
//	@Failure		400			{object}	rbacsdk.ErrorResponse	"error - missing policy_id"
//	@Failure		404			{object}	rbacsdk.ErrorResponse	"error - role or assignment not found"
//	@Failure		500			{object}	rbacsdk.ErrorResponse	"error"
//	@Router			/roles/{id}/policies [delete].
func (h *RolesHandler) HandleUnassignPolicy(w http.ResponseWriter, r *http.Request) {
	policyID := r.URL.Query().Get("policy_id")
	if policyID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "policy_id query parameter is required")
		return
	}

	if err := h.Service.UnassignPolicy(r.Context(), r.PathValue("id"), policyID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
