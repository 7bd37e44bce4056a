package http

import (
	"net/http"

	"github.com/pmguardian/guardian/internal/rbac/service"
	"github.com/pmguardian/guardian/pkg/httpx"
	"github.com/pmguardian/guardian/pkg/rbacsdk"
)

// PoliciesHandler handles the policy CRUD endpoints.
type PoliciesHandler struct {
	Service *service.PoliciesService
}

// HandleCreate handles POST /policies
//
//	@Summary		Create Policy
//	@Description	Creates a named bundle of permission ids. The ids are not checked
//	@Description	against the permissions table: a policy may be written before its
//	@Description	permissions, and unresolvable ids are skipped at evaluation time.
//	@Tags			Policies
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rbacsdk.CreatePolicyRequest	true	"Policy to create"
//	@Success		201		{object}	rbacsdk.Policy				"Created policy"
//	@Failure		400		{object}	rbacsdk.ErrorResponse		"error"
//	@Failure		500		{object}	rbacsdk.ErrorResponse		"error"
//	@Router			/policies [post].
func (h *PoliciesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req rbacsdk.CreatePolicyRequest
	if !decodeValid(w, r, &req) {
		return
	}

	p, err := h.Service.Create(r.Context(), req.Name, req.PermissionIDs)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toWirePolicy(p))
}

// HandleList handles GET /policies
//
//	@Summary		List Policies
//	@Tags			Policies
//	@Produce		json
//	@Success		200	{object}	rbacsdk.ListPoliciesResponse	"All policies ordered by id"
//	@Failure		500	{object}	rbacsdk.ErrorResponse			"error"
//	@Router			/policies [get].
func (h *PoliciesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	policies, err := h.Service.List(r.Context())
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

// HandleGet handles GET /policies/{id}
//
//	@Summary		Get Policy
//	@Tags			Policies
//	@Produce		json
//	@Param			id	path		string					true	"Policy ID (ULID)"
//	@Success		200	{object}	rbacsdk.Policy			"Policy"
//	@Failure		404	{object}	rbacsdk.ErrorResponse	"error"
//	@Failure		500	{object}	rbacsdk.ErrorResponse	"error"
//	@Router			/policies/{id} [get].
func (h *PoliciesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toWirePolicy(p))
}

// HandlePut handles PUT /policies/{id}
//
//	@Summary		Replace Policy
//	@Description	Replaces the name and the full permission association set.
//	@Tags			Policies
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Policy ID (ULID)"
//	@Param			request	body		rbacsdk.CreatePolicyRequest	true	"Full replacement"
//	@Success		200		{object}	rbacsdk.Policy				"Updated policy"
//	@Failure		400		{object}	rbacsdk.ErrorResponse		"error"
//	@Failure		404		{object}	rbacsdk.ErrorResponse		"error"
//	@Failure		500		{object}	rbacsdk.ErrorResponse		"error"
//	@Router			/policies/{id} [put].
func (h *PoliciesHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	var req rbacsdk.CreatePolicyRequest
	if !decodeValid(w, r, &req) {
		return
	}

	p, err := h.Service.Update(r.Context(), r.PathValue("id"), req.Name, req.PermissionIDs)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toWirePolicy(p))
}

// HandlePatch handles PATCH /policies/{id}
//
//	@Summary		Patch Policy
//	@Description	Updates only the provided fields. A present permission_ids array
//	@Description	replaces the association set wholesale.
//	@Tags			Policies
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Policy ID (ULID)"
//	@Param			request	body		rbacsdk.PatchPolicyRequest	true	"Fields to update"
//	@Success		200		{object}	rbacsdk.Policy				"Updated policy"
//	@Failure		400		{object}	rbacsdk.ErrorResponse		"error"
//	@Failure		404		{object}	rbacsdk.ErrorResponse		"error"
//	@Failure		500		{object}	rbacsdk.ErrorResponse		"error"
//	@Router			/policies/{id} [patch].
func (h *PoliciesHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	var req rbacsdk.PatchPolicyRequest
	if !decodeValid(w, r, &req) {
		return
	}

	var ids []string
	if req.PermissionIDs != nil {
		ids = *req.PermissionIDs
		if ids == nil {
			ids = []string{}
		}
	}

	p, err := h.Service.Patch(r.Context(), r.PathValue("id"), req.Name, ids)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toWirePolicy(p))
}

// HandleDelete handles DELETE /policies/{id}
//
//	@Summary		Delete Policy
//	@Description	Removes a policy and its permission associations. Roles still
//	@Description	referencing it skip the dangling association at evaluation time.
//	@Tags			Policies
//	@Param			id	path	string	true	"Policy ID (ULID)"
//	@Success		204	"Policy deleted"
//	@Failure		404	{object}	rbacsdk.ErrorResponse	"error"
//	@Failure		500	{object}	rbacsdk.ErrorResponse	"error"
//	@Router			/policies/{id} [delete].
func (h *PoliciesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
