package http

import (
	"net/http"

	"github.com/pmguardian/guardian/internal/rbac/service"
	"github.com/pmguardian/guardian/pkg/httpx"
	"github.com/pmguardian/guardian/pkg/rbacsdk"
)

// PermissionsHandler handles the permission CRUD endpoints.
type PermissionsHandler struct {
	Service *service.PermissionsService
}

// HandleCreate handles POST /permissions
//
//	@Summary		Create Permission
//	@Description	Registers "operation O on resource R". The resource must exist;
//	@Description	the operation string is free-form, with "*" meaning any operation.
//	@Tags			Permissions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rbacsdk.CreatePermissionRequest	true	"Permission to create"
//	@Success		201		{object}	rbacsdk.Permission				"Created permission"
//	@Failure		400		{object}	rbacsdk.ErrorResponse			"error"
//	@Failure		404		{object}	rbacsdk.ErrorResponse			"error - resource not found"
//	@Failure		500		{object}	rbacsdk.ErrorResponse			"error"
//	@Router			/permissions [post].
func (h *PermissionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req rbacsdk.CreatePermissionRequest
	if !decodeValid(w, r, &req) {
		return
	}

	p, err := h.Service.Create(r.Context(), req.ResourceID, req.Operation)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toWirePermission(p))
}

// HandleList handles GET /permissions
//
//	@Summary		List Permissions
//	@Tags			Permissions
//	@Produce		json
//	@Success		200	{object}	rbacsdk.ListPermissionsResponse	"All permissions ordered by id"
//	@Failure		500	{object}	rbacsdk.ErrorResponse			"error"
//	@Router			/permissions [get].
func (h *PermissionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	permissions, err := h.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := rbacsdk.ListPermissionsResponse{Permissions: make([]rbacsdk.Permission, len(permissions))}
	for i, p := range permissions {
		out.Permissions[i] = toWirePermission(p)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /permissions/{id}
//
//	@Summary		Get Permission
//	@Tags			Permissions
//	@Produce		json
//	@Param			id	path		string					true	"Permission ID (ULID)"
//	@Success		200	{object}	rbacsdk.Permission		"Permission"
//	@Failure		404	{object}	rbacsdk.ErrorResponse	"error"
//	@Failure		500	{object}	rbacsdk.ErrorResponse	"error"
//	@Router			/permissions/{id} [get].
func (h *PermissionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toWirePermission(p))
}

// HandlePut handles PUT /permissions/{id}
//
//	@Summary		Replace Permission
//	@Tags			Permissions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Permission ID (ULID)"
//	@Param			request	body		rbacsdk.CreatePermissionRequest	true	"Full replacement"
//	@Success		200		{object}	rbacsdk.Permission				"Updated permission"
//	@Failure		400		{object}	rbacsdk.ErrorResponse			"error"
//	@Failure		404		{object}	rbacsdk.ErrorResponse			"error"
//	@Failure		500		{object}	rbacsdk.ErrorResponse			"error"
//	@Router			/permissions/{id} [put].
func (h *PermissionsHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	var req rbacsdk.CreatePermissionRequest
	if !decodeValid(w, r, &req) {
		return
	}

	p, err := h.Service.Update(r.Context(), r.PathValue("id"), req.ResourceID, req.Operation)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toWirePermission(p))
}

// HandlePatch handles PATCH /permissions/{id}
//
//	@Summary		Patch Permission
//	@Tags			Permissions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Permission ID (ULID)"
//	@Param			request	body		rbacsdk.PatchPermissionRequest	true	"Fields to update"
//	@Success		200		{object}	rbacsdk.Permission				"Updated permission"
//	@Failure		400		{object}	rbacsdk.ErrorResponse			"error"
//	@Failure		404		{object}	rbacsdk.ErrorResponse			"error"
//	@Failure		500		{object}	rbacsdk.ErrorResponse			"error"
//	@Router			/permissions/{id} [patch].
func (h *PermissionsHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	var req rbacsdk.PatchPermissionRequest
	if !decodeValid(w, r, &req) {
		return
	}

	p, err := h.Service.Patch(r.Context(), r.PathValue("id"), req.ResourceID, req.Operation)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toWirePermission(p))
}

// HandleDelete handles DELETE /permissions/{id}
//
//	@Summary		Delete Permission
//	@Description	Removes a permission. Policies referencing it keep the dangling id,
//	@Description	which evaluation filters out.
//	@Tags			Permissions
//	@Param			id	path	string	true	"Permission ID (ULID)"
//	@Success		204	"Permission deleted"
//	@Failure		404	{object}	rbacsdk.ErrorResponse	"error"
//	@Failure		500	{object}	rbacsdk.ErrorResponse	"error"
//	@Router			/permissions/{id} [delete].
func (h *PermissionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
