package http

import (
	"net/http"

	"github.com/pmguardian/guardian/internal/rbac/service"
	"github.com/pmguardian/guardian/pkg/httpx"
	"github.com/pmguardian/guardian/pkg/rbacsdk"
)

// ResourcesHandler handles the resource CRUD endpoints.
type ResourcesHandler struct {
	Service *service.ResourcesService
}

// HandleCreate handles POST /resources
//
//	@Summary		Create Resource
//	@Description	Registers a protectable resource class.
//	@Tags			Resources
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rbacsdk.CreateResourceRequest	true	"Resource to create"
//	@Success		201		{object}	rbacsdk.Resource				"Created resource"
//	@Failure		400		{object}	rbacsdk.ErrorResponse			"error"
//	@Failure		500		{object}	rbacsdk.ErrorResponse			"error"
//	@Router			/resources [post].
func (h *ResourcesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req rbacsdk.CreateResourceRequest
	if !decodeValid(w, r, &req) {
		return
	}

	res, err := h.Service.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toWireResource(res))
}

// HandleList handles GET /resources
//
//	@Summary		List Resources
//	@Tags			Resources
//	@Produce		json
//	@Success		200	{object}	rbacsdk.ListResourcesResponse	"All resources ordered by id"
//	@Failure		500	{object}	rbacsdk.ErrorResponse			"error"
//	@Router			/resources [get].
func (h *ResourcesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	resources, err := h.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := rbacsdk.ListResourcesResponse{Resources: make([]rbacsdk.Resource, len(resources))}
	for i, res := range resources {
		out.Resources[i] = toWireResource(res)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /resources/{id}
//
//	@Summary		Get Resource
//	@Tags			Resources
//	@Produce		json
//	@Param			id	path		string					true	"Resource ID (ULID)"
//	@Success		200	{object}	rbacsdk.Resource		"Resource"
//	@Failure		404	{object}	rbacsdk.ErrorResponse	"error"
//	@Failure		500	{object}	rbacsdk.ErrorResponse	"error"
//	@Router			/resources/{id} [get].
func (h *ResourcesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	res, err := h.Service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toWireResource(res))
}

// HandlePut handles PUT /resources/{id}
//
//	@Summary		Replace Resource
//	@Tags			Resources
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Resource ID (ULID)"
//	@Param			request	body		rbacsdk.CreateResourceRequest	true	"Full replacement"
//	@Success		200		{object}	rbacsdk.Resource				"Updated resource"
//	@Failure		400		{object}	rbacsdk.ErrorResponse			"error"
//	@Failure		404		{object}	rbacsdk.ErrorResponse			"error"
//	@Failure		500		{object}	rbacsdk.ErrorResponse			"error"
//	@Router			/resources/{id} [put].
func (h *ResourcesHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	var req rbacsdk.CreateResourceRequest
	if !decodeValid(w, r, &req) {
		return
	}

	res, err := h.Service.Update(r.Context(), r.PathValue("id"), req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toWireResource(res))
}

// HandlePatch handles PATCH /resources/{id}
//
//	@Summary		Patch Resource
//	@Description	Updates only the provided fields.
//	@Tags			Resources
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Resource ID (ULID)"
//	@Param			request	body		rbacsdk.PatchResourceRequest	true	"Fields to update"
//	@Success		200		{object}	rbacsdk.Resource				"Updated resource"
//	@Failure		400		{object}	rbacsdk.ErrorResponse			"error"
//	@Failure		404		{object}	rbacsdk.ErrorResponse			"error"
//	@Failure		500		{object}	rbacsdk.ErrorResponse			"error"
//	@Router			/resources/{id} [patch].
func (h *ResourcesHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	var req rbacsdk.PatchResourceRequest
	if !decodeValid(w, r, &req) {
		return
	}

	res, err := h.Service.Patch(r.Context(), r.PathValue("id"), req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toWireResource(res))
}

// HandleDelete handles DELETE /resources/{id}
//
//	@Summary		Delete Resource
//	@Description	Removes a resource. Permissions referencing it are left in place
//	@Description	and ignored at evaluation time.
//	@Tags			Resources
//	@Param			id	path	string	true	"Resource ID (ULID)"
//	@Success		204	"Resource deleted"
//	@Failure		404	{object}	rbacsdk.ErrorResponse	"error"
//	@Failure		500	{object}	rbacsdk.ErrorResponse	"error"
//	@Router			/resources/{id} [delete].
func (h *ResourcesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
