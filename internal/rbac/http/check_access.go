package http

import (
	"errors"
	"net/http"

	"github.com/pmguardian/guardian/internal/rbac/service"
	"github.com/pmguardian/guardian/pkg/httpx"
	"github.com/pmguardian/guardian/pkg/rbacsdk"
	"github.com/pmguardian/guardian/pkg/slogx"
)

// CheckAccessHandler answers the core question: may this user perform this
// operation on this resource?
type CheckAccessHandler struct {
	Authorizer *service.Authorizer
}

// ServeHTTP handles POST /check-access
//
//	@Summary		Check Access
//	@Description	Evaluates whether user_id may perform operation on resource and
//	@Description	returns the decision with an auditable reason. A denial is a
//	@Description	successful evaluation (200). An unresolvable resource reference is
//	@Description	404 with a decision-shaped body. Backend failures are 500 and are
//	@Description	never reported as a denial.
//	@Tags			CheckAccess
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rbacsdk.CheckAccessRequest	true	"Access question"
//	@Success		200		{object}	rbacsdk.CheckAccessResponse	"Decision with reason"
//	@Failure		400		{object}	rbacsdk.ErrorResponse		"error - missing fields"
//	@Failure		404		{object}	rbacsdk.CheckAccessResponse	"Unknown resource"
//	@Failure		500		{object}	rbacsdk.ErrorResponse		"error"
//	@Router			/check-access [post].
func (h *CheckAccessHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req rbacsdk.CheckAccessRequest
	if !decodeValid(w, r, &req) {
		return
	}

	decision, err := h.Authorizer.Evaluate(ctx, req.UserID, req.Resource, req.Operation)
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrResourceNotFound):
		// Still decision-shaped so callers can always read access_granted.
		httpx.WriteJSON(w, http.StatusNotFound, rbacsdk.CheckAccessResponse{
			AccessGranted: false,
			Reason:        "resource not found",
		})
	case err != nil:
		slogx.FromContext(ctx).Error("access evaluation failed",
			"user_id", req.UserID,
			"resource", req.Resource,
			"operation", req.Operation,
			"error", err,
		)
		httpx.WriteError(w, http.StatusInternalServerError, "access evaluation failed")
	default:
		httpx.WriteJSON(w, http.StatusOK, rbacsdk.CheckAccessResponse{
			AccessGranted: decision.Granted,
			Reason:        decision.Reason,
		})
	}
}
