package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/pmguardian/guardian/internal/rbac/domain"
	"github.com/pmguardian/guardian/internal/rbac/service"
	"github.com/pmguardian/guardian/pkg/httpx"
	"github.com/pmguardian/guardian/pkg/rbacsdk"
	"github.com/pmguardian/guardian/pkg/slogx"
)

// requestValidator is shared by every handler; validator.Validate is
// goroutine-safe and caches struct metadata.
var requestValidator = validator.New(validator.WithRequiredStructEnabled())

// decodeValid decodes the JSON body into dst and runs struct validation.
// It writes the 400 response itself and reports whether the handler should
// continue.
func decodeValid(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON in request body")
		return false
	}
	if err := requestValidator.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			httpx.WriteError(w, http.StatusBadRequest, "invalid request: "+verrs[0].Error())
			return false
		}
		httpx.WriteError(w, http.StatusBadRequest, "invalid request")
		return false
	}
	return true
}

// writeServiceError maps service sentinel errors onto the HTTP error
// taxonomy: bad input → 400, unresolvable records → 404, everything else is
// an infrastructure failure → 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrResourceNotFound),
		errors.Is(err, service.ErrPermissionNotFound),
		errors.Is(err, service.ErrPolicyNotFound),
		errors.Is(err, service.ErrRoleNotFound),
		errors.Is(err, service.ErrAssignmentNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	default:
		slogx.FromContext(r.Context()).Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toWireResource(res domain.Resource) rbacsdk.Resource {
	return rbacsdk.Resource{
		ID:          res.ID,
		Name:        res.Name,
		Description: res.Description,
		CreatedAt:   res.CreatedAt,
		UpdatedAt:   res.UpdatedAt,
	}
}

func toWirePermission(p domain.Permission) rbacsdk.Permission {
	return rbacsdk.Permission{
		ID:         p.ID,
		ResourceID: p.ResourceID,
		Operation:  p.Operation,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toWirePolicy(p domain.Policy) rbacsdk.Policy {
	ids := p.PermissionIDs
	if ids == nil {
		ids = []string{}
	}
	return rbacsdk.Policy{
		ID:            p.ID,
		Name:          p.Name,
		PermissionIDs: ids,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toWireRole(r domain.Role) rbacsdk.Role {
	return rbacsdk.Role{
		ID:        r.ID,
		Name:      r.Name,
		CompanyID: r.CompanyID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toWireUserRole(ur domain.UserRole) rbacsdk.UserRole {
	return rbacsdk.UserRole{
		UserID:    ur.UserID,
		RoleID:    ur.RoleID,
		CompanyID: ur.CompanyID,
		CreatedAt: ur.CreatedAt,
		UpdatedAt: ur.UpdatedAt,
	}
}
