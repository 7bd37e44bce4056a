package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pmguardian/guardian/internal/rbac/metrics"
	"github.com/pmguardian/guardian/internal/rbac/service"
	"github.com/pmguardian/guardian/internal/rbac/store"
	"github.com/pmguardian/guardian/pkg/httpx"
	"github.com/pmguardian/guardian/pkg/rbacsdk"
	"github.com/pmguardian/guardian/pkg/slogx"

	_ "github.com/pmguardian/guardian/api/rbac" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	ResourcesService   *service.ResourcesService
	PermissionsService *service.PermissionsService
	PoliciesService    *service.PoliciesService
	RolesService       *service.RolesService
	UserRolesService   *service.UserRolesService
	Authorizer         *service.Authorizer

	// EnforceAccess additionally guards the management routes with the
	// service's own authorizer. Off by default so a fresh deployment can
	// seed its first records.
	EnforceAccess bool

	// RuntimeConfig is echoed verbatim by GET /config. The app layer fills
	// it with the non-secret parts of its configuration.
	RuntimeConfig rbacsdk.ConfigResponse
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerCheckAccess()
	r.registerResources()
	r.registerPermissions()
	r.registerPolicies()
	r.registerRoles()
	r.registerUserRoles()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Guardian RBAC Service API
//	@version		0.1.0
//	@description	Role-based access control service: manages resources, permissions,
//	@description	policies and roles, and answers access checks with an auditable reason.
//	@description
//	@description				Callers identify themselves via the X-User-Id header; authenticating
//	@description				that identity is a deployment concern outside this service.
//
//	@contact.name				PM Guardian Team
//	@contact.url				https://github.com/pmguardian/guardian
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// manage wraps a management endpoint: moderate per-IP rate limit, plus
// self-enforcement through the authorizer when enabled.
func (r *Router) manage(h http.Handler, resource, operation string) http.Handler {
	wrapped := httpx.Chain(h, httpx.RateLimitByIP(httpx.ModerateLimit))
	if r.EnforceAccess {
		wrapped = httpx.Chain(wrapped, httpx.RequireAccess(r.Authorizer.Check, resource, operation))
	}
	return wrapped
}

func (r *Router) registerCheckAccess() {
	h := &CheckAccessHandler{Authorizer: r.Authorizer}

	// The hot path: every guarded request in the fleet funnels through here,
	// so it gets the lenient per-IP budget.
	r.Mux.Handle("POST /check-access",
		httpx.Chain(h, httpx.RateLimitByIP(httpx.LenientLimit)),
	)
}

func (r *Router) registerResources() {
	h := &ResourcesHandler{Service: r.ResourcesService}

	r.Mux.Handle("POST /resources", r.manage(http.HandlerFunc(h.HandleCreate), "resource", "create"))
	r.Mux.Handle("GET /resources", r.manage(http.HandlerFunc(h.HandleList), "resource", "read"))
	r.Mux.Handle("GET /resources/{id}", r.manage(http.HandlerFunc(h.HandleGet), "resource", "read"))
	r.Mux.Handle("PUT /resources/{id}", r.manage(http.HandlerFunc(h.HandlePut), "resource", "update"))
	r.Mux.Handle("PATCH /resources/{id}", r.manage(http.HandlerFunc(h.HandlePatch), "resource", "update"))
	r.Mux.Handle("DELETE /resources/{id}", r.manage(http.HandlerFunc(h.HandleDelete), "resource", "delete"))
}

func (r *Router) registerPermissions() {
	h := &PermissionsHandler{Service: r.PermissionsService}

	r.Mux.Handle("POST /permissions", r.manage(http.HandlerFunc(h.HandleCreate), "permission", "create"))
	r.Mux.Handle("GET /permissions", r.manage(http.HandlerFunc(h.HandleList), "permission", "read"))
	r.Mux.Handle("GET /permissions/{id}", r.manage(http.HandlerFunc(h.HandleGet), "permission", "read"))
	r.Mux.Handle("PUT /permissions/{id}", r.manage(http.HandlerFunc(h.HandlePut), "permission", "update"))
	r.Mux.Handle("PATCH /permissions/{id}", r.manage(http.HandlerFunc(h.HandlePatch), "permission", "update"))
	r.Mux.Handle("DELETE /permissions/{id}", r.manage(http.HandlerFunc(h.HandleDelete), "permission", "delete"))
}

func (r *Router) registerPolicies() {
	h := &PoliciesHandler{Service: r.PoliciesService}

	r.Mux.Handle("POST /policies", r.manage(http.HandlerFunc(h.HandleCreate), "policy", "create"))
	r.Mux.Handle("GET /policies", r.manage(http.HandlerFunc(h.HandleList), "policy", "read"))
	r.Mux.Handle("GET /policies/{id}", r.manage(http.HandlerFunc(h.HandleGet), "policy", "read"))
	r.Mux.Handle("PUT /policies/{id}", r.manage(http.HandlerFunc(h.HandlePut), "policy", "update"))
	r.Mux.Handle("PATCH /policies/{id}", r.manage(http.HandlerFunc(h.HandlePatch), "policy", "update"))
	r.Mux.Handle("DELETE /policies/{id}", r.manage(http.HandlerFunc(h.HandleDelete), "policy", "delete"))
}

func (r *Router) registerRoles() {
	h := &RolesHandler{Service: r.RolesService}

	r.Mux.Handle("POST /roles", r.manage(http.HandlerFunc(h.HandleCreate), "role", "create"))
	r.Mux.Handle("GET /roles", r.manage(http.HandlerFunc(h.HandleList), "role", "read"))
	r.Mux.Handle("GET /roles/{id}", r.manage(http.HandlerFunc(h.HandleGet), "role", "read"))
	r.Mux.Handle("PUT /roles/{id}", r.manage(http.HandlerFunc(h.HandlePut), "role", "update"))
	r.Mux.Handle("PATCH /roles/{id}", r.manage(http.HandlerFunc(h.HandlePatch), "role", "update"))
	r.Mux.Handle("DELETE /roles/{id}", r.manage(http.HandlerFunc(h.HandleDelete), "role", "delete"))

	r.Mux.Handle("POST /roles/{id}/policies", r.manage(http.HandlerFunc(h.HandleAssignPolicy), "role", "update"))
	r.Mux.Handle("GET /roles/{id}/policies", r.manage(http.HandlerFunc(h.HandleListPolicies), "role", "read"))
	r.Mux.Handle("DELETE /roles/{id}/policies", r.manage(http.HandlerFunc(h.HandleUnassignPolicy), "role", "update"))
}

func (r *Router) registerUserRoles() {
	h := &UserRolesHandler{Service: r.UserRolesService}

	r.Mux.Handle("POST /user-roles", r.manage(http.HandlerFunc(h.HandleAssign), "user_role", "create"))
	r.Mux.Handle("GET /user-roles", r.manage(http.HandlerFunc(h.HandleList), "user_role", "read"))
	r.Mux.Handle("DELETE /user-roles", r.manage(http.HandlerFunc(h.HandleUnassign), "user_role", "delete"))
}

func (r *Router) registerSystem() {
	public := func(h http.Handler) http.Handler {
		return httpx.Chain(h, httpx.RateLimitByIP(httpx.PublicLimit))
	}

	r.Mux.Handle("GET /livez", public(LivezHandler(r.startTime, r.buildVersion)))
	r.Mux.Handle("GET /readyz", public(ReadyzHandler(r.startTime, r.buildVersion, r.store)))
	r.Mux.Handle("GET /version", public(VersionHandler(r.buildVersion)))
	r.Mux.Handle("GET /config", public(ConfigHandler(r.RuntimeConfig)))
	r.Mux.Handle("GET /metrics", public(metrics.Handler()))
}
