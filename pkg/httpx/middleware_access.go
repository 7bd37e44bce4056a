package httpx

import (
	"context"
	"net/http"

	"github.com/pmguardian/guardian/pkg/slogx"
)

// AccessCheckFunc answers whether userID may perform operation on resource.
// A non-nil error means the answer is unknown (backend failure), which is
// never treated as a denial.
type AccessCheckFunc func(ctx context.Context, userID, resource, operation string) (granted bool, reason string, err error)

// RequireAccess guards an endpoint with an access check against the named
// resource and operation. The caller identifies itself via the X-User-Id
// header; authenticating that identity is a deployment concern, not ours.
func RequireAccess(check AccessCheckFunc, resource, operation string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			userID := userIDFromRequest(r)
			if userID == "" {
				WriteError(w, http.StatusBadRequest, "missing "+UserIDHeader+" header for access check")
				return
			}

			granted, reason, err := check(ctx, userID, resource, operation)
			if err != nil {
				log.Error("access check failed", "error", err, "resource", resource, "operation", operation)
				WriteError(w, http.StatusInternalServerError, "access check failed")
				return
			}

			if !granted {
				log.Warn("access denied",
					"user_id", userID,
					"resource", resource,
					"operation", operation,
					"reason", reason,
				)
				WriteError(w, http.StatusForbidden, "access denied: "+reason)
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, userID)
			ctx = slogx.With(ctx, "caller_id", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
