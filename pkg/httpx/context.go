package httpx

import (
	"context"
	"net/http"
)

type ctxKey string

const (
	// CtxKeyUserID carries the caller identity extracted from the
	// X-User-Id header by RequireAccess.
	CtxKeyUserID ctxKey = "user_id"
)

// UserIDFromContext returns the caller identity, if any.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// UserIDHeader is the header callers use to identify themselves to the
// enforcement middleware. Authenticating that identity is out of scope here;
// deployments front this service with their own authn layer.
const UserIDHeader = "X-User-Id"

func userIDFromRequest(r *http.Request) string {
	return r.Header.Get(UserIDHeader)
}
