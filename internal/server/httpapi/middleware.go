package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/julienschmidt/httprouter"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// requireAuth extracts the identity token from the auth-token header,
// verifies it and binds the resolved user identifier to the request context.
// On any failure the request is rejected before reaching the handler.
func (a *API) requireAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		token := r.Header.Get(common.AuthTokenHeaderName)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "access denied")
			return
		}

		userID, err := auth.GetUserIDFromToken(token, a.jwtSecret)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next(w, r.WithContext(ctx), ps)
	}
}

// userIDFromContext returns the identity bound by requireAuth. It is the
// only source of the caller's user identifier for downstream handlers.
func userIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}
