package middlewares

import (
	"context"
	"mortuary-service/internal/pkg/constvars"
	"mortuary-service/internal/pkg/exceptions"
	"mortuary-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// SessionAuth requires a bearer token from the host shell unless the request
// already authenticated with the superadmin API key.
func (m *Middlewares) SessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if apiKeyAuth, ok := r.Context().Value(constvars.CONTEXT_API_KEY_AUTH_KEY).(bool); ok && apiKeyAuth {
			next.ServeHTTP(w, r)
			return
		}

		authorization := r.Header.Get(constvars.HeaderAuthorization)
		if authorization == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authorization, "Bearer ")
		if token == authorization || token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		sessionData, err := m.SessionService.ParseSessionData(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
