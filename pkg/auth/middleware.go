package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/doculuna/wallet/pkg/utils"
)

type ContextKey string

const OperatorIDKey ContextKey = "operatorID"

// Middleware guards operator routes: a valid token is required and its
// subject must be on the operator allow-list.
type Middleware struct {
	jwt       JWTServiceInterface
	operators map[int64]struct{}
}

func NewMiddleware(jwt JWTServiceInterface, operatorIDs []int64) *Middleware {
	operators := make(map[int64]struct{}, len(operatorIDs))
	for _, id := range operatorIDs {
		operators[id] = struct{}{}
	}
	return &Middleware{
		jwt:       jwt,
		operators: operators,
	}
}

// IsOperator reports whether the account is on the operator allow-list.
func (m *Middleware) IsOperator(accountID int64) bool {
	_, ok := m.operators[accountID]
	return ok
}

func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !m.IsOperator(claims.OperatorID) {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}

		ctx := context.WithValue(r.Context(), OperatorIDKey, claims.OperatorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
