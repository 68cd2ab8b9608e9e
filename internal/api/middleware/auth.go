package middleware

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mallkit/cart-service/internal/models"
)

const authType = "basic"

// MemberResolver is the slice of member storage the auth layer needs.
type MemberResolver interface {
	GetByName(ctx context.Context, name string) (*models.Member, error)
}

// BasicAuth decodes the Authorization header, loads the named member and
// verifies the password. Handlers behind it receive a pre-authenticated
// member via MemberFrom.
func BasicAuth(members MemberResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name, password, ok := decodeBasic(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w)
				return
			}

			member, err := members.GetByName(r.Context(), name)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal error"})
				return
			}
			if member == nil || !member.CheckPassword(password) {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithMember(r.Context(), *member)))
		})
	}
}

func decodeBasic(header string) (name, password string, ok bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], authType) {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", false
	}

	credentials := strings.SplitN(string(decoded), ":", 2)
	if len(credentials) != 2 {
		return "", "", false
	}
	return credentials[0], credentials[1], true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": models.ErrAuthentication.Error()})
}
