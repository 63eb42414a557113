package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/conf-keeper/internal/logger"
)

// TokenHeader carries the shared access token.
const TokenHeader = "x-token"

// auth rejects requests without the server's access token.
//
// A missing or empty x-token header is answered with 401 Unauthorized, a
// wrong token with 403 Forbidden. Tokens are compared in constant time.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token := r.Header.Get(TokenHeader)
		if token == "" {
			log.Err(ErrEmptyTokenHeader).Send()
			http.Error(w, ErrEmptyTokenHeader.Error(), http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) != 1 {
			log.Err(ErrInvalidToken).Send()
			http.Error(w, ErrInvalidToken.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
