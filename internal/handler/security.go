package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/brewline/coffee-trade/internal/domain/auth"
	"github.com/brewline/coffee-trade/pkg/httpmiddleware"
)

// apiKeyHeader carries the client credential on mutating requests.
const apiKeyHeader = "api_key"

// APIKeyAuth returns a middleware that authenticates requests by the
// HMAC-SHA256 hash of the presented API key. The raw key is never stored or
// compared directly; lookup is by hash and the final comparison is
// constant-time.
func APIKeyAuth(keys auth.Repository, pepper []byte) httpmiddleware.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(apiKeyHeader)
			if key == "" {
				respondError(w, http.StatusUnauthorized, "api key required")
				return
			}

			mac := hmac.New(sha256.New, pepper)
			mac.Write([]byte(key))
			hash := mac.Sum(nil)

			info, err := keys.FindByHash(r.Context(), hex.EncodeToString(hash))
			if err != nil {
				respondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			stored, err := hex.DecodeString(info.KeyHash)
			if err != nil || subtle.ConstantTimeCompare(hash, stored) != 1 {
				respondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
