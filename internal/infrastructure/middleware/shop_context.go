package middleware

import (
	"encoding/json"
	"net/http"

	"expander-core-shopify-layer/internal/domain"
	"expander-core-shopify-layer/internal/ports"

	"github.com/rs/zerolog"
)

// ShopContextMiddleware resolves the shop a request is scoped to and
// stores it in the request context. The shop domain comes from the
// X-Shopify-Shop-Domain header or the shop query parameter; request
// authentication itself is the job of the auth layer in front of this
// service and is trusted here.
func ShopContextMiddleware(shopRepo ports.ShopRepository, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			shopDomain := r.Header.Get("X-Shopify-Shop-Domain")
			if shopDomain == "" {
				shopDomain = r.URL.Query().Get("shop")
			}
			if shopDomain == "" {
				writeError(w, http.StatusUnauthorized, "shop domain is required")
				return
			}

			shop, err := shopRepo.GetByDomain(ctx, shopDomain)
			if err != nil {
				logger.Error().Err(err).Str("shop", shopDomain).Msg("Failed to load shop for request")
				writeError(w, http.StatusInternalServerError, "failed to load shop")
				return
			}
			if shop == nil || !shop.IsActive {
				writeError(w, http.StatusUnauthorized, "shop not found or inactive")
				return
			}

			next.ServeHTTP(w, r.WithContext(domain.WithShop(ctx, shop)))
		})
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
