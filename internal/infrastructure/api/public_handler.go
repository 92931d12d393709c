package api

import (
	"net/http"

	"expander-core-shopify-layer/internal/application"

	"github.com/rs/zerolog"
)

// PublicHandler serves the unauthenticated storefront endpoint.
type PublicHandler struct {
	configService *application.ConfigService
	logger        zerolog.Logger
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(configService *application.ConfigService, logger zerolog.Logger) *PublicHandler {
	return &PublicHandler{
		configService: configService,
		logger:        logger,
	}
}

// GetConfig handles GET /public/config?shop=<domain>&locale=<code>
func (h *PublicHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	shopDomain := r.URL.Query().Get("shop")
	if shopDomain == "" {
		respondError(w, http.StatusBadRequest, "shop parameter is required")
		return
	}
	locale := r.URL.Query().Get("locale")

	config, err := h.configService.Resolve(r.Context(), shopDomain, locale)
	if err != nil {
		h.logger.Warn().Err(err).Str("shop", shopDomain).Msg("Failed to resolve public config")
		respondWithError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"config": config})
}
