package api

import (
	"encoding/json"
	"net/http"

	"expander-core-shopify-layer/internal/application"
	"expander-core-shopify-layer/internal/domain"
	"expander-core-shopify-layer/internal/ports"

	"github.com/rs/zerolog"
)

// SettingsHandler serves the shop-scoped settings console endpoints.
// The shop-context middleware guarantees an active shop in the context.
type SettingsHandler struct {
	settingsService *application.SettingsService
	commerce        ports.CommerceClient
	logger          zerolog.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(
	settingsService *application.SettingsService,
	commerce ports.CommerceClient,
	logger zerolog.Logger,
) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		commerce:        commerce,
		logger:          logger,
	}
}

// GetSettings handles GET /api/shop/settings
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	shop := domain.ShopFromContext(r.Context())
	settings := h.settingsService.Get(r.Context(), shop)
	respondJSON(w, http.StatusOK, map[string]interface{}{"settings": settings})
}

// UpdateSettings handles PUT /api/shop/settings
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	shop := domain.ShopFromContext(r.Context())

	var body struct {
		Settings domain.SettingsPatch `json:"settings"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := h.settingsService.Update(r.Context(), shop, body.Settings)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"settings": settings})
}

// GetCollections handles GET /api/shop/collections
func (h *SettingsHandler) GetCollections(w http.ResponseWriter, r *http.Request) {
	shop := domain.ShopFromContext(r.Context())

	collections, err := h.commerce.ListCollections(r.Context(), shop.Domain, shop.AccessToken)
	if err != nil {
		h.logger.Error().Err(err).Str("shop", shop.Domain).Msg("Failed to fetch collections")
		respondError(w, http.StatusBadGateway, "failed to fetch collections")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"collections": collections})
}

// GetProducts handles GET /api/shop/products
func (h *SettingsHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	shop := domain.ShopFromContext(r.Context())

	products, err := h.commerce.ListProducts(r.Context(), shop.Domain, shop.AccessToken)
	if err != nil {
		h.logger.Error().Err(err).Str("shop", shop.Domain).Msg("Failed to fetch products")
		respondError(w, http.StatusBadGateway, "failed to fetch products")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

// UpdateEnabledCollections handles PUT /api/shop/collections/enabled
func (h *SettingsHandler) UpdateEnabledCollections(w http.ResponseWriter, r *http.Request) {
	shop := domain.ShopFromContext(r.Context())

	var body struct {
		EnabledCollections []string `json:"enabledCollections"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateEnabledCollections(r.Context(), shop, body.EnabledCollections)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"enabledCollections": settings.EnabledCollections})
}
