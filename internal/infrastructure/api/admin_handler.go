package api

import (
	"net/http"

	"expander-core-shopify-layer/internal/domain"
	"expander-core-shopify-layer/internal/ports"

	"github.com/rs/zerolog"
)

// AdminHandler serves script-tag management and ops dashboard reads.
type AdminHandler struct {
	shopRepo ports.ShopRepository
	commerce ports.CommerceClient
	logger   zerolog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(shopRepo ports.ShopRepository, commerce ports.CommerceClient, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		shopRepo: shopRepo,
		commerce: commerce,
		logger:   logger,
	}
}

// GetShop handles GET /api/shop — basic shop info for the console
func (h *AdminHandler) GetShop(w http.ResponseWriter, r *http.Request) {
	shop := domain.ShopFromContext(r.Context())
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"shop": map[string]interface{}{
			"domain":      shop.Domain,
			"isActive":    shop.IsActive,
			"installedAt": shop.InstalledAt,
			"updatedAt":   shop.UpdatedAt,
		},
	})
}

// GetStatus handles GET /api/admin/status — reports script-tag installation
func (h *AdminHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	shop := domain.ShopFromContext(r.Context())

	status, err := h.commerce.ScriptTagStatus(r.Context(), shop.Domain, shop.AccessToken)
	if err != nil {
		h.logger.Error().Err(err).Str("shop", shop.Domain).Msg("Failed to check script tag status")
		respondError(w, http.StatusBadGateway, "failed to check script tag status")
		return
	}

	respondJSON(w, http.StatusOK, status)
}

// InstallScript handles POST /api/admin/install-script
func (h *AdminHandler) InstallScript(w http.ResponseWriter, r *http.Request) {
	shop := domain.ShopFromContext(r.Context())

	status, err := h.commerce.EnsureScriptTag(r.Context(), shop.Domain, shop.AccessToken)
	if err != nil {
		h.logger.Error().Err(err).Str("shop", shop.Domain).Msg("Failed to install script tag")
		respondError(w, http.StatusBadGateway, "failed to install script tag")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "scriptTagId": status.ID})
}

// UninstallScript handles DELETE /api/admin/uninstall-script
func (h *AdminHandler) UninstallScript(w http.ResponseWriter, r *http.Request) {
	shop := domain.ShopFromContext(r.Context())

	if err := h.commerce.RemoveScriptTag(r.Context(), shop.Domain, shop.AccessToken); err != nil {
		h.logger.Error().Err(err).Str("shop", shop.Domain).Msg("Failed to remove script tag")
		respondError(w, http.StatusBadGateway, "failed to remove script tag")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// ListShops handles GET /api/admin/shops — per-shop summary for operations
func (h *AdminHandler) ListShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.shopRepo.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list shops")
		respondWithError(w, err)
		return
	}

	summaries := make([]map[string]interface{}, 0, len(shops))
	for _, shop := range shops {
		summaries = append(summaries, map[string]interface{}{
			"domain":        shop.Domain,
			"isActive":      shop.IsActive,
			"selectionMode": shop.Settings.SelectionMode,
			"cardStyle":     shop.Settings.CardStyle,
			"installedAt":   shop.InstalledAt,
			"updatedAt":     shop.UpdatedAt,
		})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"shops": summaries})
}

// GetOverview handles GET /api/admin/overview — aggregate counts
func (h *AdminHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	shops, err := h.shopRepo.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list shops for overview")
		respondWithError(w, err)
		return
	}

	active := 0
	selectionModes := map[string]int{}
	for _, shop := range shops {
		if shop.IsActive {
			active++
		}
		mode := shop.Settings.SelectionMode
		if mode == "" {
			mode = domain.SelectionModeAll
		}
		selectionModes[mode]++
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"totalShops":     len(shops),
		"activeShops":    active,
		"selectionModes": selectionModes,
	})
}
