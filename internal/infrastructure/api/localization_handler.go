package api

import (
	"encoding/json"
	"net/http"

	"expander-core-shopify-layer/internal/application"
	"expander-core-shopify-layer/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// LocalizationHandler serves the localization console endpoints. The
// static routes (supported locales, default translations) need no shop
// context; the /shop routes run behind the shop-context middleware.
type LocalizationHandler struct {
	localizationService *application.LocalizationService
	logger              zerolog.Logger
}

// NewLocalizationHandler creates a new localization handler
func NewLocalizationHandler(localizationService *application.LocalizationService, logger zerolog.Logger) *LocalizationHandler {
	return &LocalizationHandler{
		localizationService: localizationService,
		logger:              logger,
	}
}

// GetSupportedLocales handles GET /api/localization/supported-locales
func (h *LocalizationHandler) GetSupportedLocales(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{"locales": application.SupportedLocales()})
}

// GetDefaultTranslations handles GET /api/localization/default-translations/{locale}
func (h *LocalizationHandler) GetDefaultTranslations(w http.ResponseWriter, r *http.Request) {
	locale := chi.URLParam(r, "locale")
	if locale == "" {
		locale = "en"
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"translations": application.DefaultTranslations(locale)})
}

// GetShopSettings handles GET /api/localization/shop/settings
func (h *LocalizationHandler) GetShopSettings(w http.ResponseWriter, r *http.Request) {
	localization, ok := h.getOrInit(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"defaultLocale":    localization.DefaultLocale,
		"supportedLocales": localization.SupportedLocales,
	})
}

// SetDefaultLocale handles PUT /api/localization/shop/default-locale
func (h *LocalizationHandler) SetDefaultLocale(w http.ResponseWriter, r *http.Request) {
	localization, ok := h.getOrInit(w, r)
	if !ok {
		return
	}

	var body struct {
		Locale string `json:"locale"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Locale == "" {
		respondError(w, http.StatusBadRequest, "locale is required")
		return
	}

	if err := h.localizationService.SetDefaultLocale(r.Context(), localization, body.Locale); err != nil {
		respondWithError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"defaultLocale":    localization.DefaultLocale,
		"supportedLocales": localization.SupportedLocales,
	})
}

// GetTranslations handles GET /api/localization/shop/translations/{locale}
func (h *LocalizationHandler) GetTranslations(w http.ResponseWriter, r *http.Request) {
	localization, ok := h.getOrInit(w, r)
	if !ok {
		return
	}

	locale := chi.URLParam(r, "locale")
	if locale == "" {
		locale = "en"
	}

	translations := h.localizationService.Translations(localization, locale)
	if len(translations) == 0 {
		translations = application.DefaultTranslations(locale)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"translations": translations})
}

// SetTranslations handles PUT /api/localization/shop/translations/{locale}
func (h *LocalizationHandler) SetTranslations(w http.ResponseWriter, r *http.Request) {
	localization, ok := h.getOrInit(w, r)
	if !ok {
		return
	}

	locale := chi.URLParam(r, "locale")
	if locale == "" {
		respondError(w, http.StatusBadRequest, "locale is required")
		return
	}

	var body struct {
		Translations map[string]string `json:"translations"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Translations == nil {
		respondError(w, http.StatusBadRequest, "valid translations object is required")
		return
	}

	if err := h.localizationService.SetTranslations(r.Context(), localization, locale, body.Translations); err != nil {
		respondWithError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// AddSupportedLocale handles POST /api/localization/shop/supported-locales
func (h *LocalizationHandler) AddSupportedLocale(w http.ResponseWriter, r *http.Request) {
	localization, ok := h.getOrInit(w, r)
	if !ok {
		return
	}

	var body struct {
		Locale string `json:"locale"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Locale == "" {
		respondError(w, http.StatusBadRequest, "locale is required")
		return
	}

	if err := h.localizationService.AddSupportedLocale(r.Context(), localization, body.Locale); err != nil {
		respondWithError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"supportedLocales": localization.SupportedLocales})
}

// RemoveSupportedLocale handles DELETE /api/localization/shop/supported-locales/{locale}
func (h *LocalizationHandler) RemoveSupportedLocale(w http.ResponseWriter, r *http.Request) {
	localization, ok := h.getOrInit(w, r)
	if !ok {
		return
	}

	locale := chi.URLParam(r, "locale")
	if locale == "" {
		respondError(w, http.StatusBadRequest, "locale is required")
		return
	}

	if err := h.localizationService.RemoveSupportedLocale(r.Context(), localization, locale); err != nil {
		respondWithError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"supportedLocales": localization.SupportedLocales})
}

func (h *LocalizationHandler) getOrInit(w http.ResponseWriter, r *http.Request) (*domain.Localization, bool) {
	shop := domain.ShopFromContext(r.Context())
	localization, err := h.localizationService.GetOrInit(r.Context(), shop.ID, shop.Domain)
	if err != nil {
		h.logger.Error().Err(err).Str("shop", shop.Domain).Msg("Failed to load localization")
		respondWithError(w, err)
		return nil, false
	}
	return localization, true
}
