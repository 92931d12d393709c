package webhook_handlers

import (
	"context"
	"fmt"

	"expander-core-shopify-layer/internal/domain"
	"expander-core-shopify-layer/internal/ports"

	"github.com/rs/zerolog"
)

// AppUninstalledHandler handles app uninstalled webhook events
type AppUninstalledHandler struct {
	logger   zerolog.Logger
	shopRepo ports.ShopRepository
	cache    ports.ConfigCache
}

// NewAppUninstalledHandler creates a new app uninstalled webhook handler
func NewAppUninstalledHandler(
	logger zerolog.Logger,
	shopRepo ports.ShopRepository,
	cache ports.ConfigCache,
) *AppUninstalledHandler {
	return &AppUninstalledHandler{
		logger:   logger,
		shopRepo: shopRepo,
		cache:    cache,
	}
}

// CanHandle returns true if this handler can process the given topic
func (h *AppUninstalledHandler) CanHandle(topic string) bool {
	return topic == "app/uninstalled"
}

// Handle deactivates the shop. The document is kept so a reinstall
// restores the merchant's configuration.
func (h *AppUninstalledHandler) Handle(ctx context.Context, event *domain.WebhookEvent) error {
	if event.Shop == "" {
		return fmt.Errorf("app uninstalled webhook missing shop domain")
	}

	if err := h.shopRepo.Deactivate(ctx, event.Shop); err != nil {
		return fmt.Errorf("failed to deactivate shop %s: %w", event.Shop, err)
	}

	if err := h.cache.Invalidate(ctx, event.Shop); err != nil {
		h.logger.Warn().Err(err).Str("shop", event.Shop).Msg("Failed to invalidate config cache after uninstall")
	}

	h.logger.Info().Str("shop", event.Shop).Msg("Deactivated shop after app uninstall")
	return nil
}
