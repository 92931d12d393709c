package application

import (
	"context"
	"fmt"

	"expander-core-shopify-layer/internal/domain"
	"expander-core-shopify-layer/internal/ports"

	"github.com/rs/zerolog"
)

// SettingsService owns the per-shop settings document: reads, validated
// partial updates, and the cache invalidation that follows every write.
type SettingsService struct {
	shopRepo ports.ShopRepository
	cache    ports.ConfigCache
	logger   zerolog.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(
	shopRepo ports.ShopRepository,
	cache ports.ConfigCache,
	logger zerolog.Logger,
) *SettingsService {
	return &SettingsService{
		shopRepo: shopRepo,
		cache:    cache,
		logger:   logger,
	}
}

// Get returns the shop's settings document.
func (s *SettingsService) Get(ctx context.Context, shop *domain.Shop) domain.Settings {
	return shop.Settings
}

// Update applies a partial update to the shop's settings. The merge is
// shallow at the top level; a nested object supplied in the patch
// replaces the stored one wholesale. Validation happens before anything
// is written, so a rejected patch leaves the document untouched.
func (s *SettingsService) Update(ctx context.Context, shop *domain.Shop, patch domain.SettingsPatch) (domain.Settings, error) {
	if err := patch.Validate(); err != nil {
		s.logger.Warn().Err(err).Str("shop", shop.Domain).Msg("Rejected settings update")
		return domain.Settings{}, err
	}

	next := patch.Apply(shop.Settings)

	if err := s.shopRepo.UpdateSettings(ctx, shop.Domain, next); err != nil {
		return domain.Settings{}, fmt.Errorf("failed to update settings: %w", err)
	}
	shop.Settings = next

	s.invalidate(ctx, shop.Domain)

	s.logger.Info().Str("shop", shop.Domain).Msg("Updated shop settings")
	return next, nil
}

// UpdateEnabledCollections replaces the enabled-collections membership list.
func (s *SettingsService) UpdateEnabledCollections(ctx context.Context, shop *domain.Shop, collectionIDs []string) (domain.Settings, error) {
	if collectionIDs == nil {
		collectionIDs = []string{}
	}
	return s.Update(ctx, shop, domain.SettingsPatch{EnabledCollections: &collectionIDs})
}

func (s *SettingsService) invalidate(ctx context.Context, shopDomain string) {
	if err := s.cache.Invalidate(ctx, shopDomain); err != nil {
		s.logger.Warn().Err(err).Str("shop", shopDomain).Msg("Failed to invalidate config cache")
	}
}
