package application

import (
	"context"
	"fmt"

	"expander-core-shopify-layer/internal/domain"
	"expander-core-shopify-layer/internal/ports"

	"github.com/rs/zerolog"
)

// ConfigService resolves the public configuration served to the
// storefront widget, merging shop settings, the shop's localization
// document, and the static translation bundle. Its output is fully
// defaulted: no field is ever absent even when the stored documents are
// sparse.
type ConfigService struct {
	shopRepo         ports.ShopRepository
	localizationRepo ports.LocalizationRepository
	cache            ports.ConfigCache
	logger           zerolog.Logger
}

// NewConfigService creates a new config resolver
func NewConfigService(
	shopRepo ports.ShopRepository,
	localizationRepo ports.LocalizationRepository,
	cache ports.ConfigCache,
	logger zerolog.Logger,
) *ConfigService {
	return &ConfigService{
		shopRepo:         shopRepo,
		localizationRepo: localizationRepo,
		cache:            cache,
		logger:           logger,
	}
}

// Resolve returns the public configuration for a shop and requested
// locale. Missing or inactive shops yield a NotFoundError; missing
// translations never error, they degrade through the fallback chain.
func (s *ConfigService) Resolve(ctx context.Context, shopDomain, requestedLocale string) (*domain.PublicConfig, error) {
	cacheLocale := requestedLocale
	if cacheLocale == "" {
		cacheLocale = "default"
	}
	if cached, err := s.cache.Get(ctx, shopDomain, cacheLocale); err != nil {
		s.logger.Warn().Err(err).Str("shop", shopDomain).Msg("Config cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	shop, err := s.shopRepo.GetByDomain(ctx, shopDomain)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config: %w", err)
	}
	if shop == nil || !shop.IsActive {
		return nil, domain.NewNotFoundError("shop", shopDomain)
	}

	localization, err := s.localizationRepo.GetByShopID(ctx, shop.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config: %w", err)
	}

	defaultLocale := "en"
	supportedLocales := []string{"en"}
	if localization != nil {
		if localization.DefaultLocale != "" {
			defaultLocale = localization.DefaultLocale
		}
		if len(localization.SupportedLocales) > 0 {
			supportedLocales = localization.SupportedLocales
		}
	}

	locale := requestedLocale
	if locale == "" {
		locale = defaultLocale
	}

	translations := map[string]string{}
	if localization != nil {
		translations = localization.TranslationsFor(locale)
	}
	if len(translations) == 0 {
		// Static bundle: requested locale, then English
		translations = DefaultTranslations(locale)
	}

	settings := settingsWithDefaults(shop.Settings)

	config := &domain.PublicConfig{
		ButtonText:         settings.ButtonText,
		CollapseButtonText: settings.CollapseButtonText,
		DisplayImages:      settings.DisplayImages,
		ShowPrice:          settings.ShowPrice,
		ShowInventory:      settings.ShowInventory,
		CardStyle:          settings.CardStyle,
		SelectionMode:      settings.SelectionMode,
		EnabledCollections: settings.EnabledCollections,
		EnabledProducts:    settings.EnabledProducts,
		EnabledTags:        settings.EnabledTags,
		OptionSettings:     settings.OptionSettings,
		ViewportSettings:   settings.ViewportSettings,
		Styles:             settings.Styles,
		Translations:       translations,
		Localization: domain.LocalizationSummary{
			DefaultLocale:    defaultLocale,
			SupportedLocales: supportedLocales,
		},
	}

	if err := s.cache.Set(ctx, shopDomain, cacheLocale, config); err != nil {
		s.logger.Warn().Err(err).Str("shop", shopDomain).Msg("Config cache write failed")
	}

	return config, nil
}

// settingsWithDefaults fills every zero-valued field of a sparse settings
// document so the resolved config is always complete.
func settingsWithDefaults(s domain.Settings) domain.Settings {
	defaults := domain.DefaultSettings()

	if s.ButtonText == "" {
		s.ButtonText = defaults.ButtonText
	}
	if s.CollapseButtonText == "" {
		s.CollapseButtonText = defaults.CollapseButtonText
	}
	if s.CardStyle == "" {
		s.CardStyle = defaults.CardStyle
	}
	if s.SelectionMode == "" {
		s.SelectionMode = defaults.SelectionMode
	}
	if s.EnabledCollections == nil {
		s.EnabledCollections = []string{}
	}
	if s.EnabledProducts == nil {
		s.EnabledProducts = []string{}
	}
	if s.EnabledTags == nil {
		s.EnabledTags = []string{}
	}

	if s.OptionSettings.DefaultDisplayMode == "" {
		s.OptionSettings.DefaultDisplayMode = defaults.OptionSettings.DefaultDisplayMode
	}
	if s.OptionSettings.DefaultPrimaryOption == "" {
		s.OptionSettings.DefaultPrimaryOption = defaults.OptionSettings.DefaultPrimaryOption
	}
	if s.OptionSettings.ProductSpecificOptions == nil {
		s.OptionSettings.ProductSpecificOptions = map[string]domain.OptionOverride{}
	}
	if s.OptionSettings.CollectionSpecificOptions == nil {
		s.OptionSettings.CollectionSpecificOptions = map[string]domain.OptionOverride{}
	}

	if s.ViewportSettings.MobileDisplayMode == "" {
		s.ViewportSettings = defaults.ViewportSettings
	}
	if s.ViewportSettings.MobileColumnsCount == 0 {
		s.ViewportSettings.MobileColumnsCount = defaults.ViewportSettings.MobileColumnsCount
	}
	if s.ViewportSettings.TabletColumnsCount == 0 {
		s.ViewportSettings.TabletColumnsCount = defaults.ViewportSettings.TabletColumnsCount
	}
	if s.ViewportSettings.DesktopColumnsCount == 0 {
		s.ViewportSettings.DesktopColumnsCount = defaults.ViewportSettings.DesktopColumnsCount
	}

	if s.Styles.AddToCartButtonColor == "" {
		s.Styles = defaults.Styles
	}

	return s
}
