package application

import (
	"context"
	"fmt"

	"expander-core-shopify-layer/internal/domain"
	"expander-core-shopify-layer/internal/ports"

	"github.com/rs/zerolog"
)

// LocalizationService owns the per-shop localization document: lazy
// initialization, translation merges, and the supported-locale set.
type LocalizationService struct {
	localizationRepo ports.LocalizationRepository
	cache            ports.ConfigCache
	logger           zerolog.Logger
}

// NewLocalizationService creates a new localization service
func NewLocalizationService(
	localizationRepo ports.LocalizationRepository,
	cache ports.ConfigCache,
	logger zerolog.Logger,
) *LocalizationService {
	return &LocalizationService{
		localizationRepo: localizationRepo,
		cache:            cache,
		logger:           logger,
	}
}

// GetOrInit returns the shop's localization document, creating one seeded
// with locale "en" and the bundled English translations on first access.
// The create is a conditional write, so concurrent first accesses yield a
// single document.
func (s *LocalizationService) GetOrInit(ctx context.Context, shopID, shopDomain string) (*domain.Localization, error) {
	existing, err := s.localizationRepo.GetByShopID(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to get localization: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	seed := &domain.Localization{
		ShopID:           shopID,
		ShopDomain:       shopDomain,
		DefaultLocale:    "en",
		SupportedLocales: []string{"en"},
		Translations: map[string]map[string]string{
			"en": DefaultTranslations("en"),
		},
	}

	created, err := s.localizationRepo.CreateIfAbsent(ctx, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize localization: %w", err)
	}

	s.logger.Info().Str("shop", shopDomain).Msg("Initialized localization document")
	return created, nil
}

// Translations returns the table for locale, falling back to the
// document's default locale, then to an empty map.
func (s *LocalizationService) Translations(localization *domain.Localization, locale string) map[string]string {
	return localization.TranslationsFor(locale)
}

// SetTranslations merges entries key-by-key into the locale's table and
// adds the locale to the supported set if absent. Unlike settings
// updates, this merge is per-key: keys missing from entries keep their
// stored values.
func (s *LocalizationService) SetTranslations(ctx context.Context, localization *domain.Localization, locale string, entries map[string]string) error {
	if locale == "" {
		return domain.NewInvalidOperationError("locale is required")
	}

	localization.MergeTranslations(locale, entries)

	if err := s.localizationRepo.Save(ctx, localization); err != nil {
		return fmt.Errorf("failed to save translations: %w", err)
	}

	s.invalidate(ctx, localization.ShopDomain)
	s.logger.Info().Str("shop", localization.ShopDomain).Str("locale", locale).Int("keys", len(entries)).Msg("Updated translations")
	return nil
}

// SetDefaultLocale sets the document's default locale, ensuring it is a
// member of the supported set.
func (s *LocalizationService) SetDefaultLocale(ctx context.Context, localization *domain.Localization, locale string) error {
	if locale == "" {
		return domain.NewInvalidOperationError("locale is required")
	}

	localization.DefaultLocale = locale
	if !localization.Supports(locale) {
		localization.SupportedLocales = append(localization.SupportedLocales, locale)
	}

	if err := s.localizationRepo.Save(ctx, localization); err != nil {
		return fmt.Errorf("failed to save default locale: %w", err)
	}

	s.invalidate(ctx, localization.ShopDomain)
	s.logger.Info().Str("shop", localization.ShopDomain).Str("locale", locale).Msg("Changed default locale")
	return nil
}

// AddSupportedLocale adds a locale to the supported set. Adding an
// already-supported locale is a no-op. New locales are seeded with the
// bundled translations when the bundle ships that locale.
func (s *LocalizationService) AddSupportedLocale(ctx context.Context, localization *domain.Localization, locale string) error {
	if locale == "" {
		return domain.NewInvalidOperationError("locale is required")
	}
	if localization.Supports(locale) {
		return nil
	}

	localization.SupportedLocales = append(localization.SupportedLocales, locale)
	if BundleHasLocale(locale) {
		localization.MergeTranslations(locale, DefaultTranslations(locale))
	}

	if err := s.localizationRepo.Save(ctx, localization); err != nil {
		return fmt.Errorf("failed to add supported locale: %w", err)
	}

	s.invalidate(ctx, localization.ShopDomain)
	s.logger.Info().Str("shop", localization.ShopDomain).Str("locale", locale).Msg("Added supported locale")
	return nil
}

// RemoveSupportedLocale removes a locale and its translation table. The
// current default locale cannot be removed; callers must change the
// default first.
func (s *LocalizationService) RemoveSupportedLocale(ctx context.Context, localization *domain.Localization, locale string) error {
	if locale == "" {
		return domain.NewInvalidOperationError("locale is required")
	}
	if localization.DefaultLocale == locale {
		return domain.NewInvalidOperationError("cannot remove default locale; set a different default locale first")
	}

	kept := make([]string, 0, len(localization.SupportedLocales))
	for _, code := range localization.SupportedLocales {
		if code != locale {
			kept = append(kept, code)
		}
	}
	localization.SupportedLocales = kept
	delete(localization.Translations, locale)

	if err := s.localizationRepo.Save(ctx, localization); err != nil {
		return fmt.Errorf("failed to remove supported locale: %w", err)
	}

	s.invalidate(ctx, localization.ShopDomain)
	s.logger.Info().Str("shop", localization.ShopDomain).Str("locale", locale).Msg("Removed supported locale")
	return nil
}

func (s *LocalizationService) invalidate(ctx context.Context, shopDomain string) {
	if err := s.cache.Invalidate(ctx, shopDomain); err != nil {
		s.logger.Warn().Err(err).Str("shop", shopDomain).Msg("Failed to invalidate config cache")
	}
}
