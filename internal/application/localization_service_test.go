package application

import (
	"context"
	"sync"
	"testing"

	"expander-core-shopify-layer/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrInitSeedsEnglishDefaults(t *testing.T) {
	repo := newMockLocalizationRepo()
	svc := NewLocalizationService(repo, newMockConfigCache(), zerolog.Nop())

	loc, err := svc.GetOrInit(context.Background(), "shop-1", "test.myshopify.com")
	require.NoError(t, err)

	assert.Equal(t, "en", loc.DefaultLocale)
	assert.Equal(t, []string{"en"}, loc.SupportedLocales)
	assert.Equal(t, "Add to Cart", loc.Translations["en"]["button.add_to_cart"])
}

func TestGetOrInitIsIdempotentUnderConcurrency(t *testing.T) {
	repo := newMockLocalizationRepo()
	svc := NewLocalizationService(repo, newMockConfigCache(), zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.GetOrInit(context.Background(), "shop-1", "test.myshopify.com")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, repo.creates, "exactly one document must be created")
}

func TestSetTranslationsMergesPerKey(t *testing.T) {
	repo := newMockLocalizationRepo()
	cache := newMockConfigCache()
	svc := NewLocalizationService(repo, cache, zerolog.Nop())

	loc, err := svc.GetOrInit(context.Background(), "shop-1", "test.myshopify.com")
	require.NoError(t, err)

	require.NoError(t, svc.SetTranslations(context.Background(), loc, "fr", map[string]string{"a": "x"}))
	require.NoError(t, svc.SetTranslations(context.Background(), loc, "fr", map[string]string{"b": "y"}))

	stored, err := repo.GetByShopID(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.Equal(t, "x", stored.Translations["fr"]["a"])
	assert.Equal(t, "y", stored.Translations["fr"]["b"])
	assert.Contains(t, stored.SupportedLocales, "fr")
	assert.Len(t, cache.invalidations, 2)
}

func TestSetDefaultLocaleEnsuresMembership(t *testing.T) {
	repo := newMockLocalizationRepo()
	svc := NewLocalizationService(repo, newMockConfigCache(), zerolog.Nop())

	loc, err := svc.GetOrInit(context.Background(), "shop-1", "test.myshopify.com")
	require.NoError(t, err)

	require.NoError(t, svc.SetDefaultLocale(context.Background(), loc, "de"))

	stored, err := repo.GetByShopID(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.Equal(t, "de", stored.DefaultLocale)
	assert.Equal(t, []string{"en", "de"}, stored.SupportedLocales)
}

func TestAddSupportedLocaleSeedsBundleAndIsIdempotent(t *testing.T) {
	repo := newMockLocalizationRepo()
	svc := NewLocalizationService(repo, newMockConfigCache(), zerolog.Nop())

	loc, err := svc.GetOrInit(context.Background(), "shop-1", "test.myshopify.com")
	require.NoError(t, err)

	require.NoError(t, svc.AddSupportedLocale(context.Background(), loc, "es"))
	require.NoError(t, svc.AddSupportedLocale(context.Background(), loc, "es"))

	stored, err := repo.GetByShopID(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "es"}, stored.SupportedLocales)
	assert.Equal(t, "Añadir al carrito", stored.Translations["es"]["button.add_to_cart"])
}

func TestRemoveSupportedLocaleRejectsDefault(t *testing.T) {
	repo := newMockLocalizationRepo()
	svc := NewLocalizationService(repo, newMockConfigCache(), zerolog.Nop())

	loc, err := svc.GetOrInit(context.Background(), "shop-1", "test.myshopify.com")
	require.NoError(t, err)
	require.NoError(t, svc.AddSupportedLocale(context.Background(), loc, "fr"))

	err = svc.RemoveSupportedLocale(context.Background(), loc, "en")

	var invalidOpErr *domain.InvalidOperationError
	require.ErrorAs(t, err, &invalidOpErr)

	stored, getErr := repo.GetByShopID(context.Background(), "shop-1")
	require.NoError(t, getErr)
	assert.Equal(t, []string{"en", "fr"}, stored.SupportedLocales)
}

func TestRemoveSupportedLocaleDeletesTable(t *testing.T) {
	repo := newMockLocalizationRepo()
	svc := NewLocalizationService(repo, newMockConfigCache(), zerolog.Nop())

	loc, err := svc.GetOrInit(context.Background(), "shop-1", "test.myshopify.com")
	require.NoError(t, err)
	require.NoError(t, svc.AddSupportedLocale(context.Background(), loc, "fr"))

	require.NoError(t, svc.RemoveSupportedLocale(context.Background(), loc, "fr"))

	stored, err := repo.GetByShopID(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"en"}, stored.SupportedLocales)
	assert.NotContains(t, stored.Translations, "fr")
}

func TestTranslationsFallsBackToDefaultLocale(t *testing.T) {
	svc := NewLocalizationService(newMockLocalizationRepo(), newMockConfigCache(), zerolog.Nop())

	loc := &domain.Localization{
		DefaultLocale:    "en",
		SupportedLocales: []string{"en"},
		Translations: map[string]map[string]string{
			"en": {"button.add_to_cart": "Add to Cart"},
		},
	}

	table := svc.Translations(loc, "it")
	assert.Equal(t, "Add to Cart", table["button.add_to_cart"])

	loc.Translations = map[string]map[string]string{}
	assert.Empty(t, svc.Translations(loc, "it"))
}
