package application

import (
	"context"
	"sync"

	"expander-core-shopify-layer/internal/domain"
)

// mockShopRepo is an in-memory ShopRepository keyed by domain.
type mockShopRepo struct {
	mu    sync.Mutex
	shops map[string]*domain.Shop
}

func newMockShopRepo() *mockShopRepo {
	return &mockShopRepo{shops: map[string]*domain.Shop{}}
}

func (m *mockShopRepo) GetByDomain(ctx context.Context, shopDomain string) (*domain.Shop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	shop, ok := m.shops[shopDomain]
	if !ok {
		return nil, nil
	}
	copied := *shop
	return &copied, nil
}

func (m *mockShopRepo) Save(ctx context.Context, shop *domain.Shop) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *shop
	m.shops[shop.Domain] = &copied
	return nil
}

func (m *mockShopRepo) UpdateSettings(ctx context.Context, shopDomain string, settings domain.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	shop, ok := m.shops[shopDomain]
	if !ok {
		return domain.NewNotFoundError("shop", shopDomain)
	}
	shop.Settings = settings
	return nil
}

func (m *mockShopRepo) Deactivate(ctx context.Context, shopDomain string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	shop, ok := m.shops[shopDomain]
	if !ok {
		return domain.NewNotFoundError("shop", shopDomain)
	}
	shop.IsActive = false
	return nil
}

func (m *mockShopRepo) List(ctx context.Context) ([]*domain.Shop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	shops := make([]*domain.Shop, 0, len(m.shops))
	for _, shop := range m.shops {
		copied := *shop
		shops = append(shops, &copied)
	}
	return shops, nil
}

// mockLocalizationRepo is an in-memory LocalizationRepository keyed by
// shop id, with create-if-absent semantics matching the store's
// conditional upsert.
type mockLocalizationRepo struct {
	mu      sync.Mutex
	docs    map[string]*domain.Localization
	creates int
}

func newMockLocalizationRepo() *mockLocalizationRepo {
	return &mockLocalizationRepo{docs: map[string]*domain.Localization{}}
}

func (m *mockLocalizationRepo) GetByShopID(ctx context.Context, shopID string) (*domain.Localization, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[shopID]
	if !ok {
		return nil, nil
	}
	return cloneLocalization(doc), nil
}

func (m *mockLocalizationRepo) CreateIfAbsent(ctx context.Context, seed *domain.Localization) (*domain.Localization, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.docs[seed.ShopID]; ok {
		return cloneLocalization(existing), nil
	}
	m.creates++
	m.docs[seed.ShopID] = cloneLocalization(seed)
	return cloneLocalization(seed), nil
}

func (m *mockLocalizationRepo) Save(ctx context.Context, localization *domain.Localization) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[localization.ShopID]; !ok {
		return domain.NewNotFoundError("localization", localization.ShopID)
	}
	m.docs[localization.ShopID] = cloneLocalization(localization)
	return nil
}

func cloneLocalization(doc *domain.Localization) *domain.Localization {
	copied := *doc
	copied.SupportedLocales = append([]string{}, doc.SupportedLocales...)
	copied.Translations = map[string]map[string]string{}
	for locale, table := range doc.Translations {
		copiedTable := make(map[string]string, len(table))
		for key, value := range table {
			copiedTable[key] = value
		}
		copied.Translations[locale] = copiedTable
	}
	return &copied
}

// mockConfigCache records cached configs and invalidations.
type mockConfigCache struct {
	mu            sync.Mutex
	entries       map[string]map[string]*domain.PublicConfig
	invalidations []string
}

func newMockConfigCache() *mockConfigCache {
	return &mockConfigCache{entries: map[string]map[string]*domain.PublicConfig{}}
}

func (m *mockConfigCache) Get(ctx context.Context, shopDomain, locale string) (*domain.PublicConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if locales, ok := m.entries[shopDomain]; ok {
		return locales[locale], nil
	}
	return nil, nil
}

func (m *mockConfigCache) Set(ctx context.Context, shopDomain, locale string, config *domain.PublicConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[shopDomain]; !ok {
		m.entries[shopDomain] = map[string]*domain.PublicConfig{}
	}
	m.entries[shopDomain][locale] = config
	return nil
}

func (m *mockConfigCache) Invalidate(ctx context.Context, shopDomain string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, shopDomain)
	m.invalidations = append(m.invalidations, shopDomain)
	return nil
}
