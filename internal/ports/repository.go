package ports

import (
	"context"

	"expander-core-shopify-layer/internal/domain"
)

// ShopRepository defines the interface for shop persistence.
type ShopRepository interface {
	// GetByDomain retrieves a shop by domain. Returns (nil, nil) when no
	// shop exists for the domain.
	GetByDomain(ctx context.Context, shopDomain string) (*domain.Shop, error)

	// Save upserts a shop keyed by domain.
	Save(ctx context.Context, shop *domain.Shop) error

	// UpdateSettings replaces the shop's settings document atomically and
	// stamps the updated timestamp.
	UpdateSettings(ctx context.Context, shopDomain string, settings domain.Settings) error

	// Deactivate clears the shop's active flag. The document is kept.
	Deactivate(ctx context.Context, shopDomain string) error

	// List retrieves all shops.
	List(ctx context.Context) ([]*domain.Shop, error)
}

// LocalizationRepository defines the interface for localization persistence.
type LocalizationRepository interface {
	// GetByShopID retrieves a shop's localization document. Returns
	// (nil, nil) when none exists.
	GetByShopID(ctx context.Context, shopID string) (*domain.Localization, error)

	// CreateIfAbsent persists seed for the shop unless a document already
	// exists, and returns the stored document either way. The write is a
	// conditional upsert so concurrent first accesses across processes
	// cannot create duplicates.
	CreateIfAbsent(ctx context.Context, seed *domain.Localization) (*domain.Localization, error)

	// Save replaces the localization document and stamps the updated
	// timestamp.
	Save(ctx context.Context, localization *domain.Localization) error
}
