package ports

import (
	"context"

	"expander-core-shopify-layer/internal/domain"
)

// ConfigCache caches resolved public configurations per shop and locale.
// Implementations are best-effort: a cache miss or failure must never
// fail the request, callers fall through to the resolver.
type ConfigCache interface {
	// Get returns the cached config for a shop and locale, or
	// (nil, nil) on a miss.
	Get(ctx context.Context, shopDomain, locale string) (*domain.PublicConfig, error)

	// Set stores the resolved config for a shop and locale.
	Set(ctx context.Context, shopDomain, locale string, config *domain.PublicConfig) error

	// Invalidate drops every cached locale for the shop. Called after any
	// settings or localization write.
	Invalidate(ctx context.Context, shopDomain string) error
}
