package domain

import "context"

// contextKey is a type for context keys to avoid collisions
type contextKey string

const shopContextKey contextKey = "shop"

// WithShop returns a context carrying the authenticated shop record.
func WithShop(ctx context.Context, shop *Shop) context.Context {
	return context.WithValue(ctx, shopContextKey, shop)
}

// ShopFromContext extracts the authenticated shop record from the
// context, or nil when no shop context was established.
func ShopFromContext(ctx context.Context) *Shop {
	shop, _ := ctx.Value(shopContextKey).(*Shop)
	return shop
}
