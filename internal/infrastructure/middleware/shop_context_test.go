package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"expander-core-shopify-layer/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubShopRepo struct {
	shops map[string]*domain.Shop
}

func (s *stubShopRepo) GetByDomain(ctx context.Context, shopDomain string) (*domain.Shop, error) {
	return s.shops[shopDomain], nil
}

func (s *stubShopRepo) Save(ctx context.Context, shop *domain.Shop) error { return nil }

func (s *stubShopRepo) UpdateSettings(ctx context.Context, shopDomain string, settings domain.Settings) error {
	return nil
}

func (s *stubShopRepo) Deactivate(ctx context.Context, shopDomain string) error { return nil }

func (s *stubShopRepo) List(ctx context.Context) ([]*domain.Shop, error) { return nil, nil }

func TestShopContextRejectsMissingDomain(t *testing.T) {
	repo := &stubShopRepo{shops: map[string]*domain.Shop{}}
	handler := ShopContextMiddleware(repo, zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/shop/settings", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestShopContextRejectsInactiveShop(t *testing.T) {
	repo := &stubShopRepo{shops: map[string]*domain.Shop{
		"test.myshopify.com": {Domain: "test.myshopify.com", IsActive: false},
	}}
	handler := ShopContextMiddleware(repo, zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/shop/settings", nil)
	req.Header.Set("X-Shopify-Shop-Domain", "test.myshopify.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestShopContextInjectsShopFromHeader(t *testing.T) {
	repo := &stubShopRepo{shops: map[string]*domain.Shop{
		"test.myshopify.com": {ID: "shop-1", Domain: "test.myshopify.com", IsActive: true},
	}}

	var captured *domain.Shop
	handler := ShopContextMiddleware(repo, zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = domain.ShopFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/shop/settings", nil)
	req.Header.Set("X-Shopify-Shop-Domain", "test.myshopify.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "shop-1", captured.ID)
}

func TestShopContextFallsBackToQueryParam(t *testing.T) {
	repo := &stubShopRepo{shops: map[string]*domain.Shop{
		"test.myshopify.com": {ID: "shop-1", Domain: "test.myshopify.com", IsActive: true},
	}}

	var captured *domain.Shop
	handler := ShopContextMiddleware(repo, zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = domain.ShopFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/shop/settings?shop=test.myshopify.com", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "shop-1", captured.ID)
}
