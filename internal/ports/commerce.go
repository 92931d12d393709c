package ports

import "context"

// Collection is a storefront collection as listed for the settings console.
type Collection struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
}

// Product is a storefront product as listed for the settings console.
type Product struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Handle string   `json:"handle"`
	Tags   []string `json:"tags"`
}

// ScriptTagStatus reports whether the storefront script is installed.
type ScriptTagStatus struct {
	Installed bool   `json:"scriptTagInstalled"`
	ID        int64  `json:"scriptTagId,omitempty"`
	Src       string `json:"src,omitempty"`
}

// CommerceClient is the commerce platform collaborator consumed by the
// surrounding admin routes. The core configuration/localization services
// never call it.
type CommerceClient interface {
	ListCollections(ctx context.Context, shopDomain, accessToken string) ([]Collection, error)
	ListProducts(ctx context.Context, shopDomain, accessToken string) ([]Product, error)

	// ScriptTagStatus reports whether a script tag pointing at the app's
	// storefront asset exists on the shop.
	ScriptTagStatus(ctx context.Context, shopDomain, accessToken string) (*ScriptTagStatus, error)

	// EnsureScriptTag installs the storefront script, updating an existing
	// tag for the same asset instead of duplicating it.
	EnsureScriptTag(ctx context.Context, shopDomain, accessToken string) (*ScriptTagStatus, error)

	// RemoveScriptTag deletes the app's script tag if present.
	RemoveScriptTag(ctx context.Context, shopDomain, accessToken string) error
}
