package shopify

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"expander-core-shopify-layer/internal/ports"

	goshopify "github.com/bold-commerce/go-shopify/v4"
	"github.com/rs/zerolog"
)

type client struct {
	app       goshopify.App
	scriptSrc string
	logger    zerolog.Logger
}

// NewClient creates a commerce platform adapter. scriptSrc is the absolute
// URL of the storefront widget asset installed as a script tag.
func NewClient(apiKey, apiSecret, scriptSrc string, logger zerolog.Logger) ports.CommerceClient {
	return &client{
		app: goshopify.App{
			ApiKey:    apiKey,
			ApiSecret: apiSecret,
		},
		scriptSrc: scriptSrc,
		logger:    logger,
	}
}

// createClient is a helper to create a goshopify client
func (c *client) createClient(shopDomain string, accessToken string) (*goshopify.Client, error) {
	cl, err := goshopify.NewClient(c.app, shopDomain, accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return cl, nil
}

// ListCollections lists the shop's custom collections for the console picker
func (c *client) ListCollections(ctx context.Context, shopDomain, accessToken string) ([]ports.Collection, error) {
	cl, err := c.createClient(shopDomain, accessToken)
	if err != nil {
		return nil, err
	}

	collections, err := cl.CustomCollection.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	result := make([]ports.Collection, 0, len(collections))
	for _, collection := range collections {
		result = append(result, ports.Collection{
			ID:     strconv.FormatUint(collection.Id, 10),
			Title:  collection.Title,
			Handle: collection.Handle,
		})
	}
	return result, nil
}

// ListProducts lists the shop's products for the console picker
func (c *client) ListProducts(ctx context.Context, shopDomain, accessToken string) ([]ports.Product, error) {
	cl, err := c.createClient(shopDomain, accessToken)
	if err != nil {
		return nil, err
	}

	products, err := cl.Product.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	result := make([]ports.Product, 0, len(products))
	for _, product := range products {
		result = append(result, ports.Product{
			ID:     strconv.FormatUint(product.Id, 10),
			Title:  product.Title,
			Handle: product.Handle,
			Tags:   splitTags(product.Tags),
		})
	}
	return result, nil
}

// ScriptTagStatus reports whether the app's script tag is installed
func (c *client) ScriptTagStatus(ctx context.Context, shopDomain, accessToken string) (*ports.ScriptTagStatus, error) {
	cl, err := c.createClient(shopDomain, accessToken)
	if err != nil {
		return nil, err
	}

	tag, err := c.findAppScriptTag(ctx, cl)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return &ports.ScriptTagStatus{Installed: false}, nil
	}

	return &ports.ScriptTagStatus{Installed: true, ID: int64(tag.Id), Src: tag.Src}, nil
}

// EnsureScriptTag installs the storefront script, updating an existing tag
// for the same asset instead of creating a duplicate
func (c *client) EnsureScriptTag(ctx context.Context, shopDomain, accessToken string) (*ports.ScriptTagStatus, error) {
	cl, err := c.createClient(shopDomain, accessToken)
	if err != nil {
		return nil, err
	}

	existing, err := c.findAppScriptTag(ctx, cl)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Src = c.scriptSrc
		updated, err := cl.ScriptTag.Update(ctx, *existing)
		if err != nil {
			return nil, fmt.Errorf("failed to update script tag: %w", err)
		}
		c.logger.Info().Str("shop", shopDomain).Uint64("scriptTagId", updated.Id).Msg("Updated existing script tag")
		return &ports.ScriptTagStatus{Installed: true, ID: int64(updated.Id), Src: updated.Src}, nil
	}

	created, err := cl.ScriptTag.Create(ctx, goshopify.ScriptTag{
		Event:        "onload",
		Src:          c.scriptSrc,
		DisplayScope: "online_store",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create script tag: %w", err)
	}

	c.logger.Info().Str("shop", shopDomain).Uint64("scriptTagId", created.Id).Msg("Installed script tag")
	return &ports.ScriptTagStatus{Installed: true, ID: int64(created.Id), Src: created.Src}, nil
}

// RemoveScriptTag deletes the app's script tag if present
func (c *client) RemoveScriptTag(ctx context.Context, shopDomain, accessToken string) error {
	cl, err := c.createClient(shopDomain, accessToken)
	if err != nil {
		return err
	}

	existing, err := c.findAppScriptTag(ctx, cl)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}

	if err := cl.ScriptTag.Delete(ctx, existing.Id); err != nil {
		return fmt.Errorf("failed to delete script tag: %w", err)
	}

	c.logger.Info().Str("shop", shopDomain).Uint64("scriptTagId", existing.Id).Msg("Removed script tag")
	return nil
}

// findAppScriptTag locates the tag pointing at our storefront asset
func (c *client) findAppScriptTag(ctx context.Context, cl *goshopify.Client) (*goshopify.ScriptTag, error) {
	tags, err := cl.ScriptTag.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list script tags: %w", err)
	}

	for i := range tags {
		if strings.Contains(tags[i].Src, scriptAssetName) {
			return &tags[i], nil
		}
	}
	return nil, nil
}

// scriptAssetName identifies our asset among the shop's script tags
const scriptAssetName = "variant-expander.js"

func splitTags(tags string) []string {
	if tags == "" {
		return []string{}
	}
	parts := strings.Split(tags, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
