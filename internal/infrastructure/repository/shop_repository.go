package repository

import (
	"context"
	"strings"
	"time"

	"expander-core-shopify-layer/internal/domain"
	"expander-core-shopify-layer/internal/infrastructure/repository/entity"
	"expander-core-shopify-layer/internal/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoShopRepository implements ShopRepository using MongoDB
type MongoShopRepository struct {
	collection *mongo.Collection
}

// NewMongoShopRepository creates a new MongoDB shop repository
func NewMongoShopRepository(db *mongo.Database) ports.ShopRepository {
	collection := db.Collection("shops")

	// Shops are keyed by domain
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "domain", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, _ = collection.Indexes().CreateOne(context.Background(), indexModel)

	return &MongoShopRepository{collection: collection}
}

// GetByDomain retrieves a shop by domain
func (r *MongoShopRepository) GetByDomain(ctx context.Context, shopDomain string) (*domain.Shop, error) {
	var doc entity.MongoShopDoc
	filter := bson.M{"domain": normalizeDomain(shopDomain)}

	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStoreUnavailableError("get shop", err)
	}

	return doc.ToDomain(), nil
}

// Save saves or updates a shop keyed by domain
func (r *MongoShopRepository) Save(ctx context.Context, shop *domain.Shop) error {
	doc := entity.MongoShopDocFromDomain(shop)
	doc.Domain = normalizeDomain(doc.Domain)
	doc.UpdatedAt = time.Now()
	if doc.InstalledAt.IsZero() {
		doc.InstalledAt = time.Now()
	}

	opts := options.Update().SetUpsert(true)
	filter := bson.M{"domain": doc.Domain}
	update := bson.M{"$set": doc}

	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return domain.NewStoreUnavailableError("save shop", err)
	}

	return nil
}

// UpdateSettings replaces the shop's settings document atomically
func (r *MongoShopRepository) UpdateSettings(ctx context.Context, shopDomain string, settings domain.Settings) error {
	filter := bson.M{"domain": normalizeDomain(shopDomain)}
	update := bson.M{"$set": bson.M{
		"settings":  entity.MongoSettingsDocFromDomain(settings),
		"updatedAt": time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return domain.NewStoreUnavailableError("update settings", err)
	}
	if result.MatchedCount == 0 {
		return domain.NewNotFoundError("shop", shopDomain)
	}

	return nil
}

// Deactivate clears the shop's active flag, keeping the document
func (r *MongoShopRepository) Deactivate(ctx context.Context, shopDomain string) error {
	filter := bson.M{"domain": normalizeDomain(shopDomain)}
	update := bson.M{"$set": bson.M{
		"isActive":  false,
		"updatedAt": time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return domain.NewStoreUnavailableError("deactivate shop", err)
	}
	if result.MatchedCount == 0 {
		return domain.NewNotFoundError("shop", shopDomain)
	}

	return nil
}

// List retrieves all shops
func (r *MongoShopRepository) List(ctx context.Context) ([]*domain.Shop, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.NewStoreUnavailableError("list shops", err)
	}
	defer cursor.Close(ctx)

	var shops []*domain.Shop
	for cursor.Next(ctx) {
		var doc entity.MongoShopDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, domain.NewStoreUnavailableError("decode shop", err)
		}
		shops = append(shops, doc.ToDomain())
	}

	if err := cursor.Err(); err != nil {
		return nil, domain.NewStoreUnavailableError("list shops", err)
	}

	return shops, nil
}

func normalizeDomain(shopDomain string) string {
	return strings.ToLower(strings.TrimSpace(shopDomain))
}
