package repository

import (
	"context"
	"time"

	"expander-core-shopify-layer/internal/domain"
	"expander-core-shopify-layer/internal/infrastructure/repository/entity"
	"expander-core-shopify-layer/internal/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLocalizationRepository implements LocalizationRepository using MongoDB
type MongoLocalizationRepository struct {
	collection *mongo.Collection
}

// NewMongoLocalizationRepository creates a new MongoDB localization repository
func NewMongoLocalizationRepository(db *mongo.Database) ports.LocalizationRepository {
	collection := db.Collection("localizations")

	// One localization document per shop
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "shopId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, _ = collection.Indexes().CreateOne(context.Background(), indexModel)

	return &MongoLocalizationRepository{collection: collection}
}

// GetByShopID retrieves a shop's localization document
func (r *MongoLocalizationRepository) GetByShopID(ctx context.Context, shopID string) (*domain.Localization, error) {
	var doc entity.MongoLocalizationDoc
	filter := bson.M{"shopId": shopID}

	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStoreUnavailableError("get localization", err)
	}

	return doc.ToDomain(), nil
}

// CreateIfAbsent persists the seed document unless one already exists for
// the shop, and returns the stored document. The conditional upsert keeps
// concurrent first accesses, including across processes, from creating
// duplicates.
func (r *MongoLocalizationRepository) CreateIfAbsent(ctx context.Context, seed *domain.Localization) (*domain.Localization, error) {
	now := time.Now()

	// The filter supplies shopId on insert; $setOnInsert carries the rest
	// and is a no-op when the document already exists.
	opts := options.Update().SetUpsert(true)
	filter := bson.M{"shopId": seed.ShopID}
	update := bson.M{"$setOnInsert": bson.M{
		"shopDomain":       normalizeDomain(seed.ShopDomain),
		"defaultLocale":    seed.DefaultLocale,
		"supportedLocales": seed.SupportedLocales,
		"translations":     seed.Translations,
		"createdAt":        now,
		"updatedAt":        now,
	}}

	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return nil, domain.NewStoreUnavailableError("init localization", err)
	}

	stored, err := r.GetByShopID(ctx, seed.ShopID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, domain.NewStoreUnavailableError("init localization", mongo.ErrNoDocuments)
	}

	return stored, nil
}

// Save replaces the localization document
func (r *MongoLocalizationRepository) Save(ctx context.Context, localization *domain.Localization) error {
	doc := entity.MongoLocalizationDocFromDomain(localization)
	doc.UpdatedAt = time.Now()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = doc.UpdatedAt
	}

	filter := bson.M{"shopId": localization.ShopID}
	update := bson.M{"$set": doc}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return domain.NewStoreUnavailableError("save localization", err)
	}
	if result.MatchedCount == 0 {
		return domain.NewNotFoundError("localization", localization.ShopID)
	}

	return nil
}
