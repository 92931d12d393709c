package entity

import (
	"time"

	"expander-core-shopify-layer/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoLocalizationDoc represents a shop's localization state in MongoDB
type MongoLocalizationDoc struct {
	ID               primitive.ObjectID           `bson:"_id,omitempty"`
	ShopID           string                       `bson:"shopId"`
	ShopDomain       string                       `bson:"shopDomain"`
	DefaultLocale    string                       `bson:"defaultLocale"`
	SupportedLocales []string                     `bson:"supportedLocales"`
	Translations     map[string]map[string]string `bson:"translations"`
	CreatedAt        time.Time                    `bson:"createdAt"`
	UpdatedAt        time.Time                    `bson:"updatedAt"`
}

// ToDomain converts the MongoDB document to a domain entity
func (d *MongoLocalizationDoc) ToDomain() *domain.Localization {
	translations := d.Translations
	if translations == nil {
		translations = map[string]map[string]string{}
	}
	return &domain.Localization{
		ID:               d.ID.Hex(),
		ShopID:           d.ShopID,
		ShopDomain:       d.ShopDomain,
		DefaultLocale:    d.DefaultLocale,
		SupportedLocales: d.SupportedLocales,
		Translations:     translations,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// MongoLocalizationDocFromDomain converts a domain entity to a MongoDB document
func MongoLocalizationDocFromDomain(localization *domain.Localization) *MongoLocalizationDoc {
	doc := &MongoLocalizationDoc{
		ShopID:           localization.ShopID,
		ShopDomain:       localization.ShopDomain,
		DefaultLocale:    localization.DefaultLocale,
		SupportedLocales: localization.SupportedLocales,
		Translations:     localization.Translations,
		CreatedAt:        localization.CreatedAt,
		UpdatedAt:        localization.UpdatedAt,
	}

	if localization.ID != "" {
		if objID, err := primitive.ObjectIDFromHex(localization.ID); err == nil {
			doc.ID = objID
		}
	}

	return doc
}
