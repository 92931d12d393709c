package entity

import (
	"time"

	"expander-core-shopify-layer/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoShopDoc represents a shop in MongoDB
type MongoShopDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Domain      string             `bson:"domain"`
	AccessToken string             `bson:"accessToken"`
	Scope       string             `bson:"scope"`
	IsActive    bool               `bson:"isActive"`
	Settings    MongoSettingsDoc   `bson:"settings"`
	InstalledAt time.Time          `bson:"installedAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// MongoSettingsDoc represents the embedded settings document
type MongoSettingsDoc struct {
	ButtonText         string                                  `bson:"buttonText"`
	CollapseButtonText string                                  `bson:"collapseButtonText"`
	DisplayImages      bool                                    `bson:"displayImages"`
	ShowPrice          bool                                    `bson:"showPrice"`
	ShowInventory      bool                                    `bson:"showInventory"`
	CardStyle          string                                  `bson:"cardStyle"`
	SelectionMode      string                                  `bson:"selectionMode"`
	EnabledCollections []string                                `bson:"enabledCollections"`
	EnabledProducts    []string                                `bson:"enabledProducts"`
	EnabledTags        []string                                `bson:"enabledTags"`
	OptionSettings     MongoOptionSettingsDoc                  `bson:"optionSettings"`
	ViewportSettings   MongoViewportSettingsDoc                `bson:"viewportSettings"`
	Styles             MongoStylesDoc                          `bson:"styles"`
}

// MongoOptionSettingsDoc represents the option settings sub-document
type MongoOptionSettingsDoc struct {
	DefaultDisplayMode        string                           `bson:"defaultDisplayMode"`
	DefaultPrimaryOption      string                           `bson:"defaultPrimaryOption"`
	ProductSpecificOptions    map[string]domain.OptionOverride `bson:"productSpecificOptions"`
	CollectionSpecificOptions map[string]domain.OptionOverride `bson:"collectionSpecificOptions"`
}

// MongoViewportSettingsDoc represents the viewport settings sub-document
type MongoViewportSettingsDoc struct {
	EnableOnMobile      bool   `bson:"enableOnMobile"`
	EnableOnTablet      bool   `bson:"enableOnTablet"`
	EnableOnDesktop     bool   `bson:"enableOnDesktop"`
	MobileDisplayMode   string `bson:"mobileDisplayMode"`
	TabletDisplayMode   string `bson:"tabletDisplayMode"`
	MobileColumnsCount  int    `bson:"mobileColumnsCount"`
	TabletColumnsCount  int    `bson:"tabletColumnsCount"`
	DesktopColumnsCount int    `bson:"desktopColumnsCount"`
}

// MongoStylesDoc represents the styles sub-document
type MongoStylesDoc struct {
	AddToCartButtonColor     string `bson:"addToCartButtonColor"`
	AddToCartButtonTextColor string `bson:"addToCartButtonTextColor"`
	CardWidth                string `bson:"cardWidth"`
	CardPadding              string `bson:"cardPadding"`
	BorderColor              string `bson:"borderColor"`
	BorderRadius             string `bson:"borderRadius"`
}

// ToDomain converts the MongoDB document to a domain entity
func (d *MongoShopDoc) ToDomain() *domain.Shop {
	return &domain.Shop{
		ID:          d.ID.Hex(),
		Domain:      d.Domain,
		AccessToken: d.AccessToken,
		Scope:       d.Scope,
		IsActive:    d.IsActive,
		Settings:    d.Settings.ToDomain(),
		InstalledAt: d.InstalledAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ToDomain converts the settings document to the domain type
func (d *MongoSettingsDoc) ToDomain() domain.Settings {
	return domain.Settings{
		ButtonText:         d.ButtonText,
		CollapseButtonText: d.CollapseButtonText,
		DisplayImages:      d.DisplayImages,
		ShowPrice:          d.ShowPrice,
		ShowInventory:      d.ShowInventory,
		CardStyle:          d.CardStyle,
		SelectionMode:      d.SelectionMode,
		EnabledCollections: d.EnabledCollections,
		EnabledProducts:    d.EnabledProducts,
		EnabledTags:        d.EnabledTags,
		OptionSettings: domain.OptionSettings{
			DefaultDisplayMode:        d.OptionSettings.DefaultDisplayMode,
			DefaultPrimaryOption:      d.OptionSettings.DefaultPrimaryOption,
			ProductSpecificOptions:    d.OptionSettings.ProductSpecificOptions,
			CollectionSpecificOptions: d.OptionSettings.CollectionSpecificOptions,
		},
		ViewportSettings: domain.ViewportSettings(d.ViewportSettings),
		Styles:           domain.Styles(d.Styles),
	}
}

// MongoShopDocFromDomain converts a domain entity to a MongoDB document
func MongoShopDocFromDomain(shop *domain.Shop) *MongoShopDoc {
	doc := &MongoShopDoc{
		Domain:      shop.Domain,
		AccessToken: shop.AccessToken,
		Scope:       shop.Scope,
		IsActive:    shop.IsActive,
		Settings:    MongoSettingsDocFromDomain(shop.Settings),
		InstalledAt: shop.InstalledAt,
		UpdatedAt:   shop.UpdatedAt,
	}

	if shop.ID != "" {
		if objID, err := primitive.ObjectIDFromHex(shop.ID); err == nil {
			doc.ID = objID
		}
	}

	return doc
}

// MongoSettingsDocFromDomain converts domain settings to the document form
func MongoSettingsDocFromDomain(s domain.Settings) MongoSettingsDoc {
	return MongoSettingsDoc{
		ButtonText:         s.ButtonText,
		CollapseButtonText: s.CollapseButtonText,
		DisplayImages:      s.DisplayImages,
		ShowPrice:          s.ShowPrice,
		ShowInventory:      s.ShowInventory,
		CardStyle:          s.CardStyle,
		SelectionMode:      s.SelectionMode,
		EnabledCollections: s.EnabledCollections,
		EnabledProducts:    s.EnabledProducts,
		EnabledTags:        s.EnabledTags,
		OptionSettings: MongoOptionSettingsDoc{
			DefaultDisplayMode:        s.OptionSettings.DefaultDisplayMode,
			DefaultPrimaryOption:      s.OptionSettings.DefaultPrimaryOption,
			ProductSpecificOptions:    s.OptionSettings.ProductSpecificOptions,
			CollectionSpecificOptions: s.OptionSettings.CollectionSpecificOptions,
		},
		ViewportSettings: MongoViewportSettingsDoc(s.ViewportSettings),
		Styles:           MongoStylesDoc(s.Styles),
	}
}
