package domain

// LocalizationSummary is the default-locale/supported-locales pair
// included in the public configuration.
type LocalizationSummary struct {
	DefaultLocale    string   `json:"defaultLocale"`
	SupportedLocales []string `json:"supportedLocales"`
}

// PublicConfig is the fully-resolved configuration served to the
// storefront widget. Every field is defaulted; none is ever absent even
// when the underlying documents are sparse.
type PublicConfig struct {
	ButtonText         string              `json:"buttonText"`
	CollapseButtonText string              `json:"collapseButtonText"`
	DisplayImages      bool                `json:"displayImages"`
	ShowPrice          bool                `json:"showPrice"`
	ShowInventory      bool                `json:"showInventory"`
	CardStyle          string              `json:"cardStyle"`
	SelectionMode      string              `json:"selectionMode"`
	EnabledCollections []string            `json:"enabledCollections"`
	EnabledProducts    []string            `json:"enabledProducts"`
	EnabledTags        []string            `json:"enabledTags"`
	OptionSettings     OptionSettings      `json:"optionSettings"`
	ViewportSettings   ViewportSettings    `json:"viewportSettings"`
	Styles             Styles              `json:"styles"`
	Translations       map[string]string   `json:"translations"`
	Localization       LocalizationSummary `json:"localization"`
}
