package domain

import "time"

// Card styles for the variant expander cards rendered on collection pages.
const (
	CardStyleCompact       = "compact"
	CardStyleStandard      = "standard"
	CardStyleDetailed      = "detailed"
	CardStyleMatchOriginal = "match-original"
)

// Selection modes controlling which products/collections activate the widget.
const (
	SelectionModeAll                 = "all"
	SelectionModeSpecificCollections = "specific-collections"
	SelectionModeSpecificProducts    = "specific-products"
	SelectionModeTags                = "tags"
)

// Variant display modes (global default and per-entity overrides).
const (
	DisplayModeAllVariants    = "all-variants"
	DisplayModePrimaryOption  = "primary-option"
	DisplayModeGroupedOptions = "grouped-options"
)

// Mobile display modes.
const (
	MobileDisplayHorizontalScroll = "horizontal-scroll"
	MobileDisplayDropdown         = "dropdown"
	MobileDisplayModal            = "modal"
	MobileDisplayGrid             = "grid"
)

// Tablet display modes.
const (
	TabletDisplayGrid             = "grid"
	TabletDisplayHorizontalScroll = "horizontal-scroll"
)

// CardStyles lists the allowed cardStyle values.
var CardStyles = []string{CardStyleCompact, CardStyleStandard, CardStyleDetailed, CardStyleMatchOriginal}

// SelectionModes lists the allowed selectionMode values.
var SelectionModes = []string{SelectionModeAll, SelectionModeSpecificCollections, SelectionModeSpecificProducts, SelectionModeTags}

// DisplayModes lists the allowed variant display modes.
var DisplayModes = []string{DisplayModeAllVariants, DisplayModePrimaryOption, DisplayModeGroupedOptions}

// MobileDisplayModes lists the allowed mobile display modes.
var MobileDisplayModes = []string{MobileDisplayHorizontalScroll, MobileDisplayDropdown, MobileDisplayModal, MobileDisplayGrid}

// TabletDisplayModes lists the allowed tablet display modes.
var TabletDisplayModes = []string{TabletDisplayGrid, TabletDisplayHorizontalScroll}

// Shop represents one onboarded merchant store, identified by its domain.
// Shops are never hard-deleted; uninstalling flips IsActive.
type Shop struct {
	ID          string    `json:"id"`
	Domain      string    `json:"domain"`
	AccessToken string    `json:"-"`
	Scope       string    `json:"scope,omitempty"`
	IsActive    bool      `json:"is_active"`
	Settings    Settings  `json:"settings"`
	InstalledAt time.Time `json:"installed_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Settings is the per-shop configuration document controlling widget
// behavior and appearance.
type Settings struct {
	ButtonText         string           `json:"buttonText"`
	CollapseButtonText string           `json:"collapseButtonText"`
	DisplayImages      bool             `json:"displayImages"`
	ShowPrice          bool             `json:"showPrice"`
	ShowInventory      bool             `json:"showInventory"`
	CardStyle          string           `json:"cardStyle"`
	SelectionMode      string           `json:"selectionMode"`
	EnabledCollections []string         `json:"enabledCollections"`
	EnabledProducts    []string         `json:"enabledProducts"`
	EnabledTags        []string         `json:"enabledTags"`
	OptionSettings     OptionSettings   `json:"optionSettings"`
	ViewportSettings   ViewportSettings `json:"viewportSettings"`
	Styles             Styles           `json:"styles"`
}

// OptionOverride is a per-product or per-collection exception to the
// global variant display mode.
type OptionOverride struct {
	DisplayMode   string `json:"displayMode" bson:"displayMode"`
	PrimaryOption string `json:"primaryOption" bson:"primaryOption"`
}

// OptionSettings holds the global variant display defaults plus the
// per-product and per-collection override maps. The maps only ever hold
// entries for explicitly configured ids; absence means inherit.
type OptionSettings struct {
	DefaultDisplayMode        string                    `json:"defaultDisplayMode"`
	DefaultPrimaryOption      string                    `json:"defaultPrimaryOption"`
	ProductSpecificOptions    map[string]OptionOverride `json:"productSpecificOptions"`
	CollectionSpecificOptions map[string]OptionOverride `json:"collectionSpecificOptions"`
}

// ViewportSettings holds per-device enable flags, display modes and
// column counts.
type ViewportSettings struct {
	EnableOnMobile      bool   `json:"enableOnMobile"`
	EnableOnTablet      bool   `json:"enableOnTablet"`
	EnableOnDesktop     bool   `json:"enableOnDesktop"`
	MobileDisplayMode   string `json:"mobileDisplayMode"`
	TabletDisplayMode   string `json:"tabletDisplayMode"`
	MobileColumnsCount  int    `json:"mobileColumnsCount"`
	TabletColumnsCount  int    `json:"tabletColumnsCount"`
	DesktopColumnsCount int    `json:"desktopColumnsCount"`
}

// Styles holds color and sizing tokens stored as opaque strings.
type Styles struct {
	AddToCartButtonColor     string `json:"addToCartButtonColor"`
	AddToCartButtonTextColor string `json:"addToCartButtonTextColor"`
	CardWidth                string `json:"cardWidth"`
	CardPadding              string `json:"cardPadding"`
	BorderColor              string `json:"borderColor"`
	BorderRadius             string `json:"borderRadius"`
}

// DefaultOptionSettings returns the option defaults applied when a shop
// has no optionSettings configured.
func DefaultOptionSettings() OptionSettings {
	return OptionSettings{
		DefaultDisplayMode:        DisplayModeAllVariants,
		DefaultPrimaryOption:      "Color",
		ProductSpecificOptions:    map[string]OptionOverride{},
		CollectionSpecificOptions: map[string]OptionOverride{},
	}
}

// DefaultViewportSettings returns the documented per-device defaults.
func DefaultViewportSettings() ViewportSettings {
	return ViewportSettings{
		EnableOnMobile:      true,
		EnableOnTablet:      true,
		EnableOnDesktop:     true,
		MobileDisplayMode:   MobileDisplayHorizontalScroll,
		TabletDisplayMode:   TabletDisplayGrid,
		MobileColumnsCount:  1,
		TabletColumnsCount:  2,
		DesktopColumnsCount: 3,
	}
}

// DefaultStyles returns the documented style tokens.
func DefaultStyles() Styles {
	return Styles{
		AddToCartButtonColor:     "#2c6ecb",
		AddToCartButtonTextColor: "#ffffff",
		CardWidth:                "200px",
		CardPadding:              "10px",
		BorderColor:              "#eeeeee",
		BorderRadius:             "4px",
	}
}

// DefaultSettings returns a fully-populated settings document for a new shop.
func DefaultSettings() Settings {
	return Settings{
		ButtonText:         "Show all variants",
		CollapseButtonText: "Hide variants",
		DisplayImages:      true,
		ShowPrice:          true,
		ShowInventory:      false,
		CardStyle:          CardStyleStandard,
		SelectionMode:      SelectionModeAll,
		EnabledCollections: []string{},
		EnabledProducts:    []string{},
		EnabledTags:        []string{},
		OptionSettings:     DefaultOptionSettings(),
		ViewportSettings:   DefaultViewportSettings(),
		Styles:             DefaultStyles(),
	}
}
