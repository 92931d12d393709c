package domain

// SettingsPatch is a partial settings update. Pointer fields distinguish
// "not supplied" from a supplied zero value: top-level fields present in
// the patch overwrite, absent fields are preserved, and a supplied nested
// object replaces the stored nested object wholesale. Callers that want a
// field-level change inside a nested object must send the full object.
type SettingsPatch struct {
	ButtonText         *string           `json:"buttonText,omitempty"`
	CollapseButtonText *string           `json:"collapseButtonText,omitempty"`
	DisplayImages      *bool             `json:"displayImages,omitempty"`
	ShowPrice          *bool             `json:"showPrice,omitempty"`
	ShowInventory      *bool             `json:"showInventory,omitempty"`
	CardStyle          *string           `json:"cardStyle,omitempty"`
	SelectionMode      *string           `json:"selectionMode,omitempty"`
	EnabledCollections *[]string         `json:"enabledCollections,omitempty"`
	EnabledProducts    *[]string         `json:"enabledProducts,omitempty"`
	EnabledTags        *[]string         `json:"enabledTags,omitempty"`
	OptionSettings     *OptionSettings   `json:"optionSettings,omitempty"`
	ViewportSettings   *ViewportSettings `json:"viewportSettings,omitempty"`
	Styles             *Styles           `json:"styles,omitempty"`
}

// Validate checks every enum value supplied by the patch against its
// closed set. It returns the first violation as a ValidationError; the
// caller must not persist anything when validation fails.
func (p SettingsPatch) Validate() error {
	if p.CardStyle != nil && !contains(CardStyles, *p.CardStyle) {
		return NewValidationError("cardStyle", *p.CardStyle, CardStyles)
	}
	if p.SelectionMode != nil && !contains(SelectionModes, *p.SelectionMode) {
		return NewValidationError("selectionMode", *p.SelectionMode, SelectionModes)
	}
	if p.OptionSettings != nil {
		if err := p.OptionSettings.validate(); err != nil {
			return err
		}
	}
	if p.ViewportSettings != nil {
		if err := p.ViewportSettings.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (o OptionSettings) validate() error {
	if !contains(DisplayModes, o.DefaultDisplayMode) {
		return NewValidationError("optionSettings.defaultDisplayMode", o.DefaultDisplayMode, DisplayModes)
	}
	for id, override := range o.ProductSpecificOptions {
		if !contains(DisplayModes, override.DisplayMode) {
			return NewValidationError("optionSettings.productSpecificOptions."+id+".displayMode", override.DisplayMode, DisplayModes)
		}
	}
	for id, override := range o.CollectionSpecificOptions {
		if !contains(DisplayModes, override.DisplayMode) {
			return NewValidationError("optionSettings.collectionSpecificOptions."+id+".displayMode", override.DisplayMode, DisplayModes)
		}
	}
	return nil
}

func (v ViewportSettings) validate() error {
	if !contains(MobileDisplayModes, v.MobileDisplayMode) {
		return NewValidationError("viewportSettings.mobileDisplayMode", v.MobileDisplayMode, MobileDisplayModes)
	}
	if !contains(TabletDisplayModes, v.TabletDisplayMode) {
		return NewValidationError("viewportSettings.tabletDisplayMode", v.TabletDisplayMode, TabletDisplayModes)
	}
	return nil
}

// Apply merges the patch into current and returns the result. The merge is
// shallow: supplied top-level fields overwrite, nested objects are taken
// from the patch as-is. Apply does not validate; call Validate first.
func (p SettingsPatch) Apply(current Settings) Settings {
	next := current
	if p.ButtonText != nil {
		next.ButtonText = *p.ButtonText
	}
	if p.CollapseButtonText != nil {
		next.CollapseButtonText = *p.CollapseButtonText
	}
	if p.DisplayImages != nil {
		next.DisplayImages = *p.DisplayImages
	}
	if p.ShowPrice != nil {
		next.ShowPrice = *p.ShowPrice
	}
	if p.ShowInventory != nil {
		next.ShowInventory = *p.ShowInventory
	}
	if p.CardStyle != nil {
		next.CardStyle = *p.CardStyle
	}
	if p.SelectionMode != nil {
		next.SelectionMode = *p.SelectionMode
	}
	if p.EnabledCollections != nil {
		next.EnabledCollections = *p.EnabledCollections
	}
	if p.EnabledProducts != nil {
		next.EnabledProducts = *p.EnabledProducts
	}
	if p.EnabledTags != nil {
		next.EnabledTags = *p.EnabledTags
	}
	if p.OptionSettings != nil {
		next.OptionSettings = *p.OptionSettings
	}
	if p.ViewportSettings != nil {
		next.ViewportSettings = *p.ViewportSettings
	}
	if p.Styles != nil {
		next.Styles = *p.Styles
	}
	return next
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
