package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEnabledAllMode(t *testing.T) {
	settings := DefaultSettings()

	assert.True(t, IsEnabled(settings, ProductSubject{ID: "1"}))
	assert.True(t, IsEnabled(settings, CollectionSubject{ID: "2", Handle: "summer"}))
}

func TestIsEnabledSpecificCollections(t *testing.T) {
	settings := DefaultSettings()
	settings.SelectionMode = SelectionModeSpecificCollections
	settings.EnabledCollections = []string{"123", "summer-sale"}

	assert.True(t, IsEnabled(settings, CollectionSubject{ID: "123", Handle: "other"}))
	assert.True(t, IsEnabled(settings, CollectionSubject{ID: "999", Handle: "summer-sale"}))
	assert.False(t, IsEnabled(settings, CollectionSubject{ID: "999", Handle: "winter"}))
	// Products never match in collection mode
	assert.False(t, IsEnabled(settings, ProductSubject{ID: "123"}))
}

func TestIsEnabledSpecificProducts(t *testing.T) {
	settings := DefaultSettings()
	settings.SelectionMode = SelectionModeSpecificProducts
	settings.EnabledProducts = []string{"p1"}

	assert.True(t, IsEnabled(settings, ProductSubject{ID: "p1"}))
	assert.False(t, IsEnabled(settings, ProductSubject{ID: "p2"}))
	assert.False(t, IsEnabled(settings, CollectionSubject{ID: "p1"}))
}

func TestIsEnabledTags(t *testing.T) {
	settings := DefaultSettings()
	settings.SelectionMode = SelectionModeTags
	settings.EnabledTags = []string{"sale"}

	assert.True(t, IsEnabled(settings, ProductSubject{ID: "p", Tags: []string{"sale", "winter"}}))
	assert.False(t, IsEnabled(settings, ProductSubject{ID: "q", Tags: []string{"winter"}}))
	// Tag matching is case-sensitive
	assert.False(t, IsEnabled(settings, ProductSubject{ID: "r", Tags: []string{"Sale"}}))
	assert.False(t, IsEnabled(settings, ProductSubject{ID: "s"}))
}

func TestIsEnabledUnknownModeDisables(t *testing.T) {
	settings := DefaultSettings()
	settings.SelectionMode = "everything-everywhere"

	assert.False(t, IsEnabled(settings, ProductSubject{ID: "p1"}))
	assert.False(t, IsEnabled(settings, CollectionSubject{ID: "c1"}))
}

func TestOptionOverrideFor(t *testing.T) {
	settings := DefaultSettings()
	settings.OptionSettings.ProductSpecificOptions = map[string]OptionOverride{
		"p1": {DisplayMode: DisplayModePrimaryOption, PrimaryOption: "Size"},
	}
	settings.OptionSettings.CollectionSpecificOptions = map[string]OptionOverride{
		"c1": {DisplayMode: DisplayModeGroupedOptions, PrimaryOption: "Material"},
	}

	override := OptionOverrideFor(settings, ProductSubject{ID: "p1"})
	assert.Equal(t, DisplayModePrimaryOption, override.DisplayMode)
	assert.Equal(t, "Size", override.PrimaryOption)

	override = OptionOverrideFor(settings, CollectionSubject{ID: "c1"})
	assert.Equal(t, DisplayModeGroupedOptions, override.DisplayMode)

	// Unconfigured subjects inherit the global defaults
	override = OptionOverrideFor(settings, ProductSubject{ID: "p2"})
	assert.Equal(t, DisplayModeAllVariants, override.DisplayMode)
	assert.Equal(t, "Color", override.PrimaryOption)
}
