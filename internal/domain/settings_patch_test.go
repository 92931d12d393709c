package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPatchValidateRejectsBadEnums(t *testing.T) {
	err := SettingsPatch{CardStyle: strPtr("bogus")}.Validate()
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "cardStyle", validationErr.Field)
	assert.Equal(t, CardStyles, validationErr.Allowed)

	err = SettingsPatch{SelectionMode: strPtr("some-products")}.Validate()
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "selectionMode", validationErr.Field)

	err = SettingsPatch{ViewportSettings: &ViewportSettings{
		MobileDisplayMode: "carousel",
		TabletDisplayMode: TabletDisplayGrid,
	}}.Validate()
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "viewportSettings.mobileDisplayMode", validationErr.Field)

	err = SettingsPatch{OptionSettings: &OptionSettings{
		DefaultDisplayMode: DisplayModeAllVariants,
		ProductSpecificOptions: map[string]OptionOverride{
			"p1": {DisplayMode: "everything"},
		},
	}}.Validate()
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Field, "productSpecificOptions.p1")
}

func TestPatchValidateAcceptsValidValues(t *testing.T) {
	patch := SettingsPatch{
		CardStyle:     strPtr(CardStyleMatchOriginal),
		SelectionMode: strPtr(SelectionModeTags),
		ViewportSettings: &ViewportSettings{
			MobileDisplayMode: MobileDisplayModal,
			TabletDisplayMode: TabletDisplayHorizontalScroll,
		},
	}
	assert.NoError(t, patch.Validate())
}

func TestPatchApplyIsShallow(t *testing.T) {
	current := DefaultSettings()
	current.ButtonText = "See more"
	current.EnabledTags = []string{"sale"}

	next := SettingsPatch{ShowInventory: boolPtr(true)}.Apply(current)

	// Supplied field overwrites, everything else is preserved
	assert.True(t, next.ShowInventory)
	assert.Equal(t, "See more", next.ButtonText)
	assert.Equal(t, []string{"sale"}, next.EnabledTags)
	assert.Equal(t, current.ViewportSettings, next.ViewportSettings)
}

func TestPatchApplyReplacesNestedObjectsWholesale(t *testing.T) {
	current := DefaultSettings()
	current.ViewportSettings.TabletColumnsCount = 4

	// The supplied nested object replaces the stored one entirely:
	// omitted nested fields take their zero values, they are not merged.
	next := SettingsPatch{ViewportSettings: &ViewportSettings{
		EnableOnMobile:    false,
		EnableOnTablet:    true,
		EnableOnDesktop:   true,
		MobileDisplayMode: MobileDisplayDropdown,
		TabletDisplayMode: TabletDisplayGrid,
	}}.Apply(current)

	assert.False(t, next.ViewportSettings.EnableOnMobile)
	assert.Equal(t, MobileDisplayDropdown, next.ViewportSettings.MobileDisplayMode)
	assert.Equal(t, 0, next.ViewportSettings.TabletColumnsCount)
	assert.Equal(t, 0, next.ViewportSettings.DesktopColumnsCount)
}

func boolPtr(b bool) *bool { return &b }
