package application

// Locale pairs a locale code with its native display name.
type Locale struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// bundleLocales is the fixed set of locales the app ships translations
// for, in display order.
var bundleLocales = []Locale{
	{Code: "en", Name: "English"},
	{Code: "fr", Name: "Français"},
	{Code: "de", Name: "Deutsch"},
	{Code: "es", Name: "Español"},
}

// defaultTranslations is the process-wide translation bundle. It is built
// once at init and never mutated; callers always receive copies.
var defaultTranslations = map[string]map[string]string{
	"en": {
		"button.show_variants":    "Show all variants",
		"button.hide_variants":    "Hide variants",
		"button.add_to_cart":      "Add to Cart",
		"button.sold_out":         "Sold Out",
		"button.adding":           "Adding...",
		"button.added":            "Added!",
		"button.select_options":   "Select Options",
		"button.select":           "Select",
		"status.available":        "Available",
		"status.unavailable":      "Sold out",
		"dropdown.select_variant": "Select a variant",
		"modal.select_options":    "Select Options",
		"modal.close":             "Close",
	},
	"fr": {
		"button.show_variants":    "Afficher toutes les variantes",
		"button.hide_variants":    "Masquer les variantes",
		"button.add_to_cart":      "Ajouter au panier",
		"button.sold_out":         "Épuisé",
		"button.adding":           "Ajout en cours...",
		"button.added":            "Ajouté !",
		"button.select_options":   "Choisir les options",
		"button.select":           "Sélectionner",
		"status.available":        "Disponible",
		"status.unavailable":      "Épuisé",
		"dropdown.select_variant": "Sélectionner une variante",
		"modal.select_options":    "Choisir les options",
		"modal.close":             "Fermer",
	},
	"de": {
		"button.show_variants":    "Alle Varianten anzeigen",
		"button.hide_variants":    "Varianten ausblenden",
		"button.add_to_cart":      "In den Warenkorb",
		"button.sold_out":         "Ausverkauft",
		"button.adding":           "Wird hinzugefügt...",
		"button.added":            "Hinzugefügt!",
		"button.select_options":   "Optionen wählen",
		"button.select":           "Auswählen",
		"status.available":        "Verfügbar",
		"status.unavailable":      "Ausverkauft",
		"dropdown.select_variant": "Variante auswählen",
		"modal.select_options":    "Optionen wählen",
		"modal.close":             "Schließen",
	},
	"es": {
		"button.show_variants":    "Mostrar todas las variantes",
		"button.hide_variants":    "Ocultar variantes",
		"button.add_to_cart":      "Añadir al carrito",
		"button.sold_out":         "Agotado",
		"button.adding":           "Añadiendo...",
		"button.added":            "¡Añadido!",
		"button.select_options":   "Seleccionar opciones",
		"button.select":           "Seleccionar",
		"status.available":        "Disponible",
		"status.unavailable":      "Agotado",
		"dropdown.select_variant": "Seleccionar una variante",
		"modal.select_options":    "Seleccionar opciones",
		"modal.close":             "Cerrar",
	},
}

// SupportedLocales returns the locales the bundle ships, in display order.
func SupportedLocales() []Locale {
	locales := make([]Locale, len(bundleLocales))
	copy(locales, bundleLocales)
	return locales
}

// DefaultTranslations returns a copy of the bundled table for locale,
// falling back to English for locales outside the bundle.
func DefaultTranslations(locale string) map[string]string {
	table, ok := defaultTranslations[locale]
	if !ok {
		table = defaultTranslations["en"]
	}
	out := make(map[string]string, len(table))
	for key, value := range table {
		out[key] = value
	}
	return out
}

// BundleHasLocale reports whether the bundle ships translations for locale.
func BundleHasLocale(locale string) bool {
	_, ok := defaultTranslations[locale]
	return ok
}
