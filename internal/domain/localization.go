package domain

import "time"

// Localization holds a shop's translation state: the default locale, the
// ordered set of supported locales, and a two-level mapping from locale
// to translation key to string. One document exists per shop; it is
// created lazily on first access and never deleted while the shop exists.
type Localization struct {
	ID               string                       `json:"id"`
	ShopID           string                       `json:"shop_id"`
	ShopDomain       string                       `json:"shop_domain"`
	DefaultLocale    string                       `json:"defaultLocale"`
	SupportedLocales []string                     `json:"supportedLocales"`
	Translations     map[string]map[string]string `json:"translations"`
	CreatedAt        time.Time                    `json:"created_at"`
	UpdatedAt        time.Time                    `json:"updated_at"`
}

// TranslationsFor returns the table for locale, falling back to the
// default locale's table, then to an empty map. Callers fall further back
// to the static bundle.
func (l *Localization) TranslationsFor(locale string) map[string]string {
	if table, ok := l.Translations[locale]; ok {
		return table
	}
	if table, ok := l.Translations[l.DefaultLocale]; ok {
		return table
	}
	return map[string]string{}
}

// MergeTranslations merges entries key-by-key into the locale's table,
// creating the table if absent, and appends the locale to the supported
// set if it is not already a member.
func (l *Localization) MergeTranslations(locale string, entries map[string]string) {
	if l.Translations == nil {
		l.Translations = map[string]map[string]string{}
	}
	table, ok := l.Translations[locale]
	if !ok {
		table = map[string]string{}
		l.Translations[locale] = table
	}
	for key, value := range entries {
		table[key] = value
	}
	if !l.Supports(locale) {
		l.SupportedLocales = append(l.SupportedLocales, locale)
	}
}

// Supports reports whether locale is in the supported set.
func (l *Localization) Supports(locale string) bool {
	for _, code := range l.SupportedLocales {
		if code == locale {
			return true
		}
	}
	return false
}
