package domain

// CollectionSubject identifies a collection page being evaluated.
type CollectionSubject struct {
	ID     string
	Handle string
}

// ProductSubject identifies a product being evaluated.
type ProductSubject struct {
	ID   string
	Tags []string
}

// Subject is a candidate product or collection for widget activation.
// Implemented by CollectionSubject and ProductSubject.
type Subject interface {
	isSubject()
}

func (CollectionSubject) isSubject() {}
func (ProductSubject) isSubject()    {}

// IsEnabled decides whether the widget activates for subject under the
// shop's selection mode. Unrecognized modes disable the widget rather
// than enabling it everywhere.
func IsEnabled(settings Settings, subject Subject) bool {
	switch settings.SelectionMode {
	case SelectionModeAll, "":
		return true
	case SelectionModeSpecificCollections:
		c, ok := subject.(CollectionSubject)
		if !ok {
			return false
		}
		return contains(settings.EnabledCollections, c.ID) || contains(settings.EnabledCollections, c.Handle)
	case SelectionModeSpecificProducts:
		p, ok := subject.(ProductSubject)
		if !ok {
			return false
		}
		return contains(settings.EnabledProducts, p.ID)
	case SelectionModeTags:
		p, ok := subject.(ProductSubject)
		if !ok {
			return false
		}
		for _, tag := range p.Tags {
			if contains(settings.EnabledTags, tag) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// OptionOverrideFor resolves the variant display override for a subject:
// the per-product or per-collection entry when one is configured, the
// global default otherwise. This shapes display only; it is independent
// from the IsEnabled decision.
func OptionOverrideFor(settings Settings, subject Subject) OptionOverride {
	opts := settings.OptionSettings
	switch s := subject.(type) {
	case ProductSubject:
		if override, ok := opts.ProductSpecificOptions[s.ID]; ok {
			return override
		}
	case CollectionSubject:
		if override, ok := opts.CollectionSpecificOptions[s.ID]; ok {
			return override
		}
	}
	return OptionOverride{
		DisplayMode:   opts.DefaultDisplayMode,
		PrimaryOption: opts.DefaultPrimaryOption,
	}
}
