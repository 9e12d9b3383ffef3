package ledger

// Category tags classify expenses for aggregation. The set matches the
// expense form options; unknown tags entered through older profiles are
// passed through and displayed raw.
const (
	CategoryEntertainment = "entertainment"
	CategoryStyle         = "style"
	CategoryFood          = "food"
	CategoryEducation     = "education"
	CategoryOther         = "other"
)

// Categories lists the known tags in display order.
var Categories = []string{
	CategoryEntertainment,
	CategoryStyle,
	CategoryFood,
	CategoryEducation,
	CategoryOther,
}

var categoryLabels = map[string]string{
	CategoryEntertainment: "Развлечения",
	CategoryStyle:         "Стиль",
	CategoryFood:          "Еда",
	CategoryEducation:     "Образование",
	CategoryOther:         "Прочее",
}

// CategoryLabel returns the display label for a tag, or the raw tag when
// it is not in the catalog.
func CategoryLabel(tag string) string {
	if label, ok := categoryLabels[tag]; ok {
		return label
	}
	return tag
}

// KnownCategory reports whether the tag is part of the static catalog.
func KnownCategory(tag string) bool {
	_, ok := categoryLabels[tag]
	return ok
}
