package models

type Category string

const (
	CategoryHealth   Category = "Health"
	CategoryWork     Category = "Work"
	CategoryLearning Category = "Learning"
	CategoryMind     Category = "Mind"
	CategoryOther    Category = "Other"
)

// CategoryStyle holds the display hints a category contributes to habits
// that do not choose their own.
type CategoryStyle struct {
	Color string
	Icon  string
}

var categoryStyles = map[Category]CategoryStyle{
	CategoryHealth:   {Color: "#f43f5e", Icon: "heart-pulse"},
	CategoryWork:     {Color: "#3b82f6", Icon: "briefcase"},
	CategoryLearning: {Color: "#f59e0b", Icon: "book-open"},
	CategoryMind:     {Color: "#6366f1", Icon: "spa"},
	CategoryOther:    {Color: "#10b981", Icon: "star"},
}

// AllCategories in display order.
var AllCategories = []Category{
	CategoryHealth,
	CategoryWork,
	CategoryLearning,
	CategoryMind,
	CategoryOther,
}

// StyleFor returns the default color and icon for a category. Unknown
// categories fall back to the Other style.
func StyleFor(c Category) CategoryStyle {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return categoryStyles[CategoryOther]
}

// ParseCategory maps a case-insensitive name to a known category.
func ParseCategory(s string) (Category, bool) {
	for _, c := range AllCategories {
		if string(c) == s || string(c) == capitalize(s) {
			return c, true
		}
	}
	return "", false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	for i := 1; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
