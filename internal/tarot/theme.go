package tarot

// Theme is the life domain a reading is scoped to. It selects which
// meaning text applies to a drawn card.
type Theme string

const (
	ThemeLove            Theme = "love"
	ThemeCareer          Theme = "career"
	ThemeRelationship    Theme = "relationship"
	ThemeHealth          Theme = "health"
	ThemeSelfExploration Theme = "self-exploration"

	// themeDefault is the catalog fallback key, never a valid request value.
	themeDefault = "default"
)

var validThemes = map[Theme]bool{
	ThemeLove:            true,
	ThemeCareer:          true,
	ThemeRelationship:    true,
	ThemeHealth:          true,
	ThemeSelfExploration: true,
}

// ParseTheme validates a raw theme value from a request.
func ParseTheme(raw string) (Theme, error) {
	t := Theme(raw)
	if !validThemes[t] {
		return "", ErrInvalidTheme
	}
	return t, nil
}

// Themes returns all valid themes, for listing endpoints.
func Themes() []Theme {
	return []Theme{
		ThemeLove,
		ThemeCareer,
		ThemeRelationship,
		ThemeHealth,
		ThemeSelfExploration,
	}
}
