package visualize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// displayLabel returns an explicit label unchanged, or derives one from the
// name by replacing separators with spaces and title-casing the words, so
// "single_top" becomes "Single Top".
func displayLabel(name, label string) string {
	if label != "" {
		return label
	}
	cleaned := strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return titleCaser.String(cleaned)
}
