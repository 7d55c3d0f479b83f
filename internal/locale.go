package internal

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// CollationLanguage resolves the language used for locale-aware sorting
// and number formatting from the process environment, falling back to
// English. Checks LC_ALL, LC_MESSAGES, then LANG, e.g. "ar_QA.UTF-8".
func CollationLanguage() language.Tag {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		locale := os.Getenv(env)
		if locale == "" || locale == "C" || locale == "POSIX" {
			continue
		}
		if tag, ok := parseLocale(locale); ok {
			return tag
		}
	}
	return language.English
}

// parseLocale converts a POSIX locale string to a BCP 47 tag.
// Example: "sv_SE.UTF-8" -> sv-SE
func parseLocale(locale string) (language.Tag, bool) {
	base := locale
	if idx := strings.Index(base, "."); idx != -1 {
		base = base[:idx]
	}
	if idx := strings.Index(base, "@"); idx != -1 {
		base = base[:idx]
	}
	tag, err := language.Parse(strings.Replace(base, "_", "-", 1))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
