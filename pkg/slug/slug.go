package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// transliterations maps letters that have no ASCII decomposition
var transliterations = map[rune]string{
	// Cyrillic
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "e", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "h", 'ц': "c", 'ч': "ch",
	'ш': "sh", 'щ': "sh", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "iu", 'я': "ia",
	// Latin letters without a combining-mark decomposition
	'ß': "ss", 'æ': "ae", 'œ': "oe", 'ø': "o", 'ł': "l",
	'đ': "d", 'ð': "d", 'þ': "th", 'ı': "i",
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// stripMarks decomposes accented letters and drops the combining marks,
// so "é" becomes "e".
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// Make derives a URL-safe slug from a title.
// The title is lowercased, Cyrillic and a few special Latin letters are
// transliterated, accents are removed, every run of characters outside
// [a-z0-9] becomes a single dash and dashes at either end are dropped.
// Example: "Café, World!" -> "cafe-world"
func Make(title string) string {
	var result strings.Builder
	for _, char := range strings.ToLower(title) {
		if latin, exists := transliterations[char]; exists {
			result.WriteString(latin)
		} else {
			result.WriteRune(char)
		}
	}

	slug := nonAlphanumeric.ReplaceAllString(stripMarks(result.String()), "-")
	return strings.Trim(slug, "-")
}

var validSlug = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// IsValid reports whether s is already in canonical slug form.
func IsValid(s string) bool {
	return validSlug.MatchString(s)
}
