// Package assets derives on-disk locations for card and set artwork.
package assets

import (
	"strconv"
	"strings"
	"unicode"
)

// Sanitize joins name and edition as "<name>_<edition>" and replaces every
// character that is unsafe in a file name with a hyphen, one for one.
// Unsafe means whitespace, control characters and any of < > : ; ' , ? * | \ / ".
func Sanitize(name string, edition int) string {
	return strings.Map(func(r rune) rune {
		if unsafeRune(r) {
			return '-'
		}
		return r
	}, name+"_"+strconv.Itoa(edition))
}

func unsafeRune(r rune) bool {
	switch r {
	case '<', '>', ':', ';', '\'', ',', '?', '*', '|', '\\':
		return true
	case '/', '"':
		// Path separator and a character most filesystems reject.
		return true
	}
	// Control characters are invalid in file names on common filesystems.
	return unicode.IsSpace(r) || unicode.IsControl(r)
}
