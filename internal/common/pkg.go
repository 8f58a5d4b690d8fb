package common

import (
	"go/token"
	"path"
	"strings"
	"unicode"
)

// PkgAlias returns an import alias for pkgPath: its last element, skipping a
// major version suffix such as "/v2", with characters that cannot appear in
// an identifier replaced by '_'. Keywords and names starting with a digit
// get a leading '_'. Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if isMajorVersion(base) {
		if dir := path.Dir(pkgPath); dir != "." && dir != "/" {
			base = path.Base(dir)
		}
	}

	alias := strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}

		return '_'
	}, base)

	if r := []rune(alias)[0]; unicode.IsDigit(r) || token.IsKeyword(alias) {
		alias = "_" + alias
	}

	return alias
}

func isMajorVersion(elem string) bool {
	if len(elem) < 2 || elem[0] != 'v' {
		return false
	}

	for _, r := range elem[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
