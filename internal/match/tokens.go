package match

import (
	"strings"
	"unicode"
)

// Tokens splits a Go identifier into lower-case words. Words break at
// underscores, before an upper-case letter that follows a non-upper-case
// one, and before the last letter of an acronym followed by lower case:
// "IpAddressInput" gives [ip address input], "HTTPServer" gives [http server].
func Tokens(s string) []string {
	runes := []rune(s)

	var (
		tokens []string
		word   []rune
	)

	flush := func() {
		if len(word) > 0 {
			tokens = append(tokens, strings.ToLower(string(word)))
			word = word[:0]
		}
	}

	for i, r := range runes {
		if r == '_' {
			flush()
			continue
		}

		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			acronymEnd := unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if !unicode.IsUpper(prev) || acronymEnd {
				flush()
			}
		}

		word = append(word, r)
	}

	flush()

	return tokens
}

// SnakeCase converts a Go identifier to lower snake case, e.g.
// "IpAddressInput" to "ip_address_input".
func SnakeCase(s string) string {
	return strings.Join(Tokens(s), "_")
}

// fold reduces an identifier to its lower-case words without separators, so
// "innerView", "InnerView" and "inner_view" compare equal.
func fold(s string) string {
	return strings.Join(Tokens(s), "")
}
