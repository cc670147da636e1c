package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent lowercases an identifier and drops its separators, so that
// "OrderID", "order_id" and "order-id" all read "orderid".
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into lowercase words at separators and case changes:
//   - "OrderID" -> ["order", "id"]
//   - "XMLParser" -> ["xml", "parser"]
//   - "created_at" -> ["created", "at"]
func TokenizeIdent(s string) []string {
	var (
		tokens  []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}
		if i > 0 && startsWord(runes, i) {
			flush()
		}
		current = append(current, r)
	}
	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsWord reports a lower-to-upper transition, or the last capital of an acronym
// followed by a lowercase rune.
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}
	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
