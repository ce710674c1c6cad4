package forms

import (
	"strings"
	"unicode"
)

// isSpace matches the whitespace set browsers use for String.prototype.trim and \s.
func isSpace(r rune) bool {
	return r == '\uFEFF' || (r != '\u0085' && unicode.IsSpace(r))
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, isSpace) == ""
}

// length counts UTF-16 code units, the unit form inputs report.
func length(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// uniqueFold counts distinct code points after lowercasing.
func uniqueFold(s string) int {
	seen := make(map[rune]struct{})
	for _, r := range strings.ToLower(s) {
		seen[r] = struct{}{}
	}
	return len(seen)
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }
func isSpecial(r rune) bool    { return strings.ContainsRune(specialChars, r) }

func isAlnum(r rune) bool {
	return isASCIIUpper(r) || isASCIILower(r) || isASCIIDigit(r)
}

func every(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

func some(s string, pred func(rune) bool) bool {
	return strings.IndexFunc(s, pred) >= 0
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// validEmailShape reports whether s looks like local@domain.tld: no whitespace, exactly one "@"
// with a non-empty local part, and a domain holding a "." with text on both sides.
func validEmailShape(s string) bool {
	if strings.IndexFunc(s, isSpace) >= 0 {
		return false
	}
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}
	return len(domain) >= 3 && strings.Contains(domain[1:len(domain)-1], ".")
}

func blockedEmailDomain(email string) bool {
	return strings.HasSuffix(strings.ToLower(email), blockedDomain)
}
