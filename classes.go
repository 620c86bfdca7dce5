package pwcheck

// CharClassCount returns how many of the character classes lowercase,
// uppercase, digit and symbol-or-space occur in s. Classification uses plain
// ASCII ranges; bytes outside the printable range 32-126 belong to no class.
func CharClassCount(s string) int {
	hasLower := false
	hasUpper := false
	hasDigit := false
	hasSymbol := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case isASCIIPrint(c):
			// space shares the symbol slot
			hasSymbol = true
		}
	}

	n := 0
	for _, ok := range []bool{hasLower, hasUpper, hasDigit, hasSymbol} {
		if ok {
			n++
		}
	}
	return n
}

func isASCIIPrint(c byte) bool {
	return c >= 32 && c <= 126
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// asciiLower lowercases A-Z only and leaves every other byte untouched.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
