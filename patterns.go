package pwcheck

import "strings"

// keyboardRows are the physical rows checked for keyboard walks.
var keyboardRows = [...]string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"1234567890",
}

const minPatternRun = 4

// LooksLikeSequence reports whether s contains at least four consecutive
// bytes stepping by +1 or -1, e.g. "abcd" or "4321".
func LooksLikeSequence(s string) bool {
	if len(s) < minPatternRun {
		return false
	}

	for _, step := range []int{1, -1} {
		run := 1
		for i := 1; i < len(s); i++ {
			if int(s[i])-int(s[i-1]) == step {
				run++
				if run >= minPatternRun {
					return true
				}
			} else {
				run = 1
			}
		}
	}
	return false
}

// LooksLikeRepeatedChunk reports whether s is a shorter chunk repeated to
// fill the whole string, e.g. "abcabc" or "aaaa". Strings shorter than two
// bytes never match.
func LooksLikeRepeatedChunk(s string) bool {
	n := len(s)
	for size := 1; size <= n/2; size++ {
		if n%size != 0 {
			continue
		}
		chunk := s[:size]
		ok := true
		for i := size; i < n; i += size {
			if s[i:i+size] != chunk {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

// LooksLikeKeyboardWalk reports whether s is a run along one keyboard row.
// It matches when the whole input is a contiguous piece of a row (either
// direction), or when four or more consecutive input characters all come from
// the same row, in any order.
func LooksLikeKeyboardWalk(s string) bool {
	lower := asciiLower(s)

	for _, row := range keyboardRows {
		if strings.Contains(row, lower) || strings.Contains(reverseString(row), lower) {
			return true
		}
	}

	// NOTE: members of a row need not be neighbours here ("qpqp" matches).
	for _, row := range keyboardRows {
		run := 0
		for i := 0; i < len(lower); i++ {
			if strings.IndexByte(row, lower[i]) >= 0 {
				run++
				if run >= minPatternRun {
					return true
				}
			} else {
				run = 0
			}
		}
	}
	return false
}

// ContainsYearSuffix reports whether s holds four consecutive digits reading
// as a year between 1990 and 2099.
func ContainsYearSuffix(s string) bool {
	for i := 0; i+3 < len(s); i++ {
		if !isASCIIDigit(s[i]) || !isASCIIDigit(s[i+1]) || !isASCIIDigit(s[i+2]) || !isASCIIDigit(s[i+3]) {
			continue
		}
		y := int(s[i]-'0')*1000 + int(s[i+1]-'0')*100 + int(s[i+2]-'0')*10 + int(s[i+3]-'0')
		if y >= 1990 && y <= 2099 {
			return true
		}
	}
	return false
}

func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
