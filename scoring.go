package pwcheck

import (
	"fmt"
	"strings"
)

// Category is the coarse strength bucket derived from a score.
type Category int

const (
	Weak Category = iota
	Fair
	Strong
	VeryStrong
)

// Fixed deductions per detected pattern. Tunable, not derived from anything.
const (
	sequenceWeight      = 5
	keyboardWalkWeight  = 5
	repeatedChunkWeight = 5
	yearWeight          = 3

	// knownBadMaxScore caps the score of blocklisted or dictionary passwords.
	knownBadMaxScore = 10
)

// Reason messages, in the order they may appear in Detail.Reasons.
const (
	ReasonEmpty      = "Password is empty."
	ReasonTooLong    = "Password exceeds maximum allowed length."
	ReasonBlocklist  = "Found in common-passwords list."
	ReasonDictionary = "Is a common dictionary word."
	ReasonSequence   = "Contains an increasing/decreasing sequence."
	ReasonKeyboard   = "Contains a keyboard pattern."
	ReasonRepeated   = "Contains repeated chunks."
	ReasonYear       = "Contains a year (predictable)."
	ReasonPassphrase = "Looks like a multi-word passphrase (good)."
	ReasonTooShort   = "Shorter than recommended minimum length."
	ReasonTip        = "Try 3–4 uncommon words, avoid years/keyboard runs, and steer clear of known common passwords."
)

var categoryNames = map[Category]string{
	Weak:       "Weak",
	Fair:       "Fair",
	Strong:     "Strong",
	VeryStrong: "VeryStrong",
}

// String returns the identifier form of the category, e.g. "VeryStrong".
func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Label returns the display form of the category, e.g. "Very Strong".
func (c Category) Label() string {
	if c == VeryStrong {
		return "Very Strong"
	}
	return c.String()
}

func (c Category) MarshalText() ([]byte, error) {
	if _, ok := categoryNames[c]; !ok {
		return nil, fmt.Errorf("unknown category %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	s := strings.ReplaceAll(strings.TrimSpace(string(b)), " ", "")
	for k, v := range categoryNames {
		if strings.EqualFold(v, s) {
			*c = k
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", string(b))
}

// Detail is the result of scoring a single password.
type Detail struct {
	Score         int      `json:"score" yaml:"score"`
	Category      Category `json:"category" yaml:"category"`
	Reasons       []string `json:"reasons" yaml:"reasons"`
	BlocklistHit  bool     `json:"blocklist_hit" yaml:"blocklist_hit"`
	DictionaryHit bool     `json:"dictionary_hit" yaml:"dictionary_hit"`
}

// ScorePassword evaluates password against the blocklist, the dictionary and
// the weights in cfg. It never fails and keeps no state between calls, so it
// is safe to call from many goroutines at once. Neither set is modified.
func ScorePassword(password string, blocklist, dictionary WordSet, cfg Config) Detail {
	out := Detail{Reasons: []string{}}
	n := len(password)

	if n == 0 {
		out.Reasons = append(out.Reasons, ReasonEmpty)
		out.Category = Weak
		return out
	}
	if n > cfg.MaxLengthAllowed {
		out.Reasons = append(out.Reasons, ReasonTooLong)
	}

	lower := asciiLower(password)

	if blocklist.Contains(lower) {
		out.BlocklistHit = true
		out.Reasons = append(out.Reasons, ReasonBlocklist)
	}
	// a dictionary word only counts when it is the whole (short) password
	if n <= 10 && dictionary.Contains(lower) {
		out.DictionaryHit = true
		out.Reasons = append(out.Reasons, ReasonDictionary)
	}

	score := min(cfg.LengthCapPoints, n*3)
	score += cfg.VarietyPoints * max(0, CharClassCount(password)-1) / 3

	deductions := 0
	if LooksLikeSequence(lower) {
		out.Reasons = append(out.Reasons, ReasonSequence)
		deductions += sequenceWeight
	}
	if LooksLikeKeyboardWalk(lower) {
		out.Reasons = append(out.Reasons, ReasonKeyboard)
		deductions += keyboardWalkWeight
	}
	if LooksLikeRepeatedChunk(lower) {
		out.Reasons = append(out.Reasons, ReasonRepeated)
		deductions += repeatedChunkWeight
	}
	if ContainsYearSuffix(password) {
		out.Reasons = append(out.Reasons, ReasonYear)
		deductions += yearWeight
	}
	score -= min(cfg.PatternPoints, deductions)

	if wordCount(password) >= 3 && n >= 16 {
		score += cfg.PassphrasePoints
		out.Reasons = append(out.Reasons, ReasonPassphrase)
	}

	if n < cfg.MinLength {
		out.Reasons = append(out.Reasons, ReasonTooShort)
		score = min(score, cfg.WeakMax)
	}

	if out.BlocklistHit || out.DictionaryHit {
		score = min(score, knownBadMaxScore)
	}

	out.Score = max(0, min(100, score))
	out.Category = BucketFromScore(out.Score, cfg)

	if out.Category == Weak || out.Category == Fair {
		out.Reasons = append(out.Reasons, ReasonTip)
	}
	return out
}

// BucketFromScore maps a score onto a category using the inclusive upper
// bounds WeakMax, FairMax and StrongMax.
func BucketFromScore(score int, cfg Config) Category {
	switch {
	case score <= cfg.WeakMax:
		return Weak
	case score <= cfg.FairMax:
		return Fair
	case score <= cfg.StrongMax:
		return Strong
	default:
		return VeryStrong
	}
}

// wordCount counts words separated by space, hyphen or underscore. Adjacent
// separators are not collapsed.
func wordCount(s string) int {
	words := 1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '-', '_':
			words++
		}
	}
	return words
}
