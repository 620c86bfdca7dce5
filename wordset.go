package pwcheck

import (
	_ "embed"
	"os"
	"strings"

	"github.com/pkg/errors"
)

//go:embed data/blocklist.txt
var blocklistData string

//go:embed data/dictionary.txt
var dictionaryData string

// WordSet is a set of lowercase words. A nil WordSet is empty.
type WordSet map[string]struct{}

// NewWordSet builds a set from words, lowercasing each one.
func NewWordSet(words ...string) WordSet {
	ws := make(WordSet, len(words))
	for _, w := range words {
		ws.Add(w)
	}
	return ws
}

// LoadWordSet parses one word per line. Blank lines and lines starting with
// '#' are skipped.
func LoadWordSet(data string) WordSet {
	lines := strings.Split(data, "\n")
	ws := make(WordSet, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ws.Add(line)
	}
	return ws
}

// ReadWordSetFile loads a word list from path.
func ReadWordSetFile(path string) (WordSet, error) {
	if path == "" {
		return nil, errors.New("word list path required")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read word list: %s", path)
	}
	return LoadWordSet(string(b)), nil
}

// DefaultBlocklist returns a fresh copy of the embedded blocklist.
func DefaultBlocklist() WordSet {
	return LoadWordSet(blocklistData)
}

// DefaultDictionary returns a fresh copy of the embedded dictionary.
func DefaultDictionary() WordSet {
	return LoadWordSet(dictionaryData)
}

func (ws WordSet) Add(word string) {
	word = asciiLower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	ws[word] = struct{}{}
}

// Contains checks if the exact word is in the set.
func (ws WordSet) Contains(word string) bool {
	_, ok := ws[word]
	return ok
}

func (ws WordSet) Len() int {
	return len(ws)
}
