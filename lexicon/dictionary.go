package lexicon

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/zeromicro/go-zero/core/hash"
	"github.com/zeromicro/go-zero/core/logx"
	"gomod.pri/subcrack/alphabet"
)

const maxLineBytes = 1 << 20

// Dictionary is an immutable set of lowercase words over an alphabet.
// It is safe to share between goroutines.
type Dictionary struct {
	words       []string // sorted, the canonical iteration order
	set         map[string]struct{}
	maxLen      int
	fingerprint string
}

// NewDictionary builds a dictionary from words, lower-casing them and dropping
// any word containing a symbol outside the alphabet.
func NewDictionary(ab alphabet.Alphabet, words ...string) *Dictionary {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(w)
		if !ab.ContainsAll(w) {
			continue
		}
		set[w] = struct{}{}
	}

	return newDictionary(set)
}

func newDictionary(set map[string]struct{}) *Dictionary {
	d := &Dictionary{
		words: make([]string, 0, len(set)),
		set:   set,
	}
	for w := range set {
		d.words = append(d.words, w)
		d.maxLen = max(d.maxLen, len(w))
	}
	sort.Strings(d.words)
	d.fingerprint = hash.Md5Hex([]byte(strings.Join(d.words, "\n")))

	return d
}

// ReadDictionary parses a word list: the first space-separated token of each
// line, lower-cased, is accepted when every character belongs to the alphabet.
// Other lines are skipped.
func ReadDictionary(ab alphabet.Alphabet, r io.Reader) (*Dictionary, error) {
	set := make(map[string]struct{})
	skipped := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		word := strings.ToLower(fields[0])
		if !ab.ContainsAll(word) {
			skipped++
			continue
		}
		set[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if skipped > 0 {
		logx.Debugf("dictionary: skipped %d malformed entries", skipped)
	}

	return newDictionary(set), nil
}

// Has checks if a word exists in the dictionary
func (d *Dictionary) Has(word string) bool {
	_, exists := d.set[word]
	return exists
}

// Words returns all words in sorted order. The slice must not be modified.
func (d *Dictionary) Words() []string {
	return d.words
}

// Len returns the total number of words in the dictionary
func (d *Dictionary) Len() int {
	return len(d.words)
}

// MaxLen returns the length of the longest word.
func (d *Dictionary) MaxLen() int {
	return d.maxLen
}

// Fingerprint identifies the word set; equal sets have equal fingerprints.
func (d *Dictionary) Fingerprint() string {
	return d.fingerprint
}
