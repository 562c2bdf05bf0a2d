package alphabet

import (
	"fmt"
	"strings"
)

// Size is the number of symbols in every alphabet this package builds keys over.
const Size = 26

// English is the canonical lowercase latin alphabet.
var English = MustNew("abcdefghijklmnopqrstuvwxyz")

// Alphabet is an ordered sequence of distinct lowercase ASCII symbols.
// The zero value is not usable; build one with New.
type Alphabet struct {
	letters string
	index   [256]int8
}

func New(letters string) (Alphabet, error) {
	if len(letters) != Size {
		return Alphabet{}, fmt.Errorf("alphabet must have %d symbols, got %d", Size, len(letters))
	}

	a := Alphabet{letters: letters}
	for i := range a.index {
		a.index[i] = -1
	}

	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if c < 'a' || c > 'z' {
			return Alphabet{}, fmt.Errorf("alphabet symbol %q is not a lowercase ascii letter", c)
		}
		if a.index[c] >= 0 {
			return Alphabet{}, fmt.Errorf("alphabet symbol %q repeats", c)
		}
		a.index[c] = int8(i)
	}

	return a, nil
}

func MustNew(letters string) Alphabet {
	a, err := New(letters)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the symbols in canonical order.
func (a Alphabet) String() string {
	return a.letters
}

// At returns the symbol at position i.
func (a Alphabet) At(i int) byte {
	return a.letters[i]
}

// Index returns the position of c, or -1 when c is not in the alphabet.
func (a Alphabet) Index(c byte) int {
	return int(a.index[c])
}

// Contains reports whether c is a symbol of the alphabet.
func (a Alphabet) Contains(c byte) bool {
	return a.index[c] >= 0
}

// ContainsAll reports whether every byte of s is a symbol of the alphabet.
func (a Alphabet) ContainsAll(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !a.Contains(s[i]) {
			return false
		}
	}
	return true
}

// Letters lower-cases text and keeps only alphabet symbols, in order.
func (a Alphabet) Letters(text string) string {
	text = strings.ToLower(text)

	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if a.Contains(text[i]) {
			sb.WriteByte(text[i])
		}
	}
	return sb.String()
}

// Identity returns the key mapping every position to its own symbol.
func (a Alphabet) Identity() Key {
	return Key{value: a.letters}
}

// Rotation returns the key mapping position p to the symbol at (p+shift) mod Size.
func (a Alphabet) Rotation(shift int) Key {
	shift = ((shift % Size) + Size) % Size

	buf := make([]byte, Size)
	for p := 0; p < Size; p++ {
		buf[p] = a.letters[(p+shift)%Size]
	}
	return Key{value: string(buf)}
}
