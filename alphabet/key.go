package alphabet

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Key is a substitution key: position p of the alphabet maps to symbol Key.At(p).
// Keys are values; every transformation returns a new Key.
type Key struct {
	value string
}

// NewKey validates that s is a permutation of the Size lowercase letters.
func NewKey(s string) (Key, error) {
	if len(s) != Size {
		return Key{}, fmt.Errorf("key must have %d symbols, got %d", Size, len(s))
	}

	var seen [256]bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return Key{}, fmt.Errorf("key symbol %q is not a lowercase ascii letter", c)
		}
		if seen[c] {
			return Key{}, fmt.Errorf("key symbol %q repeats", c)
		}
		seen[c] = true
	}

	return Key{value: s}, nil
}

// MustKey is NewKey for keys built by code; an invalid key is a programming error.
func MustKey(s string) Key {
	k, err := NewKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

func (k Key) String() string {
	return k.value
}

func (k Key) IsZero() bool {
	return k.value == ""
}

// At returns the symbol at position p.
func (k Key) At(p int) byte {
	return k.value[p]
}

// IndexOf returns the position of symbol c in the key, or -1.
func (k Key) IndexOf(c byte) int {
	return strings.IndexByte(k.value, c)
}

// Reverse returns the key with its symbols in reverse order.
func (k Key) Reverse() Key {
	return Key{value: string(lo.Reverse([]byte(k.value)))}
}

// Inverse returns the key that undoes decoding with k over alphabet a.
func (k Key) Inverse(a Alphabet) Key {
	buf := make([]byte, Size)
	for p := 0; p < Size; p++ {
		buf[a.Index(k.value[p])] = a.At(p)
	}
	return Key{value: string(buf)}
}

func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.value), nil
}

// UnmarshalText accepts a permutation, or an empty string for the zero key.
func (k *Key) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*k = Key{}
		return nil
	}
	parsed, err := NewKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
