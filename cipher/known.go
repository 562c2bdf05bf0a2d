package cipher

import (
	"strings"

	"gomod.pri/subcrack/alphabet"
)

// BlockSize is the letter-group width of encrypted output.
const BlockSize = 5

// Presets are the ready-made keys offered by the command line, selected as 1..3.
var Presets = []alphabet.Key{
	alphabet.MustKey("zyxwvutsrqponmlkjihgfedcba"),
	alphabet.MustKey("lazybcdefghijkmnopqrstuvwx"),
	alphabet.MustKey("mnbvcxzlkjhgfdsapoiuytrewq"),
}

// Preset returns the n-th preset key, counting from 1.
func Preset(n int) (alphabet.Key, bool) {
	if n < 1 || n > len(Presets) {
		return alphabet.Key{}, false
	}
	return Presets[n-1], true
}

// Encrypt keeps the letters of message, substitutes plain symbol p with key.At(p)
// and groups the result in blocks of BlockSize separated by single spaces.
func Encrypt(ab alphabet.Alphabet, key alphabet.Key, message string) string {
	letters := ab.Letters(message)

	var sb strings.Builder
	sb.Grow(len(letters) + len(letters)/BlockSize)
	for i := 0; i < len(letters); i++ {
		if i > 0 && i%BlockSize == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(key.At(ab.Index(letters[i])))
	}
	return sb.String()
}

// Segmenter splits a letter stream into words, returning nil on failure.
type Segmenter interface {
	Form(stream string) []string
}

type Decryption struct {
	Stream string   // decoded letters, no spaces
	Words  []string // empty when the stream could not be segmented
}

// Segmented reports whether the stream was split into words.
func (d Decryption) Segmented() bool {
	return len(d.Words) > 0
}

// Text returns the words joined by spaces, or the raw stream when unsegmented.
func (d Decryption) Text() string {
	if !d.Segmented() {
		return d.Stream
	}
	return strings.Join(d.Words, " ")
}

// Decrypt reverses the substitution of key and re-segments the result.
func Decrypt(ab alphabet.Alphabet, key alphabet.Key, ciphertext string, seg Segmenter) Decryption {
	stream := Decode(ab, key, ciphertext)
	return Decryption{
		Stream: stream,
		Words:  seg.Form(stream),
	}
}
