package cipher

import (
	"gomod.pri/subcrack/alphabet"
)

// Decoder turns ciphertext letters into plaintext letters for one key.
// Ciphertext letter c decodes to the alphabet symbol at c's position in the key.
type Decoder struct {
	table [256]byte
}

func NewDecoder(ab alphabet.Alphabet, key alphabet.Key) Decoder {
	var d Decoder
	for p := 0; p < alphabet.Size; p++ {
		d.table[key.At(p)] = ab.At(p)
	}
	return d
}

// Decode maps a letters-only stream; bytes outside the alphabet are dropped.
func (d Decoder) Decode(stream string) string {
	buf := make([]byte, 0, len(stream))
	for i := 0; i < len(stream); i++ {
		if c := d.table[stream[i]]; c != 0 {
			buf = append(buf, c)
		}
	}
	return string(buf)
}

// Decode normalises free-form ciphertext to its letter stream and decodes it with key.
func Decode(ab alphabet.Alphabet, key alphabet.Key, ciphertext string) string {
	return NewDecoder(ab, key).Decode(ab.Letters(ciphertext))
}
