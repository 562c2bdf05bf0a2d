package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gomod.pri/subcrack/alphabet"
)

// ErrMalformed marks content errors in a letter-frequency resource.
var ErrMalformed = errors.New("malformed frequency table")

// FrequencyTable ranks the letters of an alphabet, most frequent first.
type FrequencyTable struct {
	letters string
}

// NewFrequencyTable checks that letters is an ordering of the whole alphabet.
func NewFrequencyTable(ab alphabet.Alphabet, letters string) (FrequencyTable, error) {
	if len(letters) != alphabet.Size {
		return FrequencyTable{}, fmt.Errorf("%w: must rank %d letters, got %d", ErrMalformed, alphabet.Size, len(letters))
	}

	var seen [256]bool
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if !ab.Contains(c) {
			return FrequencyTable{}, fmt.Errorf("%w: letter %q is not in the alphabet", ErrMalformed, c)
		}
		if seen[c] {
			return FrequencyTable{}, fmt.Errorf("%w: letter %q repeats", ErrMalformed, c)
		}
		seen[c] = true
	}

	return FrequencyTable{letters: letters}, nil
}

// ReadFrequencyTable parses one letter per line; the first token of a line is
// the letter and line order is rank.
func ReadFrequencyTable(ab alphabet.Alphabet, r io.Reader) (FrequencyTable, error) {
	var sb strings.Builder

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		token := strings.ToLower(fields[0])
		if len(token) != 1 {
			return FrequencyTable{}, fmt.Errorf("%w: line %d: expected a single letter, got %q", ErrMalformed, line, fields[0])
		}
		sb.WriteString(token)
	}
	if err := scanner.Err(); err != nil {
		return FrequencyTable{}, err
	}

	return NewFrequencyTable(ab, sb.String())
}

// RankLetters counts the alphabet letters of stream and ranks them by count.
// Ties keep alphabet order, so absent letters trail in alphabet order.
func RankLetters(ab alphabet.Alphabet, stream string) FrequencyTable {
	var counts [alphabet.Size]int
	for i := 0; i < len(stream); i++ {
		if p := ab.Index(stream[i]); p >= 0 {
			counts[p]++
		}
	}

	order := make([]int, alphabet.Size)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	buf := make([]byte, alphabet.Size)
	for rank, p := range order {
		buf[rank] = ab.At(p)
	}
	return FrequencyTable{letters: string(buf)}
}

// At returns the letter at rank r, 0 being the most frequent.
func (f FrequencyTable) At(r int) byte {
	return f.letters[r]
}

func (f FrequencyTable) String() string {
	return f.letters
}

func (f FrequencyTable) IsZero() bool {
	return f.letters == ""
}
