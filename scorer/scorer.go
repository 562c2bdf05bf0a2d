// Package scorer ranks segmented decodings by mean word length.
package scorer

import (
	"github.com/samber/lo"
	"gomod.pri/subcrack/alphabet"
	"gomod.pri/subcrack/keyspace"
)

// Candidate is one key whose decoding was segmented into words.
type Candidate struct {
	Index    int // canonical pool index
	Key      alphabet.Key
	Strategy keyspace.Strategy
	Words    []string
}

// Score is a mean word length kept as an exact fraction.
type Score struct {
	Letters int `json:"letters"`
	Words   int `json:"words"`
}

func Measure(words []string) Score {
	return Score{
		Letters: lo.SumBy(words, func(w string) int { return len(w) }),
		Words:   len(words),
	}
}

func (s Score) Mean() float64 {
	if s.Words == 0 {
		return 0
	}
	return float64(s.Letters) / float64(s.Words)
}

// Compare returns -1, 0 or +1 as s is below, equal to or above o.
func (s Score) Compare(o Score) int {
	l, r := s.Letters*o.Words, o.Letters*s.Words
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

type Selection struct {
	Candidate
	Score Score
}

// Selector keeps the best candidate offered so far: the greatest mean word
// length, then the lowest pool index. Offer order does not matter.
// A Selector is not safe for concurrent use.
type Selector struct {
	best    Selection
	offered int
}

// Offer considers c; candidates without words are ignored.
func (s *Selector) Offer(c Candidate) {
	if len(c.Words) == 0 {
		return
	}

	score := Measure(c.Words)
	s.offered++
	if s.offered == 1 {
		s.best = Selection{Candidate: c, Score: score}
		return
	}

	cmp := score.Compare(s.best.Score)
	if cmp > 0 || (cmp == 0 && c.Index < s.best.Index) {
		s.best = Selection{Candidate: c, Score: score}
	}
}

// Len returns how many non-empty candidates were offered.
func (s *Selector) Len() int {
	return s.offered
}

func (s *Selector) Best() (Selection, bool) {
	return s.best, s.offered > 0
}

// Select returns the best of cands, or false when none has words.
func Select(cands []Candidate) (Selection, bool) {
	var s Selector
	for _, c := range cands {
		s.Offer(c)
	}
	return s.Best()
}
