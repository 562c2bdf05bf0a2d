package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gomod.pri/subcrack/alphabet"
	"gomod.pri/subcrack/keyspace"
)

func candidate(index int, words ...string) Candidate {
	return Candidate{
		Index:    index,
		Key:      alphabet.English.Rotation(index),
		Strategy: keyspace.Rotational,
		Words:    words,
	}
}

func TestMeasure(t *testing.T) {
	s := Measure([]string{"do", "wake", "him", "here", "tonight"})
	assert.Equal(t, Score{Letters: 20, Words: 5}, s)
	assert.InDelta(t, 4.0, s.Mean(), 1e-9)

	assert.Zero(t, Measure(nil).Mean())
}

func TestScore_Compare(t *testing.T) {
	assert.Equal(t, 0, Score{Letters: 6, Words: 2}.Compare(Score{Letters: 9, Words: 3}))
	assert.Equal(t, 1, Score{Letters: 7, Words: 2}.Compare(Score{Letters: 10, Words: 3}))
	assert.Equal(t, -1, Score{Letters: 10, Words: 3}.Compare(Score{Letters: 7, Words: 2}))
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name      string
		cands     []Candidate
		wantOK    bool
		wantIndex int
	}{
		{
			name:   "empty input",
			wantOK: false,
		},
		{
			name:   "only empty sequences",
			cands:  []Candidate{candidate(0), candidate(1)},
			wantOK: false,
		},
		{
			name:      "greatest mean wins",
			cands:     []Candidate{candidate(0, "a", "i"), candidate(1, "the", "cat"), candidate(2, "to", "do")},
			wantOK:    true,
			wantIndex: 1,
		},
		{
			name:      "empty sequence never beats a real one",
			cands:     []Candidate{candidate(0), candidate(5, "a")},
			wantOK:    true,
			wantIndex: 5,
		},
		{
			name:      "tie goes to the lowest pool index",
			cands:     []Candidate{candidate(9, "cat", "sat"), candidate(4, "the", "mat"), candidate(7, "sun")},
			wantOK:    true,
			wantIndex: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, ok := Select(tt.cands)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantIndex, sel.Index)
				assert.NotEmpty(t, sel.Words)
			}
		})
	}
}

func TestSelector_OrderIndependent(t *testing.T) {
	cands := []Candidate{
		candidate(3, "the", "cat", "sat"),
		candidate(1, "sat", "the", "cat"),
		candidate(2, "a", "cat"),
	}

	var forward, backward Selector
	for i := range cands {
		forward.Offer(cands[i])
		backward.Offer(cands[len(cands)-1-i])
	}

	f, _ := forward.Best()
	b, _ := backward.Best()
	assert.Equal(t, 1, f.Index)
	assert.Equal(t, f, b)
	assert.Equal(t, 3, forward.Len())
}
