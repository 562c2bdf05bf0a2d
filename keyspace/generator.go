// Package keyspace builds the ordered pool of candidate substitution keys for
// one attack.
package keyspace

import (
	"errors"
	"math/rand/v2"
	"slices"

	"github.com/samber/lo"
	"gomod.pri/subcrack/alphabet"
	"gomod.pri/subcrack/lexicon"
	"gomod.pri/subcrack/xerror"
	"gomod.pri/subcrack/xvalidate"
)

const (
	DefaultPoolSize = 500000
	DefaultAnchors  = 1

	// frequency draws allowed per requested key
	drawsPerKey = 4
)

type Config struct {
	PoolSize    int `json:",default=500000" validate:"gte=26" label:"pool size"`
	Anchors     int `json:",default=1" validate:"gte=0,lte=26" label:"anchors"`
	TailAnchors int `json:",default=0" validate:"gte=0,lte=26" label:"tail anchors"`
}

func DefaultConfig() Config {
	return Config{
		PoolSize: DefaultPoolSize,
		Anchors:  DefaultAnchors,
	}
}

type Generator struct {
	ab  alphabet.Alphabet
	cfg Config
}

func NewGenerator(ab alphabet.Alphabet, cfg Config) (*Generator, error) {
	if err := xvalidate.Validate(cfg); err != nil {
		return nil, xerror.New(xerror.CodeInvalidParams, err, true)
	}
	if cfg.Anchors+cfg.TailAnchors > alphabet.Size {
		return nil, xerror.New(xerror.CodeInvalidParams,
			errors.New("anchors and tail anchors must not exceed 26 together"), true)
	}
	return &Generator{ab: ab, cfg: cfg}, nil
}

// Rotational returns the 26 Caesar shifts, identity first.
func (g *Generator) Rotational() []alphabet.Key {
	keys := make([]alphabet.Key, alphabet.Size)
	for s := range keys {
		keys[s] = g.ab.Rotation(s)
	}
	return keys
}

// DictionarySeeded returns one key per dictionary word in the dictionary's
// sorted order: the word's distinct letters by first appearance, then the
// unused alphabet letters in alphabet order.
func (g *Generator) DictionarySeeded(dict *lexicon.Dictionary) []alphabet.Key {
	return lo.Map(dict.Words(), func(word string, _ int) alphabet.Key {
		return g.wordKey(word)
	})
}

func (g *Generator) wordKey(word string) alphabet.Key {
	var used [256]bool
	buf := make([]byte, 0, alphabet.Size)

	for i := 0; i < len(word); i++ {
		if c := word[i]; !used[c] {
			used[c] = true
			buf = append(buf, c)
		}
	}
	for p := 0; p < alphabet.Size; p++ {
		if c := g.ab.At(p); !used[c] {
			buf = append(buf, c)
		}
	}

	return alphabet.MustKey(string(buf))
}

// Reversed returns the character-reversed form of every key.
func (g *Generator) Reversed(keys []alphabet.Key) []alphabet.Key {
	return lo.Map(keys, func(k alphabet.Key, _ int) alphabet.Key {
		return k.Reverse()
	})
}

// FrequencySeeded draws up to n distinct keys that decode the most frequent
// ciphertext letters (observed) to the most frequent reference letters (ref).
// The Anchors top ranks and TailAnchors bottom ranks are fixed; the other
// positions get the leftover letters in a random order from rnd. Keys for which
// skip returns true are not returned. Drawing stops after n*4 attempts or once
// every distinct completion has been seen.
func (g *Generator) FrequencySeeded(ref, observed lexicon.FrequencyTable, n int, rnd *rand.Rand,
	skip func(alphabet.Key) bool) []alphabet.Key {
	if n <= 0 {
		return nil
	}

	var (
		partial [alphabet.Size]byte
		placed  [256]bool
	)
	anchor := func(rank int) {
		partial[g.ab.Index(ref.At(rank))] = observed.At(rank)
		placed[observed.At(rank)] = true
	}
	for r := 0; r < g.cfg.Anchors; r++ {
		anchor(r)
	}
	for r := alphabet.Size - g.cfg.TailAnchors; r < alphabet.Size; r++ {
		anchor(r)
	}

	var free []int
	var leftover []byte
	for p := 0; p < alphabet.Size; p++ {
		if partial[p] == 0 {
			free = append(free, p)
		}
		if c := g.ab.At(p); !placed[c] {
			leftover = append(leftover, c)
		}
	}

	var (
		completions = permutations(len(leftover), n*drawsPerKey)
		seen        = make(map[alphabet.Key]struct{}, n)
		keys        = make([]alphabet.Key, 0, n)
	)
	for draw := 0; draw < n*drawsPerKey && len(keys) < n && len(seen) < completions; draw++ {
		rnd.Shuffle(len(leftover), func(i, j int) {
			leftover[i], leftover[j] = leftover[j], leftover[i]
		})

		buf := partial
		for i, p := range free {
			buf[p] = leftover[i]
		}

		key := alphabet.MustKey(string(buf[:]))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if skip != nil && skip(key) {
			continue
		}
		keys = append(keys, key)
	}

	return keys
}

// permutations returns n! or limit, whichever is smaller.
func permutations(n, limit int) int {
	total := 1
	for i := 2; i <= n; i++ {
		total *= i
		if total >= limit {
			return limit
		}
	}
	return total
}

// Build assembles the candidate pool. The target size is filled in the order
// rotational, dictionary, reversed (of the rotational and dictionary keys
// taken), frequency; the frequency strategy gets whatever is left. Keys that
// repeat an earlier key are dropped.
func (g *Generator) Build(dict *lexicon.Dictionary, ref, observed lexicon.FrequencyTable, rnd *rand.Rand) *Pool {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	b := newBuilder(g.cfg.PoolSize)

	b.add(Rotational, g.Rotational())
	if dict != nil {
		b.add(Dictionary, g.DictionarySeeded(dict))
	}
	b.add(Reversed, g.Reversed(slices.Concat(b.segment(Rotational), b.segment(Dictionary))))
	b.add(Frequency, g.FrequencySeeded(ref, observed, b.remaining(), rnd, b.has))

	return b.pool()
}
