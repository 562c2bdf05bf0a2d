package keyspace

import (
	"fmt"
	"sort"

	"gomod.pri/subcrack/alphabet"
)

// Strategy names the generation strategy a pool key came from. The numeric
// order is the canonical pool order.
type Strategy int8

const (
	Rotational Strategy = iota
	Dictionary
	Frequency
	Reversed

	numStrategies
)

var strategyNames = [numStrategies]string{"rotational", "dictionary", "frequency", "reversed"}

// Strategies lists every strategy in canonical order.
var Strategies = []Strategy{Rotational, Dictionary, Frequency, Reversed}

func (s Strategy) String() string {
	if s < 0 || s >= numStrategies {
		return "unknown"
	}
	return strategyNames[s]
}

func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	for i, name := range strategyNames {
		if name == string(text) {
			*s = Strategy(i)
			return nil
		}
	}
	return fmt.Errorf("unknown strategy %q", text)
}

// Pool is an ordered, deduplicated sequence of keys: rotational keys first,
// then dictionary, frequency and reversed keys. A Pool is read-only.
type Pool struct {
	keys   []alphabet.Key
	bounds [numStrategies + 1]int
}

type Stats struct {
	Rotational int `json:"rotational"`
	Dictionary int `json:"dictionary"`
	Frequency  int `json:"frequency"`
	Reversed   int `json:"reversed"`
	Total      int `json:"total"`
}

func (p *Pool) Len() int {
	return len(p.keys)
}

// At returns the key at canonical index i.
func (p *Pool) At(i int) alphabet.Key {
	return p.keys[i]
}

// Keys returns the keys in canonical order. The slice must not be modified.
func (p *Pool) Keys() []alphabet.Key {
	return p.keys
}

// Origin returns the strategy of the key at canonical index i.
func (p *Pool) Origin(i int) Strategy {
	s := sort.Search(int(numStrategies), func(s int) bool {
		return p.bounds[s+1] > i
	})
	return Strategy(s)
}

func (p *Pool) count(s Strategy) int {
	return p.bounds[s+1] - p.bounds[s]
}

func (p *Pool) Stats() Stats {
	return Stats{
		Rotational: p.count(Rotational),
		Dictionary: p.count(Dictionary),
		Frequency:  p.count(Frequency),
		Reversed:   p.count(Reversed),
		Total:      p.Len(),
	}
}

type builder struct {
	limit    int
	size     int
	seen     map[alphabet.Key]struct{}
	segments [numStrategies][]alphabet.Key
}

func newBuilder(limit int) *builder {
	return &builder{
		limit: limit,
		seen:  make(map[alphabet.Key]struct{}, min(limit, 1<<16)),
	}
}

// add appends new keys of strategy s while the pool has room.
func (b *builder) add(s Strategy, keys []alphabet.Key) {
	for _, k := range keys {
		if b.size >= b.limit {
			return
		}
		if b.has(k) {
			continue
		}
		b.seen[k] = struct{}{}
		b.segments[s] = append(b.segments[s], k)
		b.size++
	}
}

func (b *builder) has(k alphabet.Key) bool {
	_, ok := b.seen[k]
	return ok
}

func (b *builder) segment(s Strategy) []alphabet.Key {
	return b.segments[s]
}

func (b *builder) remaining() int {
	return b.limit - b.size
}

func (b *builder) pool() *Pool {
	p := &Pool{keys: make([]alphabet.Key, 0, b.size)}
	for _, s := range Strategies {
		p.bounds[s] = len(p.keys)
		p.keys = append(p.keys, b.segments[s]...)
	}
	p.bounds[numStrategies] = len(p.keys)
	return p
}
