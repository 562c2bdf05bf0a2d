// Package segment splits an unbroken letter stream into dictionary words.
//
// The Former is greedy: from each confirmed boundary it keeps extending the
// candidate and remembers the longest dictionary word seen, then commits that
// word and moves on. It never backtracks, so a stream that a shorter choice
// would have segmented can still be rejected. Two heuristics bound the work per
// stream and are tunable through Config:
//
//   - MaxOneLetterRun: more consecutive one-letter words than this rejects the
//     stream ("a a a a ..." decodings).
//   - MaxLookahead: once the candidate is longer than this without being a
//     word, the scan from the current boundary stops.
package segment

import (
	"gomod.pri/subcrack/xerror"
	"gomod.pri/subcrack/xvalidate"
)

const (
	DefaultMaxOneLetterRun = 3
	DefaultMaxLookahead    = 20
)

type Config struct {
	MaxOneLetterRun int `json:",default=3" validate:"gte=0" label:"max one-letter run"`
	MaxLookahead    int `json:",default=20" validate:"gte=1" label:"max lookahead"`
}

func DefaultConfig() Config {
	return Config{
		MaxOneLetterRun: DefaultMaxOneLetterRun,
		MaxLookahead:    DefaultMaxLookahead,
	}
}

// Lexicon is the word lookup the Former needs.
type Lexicon interface {
	Has(word string) bool
}

type Former struct {
	lexicon Lexicon
	cfg     Config
}

func NewFormer(lexicon Lexicon, cfg Config) (*Former, error) {
	if err := xvalidate.Validate(cfg); err != nil {
		return nil, xerror.New(xerror.CodeInvalidParams, err, true)
	}
	return &Former{lexicon: lexicon, cfg: cfg}, nil
}

// Form returns the words of stream in order, or nil when the stream cannot be
// segmented. It never returns a partial segmentation.
func (f *Former) Form(stream string) []string {
	var (
		words        []string
		oneLetterRun int
		pos          int
	)

	for pos < len(stream) {
		end := -1

		for i := pos; i < len(stream); i++ {
			candidate := stream[pos : i+1]

			if f.lexicon.Has(candidate) {
				if len(candidate) == 1 {
					oneLetterRun++
				} else {
					oneLetterRun = 0
				}

				if oneLetterRun > f.cfg.MaxOneLetterRun {
					break
				}
				end = i + 1
			} else if len(candidate) > f.cfg.MaxLookahead {
				break
			}
		}

		if end < 0 {
			return nil
		}

		words = append(words, stream[pos:end])
		pos = end
	}

	return words
}
