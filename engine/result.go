package engine

import (
	"time"

	"gomod.pri/subcrack/alphabet"
	"gomod.pri/subcrack/keyspace"
)

// Result is the outcome of one attack. Found is false when no candidate key
// produced a segmentable decoding; Key and Strategy are then unset.
type Result struct {
	Found     bool               `json:"found"`
	Plaintext string             `json:"plaintext,omitempty"`
	Words     []string           `json:"words,omitempty"`
	Key       alphabet.Key       `json:"key,omitzero"`
	Strategy  *keyspace.Strategy `json:"strategy,omitempty"`
	Score     float64            `json:"score"` // mean word length

	AttackID  string        `json:"attackId"`
	TraceID   string        `json:"traceId,omitempty"`
	PoolSize  int           `json:"poolSize"`
	Evaluated int           `json:"evaluated"`
	Matches   int           `json:"matches"`
	Truncated bool          `json:"truncated"`
	Elapsed   time.Duration `json:"elapsed"`
	Cached    bool          `json:"cached"`
}

func (r Result) outcome() string {
	switch {
	case r.Cached:
		return "cached"
	case r.Truncated:
		return "truncated"
	case !r.Found:
		return "no_match"
	default:
		return "found"
	}
}
