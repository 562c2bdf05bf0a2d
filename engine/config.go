package engine

import (
	"runtime"
	"time"

	"gomod.pri/subcrack/keyspace"
	"gomod.pri/subcrack/segment"
	storagetypes "gomod.pri/subcrack/storage/types"
)

const DefaultBatchSize = 512

type Config struct {
	PoolSize    int `json:",default=500000" validate:"gte=26" label:"pool size"`
	Anchors     int `json:",default=1" validate:"gte=0,lte=26" label:"anchors"`
	TailAnchors int `json:",default=0" validate:"gte=0,lte=26" label:"tail anchors"`
	// Seed fixes the random source of frequency-seeded keys; 0 draws a new seed per attack.
	Seed uint64 `json:",optional"`
	// Workers defaults to the number of CPUs.
	Workers   int           `json:",optional" validate:"gte=0" label:"workers"`
	BatchSize int           `json:",default=512" validate:"gte=1" label:"batch size"`
	Timeout   time.Duration `json:",optional" validate:"gte=0" label:"timeout"`
	Segment   segment.Config
}

func DefaultConfig() Config {
	return Config{
		PoolSize:  keyspace.DefaultPoolSize,
		Anchors:   keyspace.DefaultAnchors,
		BatchSize: DefaultBatchSize,
		Segment:   segment.DefaultConfig(),
	}
}

func (c Config) keyspace() keyspace.Config {
	return keyspace.Config{
		PoolSize:    c.PoolSize,
		Anchors:     c.Anchors,
		TailAnchors: c.TailAnchors,
	}
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// Resources names the word list and letter-frequency table of an attack.
// Empty names select the embedded English resources.
type Resources struct {
	Storage     storagetypes.Config
	Dictionary  string `json:",optional"`
	Frequencies string `json:",optional"`
}
