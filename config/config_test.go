package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gomod.pri/subcrack/engine"
	"gomod.pri/subcrack/xcache"
	"gomod.pri/subcrack/xerror"
)

const sample = `
Log:
  Mode: console
  Level: error
Engine:
  PoolSize: 1000
  Seed: 7
  Timeout: 2s
  Segment:
    MaxLookahead: 12
Resources:
  Dictionary: words.txt
  Storage:
    Provider: s3
    Bucket: lexicons
    Region: eu-west-1
Cache:
  Type: redis
  Redis:
    Addr: 127.0.0.1:6390
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "error", c.Log.Level)

	assert.Equal(t, 1000, c.Engine.PoolSize)
	assert.Equal(t, uint64(7), c.Engine.Seed)
	assert.Equal(t, 2*time.Second, c.Engine.Timeout)
	assert.Equal(t, 1, c.Engine.Anchors)
	assert.Equal(t, engine.DefaultBatchSize, c.Engine.BatchSize)
	assert.Equal(t, 3, c.Engine.Segment.MaxOneLetterRun)
	assert.Equal(t, 12, c.Engine.Segment.MaxLookahead)

	assert.Equal(t, "words.txt", c.Resources.Dictionary)
	assert.Empty(t, c.Resources.Frequencies)
	assert.Equal(t, "s3", c.Resources.Storage.Provider)
	assert.EqualValues(t, "lexicons", c.Resources.Storage.Bucket)

	assert.Equal(t, xcache.TypeRedis, c.Cache.Type)
	assert.Equal(t, "127.0.0.1:6390", c.Cache.Redis.Addr)
	assert.Equal(t, 24*time.Hour, c.Cache.TTL)
	assert.Equal(t, 128, c.Cache.Capacity)
	assert.Equal(t, "subcrack:", c.Cache.Prefix)

	assert.False(t, c.Trace.Enabled)
	assert.Equal(t, 64*1024, c.Trace.AttrMaxBytes)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("Cache:\n  Type: memcached\n"))
	require.Error(t, err)
	assert.True(t, xerror.Is(err, xerror.CodeInvalidParams))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subcrack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1000, c.Engine.PoolSize)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, engine.DefaultConfig(), c.Engine)
	assert.Equal(t, xcache.TypeNone, c.Cache.Type)
	assert.Empty(t, c.Resources.Dictionary)
}
