// Package engine runs ciphertext-only attacks on monoalphabetic substitution
// ciphers: it builds the candidate key pool, decodes and segments the
// ciphertext under every key on a worker pool and keeps the most plausible
// decoding.
package engine

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/zeromicro/go-zero/core/logc"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gomod.pri/subcrack/alphabet"
	"gomod.pri/subcrack/bus"
	"gomod.pri/subcrack/cipher"
	"gomod.pri/subcrack/keyspace"
	"gomod.pri/subcrack/lexicon"
	"gomod.pri/subcrack/scorer"
	"gomod.pri/subcrack/segment"
	"gomod.pri/subcrack/snowflake"
	"gomod.pri/subcrack/xcache"
	"gomod.pri/subcrack/xerror"
	"gomod.pri/subcrack/xtrace"
	"gomod.pri/subcrack/xvalidate"
)

type Engine struct {
	ab     alphabet.Alphabet
	dict   *lexicon.Dictionary
	ref    lexicon.FrequencyTable
	cfg    Config
	gen    *keyspace.Generator
	former *segment.Former
	bus    bus.Publisher
	cache  xcache.Cache
}

type Option func(*Engine)

// WithBus publishes attack lifecycle events to b.
func WithBus(b bus.Publisher) Option {
	return func(e *Engine) {
		e.bus = b
	}
}

// WithCache reuses found results across attacks on the same ciphertext.
func WithCache(c xcache.Cache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// New prepares an engine over dict and the reference letter ranking ref.
// Both are shared read-only by every attack.
func New(ab alphabet.Alphabet, dict *lexicon.Dictionary, ref lexicon.FrequencyTable, cfg Config, opts ...Option) (*Engine, error) {
	if err := xvalidate.Validate(cfg); err != nil {
		return nil, xerror.New(xerror.CodeInvalidParams, err, true)
	}
	if dict == nil || dict.Len() == 0 {
		return nil, xerror.New(xerror.CodeMalformedResource, errors.New("dictionary has no words"), true)
	}
	if ref.IsZero() {
		return nil, xerror.New(xerror.CodeInvalidParams, errors.New("reference letter frequencies not set"), true)
	}

	gen, err := keyspace.NewGenerator(ab, cfg.keyspace())
	if err != nil {
		return nil, err
	}
	former, err := segment.NewFormer(dict, cfg.Segment)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		ab:     ab,
		dict:   dict,
		ref:    ref,
		cfg:    cfg,
		gen:    gen,
		former: former,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Former returns the sentence former the engine segments decodings with.
func (e *Engine) Former() *segment.Former {
	return e.former
}

// Attack searches the key pool for the most plausible decoding of ciphertext.
// A ciphertext without letters is CodeInvalidParams. Running out of time is not
// an error: the keys evaluated so far are scored and Result.Truncated is set.
// This also holds for a ctx that is already done, which evaluates no key.
func (e *Engine) Attack(ctx context.Context, ciphertext string) (Result, error) {
	start := time.Now()

	ctx, span := xtrace.Tracer().Start(ctx, "engine.Attack")
	defer span.End()

	res := Result{
		AttackID: snowflake.GenerateString(),
		TraceID:  xtrace.TraceID(ctx),
	}

	stream := e.ab.Letters(ciphertext)
	if stream == "" {
		err := xerror.RaiseCtx(ctx, xerror.CodeInvalidParams, errors.New("ciphertext has no letters"))
		span.SetStatus(codes.Error, err.Error())
		attackTotal.Inc("error")
		return Result{}, err
	}
	span.SetAttributes(
		attribute.String("attack.id", res.AttackID),
		attribute.Int("attack.letters", len(stream)),
	)

	cacheKey := e.cacheKey(stream)
	if cached, ok := e.lookup(ctx, cacheKey); ok {
		cached.AttackID, cached.TraceID, cached.Cached = res.AttackID, res.TraceID, true
		cached.Elapsed = time.Since(start)
		e.finish(ctx, cached)
		return cached, nil
	}

	e.publish(ctx, TopicAttackStarted, AttackStarted{AttackID: res.AttackID, Letters: len(stream)})

	observed := lexicon.RankLetters(e.ab, stream)
	pool := e.gen.Build(e.dict, e.ref, observed, e.random())
	res.PoolSize = pool.Len()
	logc.Infow(ctx, "candidate pool built",
		logx.Field("attackId", res.AttackID),
		logx.Field("pool", pool.Stats()),
	)
	e.publish(ctx, TopicPoolBuilt, PoolBuilt{AttackID: res.AttackID, Stats: pool.Stats()})

	// Timeout covers the search only and starts once the pool is built.
	searchCtx := ctx
	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	t, err := e.search(searchCtx, stream, pool)
	if err != nil {
		err = xerror.RaiseCtx(ctx, xerror.CodeInternalError, err, res.AttackID)
		span.SetStatus(codes.Error, err.Error())
		attackTotal.Inc("error")
		return Result{}, err
	}

	res.Evaluated = t.evaluated
	res.Matches = t.selector.Len()
	res.Truncated = t.evaluated < pool.Len()
	if sel, ok := t.selector.Best(); ok {
		res.Found = true
		res.Words = sel.Words
		res.Plaintext = strings.Join(sel.Words, " ")
		res.Key = sel.Key
		strategy := sel.Strategy
		res.Strategy = &strategy
		res.Score = sel.Score.Mean()
	}
	res.Elapsed = time.Since(start)

	for s, n := range t.byStrategy {
		candidatesTotal.Add(float64(n), s.String())
	}
	span.SetAttributes(
		attribute.Int("attack.pool", res.PoolSize),
		attribute.Int("attack.evaluated", res.Evaluated),
		attribute.Int("attack.matches", res.Matches),
		attribute.Bool("attack.truncated", res.Truncated),
		attribute.Bool("attack.found", res.Found),
	)

	if res.Found && !res.Truncated {
		e.store(ctx, cacheKey, res)
	}
	e.finish(ctx, res)
	return res, nil
}

// tally is the reducer's view of a search.
type tally struct {
	selector   scorer.Selector
	evaluated  int
	byStrategy map[keyspace.Strategy]int
}

type batchResult struct {
	evaluated int
	matches   []scorer.Candidate
}

// search evaluates pool in batches. Once ctx is done no further batch is
// dispatched; batches already taken by a worker still complete.
func (e *Engine) search(ctx context.Context, stream string, pool *keyspace.Pool) (*tally, error) {
	batches := lo.Chunk(lo.Range(pool.Len()), e.cfg.BatchSize)

	return mr.MapReduce(func(source chan<- []int) {
		for _, batch := range batches {
			if ctx.Err() != nil {
				return
			}
			select {
			case source <- batch:
			case <-ctx.Done():
				return
			}
		}
	}, func(batch []int, writer mr.Writer[batchResult], cancel func(error)) {
		var br batchResult
		for _, i := range batch {
			key := pool.At(i)
			words := e.former.Form(cipher.NewDecoder(e.ab, key).Decode(stream))
			br.evaluated++
			if len(words) > 0 {
				br.matches = append(br.matches, scorer.Candidate{
					Index:    i,
					Key:      key,
					Strategy: pool.Origin(i),
					Words:    words,
				})
			}
		}
		writer.Write(br)
	}, func(pipe <-chan batchResult, writer mr.Writer[*tally], cancel func(error)) {
		t := &tally{byStrategy: make(map[keyspace.Strategy]int)}
		for br := range pipe {
			t.evaluated += br.evaluated
			for _, c := range br.matches {
				t.selector.Offer(c)
				t.byStrategy[c.Strategy]++
			}
		}
		writer.Write(t)
	}, mr.WithWorkers(e.cfg.workers()))
}

func (e *Engine) random() *rand.Rand {
	if e.cfg.Seed != 0 {
		return rand.New(rand.NewPCG(e.cfg.Seed, e.cfg.Seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func (e *Engine) finish(ctx context.Context, res Result) {
	outcome := res.outcome()
	attackTotal.Inc(outcome)
	attackDuration.Observe(res.Elapsed.Milliseconds(), outcome)

	fields := []logx.LogField{
		logx.Field("attackId", res.AttackID),
		logx.Field("outcome", outcome),
		logx.Field("pool", res.PoolSize),
		logx.Field("evaluated", res.Evaluated),
		logx.Field("matches", res.Matches),
		logx.Field("elapsed", res.Elapsed.String()),
	}
	if res.Truncated {
		logx.WithContext(ctx).Sloww("attack truncated by deadline", fields...)
	} else {
		logc.Infow(ctx, "attack finished", fields...)
	}

	e.publish(ctx, TopicAttackFinished, res)
}
