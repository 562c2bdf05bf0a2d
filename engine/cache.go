package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/hash"
	"github.com/zeromicro/go-zero/core/jsonx"
	"github.com/zeromicro/go-zero/core/logc"
)

// cacheKey identifies everything that decides an attack's result.
func (e *Engine) cacheKey(stream string) string {
	return hash.Md5Hex([]byte(strings.Join([]string{
		stream,
		e.dict.Fingerprint(),
		e.ref.String(),
		fmt.Sprintf("%d/%d/%d/%d/%d/%d", e.cfg.PoolSize, e.cfg.Anchors, e.cfg.TailAnchors, e.cfg.Seed,
			e.cfg.Segment.MaxOneLetterRun, e.cfg.Segment.MaxLookahead),
	}, "\n")))
}

// lookup returns a cached result; cache failures count as misses.
func (e *Engine) lookup(ctx context.Context, key string) (Result, bool) {
	if e.cache == nil {
		return Result{}, false
	}

	data, ok, err := e.cache.Get(ctx, key)
	if err != nil {
		logc.Errorf(ctx, "result cache get %s: %v", key, err)
		return Result{}, false
	}
	if !ok {
		return Result{}, false
	}

	var res Result
	if err := jsonx.Unmarshal(data, &res); err != nil {
		logc.Errorf(ctx, "result cache decode %s: %v", key, err)
		return Result{}, false
	}
	return res, true
}

func (e *Engine) store(ctx context.Context, key string, res Result) {
	if e.cache == nil {
		return
	}

	data, err := jsonx.Marshal(res)
	if err != nil {
		logc.Errorf(ctx, "result cache encode %s: %v", key, err)
		return
	}
	if err := e.cache.Set(ctx, key, data); err != nil {
		logc.Errorf(ctx, "result cache set %s: %v", key, err)
	}
}
