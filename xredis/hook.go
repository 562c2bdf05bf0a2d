package xredis

import (
	"context"
	"errors"
	"net"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gomod.pri/subcrack/xtrace"
)

var dbSystem = attribute.String("db.system", "redis")

// TracingHook opens a span per redis command or pipeline. Command arguments
// are not recorded; cache values can be large.
type TracingHook struct{}

func (TracingHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (TracingHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		ctx, span := xtrace.Tracer().Start(ctx, "redis."+cmd.Name())
		defer span.End()
		span.SetAttributes(dbSystem, attribute.String("db.operation", cmd.Name()))

		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, redis.Nil) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return err
	}
}

func (TracingHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		ctx, span := xtrace.Tracer().Start(ctx, "redis.pipeline")
		defer span.End()
		span.SetAttributes(dbSystem, attribute.Int("db.statement.count", len(cmds)))

		err := next(ctx, cmds)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return err
	}
}
