package xtrace

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewLogProcessor returns a span processor that writes every finished span to
// the log and reports attributes larger than attrMaxBytes.
func NewLogProcessor(attrMaxBytes int) sdktrace.SpanProcessor {
	return &logProcessor{attrMaxBytes: attrMaxBytes}
}

type logProcessor struct {
	attrMaxBytes int
}

func (p *logProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (p *logProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	traceID := s.SpanContext().TraceID().String()

	size := 0
	for _, attr := range s.Attributes() {
		n := attributeSize(attr)
		size += n
		if p.attrMaxBytes > 0 && n > p.attrMaxBytes {
			logx.Errorf("span %s trace %s: attribute %s is %d bytes (limit %d)",
				s.Name(), traceID, attr.Key, n, p.attrMaxBytes)
		}
	}

	logx.Debugw("span finished",
		logx.Field("span", s.Name()),
		logx.Field("trace", traceID),
		logx.Field("duration", s.EndTime().Sub(s.StartTime()).String()),
		logx.Field("attributes", len(s.Attributes())),
		logx.Field("bytes", size),
		logx.Field("status", s.Status().Code.String()),
	)
}

func (p *logProcessor) Shutdown(context.Context) error   { return nil }
func (p *logProcessor) ForceFlush(context.Context) error { return nil }

// attributeSize approximates the encoded size of attr in bytes.
func attributeSize(attr attribute.KeyValue) int {
	size := len(attr.Key)

	switch attr.Value.Type() {
	case attribute.STRING:
		size += len(attr.Value.AsString())
	case attribute.BOOL:
		size++
	case attribute.INT64, attribute.FLOAT64:
		size += 8
	case attribute.STRINGSLICE:
		for _, s := range attr.Value.AsStringSlice() {
			size += len(s)
		}
	case attribute.BOOLSLICE:
		size += len(attr.Value.AsBoolSlice())
	case attribute.INT64SLICE:
		size += len(attr.Value.AsInt64Slice()) * 8
	case attribute.FLOAT64SLICE:
		size += len(attr.Value.AsFloat64Slice()) * 8
	default:
		size += len(fmt.Sprintf("%v", attr.Value.AsInterface()))
	}

	return size
}
