package engine

import (
	"context"

	"github.com/zeromicro/go-zero/core/logc"
	"gomod.pri/subcrack/bus"
	"gomod.pri/subcrack/keyspace"
)

const (
	TopicAttackStarted  bus.EventTopic = "attack.started"
	TopicPoolBuilt      bus.EventTopic = "pool.built"
	TopicAttackFinished bus.EventTopic = "attack.finished"
)

// AttackStarted is published with TopicAttackStarted.
type AttackStarted struct {
	AttackID string
	Letters  int
}

// PoolBuilt is published with TopicPoolBuilt.
type PoolBuilt struct {
	AttackID string
	Stats    keyspace.Stats
}

// TopicAttackFinished carries the Result itself.

func (e *Engine) publish(ctx context.Context, topic bus.EventTopic, event any) {
	if e.bus == nil {
		return
	}
	if err := e.bus.Publish(topic, event); err != nil {
		logc.Errorf(ctx, "publish %s: %v", topic, err)
	}
}
