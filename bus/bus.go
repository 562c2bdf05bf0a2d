// Package bus is an in-process publish/subscribe event bus. Handlers are plain
// functions; a handler may return nothing or a single error.
package bus

import (
	"fmt"
	"reflect"
	"sync"
)

type EventTopic string

type Subscriber interface {
	Subscribe(topic EventTopic, fn any) error
	SubscribeOnce(topic EventTopic, fn any) error
	Unsubscribe(topic EventTopic, fn any) error
}

type Publisher interface {
	Publish(topic EventTopic, args ...any) error
}

type Bus interface {
	Subscriber
	Publisher
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

type eventHandler struct {
	callback reflect.Value
	once     bool
}

type EventBus struct {
	handlers map[EventTopic][]*eventHandler
	mu       sync.Mutex
}

func New() *EventBus {
	return &EventBus{
		handlers: make(map[EventTopic][]*eventHandler),
	}
}

func (e *EventBus) Subscribe(topic EventTopic, fn any) error {
	return e.subscribe(topic, fn, false)
}

// SubscribeOnce registers fn for the next publication on topic only.
func (e *EventBus) SubscribeOnce(topic EventTopic, fn any) error {
	return e.subscribe(topic, fn, true)
}

func (e *EventBus) subscribe(topic EventTopic, fn any, once bool) error {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return fmt.Errorf("handler for %s is %T, not a func", topic, fn)
	}
	if t.NumOut() > 1 || (t.NumOut() == 1 && t.Out(0) != errorType) {
		return fmt.Errorf("handler for %s must return nothing or an error", topic)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers[topic] = append(e.handlers[topic], &eventHandler{callback: reflect.ValueOf(fn), once: once})
	return nil
}

func (e *EventBus) Unsubscribe(topic EventTopic, fn any) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	callback := reflect.ValueOf(fn)
	handlers := e.handlers[topic]
	for i, h := range handlers {
		if h.callback.Type() == callback.Type() && h.callback.Pointer() == callback.Pointer() {
			e.handlers[topic] = append(handlers[:i:i], handlers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no such handler for topic %s", topic)
}

// Publish calls the handlers of topic in subscription order with args and
// returns the first handler error. Once-handlers are removed before they run,
// so a handler may publish or subscribe without deadlocking.
func (e *EventBus) Publish(topic EventTopic, args ...any) error {
	e.mu.Lock()
	handlers := append([]*eventHandler(nil), e.handlers[topic]...)
	kept := e.handlers[topic][:0:0]
	for _, h := range e.handlers[topic] {
		if !h.once {
			kept = append(kept, h)
		}
	}
	e.handlers[topic] = kept
	e.mu.Unlock()

	for _, h := range handlers {
		if err := h.call(args); err != nil {
			return err
		}
	}
	return nil
}

func (h *eventHandler) call(args []any) error {
	funcType := h.callback.Type()
	if funcType.NumIn() != len(args) {
		return fmt.Errorf("handler takes %d args, got %d", funcType.NumIn(), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, v := range args {
		if v == nil {
			in[i] = reflect.New(funcType.In(i)).Elem()
			continue
		}
		in[i] = reflect.ValueOf(v)
		if !in[i].Type().AssignableTo(funcType.In(i)) {
			return fmt.Errorf("handler arg %d: %s is not assignable to %s", i, in[i].Type(), funcType.In(i))
		}
	}

	out := h.callback.Call(in)
	if len(out) == 1 && !out[0].IsNil() {
		return out[0].Interface().(error)
	}
	return nil
}
