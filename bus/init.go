package bus

var globalEventBus = New()

// Default returns the process-wide bus.
func Default() Bus {
	return globalEventBus
}

func Subscribe(topic EventTopic, fn any) error {
	return globalEventBus.Subscribe(topic, fn)
}

func SubscribeOnce(topic EventTopic, fn any) error {
	return globalEventBus.SubscribeOnce(topic, fn)
}

func Unsubscribe(topic EventTopic, fn any) error {
	return globalEventBus.Unsubscribe(topic, fn)
}

func Publish(topic EventTopic, args ...any) error {
	return globalEventBus.Publish(topic, args...)
}
