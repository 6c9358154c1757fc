package hub

import "errors"

var (
	// ErrEmptyTopic is returned when subscribing to or publishing on an empty topic name.
	ErrEmptyTopic = errors.New("topic name is empty")

	// ErrNilHandler is returned when subscribing with a nil callback.
	ErrNilHandler = errors.New("subscriber callback is nil")

	// ErrClosed is returned when operating on a closed hub.
	ErrClosed = errors.New("hub is closed")
)
