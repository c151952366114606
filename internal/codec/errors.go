package codec

import "errors"

var (
	// ErrMalformedPayload is returned when a payload cannot be decoded or
	// its contents contradict the topic it arrived on.
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrUnknownTopic is returned for topics outside the session scheme.
	ErrUnknownTopic = errors.New("unknown topic")
	// ErrUnknownKind is returned for a message kind the family does not
	// define.
	ErrUnknownKind = errors.New("unknown message kind")
	// ErrUnknownFormat is returned by New for an unsupported wire format.
	ErrUnknownFormat = errors.New("unknown wire format")
)
