package transport

import "errors"

var (
	// ErrNotConnected is returned for operations that need a live
	// connection.
	ErrNotConnected = errors.New("transport is not connected")
	// ErrInvalidFilter is returned for malformed subscription filters.
	ErrInvalidFilter = errors.New("invalid topic filter")
	// ErrInvalidTopic is returned for publish topics that are empty or
	// contain wildcards.
	ErrInvalidTopic = errors.New("invalid topic name")
	// ErrInvalidQoS is returned for the reserved QoS level.
	ErrInvalidQoS = errors.New("invalid qos level")
	// ErrUnsupportedTransport is returned by factories for unknown
	// transport kinds.
	ErrUnsupportedTransport = errors.New("unsupported transport kind")
)
