package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidHost        = errors.New("host is required")
	ErrInvalidPort        = errors.New("port must be between 1 and 65535")
	ErrInvalidTransport   = errors.New("transport must be tcp or websocket")
	ErrInvalidSessionID   = errors.New("session id must be a UUID")
	ErrEmptyEntityID      = errors.New("entity id is required")
	ErrInvalidEntityID    = errors.New("entity id must not contain '/', '+' or '#'")
	ErrInvalidEntityState = errors.New("invalid entity state")
	ErrEmptyResourceRef   = errors.New("resource refs must not be empty strings")
	ErrInvalidTopic       = errors.New("topic must be non-empty and free of wildcards")
	ErrInvalidQoS         = errors.New("qos must be 0, 1 or 2")
	ErrEmptyClientID      = errors.New("client id is required")
)
