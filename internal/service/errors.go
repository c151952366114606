package service

import "errors"

var (
	// Configuration errors: caller mistakes reported synchronously.
	ErrSynchronizerExists   = errors.New("synchronizer for this address already exists")
	ErrSynchronizerNotFound = errors.New("synchronizer not found")
	ErrUnsupportedTransport = errors.New("unsupported transport kind")
	ErrInvalidAddress       = errors.New("invalid service address")
	ErrInvalidSessionID     = errors.New("session id must be a UUID")
	ErrSessionExists        = errors.New("a session already exists for this service")
	ErrAlreadyJoined        = errors.New("already joined a session on this service")
	ErrInvalidTopic         = errors.New("invalid application topic")
	ErrInvalidQoS           = errors.New("invalid qos level")
	ErrInvalidEntity        = errors.New("invalid entity")
	ErrInvalidRequest       = errors.New("invalid control request")

	// State errors: the operation needs a state the synchronizer is not in.
	ErrNotConnected       = errors.New("synchronizer is not connected")
	ErrAlreadyConnected   = errors.New("synchronizer is already connected")
	ErrNoSession          = errors.New("no active session")
	ErrSynchronizerClosed = errors.New("synchronizer is closed")
	ErrConnectionFailed   = errors.New("broker connection failed")
	ErrJoinFailed         = errors.New("session join was not acknowledged")
	ErrUnknownParticipant = errors.New("unknown participant")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrJournalDisabled       = errors.New("event journal is disabled")
)
