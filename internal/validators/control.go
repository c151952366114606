package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/worldsync/internal/transport"
	"github.com/MKhiriev/worldsync/models"
)

// Field names accepted by ControlValidator to scope validation.
const (
	FieldHost         = "host"
	FieldPort         = "port"
	FieldTransport    = "transport"
	FieldSessionID    = "session_id"
	FieldEntityID     = "entity_id"
	FieldState        = "state"
	FieldResourceRefs = "resource_refs"
	FieldTopic        = "topic"
	FieldQoS          = "qos"
	FieldClientID     = "client_id"
)

// ControlValidator validates control API requests before they reach the
// synchronizers.
type ControlValidator struct{}

// NewControlValidator returns a Validator for control API requests.
func NewControlValidator() Validator {
	return &ControlValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. A string is validated as a client id.
func (v *ControlValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ServiceAddress:
		return v.validateAddress(value.Host, value.Port, fields...)
	case *models.ServiceAddress:
		return v.validateAddress(value.Host, value.Port, fields...)

	case models.AddSynchronizerRequest:
		return v.validateAddSynchronizer(value, fields...)
	case *models.AddSynchronizerRequest:
		return v.validateAddSynchronizer(*value, fields...)

	case models.SessionRequest:
		return v.validateSessionRequest(value, fields...)
	case *models.SessionRequest:
		return v.validateSessionRequest(*value, fields...)

	case models.EntityRequest:
		return v.validateEntityRequest(value, fields...)
	case *models.EntityRequest:
		return v.validateEntityRequest(*value, fields...)

	case models.MessageRequest:
		return v.validateMessageRequest(value, fields...)
	case *models.MessageRequest:
		return v.validateMessageRequest(*value, fields...)

	case string:
		if strings.TrimSpace(value) == "" {
			return ErrEmptyClientID
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *ControlValidator) validateAddress(host string, port int, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldHost, FieldPort}
	}

	for _, f := range fields {
		switch f {
		case FieldHost:
			if strings.TrimSpace(host) == "" {
				return ErrInvalidHost
			}
		case FieldPort:
			if port < 1 || port > 65535 {
				return ErrInvalidPort
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *ControlValidator) validateAddSynchronizer(req models.AddSynchronizerRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldHost, FieldPort, FieldTransport}
	}

	for _, f := range fields {
		switch f {
		case FieldHost, FieldPort:
			if err := v.validateAddress(req.Host, req.Port, f); err != nil {
				return err
			}
		case FieldTransport:
			if !req.Transport.Supported() {
				return fmt.Errorf("%w: got %q", ErrInvalidTransport, req.Transport)
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *ControlValidator) validateSessionRequest(req models.SessionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSessionID}
	}

	for _, f := range fields {
		switch f {
		case FieldSessionID:
			if _, err := uuid.Parse(req.SessionID); err != nil {
				return ErrInvalidSessionID
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateEntityRequest checks an add or update request. The entity id is
// only checked when present unless FieldEntityID is requested explicitly,
// because the daemon generates ids for adds.
func (v *ControlValidator) validateEntityRequest(req models.EntityRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldState, FieldResourceRefs}
		if req.EntityID != "" {
			fields = append(fields, FieldEntityID)
		}
	}

	for _, f := range fields {
		switch f {
		case FieldEntityID:
			if req.EntityID == "" {
				return ErrEmptyEntityID
			}
			if strings.ContainsAny(req.EntityID, "/+#") {
				return ErrInvalidEntityID
			}
		case FieldState:
			if err := req.State.Validate(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidEntityState, err)
			}
		case FieldResourceRefs:
			for _, ref := range req.ResourceRefs {
				if strings.TrimSpace(ref) == "" {
					return ErrEmptyResourceRef
				}
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *ControlValidator) validateMessageRequest(req models.MessageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTopic, FieldQoS}
	}

	for _, f := range fields {
		switch f {
		case FieldTopic:
			if !transport.ValidTopic(req.Topic) {
				return ErrInvalidTopic
			}
		case FieldQoS:
			if req.QoS != nil && !req.QoS.Valid() {
				return ErrInvalidQoS
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}
