package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/worldsync/internal/validators"
	"github.com/MKhiriev/worldsync/models"
)

// ControlValidationService validates control requests before passing them
// to the wrapped ControlService.
type ControlValidationService struct {
	inner     ControlService
	validator validators.Validator
}

func NewControlValidationService() ControlServiceWrapper {
	return &ControlValidationService{
		validator: validators.NewControlValidator(),
	}
}

func (v *ControlValidationService) Wrap(inner ControlService) ControlService {
	v.inner = inner
	return v
}

func (v *ControlValidationService) validate(ctx context.Context, obj any, fields ...string) error {
	if err := v.validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

func (v *ControlValidationService) AddSynchronizer(ctx context.Context, req models.AddSynchronizerRequest) (models.SynchronizerInfo, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.SynchronizerInfo{}, err
	}
	return v.inner.AddSynchronizer(ctx, req)
}

func (v *ControlValidationService) ListSynchronizers(ctx context.Context) []models.SynchronizerInfo {
	return v.inner.ListSynchronizers(ctx)
}

func (v *ControlValidationService) GetSynchronizer(ctx context.Context, addr models.ServiceAddress) (models.SynchronizerInfo, error) {
	if err := v.validate(ctx, addr); err != nil {
		return models.SynchronizerInfo{}, err
	}
	return v.inner.GetSynchronizer(ctx, addr)
}

func (v *ControlValidationService) RemoveSynchronizer(ctx context.Context, addr models.ServiceAddress) error {
	if err := v.validate(ctx, addr); err != nil {
		return err
	}
	return v.inner.RemoveSynchronizer(ctx, addr)
}

func (v *ControlValidationService) Connect(ctx context.Context, addr models.ServiceAddress) (models.SynchronizerInfo, error) {
	if err := v.validate(ctx, addr); err != nil {
		return models.SynchronizerInfo{}, err
	}
	return v.inner.Connect(ctx, addr)
}

func (v *ControlValidationService) Disconnect(ctx context.Context, addr models.ServiceAddress) error {
	if err := v.validate(ctx, addr); err != nil {
		return err
	}
	return v.inner.Disconnect(ctx, addr)
}

func (v *ControlValidationService) CreateSession(ctx context.Context, addr models.ServiceAddress, req models.SessionRequest) error {
	if err := v.validate(ctx, addr); err != nil {
		return err
	}
	if err := v.validate(ctx, req); err != nil {
		return err
	}
	return v.inner.CreateSession(ctx, addr, req)
}

func (v *ControlValidationService) DestroySession(ctx context.Context, addr models.ServiceAddress) error {
	if err := v.validate(ctx, addr); err != nil {
		return err
	}
	return v.inner.DestroySession(ctx, addr)
}

func (v *ControlValidationService) JoinSession(ctx context.Context, addr models.ServiceAddress, req models.SessionRequest) (models.JoinResponse, error) {
	if err := v.validate(ctx, addr); err != nil {
		return models.JoinResponse{}, err
	}
	if err := v.validate(ctx, req); err != nil {
		return models.JoinResponse{}, err
	}
	return v.inner.JoinSession(ctx, addr, req)
}

func (v *ControlValidationService) ExitSession(ctx context.Context, addr models.ServiceAddress) error {
	if err := v.validate(ctx, addr); err != nil {
		return err
	}
	return v.inner.ExitSession(ctx, addr)
}

func (v *ControlValidationService) RefreshSessionState(ctx context.Context, addr models.ServiceAddress) (models.EntitiesResponse, error) {
	if err := v.validate(ctx, addr); err != nil {
		return models.EntitiesResponse{}, err
	}
	return v.inner.RefreshSessionState(ctx, addr)
}

func (v *ControlValidationService) ListEntities(ctx context.Context, addr models.ServiceAddress) (models.EntitiesResponse, error) {
	if err := v.validate(ctx, addr); err != nil {
		return models.EntitiesResponse{}, err
	}
	return v.inner.ListEntities(ctx, addr)
}

func (v *ControlValidationService) AddEntity(ctx context.Context, addr models.ServiceAddress, req models.EntityRequest) (models.EntityResponse, error) {
	if err := v.validate(ctx, addr); err != nil {
		return models.EntityResponse{}, err
	}
	if err := v.validate(ctx, req); err != nil {
		return models.EntityResponse{}, err
	}
	return v.inner.AddEntity(ctx, addr, req)
}

func (v *ControlValidationService) UpdateEntity(ctx context.Context, addr models.ServiceAddress, req models.EntityRequest) error {
	if err := v.validate(ctx, addr); err != nil {
		return err
	}
	if err := v.validate(ctx, req, validators.FieldEntityID, validators.FieldState); err != nil {
		return err
	}
	return v.inner.UpdateEntity(ctx, addr, req)
}

func (v *ControlValidationService) RemoveEntity(ctx context.Context, addr models.ServiceAddress, entityID string) error {
	if err := v.validate(ctx, addr); err != nil {
		return err
	}
	if err := v.validate(ctx, models.EntityRequest{EntityID: entityID}, validators.FieldEntityID); err != nil {
		return err
	}
	return v.inner.RemoveEntity(ctx, addr, entityID)
}

func (v *ControlValidationService) SendMessage(ctx context.Context, addr models.ServiceAddress, req models.MessageRequest) error {
	if err := v.validate(ctx, addr); err != nil {
		return err
	}
	if err := v.validate(ctx, req); err != nil {
		return err
	}
	return v.inner.SendMessage(ctx, addr, req)
}

func (v *ControlValidationService) GetUserTag(ctx context.Context, addr models.ServiceAddress, clientID string) (models.UserTagResponse, error) {
	if err := v.validate(ctx, addr); err != nil {
		return models.UserTagResponse{}, err
	}
	if err := v.validate(ctx, clientID); err != nil {
		return models.UserTagResponse{}, err
	}
	return v.inner.GetUserTag(ctx, addr, clientID)
}
