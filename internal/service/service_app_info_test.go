package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/worldsync/internal/config"
	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/models"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_PrefersBuildStamp(t *testing.T) {
	build := models.NewAppBuildInfo("v1.2.3", "2026-03-01", "abc123")
	svc, err := NewAppInfoService(config.App{Version: "dev"}, build, logger.Nop())
	require.NoError(t, err)

	got := svc.GetAppVersion(context.Background())

	assert.Equal(t, models.VersionResponse{Version: "v1.2.3", Date: "2026-03-01", Commit: "abc123"}, got)
}

func TestGetAppVersion_FallsBackToConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	got := svc.GetAppVersion(context.Background())

	assert.Equal(t, "3.1.4", got.Version)
	assert.Equal(t, models.NotAvailable, got.Date)
	assert.Equal(t, models.NotAvailable, got.Commit)
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	// GetAppVersion does not use ctx, so it must still return the version
	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx).Version)
}
