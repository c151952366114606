package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/worldsync/internal/config"
	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/internal/mock"
	"github.com/MKhiriev/worldsync/internal/service"
	"github.com/MKhiriev/worldsync/models"
)

var testAddr = models.ServiceAddress{Host: "a.local", Port: 1883}

const syncPath = "/api/synchronizers/a.local/1883"

type testAPI struct {
	router  http.Handler
	control *mock.MockControlService
	journal *mock.MockJournalService
	appInfo *mock.MockAppInfoService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := &testAPI{
		control: mock.NewMockControlService(ctrl),
		journal: mock.NewMockJournalService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	h := NewHandler(&service.Services{
		ControlService: api.control,
		JournalService: api.journal,
		AppInfoService: api.appInfo,
	}, config.Server{RequestTimeout: time.Second}, logger.Nop())
	api.router = h.Init()
	return api
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, httptest.NewRequest(method, path, r))
	return rr
}

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, config.Server{RequestTimeout: 5 * time.Second}, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, 5*time.Second, h.timeout)
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	api := newTestAPI(t)
	api.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(models.VersionResponse{}).AnyTimes()
	api.journal.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	api.control.EXPECT().ListSynchronizers(gomock.Any()).Return(nil).AnyTimes()
	api.control.EXPECT().AddSynchronizer(gomock.Any(), gomock.Any()).Return(models.SynchronizerInfo{}, nil).AnyTimes()
	api.control.EXPECT().GetSynchronizer(gomock.Any(), gomock.Any()).Return(models.SynchronizerInfo{}, nil).AnyTimes()
	api.control.EXPECT().RemoveSynchronizer(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	api.control.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(models.SynchronizerInfo{}, nil).AnyTimes()
	api.control.EXPECT().Disconnect(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	api.control.EXPECT().CreateSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	api.control.EXPECT().DestroySession(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	api.control.EXPECT().JoinSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.JoinResponse{}, nil).AnyTimes()
	api.control.EXPECT().ExitSession(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	api.control.EXPECT().RefreshSessionState(gomock.Any(), gomock.Any()).Return(models.EntitiesResponse{}, nil).AnyTimes()
	api.control.EXPECT().ListEntities(gomock.Any(), gomock.Any()).Return(models.EntitiesResponse{}, nil).AnyTimes()
	api.control.EXPECT().AddEntity(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.EntityResponse{}, nil).AnyTimes()
	api.control.EXPECT().UpdateEntity(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	api.control.EXPECT().RemoveEntity(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	api.control.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	api.control.EXPECT().GetUserTag(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.UserTagResponse{}, nil).AnyTimes()

	routes := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/metrics", ""},
		{http.MethodGet, "/api/version", ""},
		{http.MethodGet, "/api/journal", ""},
		{http.MethodGet, "/api/synchronizers", ""},
		{http.MethodPost, "/api/synchronizers", `{"host":"a.local","port":1883}`},
		{http.MethodGet, syncPath, ""},
		{http.MethodDelete, syncPath, ""},
		{http.MethodPost, syncPath + "/connect", ""},
		{http.MethodPost, syncPath + "/disconnect", ""},
		{http.MethodPost, syncPath + "/session", `{}`},
		{http.MethodDelete, syncPath + "/session", ""},
		{http.MethodPost, syncPath + "/session/join", `{}`},
		{http.MethodPost, syncPath + "/session/exit", ""},
		{http.MethodPost, syncPath + "/session/state", ""},
		{http.MethodGet, syncPath + "/entities", ""},
		{http.MethodPost, syncPath + "/entities", `{}`},
		{http.MethodPut, syncPath + "/entities/crate", `{}`},
		{http.MethodDelete, syncPath + "/entities/crate", ""},
		{http.MethodPost, syncPath + "/messages", `{"topic":"chat"}`},
		{http.MethodGet, syncPath + "/users/alice", ""},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rr := api.do(tc.method, tc.path, tc.body)

			assert.Less(t, rr.Code, 300, "unexpected status %d: %s", rr.Code, rr.Body.String())
			assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
		})
	}
}

func TestInit_UnknownRouteAndWrongMethod(t *testing.T) {
	api := newTestAPI(t)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/nonexistent", "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodPost, "/api/version", "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodPatch, syncPath+"/session", "").Code)
}

func TestInit_InvalidPort(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(http.MethodGet, "/api/synchronizers/a.local/mqtt", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetServerVersion(t *testing.T) {
	api := newTestAPI(t)
	api.appInfo.EXPECT().GetAppVersion(gomock.Any()).
		Return(models.VersionResponse{Version: "v1.4.0", Date: "2026-10-01", Commit: "abc123"})

	rr := api.do(http.MethodGet, "/api/version", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"version":"v1.4.0","date":"2026-10-01","commit":"abc123"}`, rr.Body.String())
}
