package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/worldsync/internal/service"
	"github.com/MKhiriev/worldsync/models"
)

const sessionBody = `{"session_id":"6f1c1f0e-3d4b-4f7a-9a5e-2b8c1d0e9f11","tag":"alice"}`

var sessionReq = models.SessionRequest{SessionID: "6f1c1f0e-3d4b-4f7a-9a5e-2b8c1d0e9f11", Tag: "alice"}

func TestCreateSession(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		call       bool
		wantStatus int
	}{
		{name: "created", body: sessionBody, call: true, wantStatus: http.StatusCreated},
		{name: "session exists", body: sessionBody, call: true, err: service.ErrSessionExists, wantStatus: http.StatusConflict},
		{name: "not connected", body: sessionBody, call: true, err: service.ErrNotConnected, wantStatus: http.StatusConflict},
		{name: "invalid JSON", body: `[`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			if tt.call {
				api.control.EXPECT().CreateSession(gomock.Any(), testAddr, sessionReq).Return(tt.err)
			}

			rr := api.do(http.MethodPost, syncPath+"/session", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestDestroySession(t *testing.T) {
	api := newTestAPI(t)
	api.control.EXPECT().DestroySession(gomock.Any(), testAddr).Return(service.ErrNoSession)

	rr := api.do(http.MethodDelete, syncPath+"/session", "")

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestJoinSession(t *testing.T) {
	t.Run("joined", func(t *testing.T) {
		api := newTestAPI(t)
		api.control.EXPECT().JoinSession(gomock.Any(), testAddr, sessionReq).
			Return(models.JoinResponse{ClientID: "0192f0c4-7b1e-7c3a-9d55-3f1d2e4a5b6c"}, nil)

		rr := api.do(http.MethodPost, syncPath+"/session/join", sessionBody)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"client_id":"0192f0c4-7b1e-7c3a-9d55-3f1d2e4a5b6c"}`, rr.Body.String())
	})

	t.Run("already joined", func(t *testing.T) {
		api := newTestAPI(t)
		api.control.EXPECT().JoinSession(gomock.Any(), testAddr, sessionReq).
			Return(models.JoinResponse{}, service.ErrAlreadyJoined)

		rr := api.do(http.MethodPost, syncPath+"/session/join", sessionBody)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("subscription failed", func(t *testing.T) {
		api := newTestAPI(t)
		api.control.EXPECT().JoinSession(gomock.Any(), testAddr, sessionReq).
			Return(models.JoinResponse{}, service.ErrJoinFailed)

		rr := api.do(http.MethodPost, syncPath+"/session/join", sessionBody)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}

func TestExitSession(t *testing.T) {
	api := newTestAPI(t)
	api.control.EXPECT().ExitSession(gomock.Any(), testAddr).Return(nil)

	rr := api.do(http.MethodPost, syncPath+"/session/exit", "")

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRefreshSessionState(t *testing.T) {
	api := newTestAPI(t)
	api.control.EXPECT().RefreshSessionState(gomock.Any(), testAddr).Return(models.EntitiesResponse{
		Entities: []models.SynchronizedEntity{{ID: "crate", OwnerClientID: "bob", Revision: 3}},
		Length:   1,
	}, nil)

	rr := api.do(http.MethodPost, syncPath+"/session/state", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"entity_id":"crate"`)
	assert.Contains(t, rr.Body.String(), `"length":1`)
}

func TestGetUserTag(t *testing.T) {
	api := newTestAPI(t)
	api.control.EXPECT().GetUserTag(gomock.Any(), testAddr, "bob").
		Return(models.UserTagResponse{ClientID: "bob", UserTag: "Bob"}, nil)
	api.control.EXPECT().GetUserTag(gomock.Any(), testAddr, "ghost").
		Return(models.UserTagResponse{}, service.ErrUnknownParticipant)

	rr := api.do(http.MethodGet, syncPath+"/users/bob", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"client_id":"bob","user_tag":"Bob"}`, rr.Body.String())

	rr = api.do(http.MethodGet, syncPath+"/users/ghost", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
