package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/worldsync/models"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:     "synchronizer info",
			data:     models.UserTagResponse{ClientID: "c-1", UserTag: "alice"},
			status:   http.StatusOK,
			wantBody: `{"client_id":"c-1","user_tag":"alice"}`,
		},
		{
			name:     "created",
			data:     models.EntityResponse{EntityID: "crate"},
			status:   http.StatusCreated,
			wantBody: `{"entity_id":"crate"}`,
		},
		{
			name:     "empty list",
			data:     []models.SynchronizerInfo{},
			status:   http.StatusOK,
			wantBody: `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody)+1, n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			assert.Equal(t, tt.wantBody+"\n", w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	n, err := WriteJSON(w, make(chan int), http.StatusOK)

	assert.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Cache-Control"))
}
