// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emptyEntities = `{"entities":[],"length":0}`

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()

	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer zr.Close()

	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

// echoEntities answers with an empty entity list, or echoes a request body.
var echoEntities = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	body, _ := io.ReadAll(r.Body)
	if len(body) == 0 {
		_, _ = io.WriteString(w, emptyEntities)
		return
	}
	_, _ = w.Write(body)
})

func TestAcceptsGZip(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{header: "", want: false},
		{header: "gzip", want: true},
		{header: "deflate, gzip, br", want: true},
		{header: "GZIP", want: true},
		{header: "gzip;q=1.0, identity;q=0.5", want: true},
		{header: "gzip; q=0.3", want: true},
		{header: "gzip;q=0", want: false},
		{header: "br, identity", want: false},
		{header: "*", want: true},
		{header: "x-gzip-ish", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, acceptsGZip(tt.header))
		})
	}
}

func TestGZip_Response(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		wantGzip       bool
	}{
		{name: "compressed for gzip clients", acceptEncoding: "gzip", wantGzip: true},
		{name: "plain without accept-encoding", acceptEncoding: "", wantGzip: false},
		{name: "plain when gzip is refused", acceptEncoding: "gzip;q=0, identity", wantGzip: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, syncPath+"/entities", nil)
			req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			rr := httptest.NewRecorder()

			withGZip(echoEntities).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			if !tt.wantGzip {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, emptyEntities, rr.Body.String())
				return
			}
			assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
			assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
			assert.Equal(t, emptyEntities, gunzip(t, rr.Body.Bytes()))
		})
	}
}

func TestGZip_Request(t *testing.T) {
	body := []byte(`{"entity_id":"lamp","state":{"schema_version":1,"kind":"light"}}`)

	t.Run("inflated before the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, syncPath+"/entities", bytes.NewReader(gzipBytes(t, body)))
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()

		var sawEncoding string
		var sawLength int64
		withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawEncoding = r.Header.Get("Content-Encoding")
			sawLength = r.ContentLength
			echoEntities(w, r)
		})).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, sawEncoding)
		assert.Equal(t, int64(-1), sawLength)
		assert.Equal(t, string(body), rr.Body.String())
	})

	t.Run("both directions", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, syncPath+"/entities", bytes.NewReader(gzipBytes(t, body)))
		req.Header.Set("Content-Encoding", "gzip")
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()

		withGZip(echoEntities).ServeHTTP(rr, req)

		assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
		assert.Equal(t, string(body), gunzip(t, rr.Body.Bytes()))
	})

	t.Run("invalid gzip body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, syncPath+"/entities", strings.NewReader("not gzip"))
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()

		called := false
		withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.False(t, called)
	})
}

func TestGZip_LargeJournalPageShrinks(t *testing.T) {
	page := `{"records":[` + strings.Repeat(`{"kind":"entity_update","service":"a.local:1883","entity_id":"crate"},`, 200) + `{}],"length":201}`
	req := httptest.NewRequest(http.MethodGet, "/api/journal", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, page)
	})).ServeHTTP(rr, req)

	assert.Less(t, rr.Body.Len(), len(page)/5)
	assert.Equal(t, page, gunzip(t, rr.Body.Bytes()))
}

func TestGZip_PooledWritersAreReset(t *testing.T) {
	handler := withGZip(echoEntities)

	for range 5 {
		req := httptest.NewRequest(http.MethodGet, syncPath+"/entities", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, emptyEntities, gunzip(t, rr.Body.Bytes()))
	}
}

func TestGZip_NoBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, syncPath+"/entities/crate", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Zero(t, rr.Body.Len())
	assert.Empty(t, rr.Header().Get("Content-Encoding"), "an empty 204 must not claim gzip")
	assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
}

func TestGZipResponseWriter(t *testing.T) {
	t.Run("explicit status is written once", func(t *testing.T) {
		rr := httptest.NewRecorder()
		rr.Header().Set("Content-Length", "42")
		w := &gzipResponseWriter{ResponseWriter: rr, gzipWriter: gzip.NewWriter(rr)}

		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusInternalServerError)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
		assert.Empty(t, rr.Header().Get("Content-Length"))
	})

	t.Run("bodyless statuses are not encoded", func(t *testing.T) {
		for _, status := range []int{http.StatusNoContent, http.StatusNotModified} {
			rr := httptest.NewRecorder()
			rr.Header().Set("Content-Length", "0")
			w := &gzipResponseWriter{ResponseWriter: rr, gzipWriter: gzip.NewWriter(rr)}

			w.WriteHeader(status)

			assert.Equal(t, status, rr.Code)
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, "0", rr.Header().Get("Content-Length"))
			assert.False(t, w.wroteBody)
		}
	})

	t.Run("write implies 200", func(t *testing.T) {
		rr := httptest.NewRecorder()
		zw := gzip.NewWriter(rr)
		w := &gzipResponseWriter{ResponseWriter: rr, gzipWriter: zw}

		_, err := w.Write([]byte(emptyEntities))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
		assert.True(t, w.wroteBody)
	})
}

func TestWrappedReadCloser(t *testing.T) {
	closed := 0
	rc := &wrappedReadCloser{Reader: strings.NewReader("crate"), OnClose: func() { closed++ }}

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "crate", string(data))
	assert.NoError(t, rc.Close())
	assert.Equal(t, 1, closed)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("")}).Close())
}
