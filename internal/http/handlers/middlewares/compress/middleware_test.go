package compress

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"filmorate/internal/http/httputils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		httputils.WriteJSONResponse(w, http.StatusCreated, map[string]string{"echo": string(body)})
	})
}

func TestMiddlewareCompressing(t *testing.T) {
	handler := MiddlewareCompressing()(echoHandler())

	t.Run("gzip request and response", func(t *testing.T) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write([]byte("hello"))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		r := httptest.NewRequest(http.MethodPost, "/films", &buf)
		r.Header.Set(httputils.HeaderContentEncoding, httputils.EncodingGzip)
		r.Header.Set(httputils.HeaderAcceptEncoding, "gzip, deflate")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, httputils.EncodingGzip, w.Header().Get(httputils.HeaderContentEncoding))

		zr, err := gzip.NewReader(w.Body)
		require.NoError(t, err)
		out, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.JSONEq(t, `{"echo":"hello"}`, string(out))
	})

	t.Run("plain client", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/films", bytes.NewBufferString("hi"))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Empty(t, w.Header().Get(httputils.HeaderContentEncoding))
		assert.JSONEq(t, `{"echo":"hi"}`, w.Body.String())
	})

	t.Run("empty body is not compressed", func(t *testing.T) {
		h := MiddlewareCompressing()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		r := httptest.NewRequest(http.MethodPut, "/films/1/like/1", nil)
		r.Header.Set(httputils.HeaderAcceptEncoding, "gzip")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, w.Body.Len())
	})

	t.Run("broken gzip body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/films", bytes.NewBufferString("not gzip"))
		r.Header.Set(httputils.HeaderContentEncoding, httputils.EncodingGzip)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
