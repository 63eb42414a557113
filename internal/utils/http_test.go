package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string]string{"key": "value"}, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, len(`{"key":"value"}`), n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"key":"value"}`, w.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestNewHTTPClient(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:1234/api")

	require.NotNil(t, client.Client)
	assert.Equal(t, "http://127.0.0.1:1234/api", client.BaseURL)
	assert.Equal(t, "application/json", client.Header.Get("Content-Type"))
	assert.Zero(t, client.RetryCount)
	assert.NotSame(t, client.Client, NewHTTPClient("http://127.0.0.1:1234/api").Client)
}
