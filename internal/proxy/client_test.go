package proxy

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardRelaysBodyVerbatim(t *testing.T) {
	var gotMethod, gotContentType, gotBody string

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer backend.Close()

	client := NewClient(backend.URL, time.Second)
	status, payload, err := client.Forward(context.Background(), []byte(`{"idea":"desk lamp"}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, `{"ok":true}`, string(payload))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, `{"idea":"desk lamp"}`, gotBody)
}

func TestForwardPassesBackendStatusThrough(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"bad"}`))
	}))
	defer backend.Close()

	client := NewClient(backend.URL, time.Second)
	status, payload, err := client.Forward(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"bad"}`, string(payload))
}

func TestForwardReportsUnreachableBackend(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close() // nothing is listening anymore

	client := NewClient(backend.URL, time.Second)
	_, _, err := client.Forward(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to reach generation backend")
}

func TestForwardHonorsTimeout(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer backend.Close()

	client := NewClient(backend.URL, 20*time.Millisecond)
	_, _, err := client.Forward(context.Background(), nil)

	require.Error(t, err)
}
