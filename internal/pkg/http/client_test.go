package http

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/logger"
)

func TestAPIKeyClient_PostJSON(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get(APIKeyHeader))
		assert.Equal(t, "req-1", r.Header.Get(RequestIDHeader))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "+6598765432", body["to"])

		w.WriteHeader(nethttp.StatusAccepted)
		_, _ = w.Write([]byte(`{"id":"msg-1"}`))
	}))
	defer server.Close()

	client := NewAPIKeyClient("secret", "sms", server.URL, time.Second)
	ctx := logger.ContextWithRequestID(context.Background(), "req-1")

	var result struct {
		ID string `json:"id"`
	}
	err := client.PostJSON(ctx, "/messages", map[string]string{"to": "+6598765432"}, &result)

	require.NoError(t, err)
	assert.Equal(t, "msg-1", result.ID)
}

func TestAPIKeyClient_PostJSON_EmptyBody(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusNoContent)
	}))
	defer server.Close()

	client := NewAPIKeyClient("", "sms", server.URL, 0)

	var result map[string]interface{}
	assert.NoError(t, client.PostJSON(context.Background(), "/", nil, &result))
	assert.Equal(t, DefaultTimeout, client.client.Timeout)
}

func TestAPIKeyClient_PostJSON_StatusError(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Empty(t, r.Header.Get(APIKeyHeader))
		w.WriteHeader(nethttp.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"invalid_number"}`))
	}))
	defer server.Close()

	client := NewAPIKeyClient("", "sms", server.URL, time.Second)

	err := client.PostJSON(context.Background(), "/messages", map[string]string{}, nil)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, nethttp.StatusBadRequest, statusErr.StatusCode)
	assert.JSONEq(t, `{"code":"invalid_number"}`, string(statusErr.Body))
	assert.Equal(t, "HTTP error: 400 Bad Request", statusErr.Error())
}

func TestAPIKeyClient_PostJSON_Timeout(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	client := NewAPIKeyClient("", "sms", server.URL, 50*time.Millisecond)

	err := client.PostJSON(context.Background(), "/messages", nil, nil)

	assert.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}
