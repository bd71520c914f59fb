package whatsapp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method string
	path   string
	token  string
	body   map[string]interface{}
}

func gatewayStub(t *testing.T, status int, response string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.token = r.Header.Get("Client-Token")
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&captured.body)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func TestZAPIProvider_SendText(t *testing.T) {
	server, captured := gatewayStub(t, http.StatusOK, `{}`)
	provider := NewZAPIProvider(server.URL, "secret-token", "inst1")

	require.NoError(t, provider.SendText("351911111111", "olá"))

	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "/instances/inst1/send-text", captured.path)
	assert.Equal(t, "secret-token", captured.token)
	assert.Equal(t, "351911111111", captured.body["phone"])
	assert.Equal(t, "olá", captured.body["message"])
}

func TestZAPIProvider_SendImage(t *testing.T) {
	server, captured := gatewayStub(t, http.StatusOK, `{}`)
	provider := NewZAPIProvider(server.URL, "tok", "inst1")

	require.NoError(t, provider.SendImage("351911111111", "https://cdn.example.com/qr.png", "o teu QR"))

	assert.Equal(t, "/instances/inst1/send-image", captured.path)
	assert.Equal(t, "https://cdn.example.com/qr.png", captured.body["image"])
	assert.Equal(t, "o teu QR", captured.body["caption"])
}

func TestZAPIProvider_SendDocument(t *testing.T) {
	server, captured := gatewayStub(t, http.StatusCreated, `{}`)
	provider := NewZAPIProvider(server.URL, "tok", "inst1")

	require.NoError(t, provider.SendDocument("351911111111", "https://cdn.example.com/plano.pdf", "plano.pdf"))

	assert.Equal(t, "/instances/inst1/send-document/pdf", captured.path)
	assert.Equal(t, "https://cdn.example.com/plano.pdf", captured.body["document"])
	assert.Equal(t, "plano.pdf", captured.body["fileName"])
}

func TestZAPIProvider_SetTyping(t *testing.T) {
	server, captured := gatewayStub(t, http.StatusOK, `{}`)
	provider := NewZAPIProvider(server.URL, "tok", "inst1")

	require.NoError(t, provider.SetTyping("351911111111", true))
	assert.Equal(t, "/instances/inst1/send-chat-state", captured.path)
	assert.Equal(t, "composing", captured.body["value"])

	require.NoError(t, provider.SetTyping("351911111111", false))
	assert.Equal(t, "available", captured.body["value"])
}

func TestZAPIProvider_MarkMessageRead(t *testing.T) {
	server, captured := gatewayStub(t, http.StatusOK, `{}`)
	provider := NewZAPIProvider(server.URL, "tok", "inst1")

	require.NoError(t, provider.MarkMessageRead("m1"))
	assert.Equal(t, "/instances/inst1/read-message", captured.path)
	assert.Equal(t, "m1", captured.body["messageId"])
}

func TestZAPIProvider_GetMessageStatus(t *testing.T) {
	server, captured := gatewayStub(t, http.StatusOK, `{"status":"READ"}`)
	provider := NewZAPIProvider(server.URL, "tok", "inst1")

	status, err := provider.GetMessageStatus("m1")
	require.NoError(t, err)
	assert.Equal(t, "READ", status)
	assert.Equal(t, "/instances/inst1/message-status/m1", captured.path)
	assert.Equal(t, http.MethodGet, captured.method)
}

func TestZAPIProvider_GatewayError(t *testing.T) {
	server, _ := gatewayStub(t, http.StatusInternalServerError, `{"error":"instance offline"}`)
	provider := NewZAPIProvider(server.URL, "tok", "inst1")

	err := provider.SendText("351911111111", "olá")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "instance offline")
}
