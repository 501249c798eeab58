package emailrelay_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pickleshop/internal/adapters/out/emailrelay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send(t *testing.T) {
	var got struct {
		ServiceID      string            `json:"service_id"`
		TemplateID     string            `json:"template_id"`
		UserID         string            `json:"user_id"`
		TemplateParams map[string]string `json:"template_params"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := emailrelay.NewClient(srv.URL, "service_abc", "user_xyz")
	err := client.Send(t.Context(), "template_order", map[string]string{
		"full_name":    "Nimal Perera",
		"total_amount": "1700",
	})
	require.NoError(t, err)

	assert.Equal(t, "service_abc", got.ServiceID)
	assert.Equal(t, "template_order", got.TemplateID)
	assert.Equal(t, "user_xyz", got.UserID)
	assert.Equal(t, "Nimal Perera", got.TemplateParams["full_name"])
	assert.Equal(t, "1700", got.TemplateParams["total_amount"])
}

func TestClient_Send_RelayRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The template ID is invalid"))
	}))
	defer srv.Close()

	client := emailrelay.NewClient(srv.URL, "service_abc", "user_xyz")
	err := client.Send(t.Context(), "template_missing", nil)
	require.Error(t, err)

	var statusErr *emailrelay.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.Status)
	assert.Equal(t, "The template ID is invalid", statusErr.Text)
}

func TestClient_Send_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	client := emailrelay.NewClient(srv.URL, "service_abc", "user_xyz")
	err := client.Send(ctx, "template_order", nil)
	require.Error(t, err)
}
