package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"barberflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHTTPGatewayRespond(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/agent/respond", r.URL.Path)

		var req models.AgentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(3), req.TenantID)
		assert.Equal(t, "905551112233", req.FromNumber)

		json.NewEncoder(w).Encode(models.AgentResponse{
			OK:        true,
			Intent:    "provide_location",
			Reply:     "Hangi şubemizi tercih edersiniz?",
			NextState: "AWAITING_BARBER_SELECTION",
			ExtractedInfo: map[string]any{
				"location_preference": "Kadıköy",
			},
		})
	}))
	defer srv.Close()

	gw := NewHTTPGateway(srv.URL, zap.NewNop())
	resp := gw.Respond(context.Background(), &models.AgentRequest{
		TenantID:   3,
		FromNumber: "905551112233",
		Message:    "Kadıköy'deyim",
	})

	require.NotNil(t, resp)
	assert.True(t, resp.OK)
	assert.Equal(t, "provide_location", resp.Intent)
	assert.Equal(t, "Kadıköy", resp.ExtractedInfo["location_preference"])
}

func TestHTTPGatewayRespondServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	gw := NewHTTPGateway(srv.URL, zap.NewNop())
	resp := gw.Respond(context.Background(), &models.AgentRequest{Message: "merhaba"})

	require.NotNil(t, resp)
	assert.False(t, resp.OK)
	assert.Equal(t, "error", resp.Intent)
	assert.Empty(t, resp.Reply)
}

func TestHTTPGatewayRespondUnreachable(t *testing.T) {
	gw := NewHTTPGateway("http://127.0.0.1:1", zap.NewNop())
	resp := gw.Respond(context.Background(), &models.AgentRequest{Message: "merhaba"})

	require.NotNil(t, resp)
	assert.False(t, resp.OK)
	assert.Equal(t, "error", resp.Intent)
}

func TestHTTPGatewayRespondMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	gw := NewHTTPGateway(srv.URL, zap.NewNop())
	resp := gw.Respond(context.Background(), &models.AgentRequest{Message: "merhaba"})

	require.NotNil(t, resp)
	assert.False(t, resp.OK)
	assert.Equal(t, "error", resp.Intent)
}
