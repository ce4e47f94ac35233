package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSession(t *testing.T) {
	var gotAuth, gotIdempotency string
	var gotReq CreateSessionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotIdempotency = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(Session{
			ID:            "cs_123",
			URL:           "https://pay.example.com/s/cs_123",
			PaymentStatus: "unpaid",
			AmountTotal:   9.99,
			CustomerEmail: gotReq.CustomerEmail,
			Metadata:      gotReq.Metadata,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_abc")

	session, err := client.CreateSession(context.Background(), CreateSessionRequest{
		Amount:        9.99,
		Currency:      "usd",
		CustomerEmail: "bob@example.com",
		SuccessURL:    "https://app.example.com/success",
		CancelURL:     "https://app.example.com/cancel",
		Metadata:      map[string]string{"plan_id": "1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer sk_test_abc", gotAuth)
	assert.NotEmpty(t, gotIdempotency)
	assert.Equal(t, 9.99, gotReq.Amount)
	assert.Equal(t, "cs_123", session.ID)
	assert.Equal(t, "https://pay.example.com/s/cs_123", session.URL)
	assert.Equal(t, "1", session.Metadata["plan_id"])
}

func TestGetSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/checkout/sessions/cs_123", r.URL.Path)
		assert.Empty(t, r.Header.Get("Idempotency-Key"))

		json.NewEncoder(w).Encode(Session{
			ID:            "cs_123",
			PaymentStatus: PaymentStatusPaid,
			AmountTotal:   9.99,
			Metadata:      map[string]string{"email": "bob@example.com", "duration": "43200"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_abc")

	session, err := client.GetSession(context.Background(), "cs_123")
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusPaid, session.PaymentStatus)
	assert.Equal(t, "43200", session.Metadata["duration"])
}

func TestGetSession_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "no such session"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_abc")

	_, err := client.GetSession(context.Background(), "cs_missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such session")
}

func TestCreateSession_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_abc")

	_, err := client.CreateSession(context.Background(), CreateSessionRequest{Amount: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}
