package payments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/letaunahn/ecommerce-ai-shop-backend/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "5940", r.PostFormValue("amount"))
		assert.Equal(t, "usd", r.PostFormValue("currency"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_abc"}`))
	}))
	defer srv.Close()

	client := NewClient(config.Config{PaymentAPIURL: srv.URL, PaymentSecretKey: "sk_test_123"})

	intent, err := client.CreateIntent(context.Background(), 5940, "usd")
	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
}

func TestCreateIntentProcessorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"type":"card_error","message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	client := NewClient(config.Config{PaymentAPIURL: srv.URL, PaymentSecretKey: "sk_test_123"})

	_, err := client.CreateIntent(context.Background(), 100, "usd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card was declined")
}

func TestCreateIntentRespectsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewClient(config.Config{PaymentAPIURL: srv.URL, PaymentSecretKey: "sk_test_123"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.CreateIntent(ctx, 100, "usd")
	require.Error(t, err)
}

func TestMinorUnits(t *testing.T) {
	cases := map[string]int64{
		"59.40": 5940,
		"23.60": 2360,
		"0.01":  1,
		"10":    1000,
	}
	for in, want := range cases {
		d, err := decimal.NewFromString(in)
		require.NoError(t, err)
		assert.Equal(t, want, MinorUnits(d), "amount %s", in)
	}
}
