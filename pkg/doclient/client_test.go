package doclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/docean/pkg/docean"
	"github.com/fivetwenty-io/docean/pkg/doclient"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		config := &docean.Config{
			AccessToken: "dop_v1_test",
		}

		client, err := doclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("nil config is rejected", func(t *testing.T) {
		t.Parallel()

		client, err := doclient.New(context.Background(), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, docean.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		t.Parallel()

		client, err := doclient.New(context.Background(), &docean.Config{})
		require.Error(t, err)
		assert.ErrorIs(t, err, docean.ErrAccessTokenRequired)
		assert.Nil(t, client)
	})

	t.Run("endpoint is normalized", func(t *testing.T) {
		t.Parallel()

		config := &docean.Config{
			AccessToken: "dop_v1_test",
			APIEndpoint: "api.example.com/",
		}

		_, err := doclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com", config.APIEndpoint)
	})
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	client, err := doclient.NewWithToken(context.Background(), "dop_v1_test")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewWithEndpoint(t *testing.T) {
	t.Parallel()

	client, err := doclient.NewWithEndpoint(context.Background(), "https://api.example.com", "dop_v1_test")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/v2/account":
			assert.Equal(t, "Bearer dop_v1_test", request.Header.Get("Authorization"))
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"account": docean.Account{
					Email:  "sammy@digitalocean.com",
					Status: "active",
				},
			})
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := doclient.NewWithEndpoint(context.Background(), server.URL, "dop_v1_test")
	require.NoError(t, err)

	account, err := client.Account().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sammy@digitalocean.com", account.Email)
	assert.Equal(t, "active", account.Status)
}
