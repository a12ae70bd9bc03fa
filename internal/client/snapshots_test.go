package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/docean/pkg/docean"
)

func TestSnapshotsClient_Get(t *testing.T) {
	RunGetTests(t, []TestGetOperation[docean.Snapshot]{
		{
			Name:         "successful get",
			ExpectedPath: "/v2/snapshots/6372321",
			StatusCode:   http.StatusOK,
			Response: map[string]interface{}{
				"snapshot": docean.Snapshot{
					ID:           "6372321",
					Name:         "web-01-1595954862243",
					ResourceID:   "200776916",
					ResourceType: "droplet",
					Regions:      []string{"nyc3"},
				},
			},
			Call: func(c *Client, ctx context.Context) (*docean.Snapshot, error) {
				return c.Snapshots().Get(ctx, "6372321")
			},
		},
		{
			Name:         "snapshot not found",
			ExpectedPath: "/v2/snapshots/missing",
			StatusCode:   http.StatusNotFound,
			Response:     notFoundBody(),
			WantErr:      true,
			ErrMessage:   "not_found",
			Call: func(c *Client, ctx context.Context) (*docean.Snapshot, error) {
				return c.Snapshots().Get(ctx, "missing")
			},
		},
	})
}

func TestSnapshotsClient_List(t *testing.T) {
	t.Run("all snapshots", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/snapshots", r.URL.Path)
			assert.Equal(t, "GET", r.Method)

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"snapshots": []docean.Snapshot{
					{ID: "6372321", ResourceType: "droplet"},
					{ID: "fbe805e8", ResourceType: "volume"},
				},
				"meta": map[string]int{"total": 2},
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		result, err := client.Snapshots().List(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, result.Resources, 2)
		assert.Equal(t, "volume", result.Resources[1].ResourceType)
	})

	t.Run("filtered by resource type", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "droplet", r.URL.Query().Get("resource_type"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"snapshots":[{"id":"6372321","resource_type":"droplet"}]}`))
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		result, err := client.Snapshots().List(context.Background(), docean.NewListParams().WithResourceType("droplet"))
		require.NoError(t, err)
		require.Len(t, result.Resources, 1)
	})
}

func TestSnapshotsClient_Delete(t *testing.T) {
	RunDeleteTests(t, []TestDeleteOperation{
		{
			Name:         "successful delete",
			ExpectedPath: "/v2/snapshots/6372321",
			StatusCode:   http.StatusNoContent,
			Call: func(c *Client, ctx context.Context) error {
				return c.Snapshots().Delete(ctx, "6372321")
			},
		},
		{
			Name:         "snapshot not found",
			ExpectedPath: "/v2/snapshots/missing",
			StatusCode:   http.StatusNotFound,
			Response:     notFoundBody(),
			WantErr:      true,
			ErrMessage:   "not_found",
			Call: func(c *Client, ctx context.Context) error {
				return c.Snapshots().Delete(ctx, "missing")
			},
		},
	})
}
