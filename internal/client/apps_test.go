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

func TestAppsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/apps", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var requestBody docean.AppCreateRequest
		err := json.NewDecoder(r.Body).Decode(&requestBody)
		require.NoError(t, err)
		require.NotNil(t, requestBody.Spec)
		assert.Equal(t, "sample-golang", requestBody.Spec.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"app": docean.App{
				ID:   "b6bdf840-2854-4f87-a36c-5f231c617c84",
				Spec: &docean.AppSpec{Name: "sample-golang", Region: "nyc"},
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	app, err := client.Apps().Create(context.Background(), &docean.AppCreateRequest{
		Spec: &docean.AppSpec{
			Name:   "sample-golang",
			Region: "nyc",
			Services: []docean.AppServiceSpec{
				{Name: "web", InstanceCount: 1, InstanceSizeSlug: "basic-xxs"},
			},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, "b6bdf840-2854-4f87-a36c-5f231c617c84", app.ID)
	require.NotNil(t, app.Spec)
	assert.Equal(t, "sample-golang", app.Spec.Name)
}

func TestAppsClient_Get(t *testing.T) {
	RunGetTests(t, []TestGetOperation[docean.App]{
		{
			Name:         "successful get",
			ExpectedPath: "/v2/apps/b6bdf840-2854-4f87-a36c-5f231c617c84",
			StatusCode:   http.StatusOK,
			Response: map[string]interface{}{
				"app": docean.App{
					ID:               "b6bdf840-2854-4f87-a36c-5f231c617c84",
					DefaultIngress:   "https://sample-golang.ondigitalocean.app",
					ActiveDeployment: &docean.AppDeployment{ID: "deploy-1", Phase: "ACTIVE"},
				},
			},
			Call: func(c *Client, ctx context.Context) (*docean.App, error) {
				return c.Apps().Get(ctx, "b6bdf840-2854-4f87-a36c-5f231c617c84")
			},
		},
		{
			Name:         "app not found",
			ExpectedPath: "/v2/apps/missing",
			StatusCode:   http.StatusNotFound,
			Response:     notFoundBody(),
			WantErr:      true,
			ErrMessage:   "not_found",
			Call: func(c *Client, ctx context.Context) (*docean.App, error) {
				return c.Apps().Get(ctx, "missing")
			},
		},
	})
}

func TestAppsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/apps", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"apps": []docean.App{
				{ID: "app-1"},
				{ID: "app-2"},
			},
			"meta": map[string]int{"total": 2},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result, err := client.Apps().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, result.Resources, 2)
	assert.Equal(t, "app-1", result.Resources[0].ID)
}

func TestAppsClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/apps/app-1", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		var requestBody docean.AppUpdateRequest
		err := json.NewDecoder(r.Body).Decode(&requestBody)
		require.NoError(t, err)
		require.NotNil(t, requestBody.Spec)
		assert.Equal(t, "renamed", requestBody.Spec.Name)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"app": docean.App{ID: "app-1", Spec: &docean.AppSpec{Name: "renamed"}},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	app, err := client.Apps().Update(context.Background(), "app-1", &docean.AppUpdateRequest{
		Spec: &docean.AppSpec{Name: "renamed"},
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", app.Spec.Name)
}

func TestAppsClient_Delete(t *testing.T) {
	RunDeleteTests(t, []TestDeleteOperation{
		{
			Name:         "successful delete",
			ExpectedPath: "/v2/apps/app-1",
			StatusCode:   http.StatusNoContent,
			Call: func(c *Client, ctx context.Context) error {
				return c.Apps().Delete(ctx, "app-1")
			},
		},
		{
			Name:         "app not found",
			ExpectedPath: "/v2/apps/missing",
			StatusCode:   http.StatusNotFound,
			Response:     notFoundBody(),
			WantErr:      true,
			ErrMessage:   "not_found",
			Call: func(c *Client, ctx context.Context) error {
				return c.Apps().Delete(ctx, "missing")
			},
		},
	})
}
