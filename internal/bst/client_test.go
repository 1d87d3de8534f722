package bst

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/step"
)

func fakeService(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bst", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "application/json")

		if err := ValidateValue(*req.Value, 1, 999); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Value must be between 1 and 999"})
			return
		}
		steps, tree, err := Apply(req.TreeState, Operation(req.Operation), *req.Value)
		require.NoError(t, err)
		_ = json.NewEncoder(w).Encode(Response{Steps: steps, NewTreeState: tree})
	}))
}

func TestClient_CarriesTree(t *testing.T) {
	srv := fakeService(t)
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second, nil)
	ctx := context.Background()

	for _, v := range []int{50, 30, 70} {
		_, err := c.Do(ctx, Insert, v)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{30, 50, 70}, c.Tree().InOrder())

	steps, err := c.Do(ctx, Search, 70)
	require.NoError(t, err)
	last, ok := steps.Last().(step.TreeStep)
	require.True(t, ok, "expected tree steps, got %T", steps.Last())
	assert.Equal(t, ActionFound, last.Action)
	assert.Equal(t, []int{2}, last.Highlight)

	c.Reset()
	assert.Nil(t, c.Tree())
}

func TestClient_RemoteError(t *testing.T) {
	srv := fakeService(t)
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	_, err := c.Do(context.Background(), Insert, 5000)

	var remote *RemoteOperationError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, http.StatusBadRequest, remote.Status)
	assert.Equal(t, "Value must be between 1 and 999", remote.Error())
	assert.Nil(t, c.Tree(), "failed call must not replace the tree")
}

func TestClient_EmptyErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second, nil).Do(context.Background(), Insert, 1)
	assert.EqualError(t, err, "bst service returned status 500")
}
