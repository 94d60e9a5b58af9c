package comparison_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/fitsnap/internal/comparison"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderClient_Capture(t *testing.T) {
	renderedPath := fmt.Sprintf("/var/fitsnap/exports/%s.png", gofakeit.UUID())

	var receivedStack comparison.LayerStack
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/render", r.URL.Path)
		require.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&receivedStack))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"imagePath": "%s"}`, renderedPath)
	}))
	defer testServer.Close()

	client := comparison.NewRenderClient(testServer.URL, "test-api-key", testServer.Client())

	session := newTestSession(2)
	stack, err := session.ResolveLayerStack(comparison.CanvasFor(comparison.AspectSquare), nil)
	require.NoError(t, err)

	imagePath, err := client.Capture(context.Background(), *stack)
	require.NoError(t, err)
	assert.Equal(t, renderedPath, imagePath)
	assert.Len(t, receivedStack.Slots, 2)
	assert.Equal(t, stack.Canvas, receivedStack.Canvas)
}

func TestRenderClient_Capture_apiError(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": "rasterizer crashed"}`)
	}))
	defer testServer.Close()

	client := comparison.NewRenderClient(testServer.URL, "test-api-key", testServer.Client())

	session := newTestSession(2)
	stack, err := session.ResolveLayerStack(comparison.CanvasFor(comparison.AspectSquare), nil)
	require.NoError(t, err)

	_, err = client.Capture(context.Background(), *stack)
	require.EqualError(t, err, "rasterizer crashed")
}
