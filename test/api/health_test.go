//go:build api

package api

import (
	"net/http"
	"testing"

	"clubhub/test/testutil"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestMetricsEndpoint(t *testing.T) {
	w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
