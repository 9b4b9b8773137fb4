package api_test

import (
	"testing"

	"github.com/uniendoculturas/campus/pkg/campussdk"
)

// TestLivezEndpoint verifies the liveness check endpoint works on a fresh
// deployment.
func TestLivezEndpoint(t *testing.T) {
	cc, cleanup := setupCampusContainer(t)
	defer cleanup()

	client := campussdk.NewSDKClient(cc.BaseURL)

	health, err := client.Livez(t.Context())
	assertHealthy(t, health, err)

	t.Logf("Livez endpoint is healthy")
}

// TestReadyzEndpoint verifies the readiness check endpoint reports ok once
// the database is reachable.
func TestReadyzEndpoint(t *testing.T) {
	cc, cleanup := setupCampusContainer(t)
	defer cleanup()

	client := campussdk.NewSDKClient(cc.BaseURL)

	health, err := client.Readyz(t.Context())
	assertHealthy(t, health, err)

	t.Logf("Readyz endpoint is healthy")
}
