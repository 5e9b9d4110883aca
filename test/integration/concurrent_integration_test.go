//go:build integration

package integration

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrent_IdenticalPages checks that concurrent renders of the
// landing page all produce the same document.
func TestConcurrent_IdenticalPages(t *testing.T) {
	server := httptest.NewServer(newSiteHandler(t))
	defer server.Close()

	const workers = 50

	bodies := make([]string, workers)
	statuses := make([]int, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Go(func() {
			resp, err := http.Get(server.URL + "/") //nolint:noctx // test client
			if err != nil {
				return
			}
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)
			bodies[i] = string(body)
			statuses[i] = resp.StatusCode
		})
	}

	wg.Wait()

	require.NotEmpty(t, bodies[0])
	for i := range workers {
		assert.Equal(t, http.StatusOK, statuses[i], "worker %d", i)
		assert.Equal(t, bodies[0], bodies[i], "worker %d", i)
	}
}

// TestConcurrent_MixedEndpoints exercises the page, the API and the probes
// at the same time.
func TestConcurrent_MixedEndpoints(t *testing.T) {
	server := httptest.NewServer(newSiteHandler(t))
	defer server.Close()

	paths := []string{"/", "/api/v1/intro", "/api/v1/intro/links/GitHub", "/-/ready", "/-/metrics"}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed []string
	)

	for range 10 {
		for _, path := range paths {
			wg.Go(func() {
				resp, err := http.Get(server.URL + path) //nolint:noctx // test client
				if err == nil {
					_, _ = io.Copy(io.Discard, resp.Body)
					resp.Body.Close()
				}

				if err != nil || resp.StatusCode != http.StatusOK {
					mu.Lock()
					failed = append(failed, path)
					mu.Unlock()
				}
			})
		}
	}

	wg.Wait()

	assert.Empty(t, failed)
}
