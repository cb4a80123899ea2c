package routes

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"blogview/app/controllers"
	"blogview/app/models"
	"blogview/app/repositories"
	"blogview/app/services"
	"blogview/app/views"

	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T, repo repositories.PostRepository) http.Handler {
	svc, err := services.NewBlogService(repo, 1000, time.Hour)
	require.NoError(t, err)
	t.Cleanup(svc.Close)

	renderer, err := views.NewRenderer(40)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return SetupRoutes(controllers.NewBlogController(svc, renderer, logger), logger, time.Hour)
}

func setupSampleRouter(t *testing.T) http.Handler {
	repo, err := repositories.NewMemoryPostRepository(models.SamplePosts())
	require.NoError(t, err)
	return setupTestRouter(t, repo)
}

// setupTestClient starts a server and returns a client that keeps the
// session cookie between requests and does not follow redirects.
func setupTestClient(t *testing.T, handler http.Handler) (*httptest.Server, *http.Client) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return srv, client
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}
