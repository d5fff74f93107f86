package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func withReleaseServer(t *testing.T, status int, body string) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	original := GitHubReleasesURL
	GitHubReleasesURL = server.URL
	t.Cleanup(func() {
		GitHubReleasesURL = original
		server.Close()
	})
}

func TestCheckForUpdateSkipsDevBuilds(t *testing.T) {
	if got := CheckForUpdate(context.Background(), "dev"); got != nil {
		t.Errorf("dev build should skip update check, got %+v", got)
	}
	if got := CheckForUpdate(context.Background(), ""); got != nil {
		t.Errorf("empty version should skip update check, got %+v", got)
	}
}

func TestCheckForUpdateNewer(t *testing.T) {
	withReleaseServer(t, http.StatusOK, `{"tag_name":"v1.2.0","html_url":"https://example.com/rel"}`)

	got := CheckForUpdate(context.Background(), "v1.1.0")
	if got == nil {
		t.Fatal("expected a result")
	}
	if !got.UpdateAvailable {
		t.Error("update should be available")
	}
	if got.LatestVersion != "v1.2.0" {
		t.Errorf("LatestVersion = %q", got.LatestVersion)
	}
}

func TestCheckForUpdateCurrent(t *testing.T) {
	withReleaseServer(t, http.StatusOK, `{"tag_name":"v1.1.0","html_url":"https://example.com/rel"}`)

	got := CheckForUpdate(context.Background(), "1.1.0")
	if got == nil {
		t.Fatal("expected a result")
	}
	if got.UpdateAvailable {
		t.Error("no update should be available for the same version")
	}
}

func TestCheckForUpdateServerError(t *testing.T) {
	withReleaseServer(t, http.StatusInternalServerError, "")
	if got := CheckForUpdate(context.Background(), "v1.0.0"); got != nil {
		t.Errorf("server error should yield nil, got %+v", got)
	}
}
