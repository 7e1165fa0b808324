// Package version implements the advisory build-freshness check.
//
// The published version is a bare JSON integer; a newer remote value
// means the local build may produce documents the service no longer
// accepts. The check never blocks a transfer: failures are logged and
// treated as up to date.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Build is the version this binary was built as. Bumped when the
// document format or the remote protocol changes.
const Build = 10

// DefaultManifestURL is where the published version integer lives.
const DefaultManifestURL = "https://raw.githubusercontent.com/granblue-tools/hensei-transfer/main/version.json"

// Checker fetches the published version and compares it to the build.
type Checker struct {
	// ManifestURL defaults to DefaultManifestURL.
	ManifestURL string
	// HTTPClient defaults to a client with a short timeout; the check
	// must not stall the command it runs ahead of.
	HTTPClient *http.Client
	// Build defaults to Build.
	Build int
}

// Outdated reports whether a newer version has been published. Any
// failure to fetch or decode the manifest reports false.
func (c *Checker) Outdated(ctx context.Context) bool {
	url := c.ManifestURL
	if url == "" {
		url = DefaultManifestURL
	}
	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	build := c.Build
	if build == 0 {
		build = Build
	}

	// cache-bust the way browsers do; the raw host caches aggressively
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s?_=%d", url, time.Now().UnixMilli()), nil)
	if err != nil {
		slog.Debug("version check skipped", "error", err)
		return false
	}

	resp, err := client.Do(req)
	if err != nil {
		slog.Debug("version check skipped", "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("version check skipped", "status", resp.StatusCode)
		return false
	}

	var published int
	if err := json.NewDecoder(resp.Body).Decode(&published); err != nil {
		slog.Debug("version check skipped", "error", err)
		return false
	}

	return published > build
}
