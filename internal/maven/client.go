package maven

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jrebirth-labs/jrforge/internal/output"
	"github.com/spf13/afero"
)

// ErrNotFound is returned when a repository has no metadata for an artifact.
var ErrNotFound = errors.New("artifact metadata not found")

// Client looks up artifact versions in Maven repositories.
type Client struct {
	httpClient   *http.Client
	repositories []string
	userAgent    string

	fs       afero.Fs
	cacheDir string
	cacheTTL time.Duration
	now      func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithRepositories sets the repository base URLs queried, in order.
func WithRepositories(urls ...string) Option {
	return func(cl *Client) {
		cl.repositories = append([]string(nil), urls...)
	}
}

// WithCache enables the on-disk version cache under dir.
func WithCache(fs afero.Fs, dir string, ttl time.Duration) Option {
	return func(cl *Client) {
		cl.fs = fs
		cl.cacheDir = dir
		cl.cacheTTL = ttl
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cl *Client) {
		cl.userAgent = ua
	}
}

// New creates a Client with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		userAgent:  "jrforge",
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Repositories returns the configured repository URLs.
func (c *Client) Repositories() []string {
	return c.repositories
}

// MetadataURL returns the location of maven-metadata.xml for an artifact.
func MetadataURL(repo, groupID, artifactID string) string {
	return fmt.Sprintf("%s/%s/%s/maven-metadata.xml",
		strings.TrimRight(repo, "/"), strings.ReplaceAll(groupID, ".", "/"), artifactID)
}

// Versions returns every version of groupID:artifactID published in any of
// the configured repositories, newest first and without duplicates.
// A repository that fails is skipped as long as another one answers.
func (c *Client) Versions(ctx context.Context, groupID, artifactID string) ([]string, error) {
	key := groupID + ":" + artifactID

	if cached := c.loadCached(key); cached != nil {
		output.Debug("using cached versions", "artifact", key, "count", len(cached))
		return cached, nil
	}

	if len(c.repositories) == 0 {
		return nil, fmt.Errorf("no repositories configured")
	}

	var (
		all     []string
		lastErr error
		answers int
	)
	for _, repo := range c.repositories {
		md, err := c.fetchMetadata(ctx, MetadataURL(repo, groupID, artifactID))
		if err != nil {
			output.Debug("version lookup failed", "repository", repo, "err", err)
			lastErr = err
			continue
		}
		answers++
		all = append(all, md.Versioning.Versions...)
	}

	if answers == 0 {
		return nil, fmt.Errorf("looking up versions of %s: %w", key, lastErr)
	}

	versions := SortVersions(all)
	c.storeCached(key, versions)
	return versions, nil
}

func (c *Client) fetchMetadata(ctx context.Context, url string) (*Metadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")
	req.Header.Set("User-Agent", c.userAgent)

	output.Debug("fetching metadata", "url", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("repository returned status %d for %s", resp.StatusCode, url)
	}

	md, err := ParseMetadata(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	return md, nil
}

func (c *Client) loadCached(key string) []string {
	if c.fs == nil || c.cacheDir == "" {
		return nil
	}
	cache, err := LoadCache(c.fs, c.cacheDir, key)
	if err != nil {
		output.Debug("ignoring unreadable version cache", "artifact", key, "err", err)
		return nil
	}
	if IsCacheStale(cache, c.cacheTTL, c.now()) {
		return nil
	}
	return cache.Versions
}

func (c *Client) storeCached(key string, versions []string) {
	if c.fs == nil || c.cacheDir == "" {
		return
	}
	cache := &VersionCache{Artifact: key, Versions: versions, CheckedAt: c.now()}
	if err := SaveCache(c.fs, c.cacheDir, cache); err != nil {
		output.Debug("could not write version cache", "artifact", key, "err", err)
	}
}
