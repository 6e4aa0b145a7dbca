package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"
	"strconv"

	"github.com/heritage-io/rcu-client/internal/constants"
	"github.com/heritage-io/rcu-client/internal/http"
	"github.com/heritage-io/rcu-client/pkg/rcu"
)

// HeritageSitesClient implements rcu.HeritageSitesClient.
type HeritageSitesClient struct {
	httpClient *http.Client
	cache      rcu.Cache
}

// NewHeritageSitesClient creates a new heritage sites client. The cache
// may be a no-op; site lists are near-static reference data, so hits
// short-circuit the network entirely.
func NewHeritageSitesClient(httpClient *http.Client, cache rcu.Cache) *HeritageSitesClient {
	if cache == nil {
		cache = rcu.NewNoOpCache()
	}

	return &HeritageSitesClient{
		httpClient: httpClient,
		cache:      cache,
	}
}

// List implements rcu.HeritageSitesClient.List.
func (c *HeritageSitesClient) List(ctx context.Context, opts *rcu.ListOptions) (*rcu.SiteList, error) {
	query := listQuery(opts)
	cacheKey := "heritage_sites.list." + query.Encode()

	if entry, err := c.cache.Get(ctx, cacheKey); err == nil {
		var cached rcu.SiteList
		if json.Unmarshal(entry.Data, &cached) == nil {
			return &cached, nil
		}
	}

	resp, err := c.httpClient.Get(ctx, constants.PathHeritageSites, query)
	if err != nil {
		return nil, fmt.Errorf("listing heritage sites: %w", err)
	}

	if resp.StatusCode != nethttp.StatusOK {
		return nil, fmt.Errorf("listing heritage sites: %w: status %d", rcu.ErrUnexpectedStatus, resp.StatusCode)
	}

	var sites rcu.SiteList

	err = json.Unmarshal(resp.Body, &sites)
	if err != nil {
		return nil, fmt.Errorf("parsing heritage sites list: %w", err)
	}

	_ = c.cache.Set(ctx, cacheKey, &rcu.CacheEntry{
		Data:     resp.Body,
		StoredAt: timeNow(),
		TTL:      rcu.DefaultCacheTTL,
	})

	return &sites, nil
}

// Get implements rcu.HeritageSitesClient.Get.
func (c *HeritageSitesClient) Get(ctx context.Context, siteID string) (*rcu.HeritageSite, error) {
	if siteID == "" {
		return nil, rcu.ErrSiteIDRequired
	}

	path := constants.PathHeritageSites + "/" + siteID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting heritage site: %w", err)
	}

	if resp.StatusCode != nethttp.StatusOK {
		return nil, fmt.Errorf("getting heritage site: %w: status %d", rcu.ErrUnexpectedStatus, resp.StatusCode)
	}

	var site rcu.HeritageSite

	err = json.Unmarshal(resp.Body, &site)
	if err != nil {
		return nil, fmt.Errorf("parsing heritage site: %w", err)
	}

	return &site, nil
}

// listQuery converts list options to query parameters.
func listQuery(opts *rcu.ListOptions) url.Values {
	if opts == nil {
		return nil
	}

	query := url.Values{}

	if opts.Region != "" {
		query.Set("region", opts.Region)
	}

	if opts.Status != "" {
		query.Set("status", opts.Status)
	}

	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}

	return query
}
