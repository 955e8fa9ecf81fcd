// Package blast searches protein sequences against a remote BLAST
// service through the NCBI URL API: submit, poll, download.
package blast

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// ErrSearchFailed is returned when the service reports a search as failed or unknown.
var ErrSearchFailed = errors.New("search failed")

// DefaultURL is the NCBI BLAST URL API endpoint.
const DefaultURL = "https://blast.ncbi.nlm.nih.gov/Blast.cgi"

// httpClient performs requests; tests may replace it with a mock transport.
var httpClient = &http.Client{Timeout: 60 * time.Second}

// Client submits searches and collects the accessions of their hits.
type Client struct {
	// URL of the BLAST service
	URL string

	// Program to search with, ex: blastp
	Program string

	// Database to search against, ex: pdb
	Database string

	// PollInterval between status checks of a submitted search.
	// NCBI asks for no more than one a minute
	PollInterval time.Duration

	// SubmitDelay between two submissions
	SubmitDelay time.Duration

	// Cache of earlier results. Optional
	Cache *Cache

	// Logger for search progress. Defaults to log.Default
	Logger *log.Logger
}

// New returns a Client for blastp searches against NCBI's pdb database.
func New() *Client {
	return &Client{
		URL:          DefaultURL,
		Program:      "blastp",
		Database:     "pdb",
		PollInterval: time.Minute,
		SubmitDelay:  10 * time.Second,
	}
}

func (c *Client) logger() *log.Logger {
	if c.Logger == nil {
		return log.Default()
	}
	return c.Logger
}

// Search a single query and return the accessions of its hits, best first.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	if matches, ok := c.Cache.Get(c.key(query)); ok {
		c.logger().Debug("cached search", "query", query, "matches", len(matches))
		return matches, nil
	}

	rid, rtoe, err := c.submit(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to submit search: %w", err)
	}
	c.logger().Info("submitted search", "rid", rid, "estimate", rtoe, "length", len(query))

	hits, err := c.wait(ctx, rid, rtoe)
	if err != nil {
		return nil, fmt.Errorf("failed waiting on search %s: %w", rid, err)
	}

	var matches []string
	if hits {
		if matches, err = c.results(ctx, rid); err != nil {
			return nil, fmt.Errorf("failed to download search %s: %w", rid, err)
		}
	}
	c.logger().Info("finished search", "rid", rid, "matches", len(matches))

	if err := c.Cache.Set(c.key(query), matches); err != nil {
		c.logger().Warn("failed to cache search", "rid", rid, "err", err)
	}
	return matches, nil
}

// SearchAll searches each distinct query one after another, waiting
// SubmitDelay between submissions. The result maps each query to its matches.
func (c *Client) SearchAll(ctx context.Context, queries []string) (map[string][]string, error) {
	results := make(map[string][]string, len(queries))
	submitted := false
	for _, q := range queries {
		if _, ok := results[q]; ok || q == "" {
			continue
		}

		if _, cached := c.Cache.Get(c.key(q)); !cached {
			if submitted {
				if err := sleep(ctx, c.SubmitDelay); err != nil {
					return nil, err
				}
			}
			submitted = true
		}

		matches, err := c.Search(ctx, q)
		if err != nil {
			return nil, err
		}
		results[q] = matches
	}
	return results, nil
}

// wait polls the status of a search until it is done. It returns whether
// the search has hits.
func (c *Client) wait(ctx context.Context, rid string, rtoe time.Duration) (bool, error) {
	if err := sleep(ctx, rtoe); err != nil {
		return false, err
	}

	for {
		status, hits, err := c.status(ctx, rid)
		if err != nil {
			return false, err
		}

		switch status {
		case "READY":
			return hits, nil
		case "WAITING":
			c.logger().Debug("waiting on search", "rid", rid, "poll", c.PollInterval)
		default:
			return false, fmt.Errorf("%w: status %q", ErrSearchFailed, status)
		}

		if err := sleep(ctx, c.PollInterval); err != nil {
			return false, err
		}
	}
}

func (c *Client) key(query string) string {
	return c.Program + "/" + c.Database + "/" + query
}

// sleep for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
