package blast

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// retryBackoff is multiplied by the attempt number between retries
var retryBackoff = 500 * time.Millisecond

var (
	ridRegex    = regexp.MustCompile(`RID = (\S+)`)
	rtoeRegex   = regexp.MustCompile(`RTOE = (\d+)`)
	statusRegex = regexp.MustCompile(`Status=(\w+)`)
	hitsRegex   = regexp.MustCompile(`ThereAreHits=yes`)
)

// report is the part of a JSON2_S search report holding the hits.
type report struct {
	BlastOutput2 []struct {
		Report struct {
			Results struct {
				Search struct {
					Hits []struct {
						Description []struct {
							ID        string `json:"id"`
							Accession string `json:"accession"`
						} `json:"description"`
					} `json:"hits"`
				} `json:"search"`
			} `json:"results"`
		} `json:"report"`
	} `json:"BlastOutput2"`
}

// submit a query and return its request ID and estimated time to completion.
func (c *Client) submit(ctx context.Context, query string) (string, time.Duration, error) {
	form := url.Values{
		"CMD":      {"Put"},
		"PROGRAM":  {c.Program},
		"DATABASE": {c.Database},
		"QUERY":    {query},
		"TOOL":     {"contig"},
	}

	body, err := c.request(ctx, http.MethodPost, form)
	if err != nil {
		return "", 0, err
	}

	rid := ridRegex.FindSubmatch(body)
	if rid == nil {
		return "", 0, fmt.Errorf("no RID in response: %.200s", body)
	}

	var rtoe time.Duration
	if m := rtoeRegex.FindSubmatch(body); m != nil {
		secs, _ := strconv.Atoi(string(m[1]))
		rtoe = time.Duration(secs) * time.Second
	}
	return string(rid[1]), rtoe, nil
}

// status of a search, ex: WAITING or READY, and whether it has hits.
func (c *Client) status(ctx context.Context, rid string) (string, bool, error) {
	body, err := c.request(ctx, http.MethodGet, url.Values{
		"CMD":           {"Get"},
		"FORMAT_OBJECT": {"SearchInfo"},
		"RID":           {rid},
	})
	if err != nil {
		return "", false, err
	}

	m := statusRegex.FindSubmatch(body)
	if m == nil {
		return "", false, fmt.Errorf("no status in response: %.200s", body)
	}
	return string(m[1]), hitsRegex.Match(body), nil
}

// results downloads a finished search and returns its hits' accessions.
func (c *Client) results(ctx context.Context, rid string) ([]string, error) {
	body, err := c.request(ctx, http.MethodGet, url.Values{
		"CMD":         {"Get"},
		"FORMAT_TYPE": {"JSON2_S"},
		"RID":         {rid},
	})
	if err != nil {
		return nil, err
	}
	return parseReport(body)
}

func parseReport(body []byte) ([]string, error) {
	var r report
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("failed to parse report: %v", err)
	}

	var accessions []string
	for _, out := range r.BlastOutput2 {
		for _, hit := range out.Report.Results.Search.Hits {
			if len(hit.Description) == 0 {
				continue
			}

			d := hit.Description[0]
			if d.Accession != "" {
				accessions = append(accessions, d.Accession)
			} else if d.ID != "" {
				accessions = append(accessions, d.ID)
			}
		}
	}
	return accessions, nil
}

// request sends params to the service, retrying rate limited and
// server errors up to three times.
func (c *Client) request(ctx context.Context, method string, params url.Values) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		req, err := c.newRequest(ctx, method, params)
		if err != nil {
			return nil, err
		}

		resp, err := httpClient.Do(req)
		if err != nil {
			lastErr = err
		} else {
			body, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			switch {
			case err != nil:
				lastErr = err
			case resp.StatusCode == http.StatusOK:
				return body, nil
			case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
				lastErr = fmt.Errorf("blast returned status %d", resp.StatusCode)
			default:
				return nil, fmt.Errorf("blast returned status %d: %.200s", resp.StatusCode, body)
			}
		}

		c.logger().Debug("retrying request", "attempt", attempt, "err", lastErr)
		if err := sleep(ctx, time.Duration(attempt)*retryBackoff); err != nil {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) newRequest(ctx context.Context, method string, params url.Values) (*http.Request, error) {
	var (
		req *http.Request
		err error
	)
	if method == http.MethodPost {
		req, err = http.NewRequestWithContext(ctx, method, c.URL, strings.NewReader(params.Encode()))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.URL+"?"+params.Encode(), nil)
	}
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "contig/0.1.0")
	return req, nil
}
