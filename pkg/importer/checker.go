// CLAUDE:SUMMARY Availability checker probing stopword source URLs with HEAD requests and persisting results.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// CheckSummary reports the outcome of one pass over all sources.
type CheckSummary struct {
	OK     int
	Failed int
}

// Checker probes the registered stopword sources with HEAD requests so
// a vanished upstream list is noticed before the next import, not
// during it. Results are persisted to the source DB.
type Checker struct {
	sources  *SourceDB
	logger   *slog.Logger
	interval time.Duration
	client   *http.Client
}

// NewChecker creates a Checker probing every interval. Redirects are
// not followed: a list that moved counts as changed upstream and its
// 3xx status is what gets recorded.
func NewChecker(sources *SourceDB, logger *slog.Logger, interval time.Duration) *Checker {
	return &Checker{
		sources:  sources,
		logger:   logger,
		interval: interval,
		client: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Start probes once immediately, then every interval until ctx is
// cancelled.
func (c *Checker) Start(ctx context.Context) {
	c.CheckAll(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.CheckAll(ctx)
		}
	}
}

// CheckAll probes every source URL, persists each result and returns a
// summary. Statuses in the 2xx-3xx range count as available.
func (c *Checker) CheckAll(ctx context.Context) CheckSummary {
	var sum CheckSummary

	sources, err := c.sources.ListSources()
	if err != nil {
		c.logger.Error("source check: listing sources failed", "error", err)
		return sum
	}

	for _, src := range sources {
		if ctx.Err() != nil {
			return sum
		}

		status, probeErr := c.probe(ctx, src.SourceURL)
		errMsg := ""
		if probeErr != nil {
			errMsg = probeErr.Error()
		}

		if err := c.sources.UpdateCheck(src.AdapterID, status, errMsg); err != nil {
			c.logger.Error("source check: update failed", "adapter", src.AdapterID, "error", err)
		}

		if status >= 200 && status < 400 {
			sum.OK++
			continue
		}
		sum.Failed++
		c.logger.Warn("stopword source unavailable",
			"adapter", src.AdapterID,
			"language", src.Language,
			"url", src.SourceURL,
			"status", status,
			"error", errMsg,
		)
	}

	if sum.OK+sum.Failed > 0 {
		c.logger.Info("source check complete", "ok", sum.OK, "failed", sum.Failed)
	}
	return sum
}

// probe performs a single HEAD request. On network error the status
// is 0, distinguishing unreachable from any HTTP response.
func (c *Checker) probe(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HEAD %s: %w", url, err)
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}
