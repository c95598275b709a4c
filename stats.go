package bento

import (
	"context"
	"net/url"

	"github.com/bentonow/bento-go/internal/apierrors"
)

// SiteStats returns site-wide statistics.
func (c *Client) SiteStats(ctx context.Context) (Stats, error) {
	var stats Stats
	if err := c.get(ctx, "/stats/site", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// SegmentStats returns statistics for one segment.
func (c *Client) SegmentStats(ctx context.Context, segmentID string) (Stats, error) {
	if segmentID == "" {
		return nil, apierrors.Invalid(ErrInvalidSegmentID, "segment ID is required")
	}

	var stats Stats
	if err := c.get(ctx, "/stats/segment", url.Values{"segment_id": {segmentID}}, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// ReportStats returns statistics for one report.
func (c *Client) ReportStats(ctx context.Context, reportID string) (Stats, error) {
	if reportID == "" {
		return nil, apierrors.Invalid(ErrInvalidRequest, "report ID is required")
	}

	var stats Stats
	if err := c.get(ctx, "/stats/report", url.Values{"report_id": {reportID}}, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
