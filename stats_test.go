package bento

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteStats(t *testing.T) {
	client, f := newFakeClient(t, http.StatusOK, `{"total_subscribers":1000,"active_subscribers":950,"growth_rate":5.5}`)

	stats, err := client.SiteStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1000.0, stats["total_subscribers"])
	assert.Equal(t, 5.5, stats["growth_rate"])
	assert.Equal(t, "/stats/site", f.last(t).Path)
}

func TestSegmentStats(t *testing.T) {
	client, f := newFakeClient(t, http.StatusOK, `{"segment_id":"seg-1","subscriber_count":50}`)

	stats, err := client.SegmentStats(context.Background(), "seg-1")
	require.NoError(t, err)
	assert.Equal(t, "seg-1", stats["segment_id"])

	req := f.last(t)
	assert.Equal(t, "/stats/segment", req.Path)
	assert.Equal(t, "seg-1", req.Query.Get("segment_id"))
	assert.Equal(t, f.siteUUID, req.Query.Get("site_uuid"))
}

func TestReportStats(t *testing.T) {
	client, f := newFakeClient(t, http.StatusOK, `{"report_id":"r-1","opens":3}`)

	_, err := client.ReportStats(context.Background(), "r-1")
	require.NoError(t, err)

	req := f.last(t)
	assert.Equal(t, "/stats/report", req.Path)
	assert.Equal(t, "r-1", req.Query.Get("report_id"))
}

func TestStats_Validation(t *testing.T) {
	client, f := newFakeClient(t, http.StatusOK, `{}`)

	_, err := client.SegmentStats(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidSegmentID)

	_, err = client.ReportStats(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidRequest)

	assert.Equal(t, 0, f.calls())
}
