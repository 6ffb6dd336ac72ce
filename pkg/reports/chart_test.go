package reports

import (
	"strings"
	"testing"

	"rfm-segments/pkg/models"
)

func TestSegmentChartURL(t *testing.T) {
	summaries := []models.SegmentSummary{
		{Segment: "Clientes Fiéis", CustomerCount: 15, TotalRevenue: 6500, RevenueShare: 0.65},
		{Segment: "Outros", CustomerCount: 85, TotalRevenue: 3500, RevenueShare: 0.35},
	}
	url, err := SegmentChartURL(summaries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(url, "quickchart.io") {
		t.Fatalf("expected a quickchart url, got %q", url)
	}
}

func TestSegmentChartURL_Empty(t *testing.T) {
	if _, err := SegmentChartURL(nil); err == nil {
		t.Fatal("expected error for empty summaries, got nil")
	}
}
