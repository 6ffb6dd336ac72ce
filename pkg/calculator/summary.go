package calculator

import (
	"sort"

	"rfm-segments/pkg/models"
)

// SummarizeSegments groups CustomerRFM rows by segment and computes per
// segment the customer count, revenue sum and revenue share. Shares sum to
// 1 across all summaries (0 when total revenue is zero). Output is ordered
// by descending revenue, ties by label.
func SummarizeSegments(rows []models.CustomerRFM) []models.SegmentSummary {
	counts := map[string]int{}
	revenue := map[string]float64{}
	var labels []string
	total := 0.0
	for _, r := range rows {
		if _, ok := counts[r.Segment]; !ok {
			labels = append(labels, r.Segment)
		}
		counts[r.Segment]++
		revenue[r.Segment] += r.Monetary
		total += r.Monetary
	}

	out := make([]models.SegmentSummary, 0, len(labels))
	for _, label := range labels {
		share := 0.0
		if total > 0 {
			share = revenue[label] / total
		}
		out = append(out, models.SegmentSummary{
			Segment:       label,
			CustomerCount: counts[label],
			TotalRevenue:  revenue[label],
			RevenueShare:  share,
		})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].TotalRevenue != out[b].TotalRevenue {
			return out[a].TotalRevenue > out[b].TotalRevenue
		}
		return out[a].Segment < out[b].Segment
	})
	return out
}
