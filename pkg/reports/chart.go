package reports

import (
	"encoding/json"
	"fmt"

	quickchartgo "github.com/henomis/quickchart-go"

	"rfm-segments/pkg/models"
)

type chartConfig struct {
	Type string    `json:"type"`
	Data chartData `json:"data"`
}

type chartData struct {
	Labels   []string       `json:"labels"`
	DataSets []chartDataset `json:"datasets"`
}

type chartDataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

// SegmentChartURL builds a quickchart.io bar chart of revenue share per
// segment. Only the URL is produced; rendering stays with the consumer.
func SegmentChartURL(summaries []models.SegmentSummary) (string, error) {
	if len(summaries) == 0 {
		return "", fmt.Errorf("no segment summaries to chart")
	}

	labels := make([]string, 0, len(summaries))
	shares := make([]float64, 0, len(summaries))
	for _, s := range summaries {
		labels = append(labels, s.Segment)
		shares = append(shares, s.RevenueShare*100)
	}

	cfg := chartConfig{
		Type: "bar",
		Data: chartData{
			Labels: labels,
			DataSets: []chartDataset{
				{Label: "Revenue share (%)", Data: shares},
			},
		},
	}
	bytes, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal chart config: %w", err)
	}

	qc := quickchartgo.New()
	qc.Config = string(bytes)
	url, err := qc.GetUrl()
	if err != nil {
		return "", fmt.Errorf("build chart url: %w", err)
	}
	return url, nil
}
