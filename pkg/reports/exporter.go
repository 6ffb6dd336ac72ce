package reports

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"rfm-segments/pkg/models"
)

// ExportJSON writes data as indented JSON, creating the folder if needed.
func ExportJSON(filename string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

// ExportCustomersCSV writes the per-customer RFM table.
func ExportCustomersCSV(filename string, rows []models.CustomerRFM) error {
	records := [][]string{
		{"customer_id", "recency_days", "frequency", "monetary", "r_score", "f_score", "m_score", "segment"},
	}
	for _, r := range rows {
		records = append(records, []string{
			r.CustomerID,
			strconv.Itoa(r.RecencyDays),
			strconv.Itoa(r.Frequency),
			strconv.FormatFloat(r.Monetary, 'f', 2, 64),
			strconv.Itoa(r.RScore),
			strconv.Itoa(r.FScore),
			strconv.Itoa(r.MScore),
			r.Segment,
		})
	}
	return writeCSV(filename, records)
}

// ExportSegmentsCSV writes the segment summary table.
func ExportSegmentsCSV(filename string, summaries []models.SegmentSummary) error {
	records := [][]string{
		{"segment", "customer_count", "total_revenue", "revenue_share"},
	}
	for _, s := range summaries {
		records = append(records, []string{
			s.Segment,
			strconv.Itoa(s.CustomerCount),
			strconv.FormatFloat(s.TotalRevenue, 'f', 2, 64),
			strconv.FormatFloat(s.RevenueShare, 'f', 6, 64),
		})
	}
	return writeCSV(filename, records)
}

func writeCSV(filename string, records [][]string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// TimestampedFilename builds <baseDir>/<name>_<YYYYMMDD_HHMMSS>.<ext>.
func TimestampedFilename(baseDir, name, ext string) string {
	t := time.Now().Format("20060102_150405")
	return filepath.Join(baseDir, fmt.Sprintf("%s_%s.%s", name, t, ext))
}
