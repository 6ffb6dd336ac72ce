package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"rfm-segments/pkg/models"
)

// Accepted order_date layouts, tried in this order.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// ReadOrders parses a delimited order table with a header naming at least
// customer_id, order_date and order_value. Rows with an empty customer id,
// an unparsable date or an unparsable value are counted and skipped —
// cleaning happens here, never inside the engine. Negative values pass
// through so the engine can reject the whole batch.
func ReadOrders(path string) ([]models.OrderRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open orders file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idCol, dateCol, valueCol := -1, -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "customer_id":
			idCol = i
		case "order_date":
			dateCol = i
		case "order_value":
			valueCol = i
		}
	}
	if idCol < 0 || dateCol < 0 || valueCol < 0 {
		return nil, fmt.Errorf("header must contain customer_id, order_date, order_value (got %v)", header)
	}

	read := 0
	skipped := 0
	var orders []models.OrderRecord
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", read+2, err)
		}
		read++
		if len(rec) <= idCol || len(rec) <= dateCol || len(rec) <= valueCol {
			skipped++
			continue
		}
		id := strings.TrimSpace(rec[idCol])
		if id == "" {
			skipped++
			continue
		}
		date, ok := parseDate(strings.TrimSpace(rec[dateCol]))
		if !ok {
			skipped++
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(rec[valueCol]), 64)
		if err != nil {
			skipped++
			continue
		}
		orders = append(orders, models.OrderRecord{
			CustomerID: id,
			OrderDate:  date,
			OrderValue: value,
		})
	}

	log.Printf("[DEBUG] csv rows read=%d, skipped (empty id / bad date / bad value)=%d, kept=%d",
		read, skipped, len(orders),
	)
	return orders, nil
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
