package calculator

import (
	"fmt"
	"time"

	"rfm-segments/pkg/models"
)

// MonthlyRevenueSeries builds the sales-seasonality table: order count and
// revenue per calendar month, from the first to the last order month
// inclusive, with empty months zero-filled. Returns nil for empty input.
func MonthlyRevenueSeries(orders []models.OrderRecord) []models.MonthlyRevenue {
	if len(orders) == 0 {
		return nil
	}

	first := orders[0].OrderDate
	last := orders[0].OrderDate
	counts := map[string]int{}
	revenue := map[string]float64{}
	for _, o := range orders {
		if o.OrderDate.Before(first) {
			first = o.OrderDate
		}
		if o.OrderDate.After(last) {
			last = o.OrderDate
		}
		key := formatMonth(o.OrderDate)
		counts[key]++
		revenue[key] += o.OrderValue
	}

	months := monthsBetweenInclusive(first, last)
	out := make([]models.MonthlyRevenue, 0, len(months))
	for _, m := range months {
		key := formatMonth(m)
		out = append(out, models.MonthlyRevenue{
			MonthYear: key,
			Orders:    counts[key],
			Revenue:   revenue[key],
		})
	}
	return out
}

// FilterByMonthRange keeps orders whose date falls in [start month, end month]
// inclusive. Zero bounds disable the corresponding side.
func FilterByMonthRange(orders []models.OrderRecord, start, end time.Time) []models.OrderRecord {
	var upper time.Time
	if !end.IsZero() {
		upper = time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	}
	out := make([]models.OrderRecord, 0, len(orders))
	for _, o := range orders {
		if !start.IsZero() && o.OrderDate.Before(start) {
			continue
		}
		if !upper.IsZero() && !o.OrderDate.Before(upper) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// ParseMonth("MMYYYY") -> first day of the month, UTC.
func ParseMonth(mmyyyy string) (time.Time, error) {
	if len(mmyyyy) != 6 {
		return time.Time{}, fmt.Errorf("expected MMYYYY format (ex: 012025)")
	}
	month := int(mmyyyy[0]-'0')*10 + int(mmyyyy[1]-'0')
	year := int(mmyyyy[2]-'0')*1000 + int(mmyyyy[3]-'0')*100 + int(mmyyyy[4]-'0')*10 + int(mmyyyy[5]-'0')
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("invalid month")
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), nil
}

func monthsBetweenInclusive(start, end time.Time) []time.Time {
	cur := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	var out []time.Time
	for !cur.After(last) {
		out = append(out, cur)
		cur = cur.AddDate(0, 1, 0)
	}
	return out
}

func formatMonth(t time.Time) string {
	return fmt.Sprintf("%02d/%04d", int(t.Month()), t.Year())
}
