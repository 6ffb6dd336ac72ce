package calculator

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"rfm-segments/pkg/models"
)

// Customer segment labels.
const (
	SegmentLoyal  = "Clientes Fiéis"
	SegmentRecent = "Clientes Recentes"
	SegmentAtRisk = "Clientes em Risco"
	SegmentLost   = "Clientes Perdidos"
	SegmentOther  = "Outros"
)

// ErrEmptyInput is returned when no order records are supplied.
var ErrEmptyInput = errors.New("no order records supplied")

// InvalidRecordError rejects a whole batch containing a negative order
// value. The engine never filters bad rows itself.
type InvalidRecordError struct {
	CustomerID string
	OrderValue float64
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid order record: customer=%s order_value=%.2f", e.CustomerID, e.OrderValue)
}

// ComputeRFM turns a cleaned order table into one CustomerRFM row per
// distinct customer, in first-encounter order of customer id.
//
// Recency is measured in whole days from cfg.ReferenceDate (default: one day
// after the latest order date). Each dimension is scored into cfg.Buckets
// equal-population quantile buckets; recency is inverted so that more recent
// customers score higher. Ties keep first-encounter order (stable sort), so
// output is deterministic for a fixed input ordering.
func ComputeRFM(orders []models.OrderRecord, cfg models.Config) ([]models.CustomerRFM, error) {
	if len(orders) == 0 {
		return nil, ErrEmptyInput
	}
	buckets := cfg.Buckets
	if buckets == 0 {
		buckets = 4
	}
	if buckets != 4 && buckets != 5 {
		return nil, fmt.Errorf("buckets must be 4 or 5, got %d", buckets)
	}

	for _, o := range orders {
		if o.OrderValue < 0 {
			return nil, &InvalidRecordError{CustomerID: o.CustomerID, OrderValue: o.OrderValue}
		}
	}

	ref := cfg.ReferenceDate
	if ref.IsZero() {
		maxDate := orders[0].OrderDate
		for _, o := range orders[1:] {
			if o.OrderDate.After(maxDate) {
				maxDate = o.OrderDate
			}
		}
		ref = maxDate.AddDate(0, 0, 1)
	}

	// Group by customer, preserving first-encounter order.
	type agg struct {
		last      time.Time
		frequency int
		monetary  float64
	}
	byCustomer := map[string]*agg{}
	var customerIDs []string
	for _, o := range orders {
		a, ok := byCustomer[o.CustomerID]
		if !ok {
			a = &agg{last: o.OrderDate}
			byCustomer[o.CustomerID] = a
			customerIDs = append(customerIDs, o.CustomerID)
		}
		if o.OrderDate.After(a.last) {
			a.last = o.OrderDate
		}
		a.frequency++
		a.monetary += o.OrderValue
	}

	n := len(customerIDs)
	recency := make([]float64, n)
	frequency := make([]float64, n)
	monetary := make([]float64, n)
	for i, id := range customerIDs {
		a := byCustomer[id]
		recency[i] = float64(int(ref.Sub(a.last).Hours() / 24))
		frequency[i] = float64(a.frequency)
		monetary[i] = a.monetary
	}

	if cfg.Verbose {
		log.Printf("[INFO] rfm: orders=%d customers=%d buckets=%d reference=%s",
			len(orders), n, buckets, ref.Format("2006-01-02"))
	}

	rq := quantileBuckets(buckets, recency)
	fq := quantileBuckets(buckets, frequency)
	mq := quantileBuckets(buckets, monetary)

	results := make([]models.CustomerRFM, n)
	for i, id := range customerIDs {
		a := byCustomer[id]
		// Low recency = recent = best, so invert that bucket index.
		r := buckets - rq[i] + 1
		f := fq[i]
		m := mq[i]
		if n == 1 {
			// Degenerate quantile population: top bucket everywhere.
			r, f, m = buckets, buckets, buckets
		}
		results[i] = models.CustomerRFM{
			CustomerID:  id,
			RecencyDays: int(recency[i]),
			Frequency:   a.frequency,
			Monetary:    a.monetary,
			RScore:      r,
			FScore:      f,
			MScore:      m,
			Segment:     segmentFor(r, f, m, buckets),
		}
	}
	return results, nil
}

// quantileBuckets assigns each value a 1-based quantile index in [1..n]
// (1 = lowest values) by stable ascending rank, so equal-population cuts
// with deterministic tie placement.
func quantileBuckets(n int, values []float64) []int {
	total := len(values)
	out := make([]int, total)
	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })
	for rank, i := range idx {
		out[i] = rank*n/total + 1
	}
	return out
}

// segmentFor applies the fixed rule table, first match wins. Thresholds are
// parameterized on the bucket count n: top = n, bottom = 1, high >= n-1,
// low <= 2, mid-low = anything below top.
func segmentFor(r, f, m, n int) string {
	top := func(s int) bool { return s == n }
	bottom := func(s int) bool { return s == 1 }
	high := func(s int) bool { return s >= n-1 }
	low := func(s int) bool { return s <= 2 }
	midLow := func(s int) bool { return s <= n-1 }

	switch {
	case top(r) && top(f) && top(m):
		return SegmentLoyal
	case high(r) && midLow(f) && midLow(m):
		return SegmentRecent
	case low(r) && high(f) && high(m):
		return SegmentAtRisk
	case bottom(r) && bottom(f) && bottom(m):
		return SegmentLost
	default:
		return SegmentOther
	}
}
