package models

import (
	"time"
)

/*
LOAD → simple types for raw rows read from the data sources.
*/

// OrderRecord is one completed order as supplied by a loading collaborator
// (CSV file or database). Loaders guarantee a non-empty customer id and a
// parsed order date before a record reaches the engine.
type OrderRecord struct {
	CustomerID string
	OrderDate  time.Time
	OrderValue float64
}

/*
COMPUTE → result structures exported by the engine.
*/

// CustomerRFM holds the per-customer recency/frequency/monetary values,
// their quantile scores and the assigned segment. Exactly one row per
// distinct customer id present in the input.
type CustomerRFM struct {
	CustomerID  string  `json:"customer_id"`
	RecencyDays int     `json:"recency_days"`
	Frequency   int     `json:"frequency"`
	Monetary    float64 `json:"monetary"`
	RScore      int     `json:"r_score"`
	FScore      int     `json:"f_score"`
	MScore      int     `json:"m_score"`
	Segment     string  `json:"segment"`
}

// SegmentSummary aggregates one segment: customer count, revenue and the
// segment's share of total revenue. Shares across all summaries sum to 1.
type SegmentSummary struct {
	Segment       string  `json:"segment"`
	CustomerCount int     `json:"customer_count"`
	TotalRevenue  float64 `json:"total_revenue"`
	RevenueShare  float64 `json:"revenue_share"`
}

// MonthlyRevenue is one point of the sales-seasonality series: order count
// and revenue for a calendar month ("MM/YYYY").
type MonthlyRevenue struct {
	MonthYear string  `json:"month_year"`
	Orders    int     `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

/*
CONFIG → global parameters.
*/

// Config carries the parameters passed to the engine.
type Config struct {
	ReferenceDate time.Time // recency anchor – zero means max order date + 1 day
	Buckets       int       // quantile buckets per dimension, 4 or 5 (0 = default 4)
	Verbose       bool      // detailed logging
}
