package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestReadOrders_Basic(t *testing.T) {
	path := writeTempCSV(t, `customer_id,order_date,order_value
C1,2023-01-01,100.50
C2,2023-06-15 10:30:00,1000
C1,2023-06-01,50
`)
	orders, err := ReadOrders(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("got %d orders, want 3", len(orders))
	}
	if orders[0].CustomerID != "C1" || orders[0].OrderValue != 100.50 {
		t.Fatalf("first order wrong: %+v", orders[0])
	}
	if orders[1].OrderDate.Hour() != 10 {
		t.Fatalf("datetime layout not parsed: %+v", orders[1])
	}
}

func TestReadOrders_SkipsDirtyRows(t *testing.T) {
	path := writeTempCSV(t, `customer_id,order_date,order_value
C1,2023-01-01,100
,2023-01-02,50
C2,not-a-date,75
C3,2023-01-03,abc
C4,2023-01-04,25
`)
	orders, err := ReadOrders(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("got %d orders, want 2 (dirty rows skipped)", len(orders))
	}
	if orders[0].CustomerID != "C1" || orders[1].CustomerID != "C4" {
		t.Fatalf("wrong rows kept: %v", orders)
	}
}

func TestReadOrders_NegativeValuePassesThrough(t *testing.T) {
	// Invalid monetary values are the engine's call to reject, not ours.
	path := writeTempCSV(t, `customer_id,order_date,order_value
C1,2023-01-01,-5
`)
	orders, err := ReadOrders(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 || orders[0].OrderValue != -5 {
		t.Fatalf("negative value must pass through: %v", orders)
	}
}

func TestReadOrders_ExtraColumnsAndCase(t *testing.T) {
	path := writeTempCSV(t, `order_id,Customer_ID,status,ORDER_DATE,order_value
1,C1,delivered,2023-01-01,10
2,C2,delivered,2023-01-02,20
`)
	orders, err := ReadOrders(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("got %d orders, want 2", len(orders))
	}
}

func TestReadOrders_MissingColumn(t *testing.T) {
	path := writeTempCSV(t, `customer_id,order_value
C1,100
`)
	if _, err := ReadOrders(path); err == nil {
		t.Fatal("expected error for missing order_date column, got nil")
	}
}

func TestReadOrders_MissingFile(t *testing.T) {
	if _, err := ReadOrders(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
