package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"
	"time"

	"rfm-segments/pkg/models"

	_ "github.com/go-sql-driver/mysql"
)

// Open DSN mariadb:// or mysql:// → MySQL driver format
func Open(dsn string) (*sql.DB, string, error) {
	mysqlDSN, err := toMySQLDSN(dsn)
	if err != nil {
		return nil, "", err
	}
	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		return nil, "", err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, mysqlDSN, nil
}

func toMySQLDSN(dsn string) (string, error) {
	if strings.HasPrefix(dsn, "mariadb://") || strings.HasPrefix(dsn, "mysql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("parse dsn: %w", err)
		}
		user := ""
		pass := ""
		if u.User != nil {
			user = u.User.Username()
			pw, _ := u.User.Password()
			pass = pw
		}
		host := u.Host
		db := strings.TrimPrefix(u.Path, "/")
		if user == "" || host == "" || db == "" {
			return "", fmt.Errorf("incomplete dsn (user/host/db)")
		}
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&interpolateParams=true",
			user, pass, host, db), nil
	}
	return dsn, nil
}

// LoadOrders reads completed order rows (customer_id, order_date,
// order_value) from tableName. Rows with a NULL date or value are counted
// and skipped: the engine must only ever see fully cleaned records.
func LoadOrders(ctx context.Context, db *sql.DB, tableName string) ([]models.OrderRecord, error) {
	if !regexp.MustCompile(`^[A-Za-z0-9_]+$`).MatchString(tableName) {
		return nil, fmt.Errorf("invalid table name")
	}

	q := fmt.Sprintf(`
		SELECT
			o.customer_id,
			o.order_date,
			o.order_value
		FROM %s o
		ORDER BY o.order_date, o.customer_id
	`, tableName)

	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	read := 0
	skipped := 0
	var orders []models.OrderRecord
	for rows.Next() {
		read++
		var (
			customerID sql.NullString
			orderDate  sql.NullTime
			orderValue sql.NullFloat64
		)
		if err := rows.Scan(&customerID, &orderDate, &orderValue); err != nil {
			return nil, err
		}
		if !customerID.Valid || customerID.String == "" || !orderDate.Valid || !orderValue.Valid {
			skipped++
			continue
		}
		orders = append(orders, models.OrderRecord{
			CustomerID: customerID.String,
			OrderDate:  orderDate.Time.UTC(),
			OrderValue: orderValue.Float64,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Printf("[DEBUG] rows read=%d, skipped (null id/date/value)=%d, kept=%d",
		read, skipped, len(orders),
	)
	return orders, nil
}
