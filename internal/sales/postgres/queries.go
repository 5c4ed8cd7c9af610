package postgres

import "fmt"

func createTableSQL(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %[1]s (
    id UUID PRIMARY KEY,
    region TEXT NOT NULL,
    product TEXT NOT NULL,
    sales DOUBLE PRECISION NOT NULL,
    orders INTEGER NOT NULL,
    date DATE NOT NULL
);
CREATE INDEX IF NOT EXISTS %[2]s_date_idx ON %[1]s (date)`, table, indexPrefix(table))
}

func totalsSQL(table string) string {
	return fmt.Sprintf(`SELECT COALESCE(SUM(sales), 0)::float8, COALESCE(SUM(orders), 0)::float8 FROM %s`, table)
}

func regionsSQL(table string) string {
	return fmt.Sprintf(`SELECT region,
       SUM(sales)::float8 AS total_sales,
       SUM(orders)::float8 AS total_orders,
       CASE WHEN SUM(orders) = 0 THEN 0 ELSE SUM(sales) / SUM(orders) END::float8 AS avg_order_value
FROM %s
GROUP BY region
ORDER BY total_sales DESC, region
LIMIT $1`, table)
}

func productsSQL(table string) string {
	return fmt.Sprintf(`SELECT product,
       SUM(sales)::float8 AS total_sales,
       SUM(orders)::float8 AS total_orders
FROM %s
GROUP BY product
ORDER BY total_sales DESC, product
LIMIT $1`, table)
}

// monthsSQL emits every calendar month between the first and last record,
// including months without data, like a date histogram with min_doc_count 0.
func monthsSQL(table string) string {
	return fmt.Sprintf(`WITH bounds AS (
    SELECT date_trunc('month', MIN(date)) AS lo, date_trunc('month', MAX(date)) AS hi FROM %[1]s
), months AS (
    SELECT generate_series(lo, hi, interval '1 month') AS month FROM bounds WHERE lo IS NOT NULL
)
SELECT to_char(m.month, 'YYYY-MM-DD'),
       COALESCE(SUM(s.sales), 0)::float8,
       COALESCE(SUM(s.orders), 0)::float8
FROM months m
LEFT JOIN %[1]s s ON date_trunc('month', s.date) = m.month
GROUP BY m.month
ORDER BY m.month`, table)
}
