package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

func rec(region, product string, sales int64, orders int, date string) Record {
	d, err := time.Parse(TrendDateLayout, date)
	if err != nil {
		panic(err)
	}
	return Record{Region: region, Product: product, Sales: decimal.NewFromInt(sales), Orders: orders, Date: d}
}

// SeedDataset returns the fixed synthetic dataset written by the seed
// operation. A fresh slice is returned on every call.
func SeedDataset() []Record {
	return []Record{
		rec("North America", `Laptop Pro 15"`, 45800, 112, "2024-01-01"),
		rec("North America", "Noise Cancelling Headphones", 18300, 204, "2024-01-15"),
		rec("Europe", `Laptop Pro 15"`, 29450, 71, "2024-01-18"),
		rec("Europe", `4K Monitor 27"`, 16500, 98, "2024-02-01"),
		rec("APAC", "Smartwatch X2", 12800, 320, "2024-02-10"),
		rec("Latin America", `Laptop Air 13"`, 9300, 54, "2024-02-14"),
		rec("North America", "Smartwatch X2", 20700, 356, "2024-03-01"),
		rec("Europe", "Noise Cancelling Headphones", 14600, 172, "2024-03-05"),
		rec("APAC", `Laptop Air 13"`, 15200, 68, "2024-03-12"),
		rec("APAC", "USB-C Dock", 5400, 210, "2024-03-20"),
		rec("Latin America", "Smartwatch X2", 8800, 196, "2024-03-28"),
		rec("North America", `4K Monitor 27"`, 17600, 130, "2024-04-05"),
		rec("Europe", `Laptop Air 13"`, 13400, 60, "2024-04-22"),
		rec("APAC", `Laptop Pro 15"`, 21100, 52, "2024-04-25"),
		rec("Latin America", "Noise Cancelling Headphones", 6600, 84, "2024-05-02"),
		rec("North America", `Laptop Air 13"`, 25800, 120, "2024-05-18"),
		rec("Europe", "Smartwatch X2", 11800, 260, "2024-05-22"),
		rec("APAC", `4K Monitor 27"`, 9900, 76, "2024-06-01"),
		rec("Latin America", "USB-C Dock", 3100, 142, "2024-06-05"),
		rec("North America", "USB-C Dock", 4500, 190, "2024-06-12"),
		rec("Europe", "USB-C Dock", 3700, 156, "2024-06-15"),
		rec("APAC", "Noise Cancelling Headphones", 13500, 188, "2024-06-20"),
	}
}
