// Command salespulsectl seeds the SalesPulse API and prints its KPIs.
//
// Usage:
//
//	salespulsectl seed --api http://localhost:5000
//	salespulsectl kpis
package main

import (
	"fmt"
	"os"

	"github.com/salespulse/salespulse/cmd/salespulsectl/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
