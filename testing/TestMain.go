// Package testing switches the binaries into test mode when imported, so a
// test can link a main-adjacent package without starting servers.
package testing

import (
	"os"
	"sync"
	stdtesting "testing"
)

var ensureTestMode = sync.OnceFunc(func() {
	_ = os.Setenv("SALESPULSE_TEST_MODE", "1")
	// Never let a test reach a real cluster by accident.
	if os.Getenv("ELASTIC_URL") == "" {
		_ = os.Setenv("ELASTIC_URL", "http://127.0.0.1:0")
	}
})

func init() {
	ensureTestMode()
}

// TestMain can be assigned by packages that own their main test entry point.
func TestMain(m *stdtesting.M) {
	ensureTestMode()
	os.Exit(m.Run())
}
