package app

import (
	"os"
	"strconv"
	"sync"
)

// TestModeEnv set to a true value makes the binaries return before they open
// listeners or store connections.
const TestModeEnv = "SALESPULSE_TEST_MODE"

var testMode = sync.OnceValue(readTestMode)

func readTestMode() bool {
	on, _ := strconv.ParseBool(os.Getenv(TestModeEnv))
	return on
}

// InTestMode reports whether TestModeEnv was set when first asked.
func InTestMode() bool {
	return testMode()
}
