package testconfig

import (
	"os"
	"testing"
)

const (
	PARALLEL_TESTS_ENV_VARNAME = "QUACK_PARALLEL_TESTS"
)

var (
	PARALLELIZE_SAME_PKG_TESTS = os.Getenv(PARALLEL_TESTS_ENV_VARNAME) == "1"
)

// AllowParallelization marks the test as parallel if parallelization is enabled ($QUACK_PARALLEL_TESTS=1).
func AllowParallelization(t *testing.T) {
	if PARALLELIZE_SAME_PKG_TESTS {
		t.Parallel()
	}
}
