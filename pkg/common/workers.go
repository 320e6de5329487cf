package common

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// ParseWorkers parses a --workers flag value shared by the root command and
// the benchmark command: "full" -> NumCPU(), "half" -> NumCPU()/2, or an
// integer string -> that value.
func ParseWorkers(value string) (int, error) {
	value = strings.TrimSpace(strings.ToLower(value))

	switch value {
	case "full":
		return runtime.NumCPU(), nil
	case "half", "":
		count := runtime.NumCPU() / 2
		if count < 1 {
			count = 1
		}
		return count, nil
	default:
		count, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("must be 'full', 'half', or a positive integer (got: %s)", value)
		}
		if count < 1 {
			return 0, fmt.Errorf("must be at least 1 (got: %d)", count)
		}
		return count, nil
	}
}
