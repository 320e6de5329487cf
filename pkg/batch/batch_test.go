package batch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBenchmarkCoversEveryPairing(t *testing.T) {
	report, err := RunBenchmark(context.Background(), 8, 4)
	require.NoError(t, err)
	assert.NotEmpty(t, report.Results)
	assert.Equal(t, report.SuccessCount+report.FailureCount, len(report.Results))
	for _, r := range report.Results {
		assert.True(t, r.Success, "generator %s / solver %s failed: %s", r.Generator, r.Solver, r.Error)
	}
}

func TestRunBenchmarkRejectsTinySize(t *testing.T) {
	_, err := RunBenchmark(context.Background(), 1, 1)
	assert.Error(t, err)
}
