package brokentoys

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
)

func TestDefaults(t *testing.T) {
	w, err := New([]int64{1, 2, 3})
	require.NoError(t, err, "Creating a default workload should never error out")

	assert.Equal(t, runtime.GOMAXPROCS(0), w.workers, "The default worker count should be GOMAXPROCS")
}

func TestWorkers(t *testing.T) {
	w, err := New(nil, Workers(3))
	require.NoError(t, err)
	assert.Equal(t, 3, w.workers)

	w, err = New(nil, Workers(0))
	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.Nil(t, w, "Trying to create a workload with bad options should give no workload")
}

func TestLogger(t *testing.T) {
	logger := klog.Background().WithName("toys")
	w, err := New([]int64{4}, Logger(logger))
	require.NoError(t, err)
	assert.Equal(t, logger, w.logger)
}
